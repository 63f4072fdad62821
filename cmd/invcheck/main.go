package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mydehq/invcheck/internal/cli"
	"github.com/mydehq/invcheck/internal/tui"
)

func main() {
	cli.SetLauncher(func(opts cli.Options) error {
		p := tea.NewProgram(
			tui.NewModel(opts.Mode, opts.CatalogPath, opts.ImagesPath),
			tea.WithAltScreen(),
		)
		_, err := p.Run()
		return err
	})

	os.Exit(cli.Execute())
}
