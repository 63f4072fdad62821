package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mydehq/invcheck/internal/report"
)

// Options holds the three startup inputs: the check mode, the catalog
// file and the image directory.
type Options struct {
	Mode        report.Kind
	CatalogPath string
	ImagesPath  string
}

// runWizard prompts for every option not already supplied via flags.
// Validation happens inside the form, so an invalid path keeps the
// input open until an existing one is given.
func runWizard(opts *Options) error {
	theme := invcheckTheme()

	if opts.Mode == 0 {
		ClearAndPrintBanner()
		mode := int(report.KindDuplicates)
		err := RunForm(huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title("Choose option").
					Options(
						huh.NewOption("1 = Find duplicate images", int(report.KindDuplicates)),
						huh.NewOption("2 = Find missing images", int(report.KindMissing)),
					).
					Value(&mode),
			),
		).WithTheme(theme).WithKeyMap(invcheckKeyMap()))
		if err != nil {
			return handleAbort(err)
		}
		opts.Mode = report.Kind(mode)
	}

	if opts.CatalogPath == "" {
		ClearAndPrintBanner()
		path := ""
		err := RunForm(huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Catalog file").
					Description("\nPaste the full path to items.lua").
					Value(&path).
					Validate(ValidateCatalogPath),
			),
		).WithTheme(theme).WithKeyMap(invcheckKeyMap()))
		if err != nil {
			return handleAbort(err)
		}
		opts.CatalogPath = strings.TrimSpace(path)
	}

	if opts.ImagesPath == "" {
		ClearAndPrintBanner()
		path := ""
		err := RunForm(huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Image directory").
					Description("\nPaste the full path to the images folder").
					Value(&path).
					Validate(ValidateImagesPath),
			),
		).WithTheme(theme).WithKeyMap(invcheckKeyMap()))
		if err != nil {
			return handleAbort(err)
		}
		opts.ImagesPath = strings.TrimSpace(path)
	}

	return nil
}

// handleAbort maps a huh abort to our sentinel and logs the cancellation.
func handleAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Println()
		logger.Info(StyleDim.Render("Cancelled"))
		return ErrUserAborted
	}
	return err
}

// ValidateCatalogPath requires an existing regular file.
func ValidateCatalogPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("path is required")
	}
	info, err := os.Stat(s)
	if err != nil || info.IsDir() {
		return fmt.Errorf("invalid file: %s", s)
	}
	return nil
}

// ValidateImagesPath requires an existing directory.
func ValidateImagesPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("path is required")
	}
	info, err := os.Stat(s)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("invalid folder: %s", s)
	}
	return nil
}
