// Package tui implements the interactive result view: a state machine
// over Idle, Scanning and Displaying driven by Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mydehq/invcheck/internal/catalog"
	"github.com/mydehq/invcheck/internal/cli"
	"github.com/mydehq/invcheck/internal/report"
	"github.com/mydehq/invcheck/internal/scan"
)

type state int

const (
	stateIdle state = iota
	stateScanning
	stateDisplaying
)

const noticeTimeout = 3 * time.Second

var (
	titleStyle    = cli.StyleCommand
	subTitleStyle = cli.StyleDim

	infoStyle    = cli.StyleCommand
	successStyle = cli.StyleHeader
	warningStyle = cli.StyleWarning
	errorStyle   = cli.StyleError

	successBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("34")).
				Padding(0, 2)

	warningBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("192")).
				Padding(0, 2)

	errorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("204")).
				Padding(0, 2)

	actionBarMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "229", Dark: "229"}).
				Background(lipgloss.AdaptiveColor{Light: "57", Dark: "57"}).
				Padding(0, 1)

	actionBarKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "57", Dark: "57"}).
				Background(lipgloss.AdaptiveColor{Light: "229", Dark: "229"}).
				Padding(0, 1).
				Bold(true)
)

// startedMsg kicks off the initial scan once the program is running.
type startedMsg struct{}

type progressMsg struct {
	done  int
	total int
}

type scanDoneMsg struct {
	rep report.Report
	err error
}

type clearNoticeMsg struct{}

type Model struct {
	state       state
	mode        report.Kind
	catalogPath string
	imagesPath  string

	// Content
	table   table.Model
	bar     progress.Model
	spin    spinner.Model
	rep     report.Report
	err     error
	percent float64
	notice  string

	quitting bool
	width    int
	height   int

	progressChan chan progressMsg
}

func NewModel(mode report.Kind, catalogPath, imagesPath string) Model {
	t := table.New(
		table.WithColumns(columnsFor(mode, 80)),
		table.WithFocused(true),
		table.WithHeight(10), // dynamically updated
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("86"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	return Model{
		state:        stateIdle,
		mode:         mode,
		catalogPath:  catalogPath,
		imagesPath:   imagesPath,
		table:        t,
		bar:          progress.New(progress.WithDefaultGradient()),
		spin:         sp,
		progressChan: make(chan progressMsg),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startedMsg{} },
		m.listenForProgress(),
		m.spin.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "r":
			if m.state == stateScanning {
				m.notice = warningStyle.Render("Scan already in progress")
				return m, clearNoticeLater()
			}
			if m.state == stateDisplaying {
				return m.beginScan()
			}

		case "c":
			if m.state != stateDisplaying || m.err != nil {
				return m, nil
			}
			row := m.table.SelectedRow()
			if len(row) == 0 {
				m.notice = subTitleStyle.Render("Nothing to copy")
				return m, clearNoticeLater()
			}
			if err := clipboard.WriteAll(row[0]); err != nil {
				m.notice = errorStyle.Render(fmt.Sprintf("Copy failed: %v", err))
			} else {
				m.notice = successStyle.Render(fmt.Sprintf("Copied: %s", row[0]))
			}
			return m, clearNoticeLater()
		}

	case startedMsg:
		if m.state == stateIdle {
			return m.beginScan()
		}

	case progressMsg:
		if msg.total > 0 {
			m.percent = float64(msg.done) / float64(msg.total)
		}
		cmds = append(cmds, m.bar.SetPercent(m.percent), m.listenForProgress())
		return m, tea.Batch(cmds...)

	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		if next, ok := updated.(progress.Model); ok {
			m.bar = next
		}
		return m, cmd

	case spinner.TickMsg:
		if m.state == stateScanning || m.state == stateIdle {
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case scanDoneMsg:
		m.state = stateDisplaying
		m.err = msg.err
		m.rep = msg.rep
		m.percent = 1.0
		m.updateTable()
		return m, m.bar.SetPercent(1.0)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 120 {
			m.bar.Width = 120
		}
		m.resizeTable()
	}

	if m.state == stateDisplaying {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// beginScan transitions into Scanning and starts the mode-selected
// pipeline. Results and errors of the previous scan are discarded.
func (m Model) beginScan() (tea.Model, tea.Cmd) {
	m.state = stateScanning
	m.err = nil
	m.rep = report.Report{}
	m.percent = 0
	m.notice = ""
	m.updateTable()
	return m, tea.Batch(m.runScan(), m.bar.SetPercent(0), m.spin.Tick)
}

// runScan executes the full detector pipeline off the UI loop. Every
// per-item progress send blocks until the interface drains it, which
// keeps rendering and input responsive during large scans.
func (m Model) runScan() tea.Cmd {
	mode := m.mode
	catalogPath := m.catalogPath
	imagesPath := m.imagesPath
	ch := m.progressChan

	return func() tea.Msg {
		onProgress := func(done, total int) {
			ch <- progressMsg{done: done, total: total}
		}

		switch mode {
		case report.KindMissing:
			ids, err := catalog.Identifiers(catalogPath)
			if err != nil {
				return scanDoneMsg{err: err}
			}
			idx, err := scan.BuildIndex(imagesPath, nil)
			if err != nil {
				return scanDoneMsg{err: err}
			}
			return scanDoneMsg{rep: report.FromMissing(scan.Missing(ids, idx, onProgress))}

		default:
			idx, err := scan.BuildIndex(imagesPath, onProgress)
			if err != nil {
				return scanDoneMsg{err: err}
			}
			return scanDoneMsg{rep: report.FromDuplicates(idx.Duplicates())}
		}
	}
}

func (m Model) listenForProgress() tea.Cmd {
	return func() tea.Msg {
		return <-m.progressChan
	}
}

func clearNoticeLater() tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

func (m *Model) updateTable() {
	rows := make([]table.Row, 0, len(m.rep.Rows))
	for _, r := range m.rep.Rows {
		rows = append(rows, table.Row(r))
	}
	m.table.SetRows(rows)
	m.table.SetColumns(columnsFor(m.mode, m.width))
	m.table.GotoTop()
}

func columnsFor(mode report.Kind, width int) []table.Column {
	totalW := width - 4
	if totalW < 40 {
		totalW = 40
	}

	if mode == report.KindMissing {
		return []table.Column{
			{Title: "Missing Image Item", Width: totalW},
		}
	}

	nameW := totalW / 4
	if nameW < 16 {
		nameW = 16
	}
	countW := 11
	filesW := totalW - nameW - countW
	if filesW < 20 {
		filesW = 20
	}
	return []table.Column{
		{Title: "Image Name", Width: nameW},
		{Title: "Files Count", Width: countW},
		{Title: "Files", Width: filesW},
	}
}

func (m *Model) resizeTable() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	m.table.SetColumns(columnsFor(m.mode, m.width))

	headerH := 6 // title + status + progress + padding
	footerH := 4 // banner + action bar
	contentH := m.height - headerH - footerH
	if contentH < 5 {
		contentH = 5
	}
	m.table.SetHeight(contentH - 2) // -2 for table borders
}

func (m Model) renderActionBar(actions []string) string {
	var rendered []string
	for _, a := range actions {
		parts := strings.SplitN(a, " ", 2)
		if len(parts) == 2 {
			rendered = append(rendered, actionBarKeyStyle.Render(parts[0])+actionBarMsgStyle.Render(parts[1]))
		}
	}
	bar := strings.Join(rendered, lipgloss.NewStyle().Background(lipgloss.Color("57")).Render("  "))

	// Pad the rest of the bar to full width
	padW := m.width - lipgloss.Width(bar)
	if padW < 0 {
		padW = 0
	}
	padding := lipgloss.NewStyle().Background(lipgloss.Color("57")).Render(strings.Repeat(" ", padW))

	return bar + padding
}

func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	if m.width <= 0 || m.height <= 0 {
		return "Starting..."
	}

	var s strings.Builder

	// 1. Top Bar (Header)
	header := fmt.Sprintf("%s  %s", titleStyle.Render("INVCHECK"), subTitleStyle.Render(m.mode.Title()))
	paths := subTitleStyle.Render(fmt.Sprintf("CATALOG: %s  IMAGES: %s", m.catalogPath, m.imagesPath))
	s.WriteString(lipgloss.NewStyle().Padding(1, 2).Render(header + "\n" + paths))
	s.WriteString("\n")

	// 2. Status line + progress, kept across result re-renders
	var status string
	switch {
	case m.state == stateScanning || m.state == stateIdle:
		status = m.spin.View() + infoStyle.Render(m.mode.StatusLine())
	case m.err != nil:
		status = errorStyle.Render("Scan failed")
	default:
		status = subTitleStyle.Render("Scan complete")
	}
	s.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(status + "\n" + m.bar.View()))
	s.WriteString("\n")

	// 3. Result area
	var contentView string
	var actionBarView string

	switch m.state {
	case stateIdle, stateScanning:
		actionBarView = m.renderActionBar([]string{"q Quit"})

	case stateDisplaying:
		var banner string
		switch {
		case m.err != nil:
			banner = errorBannerStyle.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		case m.rep.Empty():
			banner = successBannerStyle.Render(successStyle.Render(m.rep.Banner()))
		default:
			banner = warningBannerStyle.Render(warningStyle.Render(m.rep.Banner()))
		}

		if m.err == nil && !m.rep.Empty() {
			contentView = lipgloss.NewStyle().Padding(1, 2).Render(m.table.View() + "\n\n" + banner)
			actionBarView = m.renderActionBar([]string{"r Refresh", "c Copy", "↑/↓ Scroll", "q Quit"})
		} else {
			contentView = lipgloss.NewStyle().Padding(1, 2).Render(banner)
			actionBarView = m.renderActionBar([]string{"r Refresh", "q Quit"})
		}
	}

	s.WriteString(contentView)

	if m.notice != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Padding(0, 2).Render(m.notice))
	}

	// Force the action bar to the absolute bottom via newlines
	currentLines := strings.Count(s.String(), "\n")
	neededNewLines := (m.height - 2) - currentLines
	if neededNewLines > 0 {
		s.WriteString(strings.Repeat("\n", neededNewLines))
	} else {
		s.WriteString("\n")
	}
	s.WriteString(actionBarView)

	return s.String()
}
