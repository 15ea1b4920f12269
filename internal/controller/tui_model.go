package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/doclint/internal/model"
)

const reportChromeLines = 6

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type violationItem struct {
	violation m.Violation
}

func (i violationItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.violation.File, i.violation.Type, i.violation.Message)
}

// Simple one-line delegate for violation list items.
type violationDelegate struct{}

func (d violationDelegate) Height() int  { return 1 }
func (d violationDelegate) Spacing() int { return 0 }
func (d violationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d violationDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	entry, ok := item.(violationItem)
	if !ok {
		return
	}

	location := fmt.Sprintf("%s:%d", entry.violation.File, entry.violation.Line)
	kind := fmt.Sprintf("[%s]", entry.violation.Type)
	line := fmt.Sprintf("%s %s %s", location, kind, entry.violation.Message)

	if index == lm.Index() {
		line = selectedStyle.Render(truncateToWidth(line, lm.Width()))
	} else {
		line = fmt.Sprintf("%s %s %s",
			locationStyle.Render(location),
			kindStyle.Render(kind),
			truncateToWidth(entry.violation.Message, lm.Width()-lipgloss.Width(location)-lipgloss.Width(kind)-2),
		)
	}

	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	runes := []rune(text)
	if len(runes) <= width {
		return text
	}

	return string(runes[:width-1]) + "…"
}

// reportModel is the interactive violation browser: a filterable list
// with a summary header. The "f" key cycles a per-kind filter.
type reportModel struct {
	report    m.Report
	items     list.Model
	filterIdx int // -1 means all kinds
	width     int
	height    int
}

func newReportModel(report m.Report, width, height int) reportModel {
	model := reportModel{
		report:    report,
		filterIdx: -1,
		width:     width,
		height:    height,
	}

	model.items = list.New(model.visibleItems(), violationDelegate{}, width, max(1, height-reportChromeLines))
	model.items.SetShowTitle(false)
	model.items.SetShowStatusBar(false)
	model.items.SetFilteringEnabled(false)
	model.items.SetShowHelp(false)

	return model
}

func (rm reportModel) visibleItems() []list.Item {
	items := make([]list.Item, 0, len(rm.report.Violations))

	for _, violation := range rm.report.Violations {
		if rm.filterIdx >= 0 && violation.Type != m.ViolationKind(rm.filterIdx) {
			continue
		}

		items = append(items, violationItem{violation: violation})
	}

	return items
}

func (rm reportModel) needsPagination() bool {
	return len(rm.report.Violations)+reportChromeLines > rm.height
}

// Init implements tea.Model.
func (rm reportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.items.SetSize(msg.Width, max(1, msg.Height-reportChromeLines))

		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return rm, tea.Quit

		case "f":
			rm.filterIdx++
			if rm.filterIdx >= len(m.ViolationKinds()) {
				rm.filterIdx = -1
			}

			rm.items.SetItems(rm.visibleItems())
			rm.items.ResetSelected()

			return rm, nil
		}
	}

	var cmd tea.Cmd
	rm.items, cmd = rm.items.Update(msg)

	return rm, cmd
}

// View implements tea.Model.
func (rm reportModel) View() string {
	filter := "all"
	if rm.filterIdx >= 0 {
		filter = m.ViolationKind(rm.filterIdx).String()
	}

	header := titleStyle.Render(fmt.Sprintf(
		"doclint: %d violations in %d of %d files (filter: %s)",
		rm.report.Summary.Total,
		rm.report.Summary.FilesWithViolations,
		rm.report.Summary.FilesScanned,
		filter,
	))

	help := helpStyle.Render("↑/↓ navigate • f filter kind • q quit")

	return fmt.Sprintf("%s\n\n%s\n\n%s\n", header, rm.items.View(), help)
}
