package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mouse-blink/doclint/internal/domain"
	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayReport shows the violation report. Short reports are printed
// directly; longer ones open an interactive, filterable browser.
func (t *TUI) DisplayReport(report m.Report) error {
	width, height := t.terminalSize()

	model := newReportModel(report, width, height)

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, RenderText(report, true))

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	// Leave the non-interactive rendering behind for scrollback.
	_, err := fmt.Fprint(t.output, RenderText(report, true))

	return err
}

// DisplayInventory shows per-file declaration counts.
func (t *TUI) DisplayInventory(inventories []domain.FileInventory) error {
	_, err := fmt.Fprint(t.output, RenderInventory(inventories))

	return err
}

// DisplayRules shows the effective rule table.
func (t *TUI) DisplayRules(registry *schema.Registry) error {
	_, err := fmt.Fprint(t.output, RenderRules(registry))

	return err
}

func (t *TUI) terminalSize() (int, int) {
	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			return width, height
		}
	}

	return 80, 24
}
