package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/doclint/internal/domain"
	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

// SimpleUI implements UI with plain text via cobra Command output.
type SimpleUI struct {
	cmd      *cobra.Command
	colorize bool
}

// NewSimpleUI creates a new SimpleUI. Colors are applied only when the
// caller knows the output is a terminal.
func NewSimpleUI(cmd *cobra.Command, colorize bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, colorize: colorize}
}

// DisplayReport prints the violation report as line-oriented text.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	return s.print(RenderText(report, s.colorize))
}

// DisplayInventory prints per-file declaration counts.
func (s *SimpleUI) DisplayInventory(inventories []domain.FileInventory) error {
	return s.print(RenderInventory(inventories))
}

// DisplayRules prints the effective rule table.
func (s *SimpleUI) DisplayRules(registry *schema.Registry) error {
	return s.print(RenderRules(registry))
}

func (s *SimpleUI) print(text string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)

	return err
}
