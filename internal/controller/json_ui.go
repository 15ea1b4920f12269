package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/doclint/internal/domain"
	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

// JSONUI implements UI with machine-readable output for CI gating.
type JSONUI struct {
	cmd *cobra.Command
}

// NewJSONUI creates a new JSONUI.
func NewJSONUI(cmd *cobra.Command) *JSONUI {
	return &JSONUI{cmd: cmd}
}

// DisplayReport emits the serialized report.
func (j *JSONUI) DisplayReport(report m.Report) error {
	rendered, err := RenderJSON(report)
	if err != nil {
		return err
	}

	_, err = j.cmd.OutOrStdout().Write(rendered)

	return err
}

// DisplayInventory emits per-file counts as a JSON array.
func (j *JSONUI) DisplayInventory(inventories []domain.FileInventory) error {
	rendered, err := RenderInventoryJSON(inventories)
	if err != nil {
		return err
	}

	_, err = j.cmd.OutOrStdout().Write(rendered)

	return err
}

// DisplayRules is text-only; the rule table is already JSON on disk.
func (j *JSONUI) DisplayRules(registry *schema.Registry) error {
	_, err := fmt.Fprint(j.cmd.OutOrStdout(), RenderRules(registry))

	return err
}
