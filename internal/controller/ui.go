// Package controller provides output adapters for displaying compliance reports.
package controller

import (
	"github.com/mouse-blink/doclint/internal/domain"
	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

// UI defines the interface for rendering run results.
// Implementations can use different output methods (plain text, JSON, TUI).
type UI interface {
	// DisplayReport renders the final violation report.
	DisplayReport(report m.Report) error
	// DisplayInventory renders per-file declaration counts.
	DisplayInventory(inventories []domain.FileInventory) error
	// DisplayRules renders the effective rule table.
	DisplayRules(registry *schema.Registry) error
}
