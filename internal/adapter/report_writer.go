package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/doclint/internal/model"
)

// ReportWriter persists a rendered report. Nothing is ever read back;
// the tool keeps no state between runs.
type ReportWriter interface {
	Write(path m.Path, rendered []byte) error
}

type reportWriter struct{}

// NewReportWriter constructs a ReportWriter implementation.
func NewReportWriter() ReportWriter {
	return &reportWriter{}
}

func (rw *reportWriter) Write(path m.Path, rendered []byte) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), rendered, 0o600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
