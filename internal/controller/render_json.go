package controller

import (
	"encoding/json"
	"sort"

	"github.com/mouse-blink/doclint/internal/domain"
	m "github.com/mouse-blink/doclint/internal/model"
)

// jsonReport is the machine-readable report shape. Slices keep the
// aggregator's deterministic order; maps are flattened into sorted
// arrays so serialization is byte-identical across runs.
type jsonReport struct {
	Violations  []jsonViolation  `json:"violations"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Summary     jsonSummary      `json:"summary"`
}

type jsonViolation struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Name      string `json:"name"`
	Construct string `json:"construct"`
	Kind      string `json:"kind"`
	Tag       string `json:"tag,omitempty"`
	Message   string `json:"message"`
}

type jsonDiagnostic struct {
	File    string `json:"file"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonSummary struct {
	FilesScanned        int             `json:"files_scanned"`
	FilesWithViolations int             `json:"files_with_violations"`
	Total               int             `json:"total"`
	ByKind              []jsonKindCount `json:"by_kind"`
	ByFile              []jsonFileCount `json:"by_file"`
}

type jsonKindCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

type jsonFileCount struct {
	File  string `json:"file"`
	Count int    `json:"count"`
}

// RenderJSON serializes the report with a trailing newline.
func RenderJSON(report m.Report) ([]byte, error) {
	doc := jsonReport{
		Violations:  make([]jsonViolation, 0, len(report.Violations)),
		Diagnostics: make([]jsonDiagnostic, 0, len(report.Diagnostics)),
		Summary: jsonSummary{
			FilesScanned:        report.Summary.FilesScanned,
			FilesWithViolations: report.Summary.FilesWithViolations,
			Total:               report.Summary.Total,
			ByKind:              make([]jsonKindCount, 0, len(report.Summary.ByKind)),
			ByFile:              make([]jsonFileCount, 0, len(report.Summary.ByFile)),
		},
	}

	for _, violation := range report.Violations {
		doc.Violations = append(doc.Violations, jsonViolation{
			File:      string(violation.File),
			Line:      violation.Line,
			Name:      violation.Name,
			Construct: string(violation.Kind),
			Kind:      violation.Type.String(),
			Tag:       violation.Tag,
			Message:   violation.Message,
		})
	}

	for _, diagnostic := range report.Diagnostics {
		doc.Diagnostics = append(doc.Diagnostics, jsonDiagnostic{
			File:    string(diagnostic.File),
			Code:    diagnostic.Code,
			Message: diagnostic.Message,
		})
	}

	for _, kind := range m.ViolationKinds() {
		if count := report.Summary.ByKind[kind]; count > 0 {
			doc.Summary.ByKind = append(doc.Summary.ByKind, jsonKindCount{Kind: kind.String(), Count: count})
		}
	}

	files := make([]string, 0, len(report.Summary.ByFile))
	for file := range report.Summary.ByFile {
		files = append(files, string(file))
	}

	sort.Strings(files)

	for _, file := range files {
		doc.Summary.ByFile = append(doc.Summary.ByFile, jsonFileCount{
			File:  file,
			Count: report.Summary.ByFile[m.Path(file)],
		})
	}

	rendered, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(rendered, '\n'), nil
}

type jsonInventory struct {
	File         string `json:"file"`
	Declarations int    `json:"declarations"`
	Documented   int    `json:"documented"`
}

// RenderInventoryJSON serializes per-file declaration counts.
func RenderInventoryJSON(inventories []domain.FileInventory) ([]byte, error) {
	docs := make([]jsonInventory, 0, len(inventories))

	for _, inventory := range inventories {
		docs = append(docs, jsonInventory{
			File:         string(inventory.File),
			Declarations: inventory.Declarations,
			Documented:   inventory.Documented,
		})
	}

	rendered, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(rendered, '\n'), nil
}
