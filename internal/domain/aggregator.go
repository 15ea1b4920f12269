package domain

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/doclint/internal/model"
)

// Aggregate deduplicates and deterministically orders violations and
// diagnostics into the final report. It is a pure function of its
// inputs: the result is independent of the order files were scanned.
func Aggregate(filesScanned int, violations []m.Violation, diagnostics []m.Diagnostic) m.Report {
	violations = dedupViolations(violations)

	sort.SliceStable(violations, func(i, j int) bool {
		vi, vj := violations[i], violations[j]
		if vi.File != vj.File {
			return vi.File < vj.File
		}

		if vi.Line != vj.Line {
			return vi.Line < vj.Line
		}

		if vi.Type != vj.Type {
			return vi.Type < vj.Type
		}

		if vi.Tag != vj.Tag {
			return vi.Tag < vj.Tag
		}

		return vi.Name < vj.Name
	})

	sort.SliceStable(diagnostics, func(i, j int) bool {
		di, dj := diagnostics[i], diagnostics[j]
		if di.File != dj.File {
			return di.File < dj.File
		}

		return di.Code < dj.Code
	})

	summary := m.Summary{
		FilesScanned: filesScanned,
		Total:        len(violations),
		ByKind:       make(map[m.ViolationKind]int),
		ByFile:       make(map[m.Path]int),
	}

	for _, violation := range violations {
		summary.ByKind[violation.Type]++
		summary.ByFile[violation.File]++
	}

	summary.FilesWithViolations = len(summary.ByFile)

	return m.Report{
		Violations:  violations,
		Diagnostics: diagnostics,
		Summary:     summary,
	}
}

func dedupViolations(violations []m.Violation) []m.Violation {
	seen := make(map[string]struct{}, len(violations))
	out := make([]m.Violation, 0, len(violations))

	for _, violation := range violations {
		key := fmt.Sprintf("%s:%d:%d:%s:%s", violation.File, violation.Line, violation.Type, violation.Tag, violation.Name)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, violation)
	}

	return out
}
