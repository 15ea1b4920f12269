package model

import (
	"fmt"
	"strings"
)

// ViolationKind classifies a single documentation-compliance finding.
// The declaration order fixes the ordinal used for deterministic sorting.
type ViolationKind int

const (
	// MissingBlock means a declaration has no comment block at all.
	MissingBlock ViolationKind = iota
	// MissingRequiredTag means a required tag is absent from the block.
	MissingRequiredTag
	// EmptyRequiredTag means a required tag is present but blank.
	EmptyRequiredTag
	// InvalidTagValue means a tag value fails its rule predicate.
	InvalidTagValue
	// StaleOwnership means a TODO lacks an issue, priority or estimate.
	StaleOwnership
)

// violationKindNames maps kinds to their canonical names, indexed by ordinal.
var violationKindNames = []string{
	"MissingBlock",
	"MissingRequiredTag",
	"EmptyRequiredTag",
	"InvalidTagValue",
	"StaleOwnership",
}

func (k ViolationKind) String() string {
	if int(k) < 0 || int(k) >= len(violationKindNames) {
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}

	return violationKindNames[k]
}

// ViolationKinds lists every kind in ordinal order.
func ViolationKinds() []ViolationKind {
	kinds := make([]ViolationKind, len(violationKindNames))
	for i := range violationKindNames {
		kinds[i] = ViolationKind(i)
	}

	return kinds
}

// ParseViolationKind resolves a kind by its canonical name (case-insensitive).
func ParseViolationKind(s string) (ViolationKind, error) {
	for i, name := range violationKindNames {
		if strings.EqualFold(name, s) {
			return ViolationKind(i), nil
		}
	}

	return 0, fmt.Errorf("unknown violation kind %q", s)
}

// Violation is one finding against one declaration. Violations are value
// copies; they never point back into scanner or associator state.
type Violation struct {
	File    Path
	Line    int
	Name    string
	Kind    ConstructKind
	Type    ViolationKind
	Tag     string
	Message string
}

// Diagnostic is a per-file, non-violation problem (unreadable file,
// recovered processing failure). Diagnostics never affect exit status.
type Diagnostic struct {
	File    Path
	Code    string
	Message string
}

// Diagnostic codes.
const (
	// DiagUnreadableFile marks files that could not be read or decoded.
	DiagUnreadableFile = "UnreadableFile"
	// DiagInternalError marks files whose processing failed unexpectedly.
	DiagInternalError = "InternalError"
)

// Summary holds aggregate counts for a Report.
type Summary struct {
	FilesScanned        int
	FilesWithViolations int
	Total               int
	ByKind              map[ViolationKind]int
	ByFile              map[Path]int
}

// Report is the final, deterministically ordered result of a run.
type Report struct {
	Violations  []Violation
	Diagnostics []Diagnostic
	Summary     Summary
}

// Failing reports whether the report contains at least one violation of
// a fail-on kind.
func (r Report) Failing(failOn []ViolationKind) bool {
	for _, kind := range failOn {
		if r.Summary.ByKind[kind] > 0 {
			return true
		}
	}

	return false
}
