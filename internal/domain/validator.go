package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

// Stale-TODO detection: a bare TODO token is acceptable only when its
// surrounding text carries an ownership marker (issue reference,
// priority, or time estimate).
var (
	todoPattern     = regexp.MustCompile(`\bTODO\b`)
	issueRefPattern = regexp.MustCompile(`#\d+|\b[A-Z][A-Z0-9]+-\d+\b`)
	priorityPattern = regexp.MustCompile(`(?i)\b(?:low|medium|high)\s+priority\b|\bP[0-4]\b`)
	estimatePattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:h|hr|hrs|hour|hours|d|day|days|w|week|weeks)\b`)
)

// Validator matches structured comments against the rule table and
// produces violation records. Validation is a pure function with no I/O
// and no side effects on its inputs.
type Validator struct {
	registry *schema.Registry
}

// NewValidator creates a Validator over a read-only rule registry.
func NewValidator(registry *schema.Registry) *Validator {
	return &Validator{registry: registry}
}

// Validate checks one declaration's comment block against the rule for
// its construct kind. Declarations whose kind has no rule are skipped.
// The block pointer is nil when the associator found no comment.
func (v *Validator) Validate(decl m.Declaration, block *m.CommentBlock) []m.Violation {
	rule, ok := v.registry.RuleFor(decl.Kind)
	if !ok {
		return nil
	}

	if block == nil {
		if !rule.RequireBlock {
			return nil
		}

		return []m.Violation{v.violation(decl, m.MissingBlock, "",
			fmt.Sprintf("%s %q has no documentation block", decl.Kind, decl.Name))}
	}

	parsed := ParseComment(*block)

	var violations []m.Violation

	for _, field := range rule.Required {
		if violated, found := v.checkRequired(decl, parsed, field); found {
			violations = append(violations, violated)
		}
	}

	violations = append(violations, v.checkStaleTODOs(decl, parsed)...)

	return violations
}

func (v *Validator) checkRequired(decl m.Declaration, parsed *m.StructuredComment, field schema.Field) (m.Violation, bool) {
	if !parsed.HasTag(field.Tag) {
		return v.violation(decl, m.MissingRequiredTag, field.Tag,
			fmt.Sprintf("missing required tag %s", field.Tag)), true
	}

	values := parsed.Tag(field.Tag)

	if allBlank(values) {
		return v.violation(decl, m.EmptyRequiredTag, field.Tag,
			fmt.Sprintf("required tag %s is empty", field.Tag)), true
	}

	for _, value := range values {
		if field.Predicate.Accepts(value) {
			return m.Violation{}, false
		}
	}

	return v.violation(decl, m.InvalidTagValue, field.Tag,
		fmt.Sprintf("tag %s value does not satisfy %s", field.Tag, field.Predicate.Describe())), true
}

// checkStaleTODOs scans the free text and every tag value for TODO
// tokens lacking context. At most one violation per offending segment.
func (v *Validator) checkStaleTODOs(decl m.Declaration, parsed *m.StructuredComment) []m.Violation {
	var violations []m.Violation

	if staleTODO(parsed.Description) {
		violations = append(violations, v.violation(decl, m.StaleOwnership, "",
			"TODO without issue reference, priority or estimate"))
	}

	for _, name := range parsed.TagNames() {
		for _, value := range parsed.Tag(name) {
			// A bare `TODO:` line parses as a label tag named TODO, so
			// the name is part of the scanned segment.
			if staleTODO(name + ": " + value) {
				violations = append(violations, v.violation(decl, m.StaleOwnership, name,
					fmt.Sprintf("TODO in %s without issue reference, priority or estimate", name)))

				break
			}
		}
	}

	return violations
}

func staleTODO(text string) bool {
	if !todoPattern.MatchString(text) {
		return false
	}

	return !issueRefPattern.MatchString(text) &&
		!priorityPattern.MatchString(text) &&
		!estimatePattern.MatchString(text)
}

func allBlank(values []string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}

	return true
}

func (v *Validator) violation(decl m.Declaration, kind m.ViolationKind, tag, message string) m.Violation {
	return m.Violation{
		File:    decl.File,
		Line:    decl.Line,
		Name:    decl.Name,
		Kind:    decl.Kind,
		Type:    kind,
		Tag:     tag,
		Message: message,
	}
}
