// Package schema holds the rule table that drives validation: per
// construct kind, the required and optional tags and their value shapes.
package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// PredicateKind names the supported value-shape tests.
type PredicateKind string

const (
	// PredicateNonEmpty requires at least one non-blank value.
	PredicateNonEmpty PredicateKind = "non-empty"
	// PredicateEnum requires the value to be one of a fixed set.
	PredicateEnum PredicateKind = "enum"
	// PredicatePattern requires the value to contain a named token.
	PredicatePattern PredicateKind = "matches-pattern"
)

// tokenPatterns maps pattern names usable in `matches-pattern:<token>`
// to their compiled shapes.
var tokenPatterns = map[string]*regexp.Regexp{
	"status-code": regexp.MustCompile(`\b[1-5]\d{2}\b`),
	"issue-ref":   regexp.MustCompile(`#\d+|\b[A-Z][A-Z0-9]+-\d+\b`),
	"http-verb":   regexp.MustCompile(`\b(?:GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS)\b`),
	"semver":      regexp.MustCompile(`\bv?\d+\.\d+\.\d+\b`),
}

// Predicate is one value-shape test attached to a required field.
type Predicate struct {
	Kind    PredicateKind
	Allowed []string
	Token   string
	pattern *regexp.Regexp
}

// ParsePredicate decodes the configuration spelling of a predicate:
// "non-empty", "enum:[a,b,c]" or "matches-pattern:<token>".
func ParsePredicate(spec string) (Predicate, error) {
	spec = strings.TrimSpace(spec)

	switch {
	case spec == string(PredicateNonEmpty):
		return Predicate{Kind: PredicateNonEmpty}, nil

	case strings.HasPrefix(spec, string(PredicateEnum)+":"):
		body := strings.TrimPrefix(spec, string(PredicateEnum)+":")
		body = strings.TrimPrefix(body, "[")
		body = strings.TrimSuffix(body, "]")

		var allowed []string

		for _, part := range strings.Split(body, ",") {
			if part = strings.TrimSpace(part); part != "" {
				allowed = append(allowed, part)
			}
		}

		if len(allowed) == 0 {
			return Predicate{}, fmt.Errorf("enum predicate %q has no values", spec)
		}

		return Predicate{Kind: PredicateEnum, Allowed: allowed}, nil

	case strings.HasPrefix(spec, string(PredicatePattern)+":"):
		token := strings.TrimPrefix(spec, string(PredicatePattern)+":")

		pattern, ok := tokenPatterns[token]
		if !ok {
			return Predicate{}, fmt.Errorf("unknown pattern token %q", token)
		}

		return Predicate{Kind: PredicatePattern, Token: token, pattern: pattern}, nil
	}

	return Predicate{}, fmt.Errorf("unknown predicate %q", spec)
}

// Accepts reports whether the given tag value satisfies the predicate.
// Blank values are handled by the validator before predicates run.
func (p Predicate) Accepts(value string) bool {
	switch p.Kind {
	case PredicateNonEmpty:
		return strings.TrimSpace(value) != ""

	case PredicateEnum:
		candidate := strings.TrimSpace(value)
		for _, allowed := range p.Allowed {
			if candidate == allowed {
				return true
			}
		}

		return false

	case PredicatePattern:
		return p.pattern.MatchString(value)
	}

	return false
}

// Describe renders the predicate in its configuration spelling.
func (p Predicate) Describe() string {
	switch p.Kind {
	case PredicateEnum:
		return fmt.Sprintf("enum:[%s]", strings.Join(p.Allowed, ","))
	case PredicatePattern:
		return fmt.Sprintf("matches-pattern:%s", p.Token)
	default:
		return string(PredicateNonEmpty)
	}
}
