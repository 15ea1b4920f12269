package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed default_rules.json
var defaultRules []byte

//go:embed rules_schema.json
var rulesSchema []byte

// ConfigError marks a malformed or unreadable rule table. Callers map
// it to the configuration exit status.
type ConfigError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	where := e.Path
	if where == "" {
		where = "embedded rule table"
	}

	if e.Cause != nil {
		return fmt.Sprintf("rule table %s: %s: %v", where, e.Message, e.Cause)
	}

	return fmt.Sprintf("rule table %s: %s", where, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// ruleTableDoc mirrors the on-disk rule table shape.
type ruleTableDoc struct {
	Version    int                     `json:"version"`
	Constructs map[string]constructDoc `json:"constructs"`
	FailOn     []string                `json:"fail_on,omitempty"`
}

type constructDoc struct {
	RequireBlock *bool      `json:"require_block,omitempty"`
	Required     []fieldDoc `json:"required"`
	Optional     []string   `json:"optional,omitempty"`
}

type fieldDoc struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// Registry is the read-only rule lookup consulted by the validator.
// Construct kinds absent from the table are never checked.
type Registry struct {
	rules  map[string]Rule
	failOn []m.ViolationKind
}

// Default builds a Registry from the embedded rule table. The embedded
// table is part of the binary; a decode failure here is a programming
// error.
func Default() *Registry {
	registry, err := build("", defaultRules)
	if err != nil {
		panic(fmt.Sprintf("embedded rule table is invalid: %v", err))
	}

	return registry
}

// Parse builds a Registry from a raw rule table document.
func Parse(raw []byte) (*Registry, error) {
	return build("", raw)
}

// Load reads and validates an external rule table.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: "cannot read", Cause: err}
	}

	return build(path, raw)
}

func build(path string, raw []byte) (*Registry, error) {
	if err := validateDocument(path, raw); err != nil {
		return nil, err
	}

	var doc ruleTableDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ConfigError{Path: path, Message: "invalid JSON", Cause: err}
	}

	registry := &Registry{rules: make(map[string]Rule, len(doc.Constructs))}

	for kind, construct := range doc.Constructs {
		rule := Rule{Kind: kind, RequireBlock: true, Optional: construct.Optional}
		if construct.RequireBlock != nil {
			rule.RequireBlock = *construct.RequireBlock
		}

		for _, field := range construct.Required {
			predicate, err := ParsePredicate(field.Value)
			if err != nil {
				return nil, &ConfigError{
					Path:    path,
					Message: fmt.Sprintf("construct %q, tag %q", kind, field.Tag),
					Cause:   err,
				}
			}

			rule.Required = append(rule.Required, Field{Tag: field.Tag, Predicate: predicate})
		}

		registry.rules[kind] = rule
	}

	for _, name := range doc.FailOn {
		kind, err := m.ParseViolationKind(name)
		if err != nil {
			return nil, &ConfigError{Path: path, Message: "invalid fail_on entry", Cause: err}
		}

		registry.failOn = append(registry.failOn, kind)
	}

	if len(registry.failOn) == 0 {
		registry.failOn = m.ViolationKinds()
	}

	return registry, nil
}

// validateDocument checks the raw table against the embedded JSON Schema
// so shape errors surface as one configuration diagnostic.
func validateDocument(path string, raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(rulesSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return &ConfigError{Path: path, Message: "not a JSON document", Cause: err}
	}

	if !result.Valid() {
		first := result.Errors()[0]

		return &ConfigError{
			Path:    path,
			Message: fmt.Sprintf("%s: %s", first.Field(), first.Description()),
		}
	}

	return nil
}

// RuleFor returns the rule for a construct kind. The second result is
// false when the kind is not in the table, meaning it is never checked.
func (r *Registry) RuleFor(kind m.ConstructKind) (Rule, bool) {
	rule, ok := r.rules[string(kind)]

	return rule, ok
}

// FailOn returns the configured fail-on violation kinds.
func (r *Registry) FailOn() []m.ViolationKind {
	out := make([]m.ViolationKind, len(r.failOn))
	copy(out, r.failOn)

	return out
}

// Kinds returns the construct kinds present in the table, unordered.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.rules))
	for kind := range r.rules {
		kinds = append(kinds, kind)
	}

	return kinds
}
