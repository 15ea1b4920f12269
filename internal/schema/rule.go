package schema

// Field is one required tag with its value-shape test.
type Field struct {
	Tag       string
	Predicate Predicate
}

// Rule is the documentation schema for one construct kind. Rules are
// immutable configuration shared read-only across all validations.
type Rule struct {
	Kind         string
	RequireBlock bool
	Required     []Field
	Optional     []string
}
