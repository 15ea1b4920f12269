package model

import "strings"

// CommentBlock holds the raw comment lines found directly above a
// declaration, already stripped of comment markers. StartLine is the
// line of the first collected comment.
type CommentBlock struct {
	StartLine int
	Lines     []string
}

// StructuredComment is the parsed form of a CommentBlock: tagged fields
// plus the free-text remainder found before the first tag. Both tagging
// conventions (`@tag` and `UPPERCASE:` labels) share one namespace.
type StructuredComment struct {
	Description string
	tags        map[string][]string
	order       []string
}

// NewStructuredComment builds an empty structured comment.
func NewStructuredComment() *StructuredComment {
	return &StructuredComment{tags: make(map[string][]string)}
}

// AddTag records a value for the named tag. Repeated tags accumulate
// values in the order they appear.
func (c *StructuredComment) AddTag(name, value string) {
	if _, ok := c.tags[name]; !ok {
		c.order = append(c.order, name)
	}

	c.tags[name] = append(c.tags[name], value)
}

// AppendToTag extends the last value of the named tag with a
// continuation line. No-op when the tag has no values yet.
func (c *StructuredComment) AppendToTag(name, line string) {
	values := c.tags[name]
	if len(values) == 0 {
		return
	}

	values[len(values)-1] = strings.TrimRight(values[len(values)-1]+"\n"+line, " \t")
	c.tags[name] = values
}

// Tag returns all values recorded for the named tag.
func (c *StructuredComment) Tag(name string) []string {
	return c.tags[name]
}

// HasTag reports whether the named tag appears at all.
func (c *StructuredComment) HasTag(name string) bool {
	_, ok := c.tags[name]

	return ok
}

// TagNames returns tag names in first-appearance order.
func (c *StructuredComment) TagNames() []string {
	return c.order
}
