package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/doclint/internal/model"
)

// Tag-line shapes recognized inside a comment block: structured-doc
// tags (`@param value`) and inline section labels (`SECURITY: value`,
// `BUSINESS RULE: value`). Labels are case-sensitive and all-caps.
var (
	atTagPattern = regexp.MustCompile(`^@([A-Za-z][\w-]*)\s*(.*)$`)
	labelPattern = regexp.MustCompile(`^([A-Z][A-Z0-9_-]*(?:[ _][A-Z][A-Z0-9_-]*)*):\s*(.*)$`)
)

// Associator locates the comment block directly above a declaration and
// parses it into a structured comment. It is a single generic algorithm
// over line adjacency, independent of the construct kind.
type Associator struct{}

// NewAssociator creates an Associator.
func NewAssociator() *Associator {
	return &Associator{}
}

// Associate collects the contiguous comment lines immediately above the
// declaration. A single blank line, or any code line, breaks the
// association. The second result is false when no block exists.
func (a *Associator) Associate(file m.SourceFile, decl m.Declaration) (m.CommentBlock, bool) {
	dialect, _ := m.DialectFor(file.Path)

	// The file construct is declared at line 1; its block is the header
	// comment at the very top of the file.
	if decl.Kind == m.KindFile {
		return collectHeader(file, dialect)
	}

	var collected []string

	line := decl.Line - 1
	for line >= 1 {
		content, ok := commentContent(file.Line(line), dialect)
		if !ok {
			break
		}

		collected = append(collected, content)
		line--
	}

	if len(collected) == 0 {
		return m.CommentBlock{}, false
	}

	// collected was gathered bottom-up; restore source order.
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}

	return m.CommentBlock{StartLine: line + 1, Lines: collected}, true
}

func collectHeader(file m.SourceFile, dialect m.Dialect) (m.CommentBlock, bool) {
	var collected []string

	line := 1
	for line <= len(file.Lines) {
		content, ok := commentContent(file.Line(line), dialect)
		if !ok {
			break
		}

		collected = append(collected, content)
		line++
	}

	if len(collected) == 0 {
		return m.CommentBlock{}, false
	}

	return m.CommentBlock{StartLine: 1, Lines: collected}, true
}

// commentContent reports whether the line is a comment line in the
// file's dialect and returns its content with markers stripped.
func commentContent(line string, dialect m.Dialect) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	if dialect == m.DialectEnv {
		if !strings.HasPrefix(trimmed, "#") {
			return "", false
		}

		return strings.TrimSpace(strings.TrimLeft(trimmed, "#")), true
	}

	switch {
	case strings.HasPrefix(trimmed, "//"):
		return strings.TrimSpace(strings.TrimLeft(trimmed, "/")), true

	case strings.HasPrefix(trimmed, "/*"):
		content := strings.TrimPrefix(trimmed, "/*")
		content = strings.TrimPrefix(content, "*")
		content = strings.TrimSuffix(content, "*/")

		return strings.TrimSpace(content), true

	case strings.HasPrefix(trimmed, "*"):
		content := strings.TrimSuffix(trimmed, "*/")
		content = strings.TrimPrefix(content, "*")

		return strings.TrimSpace(content), true
	}

	return "", false
}

// ParseComment turns raw block lines into the structured form: tagged
// fields plus free-text description. A block with no tags is valid and
// yields an empty tag mapping. Parsing never fails.
func ParseComment(block m.CommentBlock) *m.StructuredComment {
	parsed := m.NewStructuredComment()

	var (
		description []string
		current     string
	)

	for _, line := range block.Lines {
		if match := atTagPattern.FindStringSubmatch(line); match != nil {
			current = "@" + match[1]
			parsed.AddTag(current, match[2])

			continue
		}

		if match := labelPattern.FindStringSubmatch(line); match != nil {
			current = match[1]
			parsed.AddTag(current, match[2])

			continue
		}

		if current != "" {
			// Continuation of the open tag's value.
			parsed.AppendToTag(current, line)

			continue
		}

		description = append(description, line)
	}

	parsed.Description = strings.TrimSpace(strings.Join(description, "\n"))

	return parsed
}
