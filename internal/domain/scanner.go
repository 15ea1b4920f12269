// Package domain contains the core compliance-checking workflow and logic.
package domain

import (
	"path/filepath"
	"regexp"

	m "github.com/mouse-blink/doclint/internal/model"
)

// Declaration-introducing line patterns, one per construct kind. The
// scanner is conservative: a missed declaration costs a check, a
// spurious one costs an unjustified violation, so every pattern demands
// an explicit marker (export, visibility modifier, known call shape).
var (
	interfacePattern = regexp.MustCompile(`^\s*(?:export\s+)?interface\s+([A-Za-z_$][\w$]*)`)
	functionPattern  = regexp.MustCompile(`^\s*export\s+(?:default\s+)?(?:async\s+)?function\s+([A-Za-z_$][\w$]*)\s*\(`)
	arrowPattern     = regexp.MustCompile(`^\s*export\s+const\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?\(`)
	methodPattern    = regexp.MustCompile(`^\s+(?:public|protected)\s+(?:static\s+)?(?:async\s+)?([A-Za-z_$][\w$]*)\s*\(`)
	routePattern     = regexp.MustCompile(`\b(?:router|app)\.(get|post|put|patch|delete)\s*\(\s*['"` + "`" + `]([^'"` + "`" + `]*)`)
	testPattern      = regexp.MustCompile(`^\s*(?:describe|it|test)(?:\.(?:only|skip|each))?\s*\(\s*['"` + "`" + `]([^'"` + "`" + `]*)`)
	envEntryPattern  = regexp.MustCompile(`^(?:export\s+)?([A-Z][A-Z0-9_]*)\s*=`)
)

// httpVerbs maps route method names to their uppercase spelling.
var httpVerbs = map[string]string{
	"get":    "GET",
	"post":   "POST",
	"put":    "PUT",
	"patch":  "PATCH",
	"delete": "DELETE",
}

// Scanner finds documentation-bearing declarations in a source file.
type Scanner struct{}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the ordered declarations found in the file. Unrecognized
// constructs are skipped, never errored. Scan never mutates the file.
func (s *Scanner) Scan(file m.SourceFile) []m.Declaration {
	dialect, ok := m.DialectFor(file.Path)
	if !ok {
		return nil
	}

	if dialect == m.DialectEnv {
		return s.scanEnv(file)
	}

	return s.scanSource(file)
}

func (s *Scanner) scanSource(file m.SourceFile) []m.Declaration {
	decls := []m.Declaration{{
		Kind: m.KindFile,
		Name: filepath.Base(string(file.Path)),
		File: file.Path,
		Line: 1,
	}}

	for i, line := range file.Lines {
		// A declaration quoted inside a comment is documentation, not
		// code; matching it would raise unjustified violations.
		if _, isComment := commentContent(line, m.DialectSource); isComment {
			continue
		}

		decl, ok := matchSourceLine(line)
		if !ok {
			continue
		}

		decl.File = file.Path
		decl.Line = i + 1
		decls = append(decls, decl)
	}

	return decls
}

// matchSourceLine recognizes at most one declaration per line. Test and
// route call sites are checked before plain declarations so a route
// handler passed inline is not double-counted as a function.
func matchSourceLine(line string) (m.Declaration, bool) {
	if match := testPattern.FindStringSubmatch(line); match != nil {
		return m.Declaration{Kind: m.KindTest, Name: match[1]}, true
	}

	if match := routePattern.FindStringSubmatch(line); match != nil {
		return m.Declaration{Kind: m.KindAPIRoute, Name: httpVerbs[match[1]] + " " + match[2]}, true
	}

	if match := interfacePattern.FindStringSubmatch(line); match != nil {
		return m.Declaration{Kind: m.KindInterface, Name: match[1]}, true
	}

	if match := functionPattern.FindStringSubmatch(line); match != nil {
		return m.Declaration{Kind: m.KindFunction, Name: match[1]}, true
	}

	if match := arrowPattern.FindStringSubmatch(line); match != nil {
		return m.Declaration{Kind: m.KindFunction, Name: match[1]}, true
	}

	if match := methodPattern.FindStringSubmatch(line); match != nil {
		return m.Declaration{Kind: m.KindMethod, Name: match[1]}, true
	}

	return m.Declaration{}, false
}

func (s *Scanner) scanEnv(file m.SourceFile) []m.Declaration {
	var decls []m.Declaration

	for i, line := range file.Lines {
		match := envEntryPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		decls = append(decls, m.Declaration{
			Kind: m.KindEnvConfig,
			Name: match[1],
			File: file.Path,
			Line: i + 1,
		})
	}

	return decls
}
