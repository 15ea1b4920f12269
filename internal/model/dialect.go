package model

import (
	"path/filepath"
	"strings"
)

// Dialect selects the comment syntax and scan patterns for a file.
type Dialect int

const (
	// DialectSource covers JS/TS-family source files (// and /* */).
	DialectSource Dialect = iota
	// DialectEnv covers dotenv-style configuration files (#).
	DialectEnv
)

var sourceExtensions = map[string]struct{}{
	".js":  {},
	".jsx": {},
	".ts":  {},
	".tsx": {},
	".mjs": {},
	".cjs": {},
}

// DialectFor classifies a path. The second result is false for files
// the checker does not understand.
func DialectFor(path Path) (Dialect, bool) {
	base := filepath.Base(string(path))

	if base == ".env" || strings.HasPrefix(base, ".env.") || filepath.Ext(base) == ".env" {
		return DialectEnv, true
	}

	if _, ok := sourceExtensions[filepath.Ext(base)]; ok {
		return DialectSource, true
	}

	return 0, false
}
