// Package model defines the data structures for documentation compliance checking.
package model

// Path represents a file system path.
type Path string

// SourceFile is a read-only snapshot of one scanned file. It is loaded
// once and never mutated for the duration of a run.
type SourceFile struct {
	Path  Path
	Lines []string
}

// Line returns the 1-based line n, or "" when n is out of range.
func (f SourceFile) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}

	return f.Lines[n-1]
}
