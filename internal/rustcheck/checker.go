// Package rustcheck syntax-checks Rust sources before they are written into a
// scaffolded workspace.
package rustcheck

import "fmt"

// Checker reports whether source parses as Rust.
type Checker interface {
	Check(path string, source []byte) error
}

// SyntaxError locates the first parse error in a Rust source file.
type SyntaxError struct {
	Path   string
	Line   int
	Column int
	Kind   string // "ERROR" or the kind of a missing node
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: rust syntax error near %s", e.Path, e.Line, e.Column, e.Kind)
}

// Nop accepts every source. It stands in when tree-sitter is unavailable.
type Nop struct{}

func (Nop) Check(string, []byte) error { return nil }
