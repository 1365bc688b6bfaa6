//go:build cgo

package rustcheck

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// TreeSitter checks Rust syntax with the tree-sitter Rust grammar. A parser
// is created per Check call, so a TreeSitter may be shared but each call
// allocates its own parse tree.
type TreeSitter struct {
	lang *tree_sitter.Language
}

// New returns the tree-sitter checker.
func New() Checker {
	return &TreeSitter{lang: tree_sitter.NewLanguage(tree_sitter_rust.Language())}
}

// Check parses source and returns a *SyntaxError for the first ERROR or
// MISSING node in document order.
func (c *TreeSitter) Check(path string, source []byte) error {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(c.lang); err != nil {
		return fmt.Errorf("set rust language: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return fmt.Errorf("tree-sitter returned nil tree for %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}

	cursor := root.Walk()
	defer cursor.Close()

	if bad := firstError(cursor); bad != nil {
		pos := bad.StartPosition()
		kind := "ERROR"
		if bad.IsMissing() {
			kind = "missing " + bad.Kind()
		}
		return &SyntaxError{Path: path, Line: int(pos.Row) + 1, Column: int(pos.Column) + 1, Kind: kind}
	}
	// HasError was set but no node was flagged; report the root.
	return &SyntaxError{Path: path, Line: 1, Column: 1, Kind: "ERROR"}
}

// firstError walks the subtree under cursor depth-first, descending only into
// nodes that contain an error.
func firstError(cursor *tree_sitter.TreeCursor) *tree_sitter.Node {
	node := cursor.Node()
	if node.IsError() || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}

	if cursor.GotoFirstChild() {
		defer cursor.GotoParent()
		for {
			if bad := firstError(cursor); bad != nil {
				return bad
			}
			if !cursor.GotoNextSibling() {
				break
			}
		}
	}
	return nil
}
