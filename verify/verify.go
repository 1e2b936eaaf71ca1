// Package verify is a syntax-only sanity check of generated Java. It
// does not resolve types or compile anything.
package verify

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

var ErrSyntax = errors.New("java syntax error")

// SyntaxError is the first malformed spot of a source. Line and Column
// are 1-based.
type SyntaxError struct {
	Line    int
	Column  int
	Missing string // node the parser had to invent, if any
	Snippet string
}

func (e *SyntaxError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("%d:%d: missing %s", e.Line, e.Column, e.Missing)
	}
	return fmt.Sprintf("%d:%d: unexpected %q", e.Line, e.Column, e.Snippet)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// Check parses src and reports the first ERROR or MISSING node.
func Check(ctx context.Context, src []byte) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return errors.Wrap(err, "parse java")
	}

	if bad := firstError(tree.RootNode()); bad != nil {
		return syntaxError(bad, src)
	}
	return nil
}

func firstError(n *sitter.Node) *sitter.Node {
	if n == nil || !(n.HasError() || n.IsMissing()) {
		return nil
	}
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return n
}

func syntaxError(n *sitter.Node, src []byte) *SyntaxError {
	p := n.StartPoint()
	e := &SyntaxError{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
	if n.IsMissing() {
		e.Missing = n.Type()
		return e
	}
	e.Snippet = truncate(n.Content(src), maxSnippet)
	return e
}

const maxSnippet = 40

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
