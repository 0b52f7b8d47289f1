// Package pkl is the embedding facade over the Pkl front-end: it parses
// source text into a concrete syntax tree.
//
// A parse is a pure function from source text to a tree or a single parse
// error. The returned tree is immutable and owned by the caller; parses of
// disjoint sources may run concurrently.
package pkl

import (
	"github.com/cwbudde/go-pkl/internal/parser"
	"github.com/cwbudde/go-pkl/pkg/cst"
)

// ParseModule parses source as a Pkl module. On success it returns the
// module together with the comments removed from the token stream, in
// source order. On failure the error is a *parser.ParseError carrying a
// message and a source span.
func ParseModule(source string) (*cst.Module, []cst.Comment, error) {
	p := parser.New(source)
	mod, err := p.ParseModule()
	if err != nil {
		return nil, nil, err
	}
	return mod, p.Comments(), nil
}

// ParseExpression parses source as a single Pkl expression followed by end
// of input.
func ParseExpression(source string) (cst.Expr, error) {
	p := parser.New(source)
	return p.ParseExpression()
}
