package parser

import (
	"fmt"

	"github.com/cwbudde/go-pkl/internal/msg"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// ParseError is a syntax error. The first error aborts the parse; callers
// receive exactly one error per failed parse and never a partial tree.
type ParseError struct {
	Message string
	Span    token.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at offset %d)", e.Message, e.Span.Offset)
}

// errorAt aborts the parse with a message from the catalog, unwinding to
// the ParseModule/ParseExpression boundary.
func (p *Parser) errorAt(span token.Span, id string, args ...any) {
	panic(&ParseError{Message: msg.Format(id, args...), Span: span})
}

// errorUnexpectedEOF aborts the parse pointing one past the last valid
// offset.
func (p *Parser) errorUnexpectedEOF() {
	p.errorAt(token.Span{Offset: len(p.lx.Source()), Length: 0}, "unexpectedEndOfFile")
}
