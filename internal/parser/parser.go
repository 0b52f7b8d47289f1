// Package parser implements the recursive-descent parser for Pkl source
// code.
//
// The parser pulls tokens from the lexer through a feed that strips
// semicolons and line/block comments (collecting the comments separately)
// while letting doc comments through. It keeps a single token of lookahead
// plus a single-slot backtrack, which is exactly what the grammar's three
// disambiguation points need: object parameters vs members, an identifier
// member that turns out to be an element expression, and function literals
// vs parenthesized expressions.
//
// All errors are terminal. Productions unwind with a typed panic that
// ParseModule/ParseExpression recover into the returned error, so a failed
// parse yields exactly one error and never a partial tree.
package parser

import (
	"strings"

	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/internal/lexer"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// fullToken is a lexer token plus the feed's bookkeeping: whether a
// semicolon was stripped immediately before it.
type fullToken struct {
	tok                 token.Token
	precededBySemicolon bool
}

// Parser parses one source buffer. A Parser is good for a single parse
// invocation; the resulting tree is owned by the caller and immutable once
// returned.
type Parser struct {
	lx        *lexer.Lexer
	lookahead fullToken
	prev      fullToken  // most recently consumed token
	pending   *fullToken // single-slot backtrack buffer
	comments  []cst.Comment
}

// New creates a Parser over the given source text.
func New(source string) *Parser {
	return NewFromLexer(lexer.New(source))
}

// NewFromLexer creates a Parser pulling from an existing lexer.
func NewFromLexer(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

// Comments returns the comments removed from the token stream, in source
// order. Doc comments appear both here and in the tree.
func (p *Parser) Comments() []cst.Comment {
	return p.comments
}

// ParseModule parses the whole source buffer as a module.
func (p *Parser) ParseModule() (mod *cst.Module, err error) {
	defer p.recoverParse(&err)
	p.lookahead = p.pull()
	mod = p.parseModule()
	return mod, nil
}

// ParseExpression parses the source buffer as a single expression followed
// by end of input.
func (p *Parser) ParseExpression() (e cst.Expr, err error) {
	defer p.recoverParse(&err)
	p.lookahead = p.pull()
	e = p.parseExpr()
	if !p.at(token.EOF) {
		p.errorAt(p.lookahead.tok.Span, "unexpectedToken", "end of file", p.tokenText(p.lookahead.tok))
	}
	return e, nil
}

// recoverParse converts the abort panic into the returned error. Lexer
// errors surface through the same channel, normalized to *ParseError.
func (p *Parser) recoverParse(err *error) {
	switch r := recover().(type) {
	case nil:
	case *ParseError:
		*err = r
	case *lexer.Error:
		*err = &ParseError{Message: r.Message, Span: r.Span}
	default:
		panic(r)
	}
}

// pull fetches the next token from the lexer, stripping semicolons and
// collecting comments. Doc comments are collected and delivered.
func (p *Parser) pull() fullToken {
	semicolon := false
	for {
		t := p.lx.Next()
		switch t.Kind {
		case token.SEMICOLON:
			semicolon = true
		case token.LINE_COMMENT:
			p.comments = append(p.comments, cst.Comment{Kind: cst.CommentLine, Span: t.Span, Text: p.lx.Text(t)})
		case token.BLOCK_COMMENT:
			p.comments = append(p.comments, cst.Comment{Kind: cst.CommentBlock, Span: t.Span, Text: p.lx.Text(t)})
		case token.DOC_COMMENT:
			p.comments = append(p.comments, cst.Comment{Kind: cst.CommentDoc, Span: t.Span, Text: p.lx.Text(t)})
			return fullToken{tok: t, precededBySemicolon: semicolon}
		default:
			return fullToken{tok: t, precededBySemicolon: semicolon}
		}
	}
}

// next consumes and returns the current lookahead.
func (p *Parser) next() fullToken {
	t := p.lookahead
	if p.pending != nil {
		p.lookahead = *p.pending
		p.pending = nil
	} else {
		p.lookahead = p.pull()
	}
	p.prev = t
	return t
}

// backtrack restores the most recently consumed token as the lookahead.
// Only one backtrack may be pending at a time.
func (p *Parser) backtrack() {
	if p.pending != nil {
		panic("parser: backtrack with a backtrack already pending")
	}
	pend := p.lookahead
	p.pending = &pend
	p.lookahead = p.prev
}

// at reports whether the lookahead has the given kind.
func (p *Parser) at(kind token.Kind) bool {
	return p.lookahead.tok.Kind == kind
}

// expect consumes a token of the given kind or aborts the parse.
func (p *Parser) expect(kind token.Kind) fullToken {
	if p.at(kind) {
		return p.next()
	}
	if p.at(token.EOF) {
		p.errorUnexpectedEOF()
	}
	p.errorAt(p.lookahead.tok.Span, "unexpectedToken", kind.String(), p.tokenText(p.lookahead.tok))
	panic("unreachable")
}

// tokenText renders a token for error messages: its source text, or the
// kind name for tokens without one.
func (p *Parser) tokenText(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of file"
	}
	if s := p.lx.Text(t); s != "" {
		return "`" + s + "`"
	}
	return t.Kind.String()
}

// text returns the source text a span covers.
func (p *Parser) text(span token.Span) string {
	return p.lx.TextFor(span.Offset, span.Length)
}

// sameLine reports whether the lookahead may continue the preceding
// expression: neither a stripped semicolon nor a newline intervened.
// This gate guards the newline-sensitive postfix sites: `[`, `.`/`?.`,
// `(` after `.`/`?.`, `(` after an identifier (plain or `super.name`),
// binary `-`, and a constrained type's `(`.
func (p *Parser) sameLine() bool {
	return !p.lookahead.precededBySemicolon && !p.lookahead.tok.NewLineBetween
}

// stripSeparators removes `_` group separators from a numeric lexeme.
func stripSeparators(text string) string {
	if !strings.ContainsRune(text, '_') {
		return text
	}
	return strings.ReplaceAll(text, "_", "")
}
