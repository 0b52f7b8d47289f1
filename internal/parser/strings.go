package parser

import (
	"strings"

	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// parseStringExpr parses a string literal from its start token onward. A
// string with no interpolation yields a StringConstant holding its single
// constant run; otherwise the parts are the constant runs and
// interpolated expressions in source order (adjacent interpolations give
// adjacent expression parts).
func (p *Parser) parseStringExpr(multiline bool) cst.Expr {
	startTok := p.next() // STRING_START or STRING_MULTI_START

	var parts []cst.Expr
	var run []cst.StringConstantPart
	var runSpan token.Span

	appendRun := func(part cst.StringConstantPart, span token.Span) {
		cst.Attach(part, span)
		if len(run) == 0 {
			runSpan = span
		} else {
			runSpan = runSpan.ExtendTo(span)
		}
		run = append(run, part)
	}
	flush := func() {
		if len(run) > 0 {
			parts = append(parts, cst.Attach(&cst.StringConstant{Parts: run}, runSpan))
			run = nil
		}
	}

	for {
		t := p.lookahead.tok
		switch t.Kind {
		case token.STRING_PART:
			p.next()
			appendRun(&cst.StringChars{Text: p.text(t.Span)}, t.Span)
		case token.STRING_NEWLINE:
			p.next()
			appendRun(&cst.StringNewline{}, t.Span)
		case token.STRING_ESCAPE_NEWLINE:
			p.next()
			appendRun(&cst.StringEscape{Kind: cst.EscapeNewline}, t.Span)
		case token.STRING_ESCAPE_TAB:
			p.next()
			appendRun(&cst.StringEscape{Kind: cst.EscapeTab}, t.Span)
		case token.STRING_ESCAPE_RETURN:
			p.next()
			appendRun(&cst.StringEscape{Kind: cst.EscapeReturn}, t.Span)
		case token.STRING_ESCAPE_QUOTE:
			p.next()
			appendRun(&cst.StringEscape{Kind: cst.EscapeQuote}, t.Span)
		case token.STRING_ESCAPE_BACKSLASH:
			p.next()
			appendRun(&cst.StringEscape{Kind: cst.EscapeBackslash}, t.Span)
		case token.STRING_ESCAPE_UNICODE:
			p.next()
			appendRun(&cst.StringUnicodeEscape{Digits: unicodeDigits(p.text(t.Span))}, t.Span)
		case token.INTERPOLATION_START:
			flush()
			p.next()
			parts = append(parts, p.parseExpr())
			p.expect(token.RPAREN)
		case token.STRING_END:
			endTok := p.next()
			full := startTok.tok.Span.ExtendTo(endTok.tok.Span)
			if len(parts) == 0 {
				return cst.Attach(&cst.StringConstant{Parts: run}, full)
			}
			flush()
			if multiline {
				return cst.Attach(&cst.InterpolatedMultiString{Parts: parts}, full)
			}
			return cst.Attach(&cst.InterpolatedString{Parts: parts}, full)
		default:
			p.errorUnexpectedEOF()
		}
	}
}

// parseStringConstant parses a single-line string that must contain no
// interpolation, as required for module URLs and string-literal types.
func (p *Parser) parseStringConstant() *cst.StringConstant {
	if !p.at(token.STRING_START) {
		if p.at(token.EOF) {
			p.errorUnexpectedEOF()
		}
		p.errorAt(p.lookahead.tok.Span, "unexpectedToken", "a string constant",
			p.tokenText(p.lookahead.tok))
	}
	e := p.parseStringExpr(false)
	sc, ok := e.(*cst.StringConstant)
	if !ok {
		p.errorAt(e.Span(), "notAConstantString")
	}
	return sc
}

// unicodeDigits extracts the hex digits from a `\u{...}` lexeme, pounds
// included or not.
func unicodeDigits(text string) string {
	open := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if open == -1 || end <= open {
		return ""
	}
	return text[open+1 : end]
}
