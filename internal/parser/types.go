package parser

import (
	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// parseType parses a full type, including left-associative unions. A `*`
// prefix marks a union alternative as the default.
func (p *Parser) parseType() cst.Type {
	t := p.parseUnionAlternative()
	for p.at(token.UNION) {
		p.next()
		right := p.parseUnionAlternative()
		t = cst.Attach(&cst.UnionType{Left: t, Right: right},
			t.Span().ExtendTo(right.Span()))
	}
	return t
}

// parseUnionAlternative parses one union alternative. The alternative
// itself is not greedy about further `|`; the union loop in parseType owns
// those.
func (p *Parser) parseUnionAlternative() cst.Type {
	if p.at(token.STAR) {
		star := p.next()
		inner := p.parseTypeNoUnion()
		return cst.Attach(&cst.DefaultUnionType{Type: inner},
			star.tok.Span.ExtendTo(inner.Span()))
	}
	return p.parseTypeNoUnion()
}

// parseTypeNoUnion parses a type atom and its `?` and constraint
// postfixes.
func (p *Parser) parseTypeNoUnion() cst.Type {
	t := p.parseTypeAtom()
	for {
		switch p.lookahead.tok.Kind {
		case token.QUESTION:
			q := p.next()
			t = cst.Attach(&cst.NullableType{Type: t}, t.Span().ExtendTo(q.tok.Span))
		case token.LPAREN:
			// constraints only apply on the same line as the base type
			if !p.sameLine() {
				return t
			}
			p.next()
			ct := &cst.ConstrainedType{Type: t, Exprs: []cst.Expr{p.parseExpr()}}
			for p.at(token.COMMA) {
				p.next()
				ct.Exprs = append(ct.Exprs, p.parseExpr())
			}
			rparen := p.expect(token.RPAREN)
			t = cst.Attach(ct, t.Span().ExtendTo(rparen.tok.Span))
		default:
			return t
		}
	}
}

// parseTypeAtom parses a type without postfixes.
func (p *Parser) parseTypeAtom() cst.Type {
	switch p.lookahead.tok.Kind {
	case token.UNKNOWN:
		return cst.Attach(&cst.UnknownType{}, p.next().tok.Span)
	case token.NOTHING:
		return cst.Attach(&cst.NothingType{}, p.next().tok.Span)
	case token.MODULE:
		return cst.Attach(&cst.ModuleType{}, p.next().tok.Span)
	case token.STRING_START:
		str := p.parseStringConstant()
		return cst.Attach(&cst.StringConstantType{Str: str}, str.Span())
	case token.LPAREN:
		return p.parseFunctionOrParenthesizedType()
	case token.IDENT:
		return p.parseDeclaredType()
	case token.EOF:
		p.errorUnexpectedEOF()
	}
	p.errorAt(p.lookahead.tok.Span, "unexpectedToken", "a type", p.tokenText(p.lookahead.tok))
	panic("unreachable")
}

// parseDeclaredType parses a (possibly module-qualified) type name with
// optional type arguments.
func (p *Parser) parseDeclaredType() cst.Type {
	name := p.parseQualifiedIdent()
	dt := &cst.DeclaredType{Name: name}
	if p.at(token.LT) {
		p.next()
		dt.Args = append(dt.Args, p.parseType())
		for p.at(token.COMMA) {
			p.next()
			dt.Args = append(dt.Args, p.parseType())
		}
		gt := p.expect(token.GT)
		return cst.Attach(dt, name.Span().ExtendTo(gt.tok.Span))
	}
	return cst.Attach(dt, name.Span())
}

// parseFunctionOrParenthesizedType disambiguates `(T) -> R` (also the
// nullary `() -> R` and the n-ary forms) from a parenthesized type. A
// multi-element parenthesis must be a function type.
func (p *Parser) parseFunctionOrParenthesizedType() cst.Type {
	lparen := p.next() // LPAREN
	var elems []cst.Type
	if !p.at(token.RPAREN) {
		elems = append(elems, p.parseType())
		for p.at(token.COMMA) {
			p.next()
			elems = append(elems, p.parseType())
		}
	}
	rparen := p.expect(token.RPAREN)

	if p.at(token.ARROW) {
		p.next()
		ret := p.parseTypeNoUnion()
		return cst.Attach(&cst.FunctionType{Args: elems, Ret: ret},
			lparen.tok.Span.ExtendTo(ret.Span()))
	}
	if len(elems) != 1 {
		p.errorAt(lparen.tok.Span.ExtendTo(rparen.tok.Span), "unexpectedToken",
			"`->`", p.tokenText(p.lookahead.tok))
	}
	return cst.Attach(&cst.ParenthesizedType{Type: elems[0]},
		lparen.tok.Span.ExtendTo(rparen.tok.Span))
}
