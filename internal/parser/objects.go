package parser

import (
	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// parseObjectBody parses a braced object body: an optional parameter list
// terminated by `->`, then members up to the closing brace.
func (p *Parser) parseObjectBody() *cst.ObjectBody {
	lbrace := p.expect(token.LBRACE)
	body := &cst.ObjectBody{}
	p.parseObjectBodyStart(body)
	for !p.at(token.RBRACE) {
		if p.at(token.EOF) {
			p.errorUnexpectedEOF()
		}
		body.Members = append(body.Members, p.parseObjectMember())
	}
	rbrace := p.next()
	return cst.Attach(body, lbrace.tok.Span.ExtendTo(rbrace.tok.Span))
}

// parseObjectBodyStart disambiguates a leading parameter list from the
// first member. The decision key, after an identifier, is the token that
// follows: `->` means a single untyped parameter, `,` means a parameter
// list (re-parsed after a backtrack), `:` postpones the decision until
// after the annotation, and anything else is the first member (also after
// a backtrack).
func (p *Parser) parseObjectBodyStart(body *cst.ObjectBody) {
	switch p.lookahead.tok.Kind {
	case token.UNDERSCORE:
		body.Parameters = p.parseObjectParameters()
	case token.IDENT:
		ident := p.parseIdent()
		switch p.lookahead.tok.Kind {
		case token.ARROW:
			p.next()
			param := cst.Attach(&cst.TypedIdent{Ident: ident}, ident.Span())
			body.Parameters = []cst.Parameter{param}
		case token.COMMA:
			p.backtrack()
			body.Parameters = p.parseObjectParameters()
		case token.COLON:
			ann := p.parseTypeAnnotation()
			switch p.lookahead.tok.Kind {
			case token.COMMA:
				p.next()
				first := cst.Attach(&cst.TypedIdent{Ident: ident, Type: ann},
					ident.Span().ExtendTo(ann.Span()))
				rest := p.parseObjectParameters()
				body.Parameters = append([]cst.Parameter{first}, rest...)
			case token.ARROW:
				p.next()
				param := cst.Attach(&cst.TypedIdent{Ident: ident, Type: ann},
					ident.Span().ExtendTo(ann.Span()))
				body.Parameters = []cst.Parameter{param}
			case token.ASSIGN:
				p.next()
				expr := p.parseExpr()
				member := cst.Attach(&cst.ObjectProperty{
					Name: ident, Type: ann, Expr: expr,
				}, ident.Span().ExtendTo(expr.Span()))
				body.Members = append(body.Members, member)
			default:
				p.errorAt(p.lookahead.tok.Span, "unexpectedTokenMany",
					"`,`, `->` or `=`", p.tokenText(p.lookahead.tok))
			}
		default:
			p.backtrack()
		}
	}
}

// parseObjectParameters parses comma-separated parameters up to and
// including the `->`.
func (p *Parser) parseObjectParameters() []cst.Parameter {
	params := []cst.Parameter{p.parseParameter()}
	for p.at(token.COMMA) {
		p.next()
		params = append(params, p.parseParameter())
	}
	p.expect(token.ARROW)
	return params
}

// parseObjectMember parses one member of an object body.
func (p *Parser) parseObjectMember() cst.ObjectMember {
	switch p.lookahead.tok.Kind {
	case token.LPRED:
		return p.parseMemberPredicate()
	case token.LBRACK:
		return p.parseObjectEntry()
	case token.SPREAD, token.QSPREAD:
		return p.parseObjectSpread()
	case token.WHEN:
		return p.parseWhenGenerator()
	case token.FOR:
		return p.parseForGenerator()
	}

	var modifiers []*cst.Modifier
	for p.lookahead.tok.Kind.IsModifier() {
		t := p.next()
		modifiers = append(modifiers, cst.Attach(&cst.Modifier{Kind: t.tok.Kind}, t.tok.Span))
	}

	if p.at(token.FUNCTION) {
		return p.parseObjectMethod(modifiers)
	}

	if len(modifiers) == 0 && p.at(token.IDENT) {
		// A bare identifier opens either a property or an element
		// expression; the next token decides, after a backtrack in the
		// element case.
		ident := p.parseIdent()
		switch p.lookahead.tok.Kind {
		case token.ASSIGN, token.COLON, token.LBRACE:
			return p.parseObjectProperty(nil, ident)
		}
		p.backtrack()
		expr := p.parseExpr()
		return cst.Attach(&cst.ObjectElement{Expr: expr}, expr.Span())
	}

	if len(modifiers) > 0 {
		return p.parseObjectProperty(modifiers, p.parseIdent())
	}

	expr := p.parseExpr()
	return cst.Attach(&cst.ObjectElement{Expr: expr}, expr.Span())
}

// parseObjectProperty parses the tail of a property member whose name is
// already consumed.
func (p *Parser) parseObjectProperty(modifiers []*cst.Modifier, name *cst.Ident) cst.ObjectMember {
	start := name.Span()
	if len(modifiers) > 0 {
		start = modifiers[0].Span()
	}
	switch p.lookahead.tok.Kind {
	case token.COLON:
		ann := p.parseTypeAnnotation()
		p.expect(token.ASSIGN)
		expr := p.parseExpr()
		return cst.Attach(&cst.ObjectProperty{
			Modifiers: modifiers, Name: name, Type: ann, Expr: expr,
		}, start.ExtendTo(expr.Span()))
	case token.ASSIGN:
		p.next()
		expr := p.parseExpr()
		return cst.Attach(&cst.ObjectProperty{
			Modifiers: modifiers, Name: name, Expr: expr,
		}, start.ExtendTo(expr.Span()))
	case token.LBRACE:
		bodies := p.parseObjectBodies()
		return cst.Attach(&cst.ObjectBodyProperty{
			Modifiers: modifiers, Name: name, Bodies: bodies,
		}, start.ExtendTo(p.prev.tok.Span))
	}
	p.errorAt(name.Span(), "propertyWithoutTypeOrValue")
	panic("unreachable")
}

// parseObjectMethod parses a `function` member.
func (p *Parser) parseObjectMethod(modifiers []*cst.Modifier) cst.ObjectMember {
	kw := p.next() // FUNCTION
	start := kw.tok.Span
	if len(modifiers) > 0 {
		start = modifiers[0].Span()
	}
	m := &cst.ObjectMethod{
		Modifiers: modifiers,
		Name:      p.parseIdent(),
	}
	if p.at(token.LT) {
		m.TypeParams = p.parseTypeParameterList()
	}
	m.Params = p.parseParameterList()
	if p.at(token.COLON) {
		m.ReturnType = p.parseTypeAnnotation()
	}
	p.expect(token.ASSIGN)
	m.Body = p.parseExpr()
	return cst.Attach(m, start.ExtendTo(m.Body.Span()))
}

// parseMemberPredicate parses a `[[pred]]` member. The two closing
// brackets must be adjacent; a gap between them is a delimiter error.
func (p *Parser) parseMemberPredicate() cst.ObjectMember {
	lpred := p.next() // LPRED
	pred := p.parseExpr()
	r1 := p.expect(token.RBRACK)
	if !p.at(token.RBRACK) || r1.tok.Span.End() != p.lookahead.tok.Span.Offset {
		p.errorAt(p.lookahead.tok.Span, "wrongDelimiter", "]]", p.tokenText(p.lookahead.tok))
	}
	p.next()

	if p.at(token.ASSIGN) {
		p.next()
		expr := p.parseExpr()
		return cst.Attach(&cst.MemberPredicate{Pred: pred, Expr: expr},
			lpred.tok.Span.ExtendTo(expr.Span()))
	}
	if p.at(token.LBRACE) {
		bodies := p.parseObjectBodies()
		return cst.Attach(&cst.MemberPredicateBody{Pred: pred, Bodies: bodies},
			lpred.tok.Span.ExtendTo(p.prev.tok.Span))
	}
	p.errorAt(p.lookahead.tok.Span, "unexpectedTokenMany", "`=` or `{`", p.tokenText(p.lookahead.tok))
	panic("unreachable")
}

// parseObjectEntry parses a `[key]` member.
func (p *Parser) parseObjectEntry() cst.ObjectMember {
	lbrack := p.next() // LBRACK
	key := p.parseExpr()
	p.expect(token.RBRACK)

	if p.at(token.ASSIGN) {
		p.next()
		value := p.parseExpr()
		return cst.Attach(&cst.ObjectEntry{Key: key, Value: value},
			lbrack.tok.Span.ExtendTo(value.Span()))
	}
	if p.at(token.LBRACE) {
		bodies := p.parseObjectBodies()
		return cst.Attach(&cst.ObjectEntryBody{Key: key, Bodies: bodies},
			lbrack.tok.Span.ExtendTo(p.prev.tok.Span))
	}
	p.errorAt(p.lookahead.tok.Span, "unexpectedTokenMany", "`=` or `{`", p.tokenText(p.lookahead.tok))
	panic("unreachable")
}

// parseObjectSpread parses a `...expr` or `...?expr` member.
func (p *Parser) parseObjectSpread() cst.ObjectMember {
	tok := p.next() // SPREAD or QSPREAD
	expr := p.parseExpr()
	return cst.Attach(&cst.ObjectSpread{
		Expr:       expr,
		IsNullable: tok.tok.Kind == token.QSPREAD,
	}, tok.tok.Span.ExtendTo(expr.Span()))
}

// parseWhenGenerator parses `when (cond) body (else body)?`.
func (p *Parser) parseWhenGenerator() cst.ObjectMember {
	kw := p.next() // WHEN
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	gen := &cst.WhenGenerator{Cond: cond, Then: p.parseObjectBody()}
	if p.at(token.ELSE) {
		p.next()
		gen.Else = p.parseObjectBody()
	}
	return cst.Attach(gen, kw.tok.Span.ExtendTo(p.prev.tok.Span))
}

// parseForGenerator parses `for (p1 (, p2)? in expr) body`.
func (p *Parser) parseForGenerator() cst.ObjectMember {
	kw := p.next() // FOR
	p.expect(token.LPAREN)
	gen := &cst.ForGenerator{P1: p.parseParameter()}
	if p.at(token.COMMA) {
		p.next()
		gen.P2 = p.parseParameter()
	}
	p.expect(token.IN)
	gen.Iterable = p.parseExpr()
	p.expect(token.RPAREN)
	gen.Body = p.parseObjectBody()
	return cst.Attach(gen, kw.tok.Span.ExtendTo(gen.Body.Span()))
}
