package parser

import (
	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// binaryOperator maps operator token kinds to tree operators. The bool is
// false for kinds that are not binary operators.
func binaryOperator(k token.Kind) (cst.Operator, bool) {
	switch k {
	case token.POW:
		return cst.POW, true
	case token.STAR:
		return cst.MULT, true
	case token.DIV:
		return cst.DIV, true
	case token.INT_DIV:
		return cst.INT_DIV, true
	case token.MOD:
		return cst.MOD, true
	case token.PLUS:
		return cst.PLUS, true
	case token.MINUS:
		return cst.MINUS, true
	case token.LT:
		return cst.LT, true
	case token.LTE:
		return cst.LTE, true
	case token.GT:
		return cst.GT, true
	case token.GTE:
		return cst.GTE, true
	case token.EQUAL:
		return cst.EQ_EQ, true
	case token.NOT_EQUAL:
		return cst.NOT_EQ, true
	case token.AND:
		return cst.AND, true
	case token.OR:
		return cst.OR, true
	case token.PIPE:
		return cst.PIPE, true
	case token.COALESCE:
		return cst.NULL_COALESCE, true
	}
	return 0, false
}

// parseExpr parses an expression: a flat operand/operator sequence handed
// to the operator resolver. `is`/`as` append the parsed type and fold
// higher-precedence operators immediately, and `.`/`?.` are folded into
// the last operand in place, so in `x as List<Int>.distinct` the access
// applies to the cast.
func (p *Parser) parseExpr() cst.Expr {
	exprs := []flat{flatExpr(p.parseExprOperand())}

loop:
	for {
		k := p.lookahead.tok.Kind
		switch k {
		case token.IS, token.AS:
			opTok := p.next()
			op := cst.IS
			if k == token.AS {
				op = cst.AS
			}
			exprs = append(exprs, flatOp(op, opTok.tok.Span))
			exprs = append(exprs, flatType(p.parseType()))
			exprs = p.resolveOperatorsHigherThan(exprs, precedence(op))
		case token.DOT, token.QDOT:
			if !p.sameLine() {
				break loop
			}
			last := &exprs[len(exprs)-1]
			last.expr = p.parseQualifiedAccess(last.expr)
			last.span = last.expr.Span()
		case token.MINUS:
			// a `-` on a new line starts a new expression
			if !p.sameLine() {
				break loop
			}
			opTok := p.next()
			exprs = append(exprs, flatOp(cst.MINUS, opTok.tok.Span))
			exprs = append(exprs, flatExpr(p.parseExprOperand()))
		default:
			op, ok := binaryOperator(k)
			if !ok {
				break loop
			}
			opTok := p.next()
			exprs = append(exprs, flatOp(op, opTok.tok.Span))
			exprs = append(exprs, flatExpr(p.parseExprOperand()))
		}
	}
	return p.resolveOperators(exprs)
}

// parseExprOperand parses an atom and its postfix chain: `!!`, amending
// braces, qualified access, and subscripts. The latter two only apply on
// the same line.
func (p *Parser) parseExprOperand() cst.Expr {
	e := p.parseExprAtom()
	for {
		switch p.lookahead.tok.Kind {
		case token.NON_NULL:
			t := p.next()
			e = cst.Attach(&cst.NonNull{Expr: e}, e.Span().ExtendTo(t.tok.Span))
		case token.LBRACE:
			switch e.(type) {
			case *cst.Parenthesized, *cst.Amends, *cst.New:
				body := p.parseObjectBody()
				e = cst.Attach(&cst.Amends{Expr: e, Body: body}, e.Span().ExtendTo(body.Span()))
			default:
				src := p.text(e.Span())
				p.errorAt(p.lookahead.tok.Span, "unexpectedCurlyProbablyAmendsExpression", src, src)
			}
		case token.DOT, token.QDOT:
			if !p.sameLine() {
				return e
			}
			e = p.parseQualifiedAccess(e)
		case token.LBRACK:
			if !p.sameLine() {
				return e
			}
			p.next()
			idx := p.parseExpr()
			rbrack := p.expect(token.RBRACK)
			e = cst.Attach(&cst.Subscript{Receiver: e, Index: idx}, e.Span().ExtendTo(rbrack.tok.Span))
		default:
			return e
		}
	}
}

// parseQualifiedAccess parses `.name` or `?.name` on a receiver, with an
// argument list iff its paren opens on the same line.
func (p *Parser) parseQualifiedAccess(receiver cst.Expr) cst.Expr {
	opTok := p.next() // DOT or QDOT
	qa := &cst.QualifiedAccess{
		Receiver:   receiver,
		Name:       p.parseIdent(),
		IsNullable: opTok.tok.Kind == token.QDOT,
	}
	if p.at(token.LPAREN) && p.sameLine() {
		qa.Args = p.parseArgumentList()
	}
	return cst.Attach(qa, receiver.Span().ExtendTo(p.prev.tok.Span))
}

// parseExprAtom parses a single atom.
func (p *Parser) parseExprAtom() cst.Expr {
	t := p.lookahead
	switch t.tok.Kind {
	case token.THIS:
		return cst.Attach(&cst.This{}, p.next().tok.Span)
	case token.OUTER:
		return cst.Attach(&cst.Outer{}, p.next().tok.Span)
	case token.MODULE:
		return cst.Attach(&cst.ModuleExpr{}, p.next().tok.Span)
	case token.NULL:
		return cst.Attach(&cst.NullLiteral{}, p.next().tok.Span)
	case token.TRUE:
		return cst.Attach(&cst.BoolLiteral{Value: true}, p.next().tok.Span)
	case token.FALSE:
		return cst.Attach(&cst.BoolLiteral{Value: false}, p.next().tok.Span)
	case token.INT, token.HEX, token.BIN, token.OCT:
		tk := p.next()
		return cst.Attach(&cst.IntLiteral{Text: stripSeparators(p.text(tk.tok.Span))}, tk.tok.Span)
	case token.FLOAT:
		tk := p.next()
		return cst.Attach(&cst.FloatLiteral{Text: stripSeparators(p.text(tk.tok.Span))}, tk.tok.Span)
	case token.THROW:
		kw := p.next()
		p.expect(token.LPAREN)
		e := p.parseExpr()
		rp := p.expect(token.RPAREN)
		return cst.Attach(&cst.Throw{Expr: e}, kw.tok.Span.ExtendTo(rp.tok.Span))
	case token.TRACE:
		kw := p.next()
		p.expect(token.LPAREN)
		e := p.parseExpr()
		rp := p.expect(token.RPAREN)
		return cst.Attach(&cst.Trace{Expr: e}, kw.tok.Span.ExtendTo(rp.tok.Span))
	case token.IMPORT, token.IMPORT_STAR:
		kw := p.next()
		p.expect(token.LPAREN)
		url := p.parseStringConstant()
		rp := p.expect(token.RPAREN)
		return cst.Attach(&cst.ImportExpr{
			URL:    url,
			IsGlob: kw.tok.Kind == token.IMPORT_STAR,
		}, kw.tok.Span.ExtendTo(rp.tok.Span))
	case token.READ, token.READ_STAR, token.READ_QUESTION:
		kw := p.next()
		p.expect(token.LPAREN)
		e := p.parseExpr()
		rp := p.expect(token.RPAREN)
		span := kw.tok.Span.ExtendTo(rp.tok.Span)
		switch kw.tok.Kind {
		case token.READ_STAR:
			return cst.Attach(&cst.ReadGlob{Expr: e}, span)
		case token.READ_QUESTION:
			return cst.Attach(&cst.ReadNull{Expr: e}, span)
		}
		return cst.Attach(&cst.Read{Expr: e}, span)
	case token.NEW:
		kw := p.next()
		n := &cst.New{}
		if !p.at(token.LBRACE) {
			n.Type = p.parseType()
		}
		n.Body = p.parseObjectBody()
		return cst.Attach(n, kw.tok.Span.ExtendTo(n.Body.Span()))
	case token.MINUS:
		kw := p.next()
		e := p.parseExprAtom()
		return cst.Attach(&cst.UnaryMinus{Expr: e}, kw.tok.Span.ExtendTo(e.Span()))
	case token.NOT:
		kw := p.next()
		e := p.parseExprAtom()
		return cst.Attach(&cst.LogicalNot{Expr: e}, kw.tok.Span.ExtendTo(e.Span()))
	case token.LPAREN:
		return p.parseFunctionLiteralOrParenthesized()
	case token.SUPER:
		return p.parseSuperExpr()
	case token.IF:
		kw := p.next()
		p.expect(token.LPAREN)
		cond := p.parseExpr()
		p.expect(token.RPAREN)
		then := p.parseExpr()
		p.expect(token.ELSE)
		els := p.parseExpr()
		return cst.Attach(&cst.If{Cond: cond, Then: then, Else: els}, kw.tok.Span.ExtendTo(els.Span()))
	case token.LET:
		kw := p.next()
		p.expect(token.LPAREN)
		param := p.parseParameter()
		p.expect(token.ASSIGN)
		value := p.parseExpr()
		p.expect(token.RPAREN)
		body := p.parseExpr()
		return cst.Attach(&cst.Let{Param: param, Value: value, Body: body},
			kw.tok.Span.ExtendTo(body.Span()))
	case token.IDENT:
		ident := p.parseIdent()
		ua := &cst.UnqualifiedAccess{Name: ident}
		if p.at(token.LPAREN) && p.sameLine() {
			ua.Args = p.parseArgumentList()
		}
		return cst.Attach(ua, ident.Span().ExtendTo(p.prev.tok.Span))
	case token.STRING_START:
		return p.parseStringExpr(false)
	case token.STRING_MULTI_START:
		return p.parseStringExpr(true)
	case token.EOF:
		p.errorUnexpectedEOF()
	}
	p.errorAt(t.tok.Span, "unexpectedToken", "an expression", p.tokenText(t.tok))
	panic("unreachable")
}

// parseSuperExpr parses `super.name(args)?` or `super[index]`.
func (p *Parser) parseSuperExpr() cst.Expr {
	kw := p.next() // SUPER
	switch p.lookahead.tok.Kind {
	case token.DOT:
		p.next()
		sa := &cst.SuperAccess{Name: p.parseIdent()}
		if p.at(token.LPAREN) && p.sameLine() {
			sa.Args = p.parseArgumentList()
		}
		return cst.Attach(sa, kw.tok.Span.ExtendTo(p.prev.tok.Span))
	case token.LBRACK:
		p.next()
		idx := p.parseExpr()
		rbrack := p.expect(token.RBRACK)
		return cst.Attach(&cst.SuperSubscript{Index: idx}, kw.tok.Span.ExtendTo(rbrack.tok.Span))
	}
	p.errorAt(p.lookahead.tok.Span, "unexpectedTokenMany", "`.` or `[`", p.tokenText(p.lookahead.tok))
	panic("unreachable")
}

// parseFunctionLiteralOrParenthesized disambiguates `(params) -> body`
// from a parenthesized expression. After `(ident`, a `:` or `,` settles on
// parameters, `)` postpones the decision to the token after it, and
// anything else re-parses the identifier as an expression after a
// backtrack.
func (p *Parser) parseFunctionLiteralOrParenthesized() cst.Expr {
	lparen := p.next() // LPAREN
	switch p.lookahead.tok.Kind {
	case token.RPAREN:
		rparen := p.next()
		params := cst.Attach(&cst.ParameterList{}, lparen.tok.Span.ExtendTo(rparen.tok.Span))
		p.expect(token.ARROW)
		body := p.parseExpr()
		return cst.Attach(&cst.FunctionLiteral{Params: params, Body: body},
			lparen.tok.Span.ExtendTo(body.Span()))
	case token.UNDERSCORE:
		return p.parseFunctionLiteralTail(lparen)
	case token.IDENT:
		ident := p.parseIdent()
		switch p.lookahead.tok.Kind {
		case token.COLON, token.COMMA:
			p.backtrack()
			return p.parseFunctionLiteralTail(lparen)
		case token.RPAREN:
			rparen := p.next()
			if p.at(token.ARROW) {
				p.next()
				param := cst.Attach(&cst.TypedIdent{Ident: ident}, ident.Span())
				params := cst.Attach(&cst.ParameterList{Params: []cst.Parameter{param}},
					lparen.tok.Span.ExtendTo(rparen.tok.Span))
				body := p.parseExpr()
				return cst.Attach(&cst.FunctionLiteral{Params: params, Body: body},
					lparen.tok.Span.ExtendTo(body.Span()))
			}
			inner := cst.Attach(&cst.UnqualifiedAccess{Name: ident}, ident.Span())
			return cst.Attach(&cst.Parenthesized{Expr: inner},
				lparen.tok.Span.ExtendTo(rparen.tok.Span))
		default:
			p.backtrack()
		}
	}
	e := p.parseExpr()
	rparen := p.expect(token.RPAREN)
	return cst.Attach(&cst.Parenthesized{Expr: e}, lparen.tok.Span.ExtendTo(rparen.tok.Span))
}

// parseFunctionLiteralTail parses the parameters (already known to be a
// parameter list), the `->`, and the body of a function literal.
func (p *Parser) parseFunctionLiteralTail(lparen fullToken) cst.Expr {
	params := &cst.ParameterList{Params: []cst.Parameter{p.parseParameter()}}
	for p.at(token.COMMA) {
		p.next()
		params.Params = append(params.Params, p.parseParameter())
	}
	rparen := p.expect(token.RPAREN)
	cst.Attach(params, lparen.tok.Span.ExtendTo(rparen.tok.Span))
	p.expect(token.ARROW)
	body := p.parseExpr()
	return cst.Attach(&cst.FunctionLiteral{Params: params, Body: body},
		lparen.tok.Span.ExtendTo(body.Span()))
}
