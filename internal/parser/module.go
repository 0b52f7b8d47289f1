package parser

import (
	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// memberHeader is the doc comment, annotations and modifiers that precede a
// declaration. Headers are parsed before the dispatch on the declaration
// keyword, then handed to whichever production claims them.
type memberHeader struct {
	doc         *cst.DocComment
	annotations []*cst.Annotation
	modifiers   []*cst.Modifier
}

func (h memberHeader) isEmpty() bool {
	return h.doc == nil && len(h.annotations) == 0 && len(h.modifiers) == 0
}

// start returns the span start of the header, or fallback when the header
// is empty.
func (h memberHeader) start(fallback token.Span) token.Span {
	switch {
	case h.doc != nil:
		return h.doc.Span()
	case len(h.annotations) > 0:
		return h.annotations[0].Span()
	case len(h.modifiers) > 0:
		return h.modifiers[0].Span()
	}
	return fallback
}

// parseModule is the top-level production.
//
// Module grammar: optional header, optional `module` clause, optional
// `extends`/`amends` clause, imports, then entries (properties, methods,
// classes, type aliases).
func (p *Parser) parseModule() *cst.Module {
	mod := &cst.Module{}
	if p.at(token.EOF) {
		return cst.Attach(mod, token.Span{})
	}
	first := p.lookahead.tok.Span

	header := p.parseMemberHeader()
	if p.at(token.MODULE) || p.at(token.AMENDS) || p.at(token.EXTENDS) {
		mod.Decl = p.parseModuleDecl(header)
		header = memberHeader{}
	}

	if header.isEmpty() {
		for p.at(token.IMPORT) || p.at(token.IMPORT_STAR) {
			mod.Imports = append(mod.Imports, p.parseImport())
		}
	}

	for {
		if header.isEmpty() {
			header = p.parseMemberHeader()
		}
		if p.at(token.EOF) {
			if !header.isEmpty() {
				p.errorAt(header.start(p.lookahead.tok.Span), "danglingDocComment")
			}
			break
		}
		switch p.lookahead.tok.Kind {
		case token.TYPE_ALIAS:
			mod.TypeAliases = append(mod.TypeAliases, p.parseTypeAlias(header))
		case token.CLASS:
			mod.Classes = append(mod.Classes, p.parseClass(header))
		case token.FUNCTION:
			mod.Methods = append(mod.Methods, p.parseClassMethod(header))
		case token.IDENT:
			mod.Properties = append(mod.Properties, p.parseClassPropertyEntry(header))
		case token.IMPORT, token.IMPORT_STAR:
			p.errorAt(p.lookahead.tok.Span, "importsMustComeFirst")
		default:
			p.errorAt(p.lookahead.tok.Span, "invalidTopLevelToken")
		}
		header = memberHeader{}
	}

	return cst.Attach(mod, first.ExtendTo(p.prev.tok.Span))
}

// parseMemberHeader parses an optional doc comment, annotations and
// modifiers. Consecutive doc-comment lines merge into a single node.
func (p *Parser) parseMemberHeader() memberHeader {
	var h memberHeader
	if p.at(token.DOC_COMMENT) {
		span := p.next().tok.Span
		for p.at(token.DOC_COMMENT) {
			span = span.ExtendTo(p.next().tok.Span)
		}
		h.doc = cst.Attach(&cst.DocComment{}, span)
	}
	for p.at(token.AT) {
		h.annotations = append(h.annotations, p.parseAnnotation())
	}
	for p.lookahead.tok.Kind.IsModifier() {
		t := p.next()
		h.modifiers = append(h.modifiers, cst.Attach(&cst.Modifier{Kind: t.tok.Kind}, t.tok.Span))
	}
	return h
}

// parseModuleDecl parses the `module` clause and/or the extends/amends
// clause, claiming the header.
func (p *Parser) parseModuleDecl(header memberHeader) *cst.ModuleDecl {
	decl := &cst.ModuleDecl{
		Doc:         header.doc,
		Annotations: header.annotations,
		Modifiers:   header.modifiers,
	}
	start := header.start(p.lookahead.tok.Span)
	if p.at(token.MODULE) {
		p.next()
		decl.Name = p.parseQualifiedIdent()
	}
	if p.at(token.EXTENDS) || p.at(token.AMENDS) {
		kw := p.next()
		url := p.parseStringConstant()
		decl.ExtendsOrAmends = cst.Attach(&cst.ExtendsOrAmendsDecl{
			Kind: kw.tok.Kind,
			URL:  url,
		}, kw.tok.Span.ExtendTo(url.Span()))
	}
	if p.at(token.EXTENDS) || p.at(token.AMENDS) {
		p.errorAt(p.lookahead.tok.Span, "extendsOrAmendsTwice")
	}
	return cst.Attach(decl, start.ExtendTo(p.prev.tok.Span))
}

// parseImport parses an import clause. Imports cannot carry headers.
func (p *Parser) parseImport() *cst.Import {
	kw := p.next() // IMPORT or IMPORT_STAR
	imp := &cst.Import{
		URL:    p.parseStringConstant(),
		IsGlob: kw.tok.Kind == token.IMPORT_STAR,
	}
	if p.at(token.AS) {
		p.next()
		imp.Alias = p.parseIdent()
	}
	return cst.Attach(imp, kw.tok.Span.ExtendTo(p.prev.tok.Span))
}

// parseClass parses a class declaration.
func (p *Parser) parseClass(header memberHeader) *cst.Clazz {
	kw := p.next() // CLASS
	c := &cst.Clazz{
		Doc:         header.doc,
		Annotations: header.annotations,
		Modifiers:   header.modifiers,
		Name:        p.parseIdent(),
	}
	if p.at(token.LT) {
		c.TypeParams = p.parseTypeParameterList()
	}
	if p.at(token.EXTENDS) {
		p.next()
		c.SuperClass = p.parseType()
	}
	if p.at(token.LBRACE) {
		c.Body = p.parseClassBody()
	}
	return cst.Attach(c, header.start(kw.tok.Span).ExtendTo(p.prev.tok.Span))
}

// parseClassBody parses the braced member list of a class.
func (p *Parser) parseClassBody() *cst.ClassBody {
	lbrace := p.expect(token.LBRACE)
	body := &cst.ClassBody{}
	for !p.at(token.RBRACE) {
		if p.at(token.EOF) {
			p.errorUnexpectedEOF()
		}
		header := p.parseMemberHeader()
		if p.at(token.FUNCTION) {
			body.Methods = append(body.Methods, p.parseClassMethod(header))
		} else {
			body.Properties = append(body.Properties, p.parseClassPropertyEntry(header))
		}
	}
	rbrace := p.next()
	return cst.Attach(body, lbrace.tok.Span.ExtendTo(rbrace.tok.Span))
}

// parseTypeAlias parses a `typealias Name = Type` declaration.
func (p *Parser) parseTypeAlias(header memberHeader) *cst.TypeAlias {
	kw := p.next() // TYPE_ALIAS
	ta := &cst.TypeAlias{
		Doc:         header.doc,
		Annotations: header.annotations,
		Modifiers:   header.modifiers,
		Name:        p.parseIdent(),
	}
	if p.at(token.LT) {
		ta.TypeParams = p.parseTypeParameterList()
	}
	p.expect(token.ASSIGN)
	ta.Body = p.parseType()
	return cst.Attach(ta, header.start(kw.tok.Span).ExtendTo(p.prev.tok.Span))
}

// parseClassMethod parses a `function` declaration. The body is optional so
// external methods can omit it.
func (p *Parser) parseClassMethod(header memberHeader) *cst.ClassMethod {
	kw := p.next() // FUNCTION
	m := &cst.ClassMethod{
		Doc:         header.doc,
		Annotations: header.annotations,
		Modifiers:   header.modifiers,
		Name:        p.parseIdent(),
	}
	if p.at(token.LT) {
		m.TypeParams = p.parseTypeParameterList()
	}
	m.Params = p.parseParameterList()
	if p.at(token.COLON) {
		m.ReturnType = p.parseTypeAnnotation()
	}
	if p.at(token.ASSIGN) {
		p.next()
		m.Body = p.parseExpr()
	}
	return cst.Attach(m, header.start(kw.tok.Span).ExtendTo(p.prev.tok.Span))
}

// parseClassPropertyEntry parses a property in a module or class body. A
// property has a type annotation, a value, or one or more object bodies;
// none of the three is a parse error, and an annotation together with a
// body is too.
func (p *Parser) parseClassPropertyEntry(header memberHeader) cst.ClassPropertyEntry {
	name := p.parseIdent()
	start := header.start(name.Span())

	switch p.lookahead.tok.Kind {
	case token.COLON:
		ann := p.parseTypeAnnotation()
		if p.at(token.ASSIGN) {
			p.next()
			expr := p.parseExpr()
			return cst.Attach(&cst.ClassPropertyExpr{
				Doc: header.doc, Annotations: header.annotations, Modifiers: header.modifiers,
				Name: name, Type: ann, Expr: expr,
			}, start.ExtendTo(p.prev.tok.Span))
		}
		if p.at(token.LBRACE) {
			p.errorAt(p.lookahead.tok.Span, "typeAnnotationAndBody")
		}
		return cst.Attach(&cst.ClassProperty{
			Doc: header.doc, Annotations: header.annotations, Modifiers: header.modifiers,
			Name: name, Type: ann,
		}, start.ExtendTo(p.prev.tok.Span))
	case token.ASSIGN:
		p.next()
		expr := p.parseExpr()
		return cst.Attach(&cst.ClassPropertyExpr{
			Doc: header.doc, Annotations: header.annotations, Modifiers: header.modifiers,
			Name: name, Expr: expr,
		}, start.ExtendTo(p.prev.tok.Span))
	case token.LBRACE:
		bodies := p.parseObjectBodies()
		return cst.Attach(&cst.ClassPropertyBody{
			Doc: header.doc, Annotations: header.annotations, Modifiers: header.modifiers,
			Name: name, Bodies: bodies,
		}, start.ExtendTo(p.prev.tok.Span))
	}
	p.errorAt(name.Span(), "propertyWithoutTypeOrValue")
	panic("unreachable")
}

// parseObjectBodies parses one or more consecutive object bodies (chained
// amendment).
func (p *Parser) parseObjectBodies() []*cst.ObjectBody {
	bodies := []*cst.ObjectBody{p.parseObjectBody()}
	for p.at(token.LBRACE) {
		bodies = append(bodies, p.parseObjectBody())
	}
	return bodies
}

// parseAnnotation parses an `@Name` annotation with an optional object
// body.
func (p *Parser) parseAnnotation() *cst.Annotation {
	atTok := p.expect(token.AT)
	ann := &cst.Annotation{Name: p.parseQualifiedIdent()}
	if p.at(token.LBRACE) {
		ann.Body = p.parseObjectBody()
	}
	return cst.Attach(ann, atTok.tok.Span.ExtendTo(p.prev.tok.Span))
}

// parseIdent parses an identifier, unquoting backticks.
func (p *Parser) parseIdent() *cst.Ident {
	t := p.expect(token.IDENT)
	name := p.text(t.tok.Span)
	if len(name) >= 2 && name[0] == '`' {
		name = name[1 : len(name)-1]
	}
	return cst.Attach(&cst.Ident{Name: name}, t.tok.Span)
}

// parseQualifiedIdent parses a dot-separated identifier sequence.
func (p *Parser) parseQualifiedIdent() *cst.QualifiedIdent {
	q := &cst.QualifiedIdent{Parts: []*cst.Ident{p.parseIdent()}}
	for p.at(token.DOT) {
		p.next()
		q.Parts = append(q.Parts, p.parseIdent())
	}
	return cst.Attach(q, q.Parts[0].Span().ExtendTo(q.Parts[len(q.Parts)-1].Span()))
}

// parseParameter parses a single parameter: `_` or an identifier with an
// optional type annotation.
func (p *Parser) parseParameter() cst.Parameter {
	if p.at(token.UNDERSCORE) {
		t := p.next()
		return cst.Attach(&cst.Underscore{}, t.tok.Span)
	}
	if !p.at(token.IDENT) {
		if p.at(token.EOF) {
			p.errorUnexpectedEOF()
		}
		p.errorAt(p.lookahead.tok.Span, "notAValidParameter")
	}
	ident := p.parseIdent()
	ti := &cst.TypedIdent{Ident: ident}
	if p.at(token.COLON) {
		ti.Type = p.parseTypeAnnotation()
	}
	return cst.Attach(ti, ident.Span().ExtendTo(p.prev.tok.Span))
}

// parseParameterList parses a parenthesized, comma-separated parameter
// list.
func (p *Parser) parseParameterList() *cst.ParameterList {
	lparen := p.expect(token.LPAREN)
	pl := &cst.ParameterList{}
	if !p.at(token.RPAREN) {
		pl.Params = append(pl.Params, p.parseParameter())
		for p.at(token.COMMA) {
			p.next()
			pl.Params = append(pl.Params, p.parseParameter())
		}
	}
	rparen := p.expect(token.RPAREN)
	return cst.Attach(pl, lparen.tok.Span.ExtendTo(rparen.tok.Span))
}

// parseTypeParameterList parses `<` (in|out)? Name, ... `>`.
func (p *Parser) parseTypeParameterList() *cst.TypeParameterList {
	lt := p.expect(token.LT)
	tpl := &cst.TypeParameterList{}
	for {
		tp := &cst.TypeParameter{Variance: cst.VarianceNone}
		start := p.lookahead.tok.Span
		switch p.lookahead.tok.Kind {
		case token.IN:
			p.next()
			tp.Variance = cst.VarianceIn
		case token.OUT:
			p.next()
			tp.Variance = cst.VarianceOut
		}
		tp.Ident = p.parseIdent()
		tpl.Params = append(tpl.Params, cst.Attach(tp, start.ExtendTo(tp.Ident.Span())))
		if !p.at(token.COMMA) {
			break
		}
		p.next()
	}
	gt := p.expect(token.GT)
	return cst.Attach(tpl, lt.tok.Span.ExtendTo(gt.tok.Span))
}

// parseTypeAnnotation parses a `: Type` annotation.
func (p *Parser) parseTypeAnnotation() *cst.TypeAnnotation {
	colon := p.expect(token.COLON)
	t := p.parseType()
	return cst.Attach(&cst.TypeAnnotation{Type: t}, colon.tok.Span.ExtendTo(t.Span()))
}

// parseArgumentList parses a parenthesized, comma-separated argument list.
func (p *Parser) parseArgumentList() *cst.ArgumentList {
	lparen := p.expect(token.LPAREN)
	al := &cst.ArgumentList{}
	if !p.at(token.RPAREN) {
		al.Args = append(al.Args, p.parseExpr())
		for p.at(token.COMMA) {
			p.next()
			al.Args = append(al.Args, p.parseExpr())
		}
	}
	rparen := p.expect(token.RPAREN)
	return cst.Attach(al, lparen.tok.Span.ExtendTo(rparen.tok.Span))
}
