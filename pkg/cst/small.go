package cst

import "github.com/cwbudde/go-pkl/pkg/token"

// Ident is an identifier. Name excludes the backticks of a quoted
// identifier; the span covers them.
type Ident struct {
	base
	Name string
}

// QualifiedIdent is a dot-separated identifier sequence.
type QualifiedIdent struct {
	base
	Parts []*Ident
}

// Text joins the identifier parts with dots.
func (q *QualifiedIdent) Text() string {
	s := ""
	for i, p := range q.Parts {
		if i > 0 {
			s += "."
		}
		s += p.Name
	}
	return s
}

// Parameter is a parameter of a function literal, method, object body, let
// binding, or for generator.
type Parameter interface {
	Node
	parameterNode()
}

// Underscore is the `_` wildcard parameter.
type Underscore struct {
	base
}

// TypedIdent is a named parameter with an optional type annotation.
type TypedIdent struct {
	base
	Ident *Ident
	Type  *TypeAnnotation
}

func (*Underscore) parameterNode() {}
func (*TypedIdent) parameterNode() {}

// ParameterList is a parenthesized, comma-separated parameter list.
type ParameterList struct {
	base
	Params []Parameter
}

// TypeParameter is a type parameter with an optional variance keyword.
type TypeParameter struct {
	base
	Variance Variance
	Ident    *Ident
}

// TypeParameterList is an angle-bracketed type parameter list.
type TypeParameterList struct {
	base
	Params []*TypeParameter
}

// TypeAnnotation is a `: Type` annotation.
type TypeAnnotation struct {
	base
	Type Type
}

// Annotation is an `@Name { ... }` annotation with an optional body.
type Annotation struct {
	base
	Name *QualifiedIdent
	Body *ObjectBody
}

// ArgumentList is a parenthesized, comma-separated argument list.
type ArgumentList struct {
	base
	Args []Expr
}

// DocComment marks the span of a run of `///` lines. The text is
// recoverable from the source through the span.
type DocComment struct {
	base
}

// Modifier is a member modifier keyword. Kind is one of token.EXTERNAL,
// token.ABSTRACT, token.OPEN, token.LOCAL, token.HIDDEN, token.FIXED,
// token.CONST.
type Modifier struct {
	base
	Kind token.Kind
}

// StringConstantPart is a constant piece of a string literal.
type StringConstantPart interface {
	Node
	stringConstantPart()
}

// StringChars is a raw character run, verbatim from the source.
type StringChars struct {
	base
	Text string
}

// StringNewline is a line break inside a multi-line string.
type StringNewline struct {
	base
}

// EscapeKind identifies a character escape sequence.
type EscapeKind int

const (
	EscapeNewline EscapeKind = iota // \n
	EscapeTab                       // \t
	EscapeReturn                    // \r
	EscapeQuote                     // \"
	EscapeBackslash                 // \\
)

// Rune returns the character the escape denotes.
func (k EscapeKind) Rune() rune {
	switch k {
	case EscapeNewline:
		return '\n'
	case EscapeTab:
		return '\t'
	case EscapeReturn:
		return '\r'
	case EscapeQuote:
		return '"'
	case EscapeBackslash:
		return '\\'
	}
	return 0
}

func (k EscapeKind) String() string {
	switch k {
	case EscapeNewline:
		return `\n`
	case EscapeTab:
		return `\t`
	case EscapeReturn:
		return `\r`
	case EscapeQuote:
		return `\"`
	case EscapeBackslash:
		return `\\`
	}
	return `\?`
}

// StringEscape is a single-character escape marker, kept opaque by the
// parser.
type StringEscape struct {
	base
	Kind EscapeKind
}

// StringUnicodeEscape is a `\u{...}` escape. Digits holds the hex digits
// between the braces.
type StringUnicodeEscape struct {
	base
	Digits string
}

// Rune decodes the escape's code point. Returns the replacement character
// for digits that exceed the valid range.
func (u *StringUnicodeEscape) Rune() rune {
	var v int64
	for _, d := range u.Digits {
		switch {
		case d >= '0' && d <= '9':
			v = v*16 + int64(d-'0')
		case d >= 'a' && d <= 'f':
			v = v*16 + int64(d-'a'+10)
		case d >= 'A' && d <= 'F':
			v = v*16 + int64(d-'A'+10)
		}
		if v > 0x10FFFF {
			return '�'
		}
	}
	return rune(v)
}

func (*StringChars) stringConstantPart()         {}
func (*StringNewline) stringConstantPart()       {}
func (*StringEscape) stringConstantPart()        {}
func (*StringUnicodeEscape) stringConstantPart() {}
