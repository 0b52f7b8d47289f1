package cst

import "strings"

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// This is the `this` expression.
type This struct {
	base
}

// Outer is the `outer` expression.
type Outer struct {
	base
}

// ModuleExpr is the `module` expression.
type ModuleExpr struct {
	base
}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	base
}

// BoolLiteral is a `true` or `false` literal.
type BoolLiteral struct {
	base
	Value bool
}

// IntLiteral is an integer literal in any base. Text is the lexeme as
// written, with `_` separators stripped and the base prefix preserved.
// Value interpretation is left to downstream consumers.
type IntLiteral struct {
	base
	Text string
}

// FloatLiteral is a floating-point literal. Text is the lexeme as written,
// with `_` separators stripped and the exponent preserved.
type FloatLiteral struct {
	base
	Text string
}

// StringConstant is a string with a single constant run and no
// interpolation. Parts holds the run's constant pieces in source order;
// escapes stay opaque markers and are not re-interpreted by the parser.
type StringConstant struct {
	base
	Parts []StringConstantPart
}

// Text renders the constant's value: raw character runs verbatim, escape
// markers as the characters they denote, newline markers as `\n`.
func (s *StringConstant) Text() string {
	var b strings.Builder
	for _, p := range s.Parts {
		switch p := p.(type) {
		case *StringChars:
			b.WriteString(p.Text)
		case *StringNewline:
			b.WriteByte('\n')
		case *StringEscape:
			b.WriteRune(p.Kind.Rune())
		case *StringUnicodeEscape:
			b.WriteRune(p.Rune())
		}
	}
	return b.String()
}

// InterpolatedString is a single-line string with at least one
// interpolation. Parts holds StringConstant runs and interpolated
// expressions, in source order.
type InterpolatedString struct {
	base
	Parts []Expr
}

// InterpolatedMultiString is a multi-line string with at least one
// interpolation.
type InterpolatedMultiString struct {
	base
	Parts []Expr
}

// Throw is a `throw(expr)` expression.
type Throw struct {
	base
	Expr Expr
}

// Trace is a `trace(expr)` expression.
type Trace struct {
	base
	Expr Expr
}

// ImportExpr is an `import("url")` or `import*("url")` expression.
type ImportExpr struct {
	base
	URL    *StringConstant
	IsGlob bool
}

// Read is a `read(expr)` expression.
type Read struct {
	base
	Expr Expr
}

// ReadNull is a `read?(expr)` expression.
type ReadNull struct {
	base
	Expr Expr
}

// ReadGlob is a `read*(expr)` expression.
type ReadGlob struct {
	base
	Expr Expr
}

// UnqualifiedAccess is a bare identifier, optionally applied to arguments.
type UnqualifiedAccess struct {
	base
	Name *Ident
	Args *ArgumentList
}

// QualifiedAccess is a `.name` or `?.name` access on a receiver, optionally
// applied to arguments. When Args is present its opening paren sits on the
// same source line as the accessed name.
type QualifiedAccess struct {
	base
	Receiver   Expr
	Name       *Ident
	IsNullable bool
	Args       *ArgumentList
}

// SuperAccess is a `super.name` access, optionally applied to arguments.
type SuperAccess struct {
	base
	Name *Ident
	Args *ArgumentList
}

// SuperSubscript is a `super[index]` expression.
type SuperSubscript struct {
	base
	Index Expr
}

// Subscript is a `receiver[index]` expression.
type Subscript struct {
	base
	Receiver Expr
	Index    Expr
}

// NonNull is a postfix `!!` assertion.
type NonNull struct {
	base
	Expr Expr
}

// UnaryMinus is a prefix `-`.
type UnaryMinus struct {
	base
	Expr Expr
}

// LogicalNot is a prefix `!`.
type LogicalNot struct {
	base
	Expr Expr
}

// BinaryOp is a binary operation. Operator resolution guarantees the tree
// honours precedence and associativity.
type BinaryOp struct {
	base
	Left  Expr
	Right Expr
	Op    Operator
}

// TypeCheck is an `expr is Type` test.
type TypeCheck struct {
	base
	Expr Expr
	Type Type
}

// TypeCast is an `expr as Type` cast.
type TypeCast struct {
	base
	Expr Expr
	Type Type
}

// If is an `if (cond) then else alt` expression.
type If struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

// Let is a `let (param = value) body` expression.
type Let struct {
	base
	Param Parameter
	Value Expr
	Body  Expr
}

// FunctionLiteral is a `(params) -> body` lambda.
type FunctionLiteral struct {
	base
	Params *ParameterList
	Body   Expr
}

// Parenthesized is a parenthesized expression.
type Parenthesized struct {
	base
	Expr Expr
}

// New is a `new Type? { ... }` expression. Type is nil when the object's
// type is inferred from context.
type New struct {
	base
	Type Type
	Body *ObjectBody
}

// Amends is a postfix object body applied to a parenthesized, amends, or
// new expression.
type Amends struct {
	base
	Expr Expr
	Body *ObjectBody
}

func (*This) exprNode()                    {}
func (*Outer) exprNode()                   {}
func (*ModuleExpr) exprNode()              {}
func (*NullLiteral) exprNode()             {}
func (*BoolLiteral) exprNode()             {}
func (*IntLiteral) exprNode()              {}
func (*FloatLiteral) exprNode()            {}
func (*StringConstant) exprNode()          {}
func (*InterpolatedString) exprNode()      {}
func (*InterpolatedMultiString) exprNode() {}
func (*Throw) exprNode()                   {}
func (*Trace) exprNode()                   {}
func (*ImportExpr) exprNode()              {}
func (*Read) exprNode()                    {}
func (*ReadNull) exprNode()                {}
func (*ReadGlob) exprNode()                {}
func (*UnqualifiedAccess) exprNode()       {}
func (*QualifiedAccess) exprNode()         {}
func (*SuperAccess) exprNode()             {}
func (*SuperSubscript) exprNode()          {}
func (*Subscript) exprNode()               {}
func (*NonNull) exprNode()                 {}
func (*UnaryMinus) exprNode()              {}
func (*LogicalNot) exprNode()              {}
func (*BinaryOp) exprNode()                {}
func (*TypeCheck) exprNode()               {}
func (*TypeCast) exprNode()                {}
func (*If) exprNode()                      {}
func (*Let) exprNode()                     {}
func (*FunctionLiteral) exprNode()         {}
func (*Parenthesized) exprNode()           {}
func (*New) exprNode()                     {}
func (*Amends) exprNode()                  {}
