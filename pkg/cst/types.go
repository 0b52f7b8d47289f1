package cst

// Type is a type node.
type Type interface {
	Node
	typeNode()
}

// UnknownType is the `unknown` type.
type UnknownType struct {
	base
}

// NothingType is the `nothing` type.
type NothingType struct {
	base
}

// ModuleType is the `module` type.
type ModuleType struct {
	base
}

// StringConstantType is a string-literal type, constrained to the single
// constant it names.
type StringConstantType struct {
	base
	Str *StringConstant
}

// DeclaredType is a named type, optionally with type arguments.
type DeclaredType struct {
	base
	Name *QualifiedIdent
	Args []Type
}

// ParenthesizedType is a parenthesized type.
type ParenthesizedType struct {
	base
	Type Type
}

// NullableType is a postfix `?` type.
type NullableType struct {
	base
	Type Type
}

// ConstrainedType is a `Base(expr, ...)` type whose constraint expressions
// begin on the same source line as the base type.
type ConstrainedType struct {
	base
	Type  Type
	Exprs []Expr
}

// DefaultUnionType marks a union alternative prefixed with `*`.
type DefaultUnionType struct {
	base
	Type Type
}

// UnionType is a `Left | Right` type. Unions are left-associative.
type UnionType struct {
	base
	Left  Type
	Right Type
}

// FunctionType is a `(T1, T2) -> R` type.
type FunctionType struct {
	base
	Args []Type
	Ret  Type
}

func (*UnknownType) typeNode()        {}
func (*NothingType) typeNode()        {}
func (*ModuleType) typeNode()         {}
func (*StringConstantType) typeNode() {}
func (*DeclaredType) typeNode()       {}
func (*ParenthesizedType) typeNode()  {}
func (*NullableType) typeNode()       {}
func (*ConstrainedType) typeNode()    {}
func (*DefaultUnionType) typeNode()   {}
func (*UnionType) typeNode()          {}
func (*FunctionType) typeNode()       {}
