package cst

// Clazz is a `class` declaration.
type Clazz struct {
	base
	Doc         *DocComment
	Annotations []*Annotation
	Modifiers   []*Modifier
	Name        *Ident
	TypeParams  *TypeParameterList
	SuperClass  Type
	Body        *ClassBody
}

// TypeAlias is a `typealias Name = Type` declaration.
type TypeAlias struct {
	base
	Doc         *DocComment
	Annotations []*Annotation
	Modifiers   []*Modifier
	Name        *Ident
	TypeParams  *TypeParameterList
	Body        Type
}

// ClassBody is the braced member list of a class declaration.
type ClassBody struct {
	base
	Properties []ClassPropertyEntry
	Methods    []*ClassMethod
}

// ClassPropertyEntry is a property entry in a module or class body. The
// three variants are a bare typed property, a property with a value, and a
// property amended by one or more object bodies.
type ClassPropertyEntry interface {
	Node
	classPropertyEntry()
}

// ClassProperty declares a property with a type annotation and no value.
type ClassProperty struct {
	base
	Doc         *DocComment
	Annotations []*Annotation
	Modifiers   []*Modifier
	Name        *Ident
	Type        *TypeAnnotation
}

// ClassPropertyExpr declares a property with a value, and optionally a type
// annotation.
type ClassPropertyExpr struct {
	base
	Doc         *DocComment
	Annotations []*Annotation
	Modifiers   []*Modifier
	Name        *Ident
	Type        *TypeAnnotation
	Expr        Expr
}

// ClassPropertyBody declares a property amended by one or more object
// bodies. A type annotation is not permitted on this form.
type ClassPropertyBody struct {
	base
	Doc         *DocComment
	Annotations []*Annotation
	Modifiers   []*Modifier
	Name        *Ident
	Bodies      []*ObjectBody
}

func (*ClassProperty) classPropertyEntry()     {}
func (*ClassPropertyExpr) classPropertyEntry() {}
func (*ClassPropertyBody) classPropertyEntry() {}

// ClassMethod is a `function` declaration in a module or class body. Body is
// nil for external methods.
type ClassMethod struct {
	base
	Doc         *DocComment
	Annotations []*Annotation
	Modifiers   []*Modifier
	Name        *Ident
	TypeParams  *TypeParameterList
	Params      *ParameterList
	ReturnType  *TypeAnnotation
	Body        Expr
}
