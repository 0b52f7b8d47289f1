package cst

import "github.com/cwbudde/go-pkl/pkg/token"

// Module is the root node of a parse. Member slices hold the module's
// entries grouped by kind, each in source order.
type Module struct {
	base
	Decl        *ModuleDecl
	Imports     []*Import
	Classes     []*Clazz
	TypeAliases []*TypeAlias
	Properties  []ClassPropertyEntry
	Methods     []*ClassMethod
}

// ModuleDecl is the optional module header: doc comment, annotations,
// modifiers, the `module` clause, and the extends/amends clause.
type ModuleDecl struct {
	base
	Doc             *DocComment
	Annotations     []*Annotation
	Modifiers       []*Modifier
	Name            *QualifiedIdent
	ExtendsOrAmends *ExtendsOrAmendsDecl
}

// ExtendsOrAmendsDecl is the `extends "url"` or `amends "url"` clause of a
// module declaration. Kind is token.EXTENDS or token.AMENDS.
type ExtendsOrAmendsDecl struct {
	base
	Kind token.Kind
	URL  *StringConstant
}

// Import is an `import "url"` or `import* "url"` clause with an optional
// `as alias`.
type Import struct {
	base
	URL    *StringConstant
	IsGlob bool
	Alias  *Ident
}
