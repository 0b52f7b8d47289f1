package cst

// ObjectBody is a braced object body: optional parameters followed by
// members.
type ObjectBody struct {
	base
	Parameters []Parameter
	Members    []ObjectMember
}

// ObjectMember is a member of an object body.
type ObjectMember interface {
	Node
	objectMember()
}

// ObjectElement is an expression member.
type ObjectElement struct {
	base
	Expr Expr
}

// ObjectProperty is a `name = value` member, optionally with a type
// annotation.
type ObjectProperty struct {
	base
	Modifiers []*Modifier
	Name      *Ident
	Type      *TypeAnnotation
	Expr      Expr
}

// ObjectBodyProperty is a `name { ... }` member amending the property with
// one or more object bodies.
type ObjectBodyProperty struct {
	base
	Modifiers []*Modifier
	Name      *Ident
	Bodies    []*ObjectBody
}

// ObjectMethod is a `function` member of an object body.
type ObjectMethod struct {
	base
	Modifiers  []*Modifier
	Name       *Ident
	TypeParams *TypeParameterList
	Params     *ParameterList
	ReturnType *TypeAnnotation
	Body       Expr
}

// ObjectEntry is a `[key] = value` member.
type ObjectEntry struct {
	base
	Key   Expr
	Value Expr
}

// ObjectEntryBody is a `[key] { ... }` member.
type ObjectEntryBody struct {
	base
	Key    Expr
	Bodies []*ObjectBody
}

// MemberPredicate is a `[[pred]] = value` member.
type MemberPredicate struct {
	base
	Pred Expr
	Expr Expr
}

// MemberPredicateBody is a `[[pred]] { ... }` member.
type MemberPredicateBody struct {
	base
	Pred   Expr
	Bodies []*ObjectBody
}

// ObjectSpread is a `...expr` or `...?expr` member.
type ObjectSpread struct {
	base
	Expr       Expr
	IsNullable bool
}

// WhenGenerator is a `when (cond) { ... } else { ... }` member.
type WhenGenerator struct {
	base
	Cond Expr
	Then *ObjectBody
	Else *ObjectBody
}

// ForGenerator is a `for (p1, p2 in iterable) { ... }` member. P2 is nil
// when only one iteration variable is declared.
type ForGenerator struct {
	base
	P1       Parameter
	P2       Parameter
	Iterable Expr
	Body     *ObjectBody
}

func (*ObjectElement) objectMember()       {}
func (*ObjectProperty) objectMember()      {}
func (*ObjectBodyProperty) objectMember()  {}
func (*ObjectMethod) objectMember()        {}
func (*ObjectEntry) objectMember()         {}
func (*ObjectEntryBody) objectMember()     {}
func (*MemberPredicate) objectMember()     {}
func (*MemberPredicateBody) objectMember() {}
func (*ObjectSpread) objectMember()        {}
func (*WhenGenerator) objectMember()       {}
func (*ForGenerator) objectMember()        {}
