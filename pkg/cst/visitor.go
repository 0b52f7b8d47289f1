package cst

// Visitor processes a node and produces a result. Implementations dispatch
// on the concrete variant with a type switch, falling back to
// VisitChildren for nodes they do not handle specially.
type Visitor interface {
	Visit(n Node) any
}

// VisitChildren applies v to each child of n in Children order and returns
// the last child's result, or nil for a leaf. It is the default behaviour
// a Visitor delegates to for unhandled variants.
func VisitChildren(v Visitor, n Node) any {
	var result any
	for _, c := range Children(n) {
		result = v.Visit(c)
	}
	return result
}

// Walk calls fn for n and then, if fn returns true, for each node of n's
// subtree, depth-first in Children order.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
