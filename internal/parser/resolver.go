package parser

import (
	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// The operator resolver collapses the flat operand/operator sequence a
// parseExpr loop produces into a precedence-correct binary tree. The flat
// sequence is parser-internal: operators and pending `is`/`as` type
// operands never appear in a finished tree.

type flatKind uint8

const (
	flatExprKind flatKind = iota
	flatOpKind
	flatTypeKind
)

// flat is one element of the flat sequence: an operand expression, an
// operator, or the type operand following `is`/`as`.
type flat struct {
	kind flatKind
	expr cst.Expr
	typ  cst.Type
	op   cst.Operator
	span token.Span
}

func flatExpr(e cst.Expr) flat {
	return flat{kind: flatExprKind, expr: e, span: e.Span()}
}

func flatOp(op cst.Operator, span token.Span) flat {
	return flat{kind: flatOpKind, op: op, span: span}
}

func flatType(t cst.Type) flat {
	return flat{kind: flatTypeKind, typ: t, span: t.Span()}
}

// precedence returns the binding strength of an operator; higher wins.
func precedence(op cst.Operator) int {
	switch op {
	case cst.NULL_COALESCE:
		return 0
	case cst.PIPE:
		return 1
	case cst.OR:
		return 2
	case cst.AND:
		return 3
	case cst.EQ_EQ, cst.NOT_EQ:
		return 4
	case cst.IS, cst.AS:
		return 5
	case cst.LT, cst.LTE, cst.GT, cst.GTE:
		return 6
	case cst.PLUS, cst.MINUS:
		return 7
	case cst.MULT, cst.DIV, cst.INT_DIV, cst.MOD:
		return 8
	case cst.POW:
		return 9
	case cst.DOT, cst.QDOT:
		return 10
	}
	return -1
}

// isRightAssoc reports whether the operator associates to the right.
// All others are left-associative.
func isRightAssoc(op cst.Operator) bool {
	return op == cst.POW || op == cst.NULL_COALESCE
}

// resolveOperators folds the whole sequence into a single expression.
// A residual of more than one element signals a malformed expression.
func (p *Parser) resolveOperators(list []flat) cst.Expr {
	list = p.resolveOperatorsHigherThan(list, 0)
	if len(list) != 1 || list[0].kind != flatExprKind {
		p.errorAt(unionSpan(list), "malformedExpression")
	}
	return list[0].expr
}

// resolveOperatorsHigherThan repeatedly folds the highest-precedence
// operator with precedence at least min, choosing the leftmost occurrence
// for left-associative operators and the rightmost for right-associative
// ones, until no such operator remains.
func (p *Parser) resolveOperatorsHigherThan(list []flat, min int) []flat {
	for {
		best, bestIdx := -1, -1
		for i, el := range list {
			if el.kind != flatOpKind {
				continue
			}
			pr := precedence(el.op)
			if pr < min {
				continue
			}
			if pr > best || (pr == best && isRightAssoc(el.op)) {
				best, bestIdx = pr, i
			}
		}
		if bestIdx == -1 {
			return list
		}
		if bestIdx == 0 || bestIdx == len(list)-1 {
			p.errorAt(unionSpan(list), "malformedExpression")
		}

		left, op, right := list[bestIdx-1], list[bestIdx], list[bestIdx+1]
		if left.kind != flatExprKind {
			p.errorAt(unionSpan(list), "malformedExpression")
		}
		span := left.span.ExtendTo(right.span)

		var folded cst.Expr
		switch {
		case op.op == cst.IS && right.kind == flatTypeKind:
			folded = cst.Attach(&cst.TypeCheck{Expr: left.expr, Type: right.typ}, span)
		case op.op == cst.AS && right.kind == flatTypeKind:
			folded = cst.Attach(&cst.TypeCast{Expr: left.expr, Type: right.typ}, span)
		case right.kind == flatExprKind:
			folded = cst.Attach(&cst.BinaryOp{Left: left.expr, Right: right.expr, Op: op.op}, span)
		default:
			p.errorAt(unionSpan(list), "malformedExpression")
		}

		rest := append([]flat{}, list[:bestIdx-1]...)
		rest = append(rest, flatExpr(folded))
		list = append(rest, list[bestIdx+2:]...)
	}
}

// unionSpan is the union span of a flat sequence, used for error reporting.
func unionSpan(list []flat) token.Span {
	if len(list) == 0 {
		return token.Span{}
	}
	return list[0].span.ExtendTo(list[len(list)-1].span)
}
