package cst

import (
	"fmt"
	"strings"
)

// Dump renders the subtree rooted at n as an indented, deterministic
// listing, one node per line with its payload and span. It is the output of
// the CLI's parse command and the shape matched by snapshot tests.
func Dump(n Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n Node, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
	span := n.Span()
	fmt.Fprintf(b, "%s (%d,%d)\n", label(n), span.Offset, span.Length)
	for _, c := range Children(n) {
		dumpNode(b, c, indent+1)
	}
}

// label names a node variant together with its scalar payload, if any.
func label(n Node) string {
	switch n := n.(type) {
	case *Module:
		return "Module"
	case *ModuleDecl:
		return "ModuleDecl"
	case *ExtendsOrAmendsDecl:
		return "ExtendsOrAmendsDecl " + strings.ToLower(n.Kind.String())
	case *Import:
		if n.IsGlob {
			return "Import glob"
		}
		return "Import"
	case *Clazz:
		return "Clazz"
	case *TypeAlias:
		return "TypeAlias"
	case *ClassBody:
		return "ClassBody"
	case *ClassProperty:
		return "ClassProperty"
	case *ClassPropertyExpr:
		return "ClassPropertyExpr"
	case *ClassPropertyBody:
		return "ClassPropertyBody"
	case *ClassMethod:
		return "ClassMethod"
	case *ObjectBody:
		return "ObjectBody"
	case *ObjectElement:
		return "ObjectElement"
	case *ObjectProperty:
		return "ObjectProperty"
	case *ObjectBodyProperty:
		return "ObjectBodyProperty"
	case *ObjectMethod:
		return "ObjectMethod"
	case *ObjectEntry:
		return "ObjectEntry"
	case *ObjectEntryBody:
		return "ObjectEntryBody"
	case *MemberPredicate:
		return "MemberPredicate"
	case *MemberPredicateBody:
		return "MemberPredicateBody"
	case *ObjectSpread:
		if n.IsNullable {
			return "ObjectSpread nullable"
		}
		return "ObjectSpread"
	case *WhenGenerator:
		return "WhenGenerator"
	case *ForGenerator:
		return "ForGenerator"

	case *This:
		return "This"
	case *Outer:
		return "Outer"
	case *ModuleExpr:
		return "ModuleExpr"
	case *NullLiteral:
		return "NullLiteral"
	case *BoolLiteral:
		return fmt.Sprintf("BoolLiteral %t", n.Value)
	case *IntLiteral:
		return "IntLiteral " + n.Text
	case *FloatLiteral:
		return "FloatLiteral " + n.Text
	case *StringConstant:
		return fmt.Sprintf("StringConstant %q", n.Text())
	case *InterpolatedString:
		return "InterpolatedString"
	case *InterpolatedMultiString:
		return "InterpolatedMultiString"
	case *Throw:
		return "Throw"
	case *Trace:
		return "Trace"
	case *ImportExpr:
		if n.IsGlob {
			return "ImportExpr glob"
		}
		return "ImportExpr"
	case *Read:
		return "Read"
	case *ReadNull:
		return "ReadNull"
	case *ReadGlob:
		return "ReadGlob"
	case *UnqualifiedAccess:
		return "UnqualifiedAccess"
	case *QualifiedAccess:
		if n.IsNullable {
			return "QualifiedAccess nullable"
		}
		return "QualifiedAccess"
	case *SuperAccess:
		return "SuperAccess"
	case *SuperSubscript:
		return "SuperSubscript"
	case *Subscript:
		return "Subscript"
	case *NonNull:
		return "NonNull"
	case *UnaryMinus:
		return "UnaryMinus"
	case *LogicalNot:
		return "LogicalNot"
	case *BinaryOp:
		return "BinaryOp " + n.Op.String()
	case *TypeCheck:
		return "TypeCheck"
	case *TypeCast:
		return "TypeCast"
	case *If:
		return "If"
	case *Let:
		return "Let"
	case *FunctionLiteral:
		return "FunctionLiteral"
	case *Parenthesized:
		return "Parenthesized"
	case *New:
		return "New"
	case *Amends:
		return "Amends"

	case *UnknownType:
		return "UnknownType"
	case *NothingType:
		return "NothingType"
	case *ModuleType:
		return "ModuleType"
	case *StringConstantType:
		return "StringConstantType"
	case *DeclaredType:
		return "DeclaredType"
	case *ParenthesizedType:
		return "ParenthesizedType"
	case *NullableType:
		return "NullableType"
	case *ConstrainedType:
		return "ConstrainedType"
	case *DefaultUnionType:
		return "DefaultUnionType"
	case *UnionType:
		return "UnionType"
	case *FunctionType:
		return "FunctionType"

	case *Ident:
		return "Ident " + n.Name
	case *QualifiedIdent:
		return "QualifiedIdent " + n.Text()
	case *Underscore:
		return "Underscore"
	case *TypedIdent:
		return "TypedIdent"
	case *ParameterList:
		return "ParameterList"
	case *TypeParameter:
		if v := n.Variance.String(); v != "" {
			return "TypeParameter " + v
		}
		return "TypeParameter"
	case *TypeParameterList:
		return "TypeParameterList"
	case *TypeAnnotation:
		return "TypeAnnotation"
	case *Annotation:
		return "Annotation"
	case *ArgumentList:
		return "ArgumentList"
	case *DocComment:
		return "DocComment"
	case *Modifier:
		return "Modifier " + strings.ToLower(n.Kind.String())

	case *StringChars:
		return fmt.Sprintf("StringChars %q", n.Text)
	case *StringNewline:
		return "StringNewline"
	case *StringEscape:
		return "StringEscape " + n.Kind.String()
	case *StringUnicodeEscape:
		return "StringUnicodeEscape " + n.Digits
	}
	return fmt.Sprintf("%T", n)
}
