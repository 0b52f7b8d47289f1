package cst

// Children returns the node's direct children in source order, skipping
// absent optional parts. Module and ClassBody members are the exception:
// they are listed grouped by kind (each group in source order), not
// interleaved as written. It is the single traversal the visitor, the tree
// dump, and Attach all share.
func Children(n Node) []Node {
	var kids []Node
	add := func(c Node) {
		kids = append(kids, c)
	}
	switch n := n.(type) {
	case *Module:
		if n.Decl != nil {
			add(n.Decl)
		}
		for _, c := range n.Imports {
			add(c)
		}
		for _, c := range n.Classes {
			add(c)
		}
		for _, c := range n.TypeAliases {
			add(c)
		}
		for _, c := range n.Properties {
			add(c)
		}
		for _, c := range n.Methods {
			add(c)
		}
	case *ModuleDecl:
		if n.Doc != nil {
			add(n.Doc)
		}
		for _, c := range n.Annotations {
			add(c)
		}
		for _, c := range n.Modifiers {
			add(c)
		}
		if n.Name != nil {
			add(n.Name)
		}
		if n.ExtendsOrAmends != nil {
			add(n.ExtendsOrAmends)
		}
	case *ExtendsOrAmendsDecl:
		add(n.URL)
	case *Import:
		add(n.URL)
		if n.Alias != nil {
			add(n.Alias)
		}

	case *Clazz:
		if n.Doc != nil {
			add(n.Doc)
		}
		for _, c := range n.Annotations {
			add(c)
		}
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		if n.TypeParams != nil {
			add(n.TypeParams)
		}
		if n.SuperClass != nil {
			add(n.SuperClass)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *TypeAlias:
		if n.Doc != nil {
			add(n.Doc)
		}
		for _, c := range n.Annotations {
			add(c)
		}
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		if n.TypeParams != nil {
			add(n.TypeParams)
		}
		add(n.Body)
	case *ClassBody:
		for _, c := range n.Properties {
			add(c)
		}
		for _, c := range n.Methods {
			add(c)
		}
	case *ClassProperty:
		if n.Doc != nil {
			add(n.Doc)
		}
		for _, c := range n.Annotations {
			add(c)
		}
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		add(n.Type)
	case *ClassPropertyExpr:
		if n.Doc != nil {
			add(n.Doc)
		}
		for _, c := range n.Annotations {
			add(c)
		}
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		if n.Type != nil {
			add(n.Type)
		}
		add(n.Expr)
	case *ClassPropertyBody:
		if n.Doc != nil {
			add(n.Doc)
		}
		for _, c := range n.Annotations {
			add(c)
		}
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		for _, c := range n.Bodies {
			add(c)
		}
	case *ClassMethod:
		if n.Doc != nil {
			add(n.Doc)
		}
		for _, c := range n.Annotations {
			add(c)
		}
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		if n.TypeParams != nil {
			add(n.TypeParams)
		}
		add(n.Params)
		if n.ReturnType != nil {
			add(n.ReturnType)
		}
		if n.Body != nil {
			add(n.Body)
		}

	case *ObjectBody:
		for _, c := range n.Parameters {
			add(c)
		}
		for _, c := range n.Members {
			add(c)
		}
	case *ObjectElement:
		add(n.Expr)
	case *ObjectProperty:
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		if n.Type != nil {
			add(n.Type)
		}
		add(n.Expr)
	case *ObjectBodyProperty:
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		for _, c := range n.Bodies {
			add(c)
		}
	case *ObjectMethod:
		for _, c := range n.Modifiers {
			add(c)
		}
		add(n.Name)
		if n.TypeParams != nil {
			add(n.TypeParams)
		}
		add(n.Params)
		if n.ReturnType != nil {
			add(n.ReturnType)
		}
		add(n.Body)
	case *ObjectEntry:
		add(n.Key)
		add(n.Value)
	case *ObjectEntryBody:
		add(n.Key)
		for _, c := range n.Bodies {
			add(c)
		}
	case *MemberPredicate:
		add(n.Pred)
		add(n.Expr)
	case *MemberPredicateBody:
		add(n.Pred)
		for _, c := range n.Bodies {
			add(c)
		}
	case *ObjectSpread:
		add(n.Expr)
	case *WhenGenerator:
		add(n.Cond)
		add(n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *ForGenerator:
		add(n.P1)
		if n.P2 != nil {
			add(n.P2)
		}
		add(n.Iterable)
		add(n.Body)

	case *This, *Outer, *ModuleExpr, *NullLiteral, *BoolLiteral,
		*IntLiteral, *FloatLiteral:
		// leaves
	case *StringConstant:
		for _, c := range n.Parts {
			add(c)
		}
	case *InterpolatedString:
		for _, c := range n.Parts {
			add(c)
		}
	case *InterpolatedMultiString:
		for _, c := range n.Parts {
			add(c)
		}
	case *Throw:
		add(n.Expr)
	case *Trace:
		add(n.Expr)
	case *ImportExpr:
		add(n.URL)
	case *Read:
		add(n.Expr)
	case *ReadNull:
		add(n.Expr)
	case *ReadGlob:
		add(n.Expr)
	case *UnqualifiedAccess:
		add(n.Name)
		if n.Args != nil {
			add(n.Args)
		}
	case *QualifiedAccess:
		add(n.Receiver)
		add(n.Name)
		if n.Args != nil {
			add(n.Args)
		}
	case *SuperAccess:
		add(n.Name)
		if n.Args != nil {
			add(n.Args)
		}
	case *SuperSubscript:
		add(n.Index)
	case *Subscript:
		add(n.Receiver)
		add(n.Index)
	case *NonNull:
		add(n.Expr)
	case *UnaryMinus:
		add(n.Expr)
	case *LogicalNot:
		add(n.Expr)
	case *BinaryOp:
		add(n.Left)
		add(n.Right)
	case *TypeCheck:
		add(n.Expr)
		add(n.Type)
	case *TypeCast:
		add(n.Expr)
		add(n.Type)
	case *If:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *Let:
		add(n.Param)
		add(n.Value)
		add(n.Body)
	case *FunctionLiteral:
		add(n.Params)
		add(n.Body)
	case *Parenthesized:
		add(n.Expr)
	case *New:
		if n.Type != nil {
			add(n.Type)
		}
		add(n.Body)
	case *Amends:
		add(n.Expr)
		add(n.Body)

	case *UnknownType, *NothingType, *ModuleType:
		// leaves
	case *StringConstantType:
		add(n.Str)
	case *DeclaredType:
		add(n.Name)
		for _, c := range n.Args {
			add(c)
		}
	case *ParenthesizedType:
		add(n.Type)
	case *NullableType:
		add(n.Type)
	case *ConstrainedType:
		add(n.Type)
		for _, c := range n.Exprs {
			add(c)
		}
	case *DefaultUnionType:
		add(n.Type)
	case *UnionType:
		add(n.Left)
		add(n.Right)
	case *FunctionType:
		for _, c := range n.Args {
			add(c)
		}
		add(n.Ret)

	case *Ident:
		// leaf
	case *QualifiedIdent:
		for _, c := range n.Parts {
			add(c)
		}
	case *Underscore:
		// leaf
	case *TypedIdent:
		add(n.Ident)
		if n.Type != nil {
			add(n.Type)
		}
	case *ParameterList:
		for _, c := range n.Params {
			add(c)
		}
	case *TypeParameter:
		add(n.Ident)
	case *TypeParameterList:
		for _, c := range n.Params {
			add(c)
		}
	case *TypeAnnotation:
		add(n.Type)
	case *Annotation:
		add(n.Name)
		if n.Body != nil {
			add(n.Body)
		}
	case *ArgumentList:
		for _, c := range n.Args {
			add(c)
		}
	case *DocComment, *Modifier:
		// leaves
	case *StringChars, *StringNewline, *StringEscape, *StringUnicodeEscape:
		// leaves
	}
	return kids
}
