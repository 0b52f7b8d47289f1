package parser

import (
	"testing"

	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/pkg/token"
)

// testModule parses input as a module, failing the test on error.
func testModule(t *testing.T, input string) *cst.Module {
	t.Helper()
	mod, err := New(input).ParseModule()
	if err != nil {
		t.Fatalf("ParseModule(%q) error: %v", input, err)
	}
	return mod
}

// testExpr parses input as a single expression.
func testExpr(t *testing.T, input string) cst.Expr {
	t.Helper()
	e, err := New(input).ParseExpression()
	if err != nil {
		t.Fatalf("ParseExpression(%q) error: %v", input, err)
	}
	return e
}

// expectParseError parses input as a module and returns the error, failing
// the test if the parse succeeds.
func expectParseError(t *testing.T, input string) *ParseError {
	t.Helper()
	_, err := New(input).ParseModule()
	if err == nil {
		t.Fatalf("ParseModule(%q) succeeded, want error", input)
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	return perr
}

// propertyValue returns the value expression of the i-th module property.
func propertyValue(t *testing.T, mod *cst.Module, i int) cst.Expr {
	t.Helper()
	if len(mod.Properties) <= i {
		t.Fatalf("module has %d properties, want at least %d", len(mod.Properties), i+1)
	}
	prop, ok := mod.Properties[i].(*cst.ClassPropertyExpr)
	if !ok {
		t.Fatalf("property %d is %T, want *cst.ClassPropertyExpr", i, mod.Properties[i])
	}
	return prop.Expr
}

func unqualifiedName(t *testing.T, e cst.Expr) string {
	t.Helper()
	ua, ok := e.(*cst.UnqualifiedAccess)
	if !ok {
		t.Fatalf("expression is %T, want *cst.UnqualifiedAccess", e)
	}
	return ua.Name.Name
}

func TestEmptyModule(t *testing.T) {
	mod := testModule(t, "")
	if mod.Decl != nil || len(mod.Imports) != 0 || len(mod.Properties) != 0 ||
		len(mod.Classes) != 0 || len(mod.TypeAliases) != 0 || len(mod.Methods) != 0 {
		t.Errorf("empty source must produce an empty module")
	}
	if mod.Span() != (token.Span{Offset: 0, Length: 0}) {
		t.Errorf("empty module span = %v, want (0,0)", mod.Span())
	}
}

func TestModuleDecl(t *testing.T) {
	mod := testModule(t, "module com.example.server\n\nport = 8080")
	if mod.Decl == nil {
		t.Fatalf("module declaration missing")
	}
	if got := mod.Decl.Name.Text(); got != "com.example.server" {
		t.Errorf("module name = %q, want %q", got, "com.example.server")
	}
	if len(mod.Properties) != 1 {
		t.Fatalf("module has %d properties, want 1", len(mod.Properties))
	}
}

func TestModuleAmends(t *testing.T) {
	mod := testModule(t, `amends "base.pkl"`)
	decl := mod.Decl
	if decl == nil || decl.ExtendsOrAmends == nil {
		t.Fatalf("amends clause missing")
	}
	if decl.ExtendsOrAmends.Kind != token.AMENDS {
		t.Errorf("kind = %v, want AMENDS", decl.ExtendsOrAmends.Kind)
	}
	if got := decl.ExtendsOrAmends.URL.Text(); got != "base.pkl" {
		t.Errorf("url = %q, want %q", got, "base.pkl")
	}
}

func TestModuleExtends(t *testing.T) {
	mod := testModule(t, "module foo\nextends \"base.pkl\"")
	if mod.Decl.ExtendsOrAmends.Kind != token.EXTENDS {
		t.Errorf("kind = %v, want EXTENDS", mod.Decl.ExtendsOrAmends.Kind)
	}
}

func TestImports(t *testing.T) {
	mod := testModule(t, `
import "pkl:math"
import* "*.pkl" as all

x = 1
`)
	if len(mod.Imports) != 2 {
		t.Fatalf("module has %d imports, want 2", len(mod.Imports))
	}
	if mod.Imports[0].IsGlob || mod.Imports[0].Alias != nil {
		t.Errorf("first import must be plain and unaliased")
	}
	if got := mod.Imports[0].URL.Text(); got != "pkl:math" {
		t.Errorf("import url = %q, want %q", got, "pkl:math")
	}
	if !mod.Imports[1].IsGlob {
		t.Errorf("second import must be a glob")
	}
	if mod.Imports[1].Alias == nil || mod.Imports[1].Alias.Name != "all" {
		t.Errorf("second import alias = %v, want all", mod.Imports[1].Alias)
	}
}

func TestClassDeclaration(t *testing.T) {
	mod := testModule(t, `
class Bird extends Animal {
  name: String
  lifespan: Int = 10
  function fullName(prefix: String): String = prefix + name
}
`)
	if len(mod.Classes) != 1 {
		t.Fatalf("module has %d classes, want 1", len(mod.Classes))
	}
	c := mod.Classes[0]
	if c.Name.Name != "Bird" {
		t.Errorf("class name = %q, want Bird", c.Name.Name)
	}
	super, ok := c.SuperClass.(*cst.DeclaredType)
	if !ok || super.Name.Text() != "Animal" {
		t.Errorf("superclass = %v, want Animal", c.SuperClass)
	}
	if c.Body == nil || len(c.Body.Properties) != 2 || len(c.Body.Methods) != 1 {
		t.Fatalf("class body must have 2 properties and 1 method")
	}
	if _, ok := c.Body.Properties[0].(*cst.ClassProperty); !ok {
		t.Errorf("first property is %T, want *cst.ClassProperty", c.Body.Properties[0])
	}
	if _, ok := c.Body.Properties[1].(*cst.ClassPropertyExpr); !ok {
		t.Errorf("second property is %T, want *cst.ClassPropertyExpr", c.Body.Properties[1])
	}
	m := c.Body.Methods[0]
	if m.Name.Name != "fullName" || len(m.Params.Params) != 1 || m.ReturnType == nil || m.Body == nil {
		t.Errorf("method fullName parsed incompletely")
	}
}

func TestTypeAlias(t *testing.T) {
	mod := testModule(t, `typealias Pair<A, B> = Mapping<A, B>`)
	if len(mod.TypeAliases) != 1 {
		t.Fatalf("module has %d type aliases, want 1", len(mod.TypeAliases))
	}
	ta := mod.TypeAliases[0]
	if ta.Name.Name != "Pair" {
		t.Errorf("alias name = %q, want Pair", ta.Name.Name)
	}
	if ta.TypeParams == nil || len(ta.TypeParams.Params) != 2 {
		t.Fatalf("alias must have 2 type parameters")
	}
	dt, ok := ta.Body.(*cst.DeclaredType)
	if !ok || dt.Name.Text() != "Mapping" || len(dt.Args) != 2 {
		t.Errorf("alias body = %v, want Mapping with 2 args", ta.Body)
	}
}

func TestTypeParameterVariance(t *testing.T) {
	mod := testModule(t, `typealias F<in A, out B, C> = (A) -> B`)
	params := mod.TypeAliases[0].TypeParams.Params
	want := []cst.Variance{cst.VarianceIn, cst.VarianceOut, cst.VarianceNone}
	for i, v := range want {
		if params[i].Variance != v {
			t.Errorf("type parameter %d variance = %v, want %v", i, params[i].Variance, v)
		}
	}
}

func TestDocCommentAndAnnotations(t *testing.T) {
	mod := testModule(t, `
/// The port to listen on.
/// Defaults to 8080.
@Deprecated { message = "use portNumber" }
hidden port: Int
`)
	prop, ok := mod.Properties[0].(*cst.ClassProperty)
	if !ok {
		t.Fatalf("property is %T, want *cst.ClassProperty", mod.Properties[0])
	}
	if prop.Doc == nil {
		t.Fatalf("doc comment missing")
	}
	if len(prop.Annotations) != 1 {
		t.Fatalf("property has %d annotations, want 1", len(prop.Annotations))
	}
	ann := prop.Annotations[0]
	if ann.Name.Text() != "Deprecated" || ann.Body == nil {
		t.Errorf("annotation = %v %v, want Deprecated with body", ann.Name.Text(), ann.Body)
	}
	if len(prop.Modifiers) != 1 || prop.Modifiers[0].Kind != token.HIDDEN {
		t.Errorf("property modifiers = %v, want [hidden]", prop.Modifiers)
	}
}

func TestBacktickPropertyName(t *testing.T) {
	mod := testModule(t, "`class` = 1")
	prop := mod.Properties[0].(*cst.ClassPropertyExpr)
	if prop.Name.Name != "class" {
		t.Errorf("property name = %q, want class", prop.Name.Name)
	}
}

func TestAmendsChain(t *testing.T) {
	// two consecutive object bodies amend the same property, in order
	mod := testModule(t, "x { y = 1 } { y = 2 }")
	prop, ok := mod.Properties[0].(*cst.ClassPropertyBody)
	if !ok {
		t.Fatalf("property is %T, want *cst.ClassPropertyBody", mod.Properties[0])
	}
	if len(prop.Bodies) != 2 {
		t.Fatalf("property has %d bodies, want 2", len(prop.Bodies))
	}
	for i, body := range prop.Bodies {
		if len(body.Members) != 1 {
			t.Fatalf("body %d has %d members, want 1", i, len(body.Members))
		}
		if _, ok := body.Members[0].(*cst.ObjectProperty); !ok {
			t.Errorf("body %d member is %T, want *cst.ObjectProperty", i, body.Members[0])
		}
	}
}

func TestMethodWithoutBody(t *testing.T) {
	mod := testModule(t, "external function now(): Duration")
	m := mod.Methods[0]
	if m.Body != nil {
		t.Errorf("external method must have no body")
	}
	if len(m.Modifiers) != 1 || m.Modifiers[0].Kind != token.EXTERNAL {
		t.Errorf("method modifiers = %v, want [external]", m.Modifiers)
	}
}

func TestComments(t *testing.T) {
	p := New("x = 1 // trailing\n/* block */ y = 2\n/// doc\nz = 3")
	if _, err := p.ParseModule(); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	comments := p.Comments()
	if len(comments) != 3 {
		t.Fatalf("collected %d comments, want 3", len(comments))
	}
	wantKinds := []cst.CommentKind{cst.CommentLine, cst.CommentBlock, cst.CommentDoc}
	wantTexts := []string{"// trailing", "/* block */", "/// doc"}
	for i := range comments {
		if comments[i].Kind != wantKinds[i] {
			t.Errorf("comment %d kind = %v, want %v", i, comments[i].Kind, wantKinds[i])
		}
		if comments[i].Text != wantTexts[i] {
			t.Errorf("comment %d text = %q, want %q", i, comments[i].Text, wantTexts[i])
		}
	}
}

func TestSemicolonsAreSoftSeparators(t *testing.T) {
	mod := testModule(t, "x = 1; y = 2")
	if len(mod.Properties) != 2 {
		t.Fatalf("module has %d properties, want 2", len(mod.Properties))
	}
}
