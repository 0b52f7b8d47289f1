package parser

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/cwbudde/go-pkl/pkg/cst"
)

func TestStringConstant(t *testing.T) {
	mod := testModule(t, `x = "hello"`)
	sc, ok := propertyValue(t, mod, 0).(*cst.StringConstant)
	if !ok {
		t.Fatalf("value is %T, want *cst.StringConstant", propertyValue(t, mod, 0))
	}
	if got := sc.Text(); got != "hello" {
		t.Errorf("text = %q, want %q", got, "hello")
	}
}

func TestEmptyStringConstant(t *testing.T) {
	mod := testModule(t, `x = ""`)
	sc, ok := propertyValue(t, mod, 0).(*cst.StringConstant)
	if !ok {
		t.Fatalf("value is %T, want *cst.StringConstant", propertyValue(t, mod, 0))
	}
	if len(sc.Parts) != 0 || sc.Text() != "" {
		t.Errorf("empty string must have no parts")
	}
}

func TestStringWithEscapesStaysConstant(t *testing.T) {
	// escapes are opaque markers inside a single constant run
	mod := testModule(t, `x = "a\nb"`)
	sc, ok := propertyValue(t, mod, 0).(*cst.StringConstant)
	if !ok {
		t.Fatalf("value is %T, want *cst.StringConstant", propertyValue(t, mod, 0))
	}
	if len(sc.Parts) != 3 {
		t.Fatalf("constant has %d parts, want 3 (chars, escape, chars)", len(sc.Parts))
	}
	if _, ok := sc.Parts[1].(*cst.StringEscape); !ok {
		t.Errorf("middle part is %T, want *cst.StringEscape", sc.Parts[1])
	}
	if got := sc.Text(); got != "a\nb" {
		t.Errorf("cooked text = %q, want %q", got, "a\nb")
	}
}

func TestInterpolatedString(t *testing.T) {
	// "hi \(name)!" becomes [constant, expression, constant]
	mod := testModule(t, `x = "hi \(name)!"`)
	is, ok := propertyValue(t, mod, 0).(*cst.InterpolatedString)
	if !ok {
		t.Fatalf("value is %T, want *cst.InterpolatedString", propertyValue(t, mod, 0))
	}
	if len(is.Parts) != 3 {
		t.Fatalf("interpolated string has %d parts, want 3", len(is.Parts))
	}

	first, ok := is.Parts[0].(*cst.StringConstant)
	if !ok || first.Text() != "hi " {
		t.Errorf("part 0 = %v, want constant %q", is.Parts[0], "hi ")
	}
	if got := unqualifiedName(t, is.Parts[1]); got != "name" {
		t.Errorf("part 1 accesses %q, want name", got)
	}
	last, ok := is.Parts[2].(*cst.StringConstant)
	if !ok || last.Text() != "!" {
		t.Errorf("part 2 = %v, want constant %q", is.Parts[2], "!")
	}
}

func TestPoundStringSuppressesEscapes(t *testing.T) {
	// with one pound, \n is two raw characters
	mod := testModule(t, `x = #"a\nb"#`)
	sc, ok := propertyValue(t, mod, 0).(*cst.StringConstant)
	if !ok {
		t.Fatalf("value is %T, want *cst.StringConstant", propertyValue(t, mod, 0))
	}
	if got := sc.Text(); got != `a\nb` {
		t.Errorf("text = %q, want %q", got, `a\nb`)
	}
}

func TestMultiLineStringParts(t *testing.T) {
	mod := testModule(t, "x = \"\"\"\nline1\nline2 \\(y)\n\"\"\"")
	ims, ok := propertyValue(t, mod, 0).(*cst.InterpolatedMultiString)
	if !ok {
		t.Fatalf("value is %T, want *cst.InterpolatedMultiString", propertyValue(t, mod, 0))
	}

	var kinds []string
	for _, part := range ims.Parts {
		switch part.(type) {
		case *cst.StringConstant:
			kinds = append(kinds, "constant")
		default:
			kinds = append(kinds, "interpolation")
		}
	}
	if diff := deep.Equal(kinds, []string{"constant", "interpolation", "constant"}); diff != nil {
		t.Errorf("part shapes differ: %v", diff)
	}
}

func TestMultiLineConstantKeepsNewlineMarkers(t *testing.T) {
	mod := testModule(t, "x = \"\"\"\nab\ncd\"\"\"")
	sc, ok := propertyValue(t, mod, 0).(*cst.StringConstant)
	if !ok {
		t.Fatalf("value is %T, want *cst.StringConstant", propertyValue(t, mod, 0))
	}

	var shapes []string
	for _, p := range sc.Parts {
		switch p := p.(type) {
		case *cst.StringChars:
			shapes = append(shapes, p.Text)
		case *cst.StringNewline:
			shapes = append(shapes, "\\n")
		default:
			shapes = append(shapes, "?")
		}
	}
	if diff := deep.Equal(shapes, []string{"\\n", "ab", "\\n", "cd"}); diff != nil {
		t.Errorf("constant parts differ: %v", diff)
	}
	if got := sc.Text(); got != "\nab\ncd" {
		t.Errorf("cooked text = %q, want %q", got, "\nab\ncd")
	}
}

func TestUnicodeEscapeDigits(t *testing.T) {
	mod := testModule(t, `x = "\u{1F600}"`)
	sc := propertyValue(t, mod, 0).(*cst.StringConstant)
	ue, ok := sc.Parts[0].(*cst.StringUnicodeEscape)
	if !ok {
		t.Fatalf("part is %T, want *cst.StringUnicodeEscape", sc.Parts[0])
	}
	if ue.Digits != "1F600" {
		t.Errorf("digits = %q, want 1F600", ue.Digits)
	}
	if ue.Rune() != '\U0001F600' {
		t.Errorf("rune = %q, want the emoji", ue.Rune())
	}
}

func TestImportURLMustBeConstant(t *testing.T) {
	expectParseError(t, `import "mod\(x).pkl"`)
}

func TestNestedInterpolation(t *testing.T) {
	mod := testModule(t, `x = "a\("b\(y)c")d"`)
	outer, ok := propertyValue(t, mod, 0).(*cst.InterpolatedString)
	if !ok {
		t.Fatalf("value is %T, want *cst.InterpolatedString", propertyValue(t, mod, 0))
	}
	if len(outer.Parts) != 3 {
		t.Fatalf("outer string has %d parts, want 3", len(outer.Parts))
	}
	inner, ok := outer.Parts[1].(*cst.InterpolatedString)
	if !ok {
		t.Fatalf("inner part is %T, want *cst.InterpolatedString", outer.Parts[1])
	}
	if len(inner.Parts) != 3 {
		t.Errorf("inner string has %d parts, want 3", len(inner.Parts))
	}
}
