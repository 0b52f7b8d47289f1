package parser

import (
	"strings"
	"testing"
)

func TestDocCommentOnlyModuleIsError(t *testing.T) {
	// a doc comment with no declaration to attach to
	err := expectParseError(t, "/// lonely doc comment\n")
	if !strings.Contains(err.Message, "doc comment") {
		t.Errorf("message = %q, want the dangling doc comment diagnostic", err.Message)
	}
}

func TestPropertyWithoutTypeOrValue(t *testing.T) {
	err := expectParseError(t, "x")
	if !strings.Contains(err.Message, "property") {
		t.Errorf("message = %q, want the property diagnostic", err.Message)
	}
}

func TestTypeAnnotationAndBodyIsError(t *testing.T) {
	err := expectParseError(t, "x: Listing { a = 1 }")
	if !strings.Contains(err.Message, "type annotation") {
		t.Errorf("message = %q, want the annotation-and-body diagnostic", err.Message)
	}
}

func TestExtendsAndAmendsIsError(t *testing.T) {
	expectParseError(t, "extends \"a.pkl\"\namends \"b.pkl\"")
}

func TestImportAfterEntriesIsError(t *testing.T) {
	err := expectParseError(t, "x = 1\nimport \"late.pkl\"")
	if !strings.Contains(err.Message, "imports") {
		t.Errorf("message = %q, want the import placement diagnostic", err.Message)
	}
}

func TestLexErrorSurfacesAsParseError(t *testing.T) {
	// lexical errors unwind through the same abort channel
	err := expectParseError(t, "x = 1 ~ 2")
	if err.Span.Offset != 6 {
		t.Errorf("error offset = %d, want 6 (the tilde)", err.Span.Offset)
	}
}

func TestUnexpectedEOFPointsPastEnd(t *testing.T) {
	input := "x = 1 +"
	err := expectParseError(t, input)
	if err.Span.Offset != len(input) {
		t.Errorf("error offset = %d, want %d (one past the last valid offset)", err.Span.Offset, len(input))
	}
	if !strings.Contains(err.Message, "unexpected end of file") {
		t.Errorf("message = %q, want unexpected end of file", err.Message)
	}
}

func TestUnterminatedObjectBody(t *testing.T) {
	err := expectParseError(t, "x { a = 1")
	if !strings.Contains(err.Message, "unexpected end of file") {
		t.Errorf("message = %q, want unexpected end of file", err.Message)
	}
}

func TestNoPartialTrees(t *testing.T) {
	mod, err := New("x = 1\ny = ]").ParseModule()
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if mod != nil {
		t.Errorf("a failed parse must not return a tree")
	}
}

func TestExactlyOneErrorPerParse(t *testing.T) {
	// the first error aborts the parse and is the one returned
	p := New("x = ]")
	_, err1 := p.ParseModule()
	if err1 == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestAmendsKeywordAsExpressionIsError(t *testing.T) {
	expectParseError(t, "x = amends")
}
