package lexer

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-pkl/pkg/token"
)

// expectLexError drains the lexer and returns the error it panics with.
// It fails the test if the input lexes cleanly.
func expectLexError(t *testing.T, input string) *Error {
	t.Helper()
	var lexErr *Error
	func() {
		defer func() {
			if r := recover(); r != nil {
				var ok bool
				lexErr, ok = r.(*Error)
				if !ok {
					t.Fatalf("panic value is %T, want *Error", r)
				}
			}
		}()
		l := New(input)
		for i := 0; i < len(input)+2; i++ {
			if l.Next().Kind == token.EOF {
				return
			}
		}
	}()
	if lexErr == nil {
		t.Fatalf("input %q lexed without error", input)
	}
	return lexErr
}

func TestLoneTildeIsError(t *testing.T) {
	err := expectLexError(t, "a ~ b")
	if err.Span.Offset != 2 {
		t.Errorf("error offset = %d, want 2", err.Span.Offset)
	}
}

func TestLoneAmpersandIsError(t *testing.T) {
	err := expectLexError(t, "a & b")
	if err.Span.Offset != 2 {
		t.Errorf("error offset = %d, want 2", err.Span.Offset)
	}
}

func TestTwoDotsIsError(t *testing.T) {
	expectLexError(t, "a..b")
}

func TestSingleQuoteStringNewline(t *testing.T) {
	err := expectLexError(t, "\"ab\ncd\"")
	if !strings.Contains(err.Message, "multi-line") {
		t.Errorf("message = %q, want the single-quote newline diagnostic", err.Message)
	}
	if err.Span.Offset != 3 {
		t.Errorf("error offset = %d, want 3 (the newline)", err.Span.Offset)
	}
}

func TestUnterminatedUnicodeEscape(t *testing.T) {
	err := expectLexError(t, `"\u{12`)
	if !strings.Contains(err.Message, "unterminated unicode escape") {
		t.Errorf("message = %q, want the unterminated unicode escape diagnostic", err.Message)
	}
}

func TestInvalidEscape(t *testing.T) {
	err := expectLexError(t, `"\q"`)
	if !strings.Contains(err.Message, "invalid character escape") {
		t.Errorf("message = %q, want the invalid escape diagnostic", err.Message)
	}
}

func TestUnterminatedString(t *testing.T) {
	err := expectLexError(t, `"abc`)
	if !strings.Contains(err.Message, "unexpected end of file") {
		t.Errorf("message = %q, want unexpected end of file", err.Message)
	}
	if err.Span.Offset != 4 {
		t.Errorf("error offset = %d, want one past the last valid offset", err.Span.Offset)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	expectLexError(t, "/* never closed")
}

func TestBacktickIdentifierNewline(t *testing.T) {
	expectLexError(t, "`foo\nbar`")
}

func TestPoundWithoutQuote(t *testing.T) {
	expectLexError(t, "# 5")
}

func TestUnexpectedCharacter(t *testing.T) {
	expectLexError(t, "a ^ b")
}
