package lexer

import (
	"testing"

	"github.com/cwbudde/go-pkl/pkg/token"
)

func TestNumberKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.INT},
		{"123", token.INT},
		{"1_000_000", token.INT},
		{"0x2A", token.HEX},
		{"0XFF", token.HEX},
		{"0xDEAD_BEEF", token.HEX},
		{"0b1010", token.BIN},
		{"0B11", token.BIN},
		{"0o17", token.OCT},
		{"0O755", token.OCT},
		{"1.5", token.FLOAT},
		{".5", token.FLOAT},
		{"1e3", token.FLOAT},
		{"1E3", token.FLOAT},
		{"2.5e-2", token.FLOAT},
		{"1.0E+10", token.FLOAT},
		{"1_0.2_5", token.FLOAT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tok := l.Next()
			if tok.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", tok.Kind, tt.kind)
			}
			if got := l.Text(tok); got != tt.input {
				t.Errorf("text = %q, want %q", got, tt.input)
			}
			if l.Next().Kind != token.EOF {
				t.Errorf("expected EOF after the number")
			}
		})
	}
}

func TestTrailingDotIsNotConsumed(t *testing.T) {
	// `1.foo` is INT DOT IDENT: the dot is un-consumed when no digit
	// follows.
	checkKinds(t, "1.foo", token.INT, token.DOT, token.IDENT)
	checkKinds(t, "1.", token.INT, token.DOT)
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "hex_no_digits", input: "0x"},
		{name: "bin_no_digits", input: "0b"},
		{name: "oct_no_digits", input: "0o"},
		{name: "hex_leading_separator", input: "0x_FF"},
		{name: "exponent_no_digits", input: "1e"},
		{name: "exponent_sign_no_digits", input: "1e+"},
		{name: "exponent_leading_separator", input: "1e_3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectLexError(t, tt.input)
		})
	}
}
