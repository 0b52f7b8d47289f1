// Package msg is the error-message catalog for lexer and parser diagnostics.
//
// Messages are addressed by identifier. Lookup of an unknown identifier
// returns the identifier itself, so a missing catalog entry degrades to a
// machine-readable message instead of failing.
//
// Message format:
//   - Start with lowercase (except for proper nouns and quoted source text)
//   - Use present tense
//   - Include the offending source text where it helps
package msg

import "fmt"

var catalog = map[string]string{
	// Lexer
	"singleQuoteStringNewline":          "single-quoted strings cannot span multiple lines; use a multi-line string instead",
	"unexpectedEndOfFile":               "unexpected end of file",
	"invalidSeparatorPosition":          "`_` separator is not allowed here",
	"invalidCharacterEscapeSequence":    "invalid character escape sequence `%s`; valid escapes are %s",
	"unterminatedUnicodeEscapeSequence": "unterminated unicode escape sequence; expected `}` after the hex digits",
	"backtickIdentifierNewline":         "quoted identifiers cannot contain line breaks",
	"unterminatedComment":               "unterminated block comment",
	"unexpectedCharacter":               "unexpected character `%s`",
	"missingDigits":                     "expected at least one digit after `%s`",
	"missingExponentDigits":             "expected at least one digit in the exponent",

	// Parser
	"wrongDelimiter":                          "expected `%s` but got `%s`",
	"unexpectedToken":                         "expected %s but got %s",
	"unexpectedTokenMany":                     "expected one of %s but got %s",
	"unexpectedCurlyProbablyAmendsExpression": "unexpected `{`; to amend `%s`, parenthesize it: `(%s) { ... }`",
	"malformedExpression":                     "malformed expression",
	"invalidTopLevelToken":                    "invalid token at module level",
	"danglingDocComment":                      "doc comment has no declaration to document",
	"extendsOrAmendsTwice":                    "a module cannot both extend and amend another module",
	"importsMustComeFirst":                    "imports must appear before all other members and cannot carry headers",
	"propertyWithoutTypeOrValue":              "a property needs a type annotation, a value, or an object body",
	"typeAnnotationAndBody":                   "a property cannot have both a type annotation and an object body",
	"notAValidParameter":                      "expected a parameter",
	"argumentListOnNewLine":                   "an argument list must start on the same line as the member it applies to",
	"multipleElementsInParens":                "parenthesized expressions cannot contain more than one element",
	"notAConstantString":                      "a constant string is required here; interpolation is not allowed",
}

// Lookup returns the catalog message for id, or id itself when the catalog
// has no entry for it.
func Lookup(id string) string {
	if m, ok := catalog[id]; ok {
		return m
	}
	return id
}

// Format looks up id and interpolates args into the message.
func Format(id string, args ...any) string {
	m := Lookup(id)
	if len(args) == 0 {
		return m
	}
	return fmt.Sprintf(m, args...)
}
