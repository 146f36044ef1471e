package tokenlist

import (
	"strings"
	"unicode"
)

// Parse builds a TokenSet from a raw attribute value.
func Parse(value string) *TokenSet {
	return New().SetTo(value)
}

// SetTo replaces the contents of ts with the tokens of value. Tokens are
// maximal runs of non-whitespace; empty fragments never become tokens.
func (ts *TokenSet) SetTo(value string) *TokenSet {
	ts.Clear()
	ts.Add(fieldsToTokens(strings.Fields(value))...)
	return ts
}

// String joins the tokens with a single space. An empty set yields "".
func (ts *TokenSet) String() string {
	var sb strings.Builder
	for i, t := range ts.order {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(t))
	}
	return sb.String()
}

// Normalize collapses value into its canonical single-spaced form.
func Normalize(value string) string {
	return Parse(value).String()
}

func fieldsToTokens(fields []string) []Token {
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, Token(f))
	}
	return tokens
}

// splitTokens returns tokens with whitespace-bearing entries split apart
// and empty entries dropped. The input is returned as is when it is clean.
func splitTokens(tokens []Token) []Token {
	clean := true
	for _, t := range tokens {
		if t == "" || strings.ContainsFunc(string(t), unicode.IsSpace) {
			clean = false
			break
		}
	}
	if clean {
		return tokens
	}

	var out []Token
	for _, t := range tokens {
		out = append(out, fieldsToTokens(strings.Fields(string(t)))...)
	}
	return out
}
