// Package token defines the Token type produced by splitting a NaturalLanguage
// source line on single spaces. There is no lexer beyond this split: a Token
// is an opaque word that may carry a trailing comma marking a list-item
// boundary.
package token

import "strings"

// Token is one whitespace-delimited word of a statement.
type Token string

// Filler tokens are stripped from a statement before evaluation.
var filler = map[Token]bool{
	"a":  true,
	"an": true,
}

// IsFiller reports whether t is ignored by the evaluator.
func (t Token) IsFiller() bool {
	return filler[t]
}

// HasTrailingComma reports whether t's last character marks a list-item
// boundary in the `,` construction branch.
func (t Token) HasTrailingComma() bool {
	return strings.HasSuffix(string(t), ",")
}

// TrimTrailingComma strips a single trailing comma, if present.
func (t Token) TrimTrailingComma() Token {
	return Token(strings.TrimSuffix(string(t), ","))
}

// Empty reports whether t is the empty token produced by a leading space
// (the block-indent marker).
func (t Token) Empty() bool {
	return t == ""
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return string(t)
}

// Line is an ordered sequence of Tokens for one statement.
type Line []Token

// Split tokenizes a period-stripped line on single spaces.
func Split(s string) Line {
	parts := strings.Split(s, " ")
	line := make(Line, len(parts))
	for i, p := range parts {
		line[i] = Token(p)
	}
	return line
}

// StripFiller returns a copy of l with filler tokens removed.
func (l Line) StripFiller() Line {
	out := make(Line, 0, len(l))
	for _, t := range l {
		if !t.IsFiller() {
			out = append(out, t)
		}
	}
	return out
}

// Strings returns l's Tokens as plain strings, one per Token.
func (l Line) Strings() []string {
	out := make([]string, len(l))
	for i, t := range l {
		out[i] = string(t)
	}
	return out
}
