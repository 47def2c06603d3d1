// Package value defines the runtime value universe of the NaturalLanguage
// interpreter: Number, Bool, Word, List, and Function.
package value

import (
	"strconv"
	"strings"

	"github.com/andrewchester/nl/internal/token"
)

// Value is the tagged union every runtime value implements.
type Value interface {
	// Type returns the variant's name (e.g. "NUMBER", "LIST").
	Type() string
	// String returns the value's Display-facing textual form.
	String() string
}

// Number is a 64-bit float.
type Number struct {
	Val float64
}

func (n *Number) Type() string { return "NUMBER" }

func (n *Number) String() string {
	return strconv.FormatFloat(n.Val, 'f', -1, 64) + suffixIfWhole(n.Val)
}

// suffixIfWhole appends ".0" when FormatFloat would otherwise drop the
// fractional part, so printed numbers always show a decimal point
// (spec.md §8 example 1: "5.0").
func suffixIfWhole(f float64) string {
	if f == float64(int64(f)) {
		return ".0"
	}
	return ""
}

// Bool is a boolean literal (`True`/`False`).
type Bool struct {
	Val bool
}

func (b *Bool) Type() string { return "BOOL" }

func (b *Bool) String() string {
	if b.Val {
		return "True"
	}
	return "False"
}

// Word is an unresolved identifier token that survived literal resolution
// because it named no variable, number, or boolean. It round-trips through
// Display as its underlying text.
type Word struct {
	Val string
}

func (w *Word) Type() string { return "WORD" }

func (w *Word) String() string { return w.Val }

// List is an ordered, possibly-mixed-variant sequence of Values.
type List struct {
	Elements []Value
}

func (l *List) Type() string { return "LIST" }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Function is a user-defined function value: its parameter names, its flat
// body (one token.Line per statement), the arguments bound at the call site
// by `with`, and a diagnostic-only last-assigned name.
type Function struct {
	Params []string
	Body   []token.Line
	Values []Value
	Name   string
}

func (f *Function) Type() string { return "FUNCTION" }

func (f *Function) String() string {
	if f.Name != "" {
		return "<function " + f.Name + ">"
	}
	return "<function>"
}

// IsNumberLiteral reports whether s parses as a float, mirroring the
// original interpreter's is_number(s) (try float(s), catch failure).
func IsNumberLiteral(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
