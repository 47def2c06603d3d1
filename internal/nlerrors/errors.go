// Package nlerrors classifies interpreter failures the way the driver's
// reporter expects them (spec.md §7): a classified failure raised out of an
// operator handler, the statement evaluator, or the conditional evaluator
// carries a Kind, and the driver attaches the 1-based source line number
// when it prints the failure. A plain error (division or modulo by zero,
// an out-of-range index) carries no Kind and is reported as Unknown.
package nlerrors

import (
	"fmt"
	"strings"

	"github.com/kr/text"
)

// Kind classifies a failure for reporting purposes.
type Kind int

const (
	// Unknown is the fallback kind for a failure that is not one of the
	// classified cases below (spec.md §7's "any other failure").
	Unknown Kind = iota
	Syntax
	Type
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Type:
		return "Type"
	case Runtime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// Error is a classified interpreter failure. It carries no line number of
// its own: line numbers are a property of the source stream, attached by
// the driver at the point a line fails (see driver.Run).
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Syntaxf builds a Syntax-classified error.
func Syntaxf(format string, args ...any) *Error { return newf(Syntax, format, args...) }

// Typef builds a Type-classified error.
func Typef(format string, args ...any) *Error { return newf(Type, format, args...) }

// Runtimef builds a Runtime-classified error.
func Runtimef(format string, args ...any) *Error { return newf(Runtime, format, args...) }

// Report renders err (classified or not) exactly as spec.md §7 prescribes,
// given the 1-based line number on which it occurred.
func Report(line int, err error) string {
	if ce, ok := err.(*Error); ok {
		switch ce.Kind {
		case Syntax:
			return fmt.Sprintf("Syntax error on line %d: %s", line, ce.Message)
		case Type:
			return fmt.Sprintf("Type Error on line %d: %s", line, ce.Message)
		case Runtime:
			return fmt.Sprintf("Runtime error on line %d: %s", line, ce.Message)
		}
	}
	return fmt.Sprintf("Unknown Error occured: %s", err.Error())
}

// ReportVerbose renders the same message as Report, followed by an indented
// source-context block showing the failing line, for --trace mode. This is
// the one piece of diagnostic richness borrowed from a full compiler's error
// reporter (go-dws's CompilerError.Format) that the plain-line protocol in
// spec.md §7 otherwise omits.
func ReportVerbose(line int, source string, err error) string {
	header := Report(line, err)

	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return header
	}

	context := fmt.Sprintf("%d | %s", line, lines[line-1])
	return header + "\n" + text.Indent(context, "    ")
}
