// Package interp ties the Evaluator and conditional Evaluator to a shared
// State and implements the per-line dispatcher (spec.md §4.6): the
// block-indent continuation rule and the conditional/statement routing.
package interp

import (
	"io"
	"os"

	"github.com/andrewchester/nl/internal/cond"
	"github.com/andrewchester/nl/internal/eval"
	"github.com/andrewchester/nl/internal/nlerrors"
	"github.com/andrewchester/nl/internal/state"
	"github.com/andrewchester/nl/internal/token"
	"github.com/andrewchester/nl/internal/value"
	"github.com/kr/pretty"
)

// conditionalKeyword is the one recognized conditional introducer.
const conditionalKeyword = token.Token("If")

// Interpreter owns the interpreter State and wires the statement and
// conditional evaluators together.
type Interpreter struct {
	State *state.State
	Eval  *eval.Evaluator
	Cond  *cond.Evaluator

	// Trace, when set, pretty-prints each dispatched statement's tokens to
	// TraceOut before evaluation — the debug surface go-dws exposes via its
	// own --trace/--dump-ast flags (SPEC_FULL.md's ambient stack).
	Trace    bool
	TraceOut io.Writer
}

// New creates an Interpreter whose Display output goes to out.
func New(out io.Writer) *Interpreter {
	st := state.New()
	ev := eval.New(st)
	ev.Out = out
	cd := cond.New(ev)
	ev.ConditionalHook = cd.Execute

	return &Interpreter{
		State:    st,
		Eval:     ev,
		Cond:     cd,
		TraceOut: os.Stderr,
	}
}

// DispatchLine routes one already-tokenized, non-empty-overall line
// (spec.md §4.6): block-indent continuation, then conditional-vs-statement.
func (ip *Interpreter) DispatchLine(tokens token.Line) error {
	if len(tokens) == 0 {
		return nlerrors.Syntaxf("Each line must end with a '.'")
	}

	if tokens[0].Empty() {
		if !ip.State.LoadingFunction {
			return nlerrors.Syntaxf("indentation is only used in code blocks")
		}
		return ip.appendToActiveFunction(tokens[1:])
	}

	if ip.State.LoadingFunction {
		ip.State.LoadingFunction = false
		ip.State.ActiveFunction = ""
	}

	if ip.Trace {
		pretty.Fprintf(ip.TraceOut, "%# v\n", tokens.Strings())
	}

	if tokens[0] == conditionalKeyword {
		return ip.Cond.Execute(tokens[1:])
	}

	_, err := ip.Eval.Execute(tokens)
	return err
}

// appendToActiveFunction implements the block-continuation rule: an
// indented line's remaining Tokens become one more Statement in the body of
// the function currently being loaded.
func (ip *Interpreter) appendToActiveFunction(body token.Line) error {
	bound, ok := ip.State.Env.Get(ip.State.ActiveFunction)
	if !ok {
		return nlerrors.Runtimef("no function is currently being defined")
	}
	fn, ok := bound.(*value.Function)
	if !ok {
		return nlerrors.Runtimef("%s is not a function", ip.State.ActiveFunction)
	}
	fn.Body = append(fn.Body, body)
	return nil
}
