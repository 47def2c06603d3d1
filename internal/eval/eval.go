// Package eval implements the recursive, precedence-driven statement
// evaluator (spec.md §4.3) and its operator handlers (spec.md §4.4).
package eval

import (
	"io"
	"os"
	"strconv"

	"github.com/andrewchester/nl/internal/nlerrors"
	"github.com/andrewchester/nl/internal/state"
	"github.com/andrewchester/nl/internal/token"
	"github.com/andrewchester/nl/internal/value"
	"golang.org/x/text/unicode/norm"
)

// Evaluator executes statement Lines against a shared State.
type Evaluator struct {
	St  *state.State
	Out io.Writer

	// ConditionalHook lets a Run invocation dispatch a statement whose first
	// token is the conditional keyword back out to the conditional
	// evaluator, without eval importing the cond package (which itself
	// depends on eval for recursive sub-expression evaluation). Wired by
	// the interp package at startup.
	ConditionalHook func(token.Line) error
}

// New creates an Evaluator writing Display output to os.Stdout.
func New(st *state.State) *Evaluator {
	return &Evaluator{St: st, Out: os.Stdout}
}

// Execute evaluates one statement's Tokens, returning its (usually empty)
// result sequence.
func (ev *Evaluator) Execute(line token.Line) ([]value.Value, error) {
	tokens := line.StripFiller()
	if len(tokens) == 0 {
		return nil, nil
	}

	op, found := lowestPrecedenceOp(tokens)

	if len(tokens) == 1 {
		if isOperatorLiteral(tokens[0]) {
			return nil, nlerrors.Syntaxf("operator syntax error")
		}
		v, err := ev.resolveLiteral(tokens[0])
		if err != nil {
			return nil, err
		}
		return []value.Value{v}, nil
	}

	if !found {
		return nil, nlerrors.Syntaxf("each statement must contain an operation")
	}

	if op == "," {
		return ev.evalListConstruction(tokens)
	}

	idx := indexOfToken(tokens, op)

	var lhsRaw token.Line
	var leftValues []value.Value
	if op == "is" {
		lhsRaw = tokens[:idx]
	} else if idx > 0 {
		lv, err := ev.Execute(tokens[:idx])
		if err != nil {
			return nil, err
		}
		leftValues = lv
	}

	var rightValues []value.Value
	if idx+1 < len(tokens) {
		rv, err := ev.Execute(tokens[idx+1:])
		if err != nil {
			return nil, err
		}
		rightValues = rv
	}

	switch op {
	case "is":
		return ev.assign(lhsRaw, rightValues)
	case "Display":
		return ev.display(append(leftValues, rightValues...))
	case "+", "-", "*", "/", "%", "^":
		return ev.arithmetic(string(op), append(leftValues, rightValues...))
	case "at":
		return ev.index(append(leftValues, rightValues...))
	case "with":
		return ev.with(append(leftValues, rightValues...))
	case "Run":
		return ev.run(append(leftValues, rightValues...))
	case "return":
		return ev.ret(append(leftValues, rightValues...))
	default:
		return nil, nlerrors.Syntaxf("unrecognized operator %q", op)
	}
}

// resolveLiteral implements the literal resolver (spec.md §4.1) for a bare
// Token. Values already produced by recursive evaluation never pass back
// through here, so the "operand already a List" pass-through case named in
// §4.1 never arises in this implementation: every other handler receives
// already-resolved Values, not raw Tokens.
func (ev *Evaluator) resolveLiteral(t token.Token) (value.Value, error) {
	name := string(t)

	if v, ok := ev.St.Env.Get(name); ok {
		if fn, ok := v.(*value.Function); ok {
			// Diagnostic-only label, per DESIGN.md's resolution of the
			// "evalLiteral mutates a Function's name" open question.
			fn.Name = name
			return fn, nil
		}
		return v, nil
	}

	if value.IsNumberLiteral(name) {
		f, err := strconv.ParseFloat(name, 64)
		if err != nil {
			return nil, nlerrors.Runtimef("malformed number literal %q", name)
		}
		return &value.Number{Val: f}, nil
	}

	switch name {
	case "True":
		return &value.Bool{Val: true}, nil
	case "False":
		return &value.Bool{Val: false}, nil
	}

	return &value.Word{Val: norm.NFC.String(name)}, nil
}

// evalListConstruction implements the `,` branch of the statement evaluator
// (spec.md §4.3 step 4): buffer tokens until one carries a trailing comma,
// recursively evaluate the buffer, and collect the results into a List.
func (ev *Evaluator) evalListConstruction(tokens token.Line) ([]value.Value, error) {
	var elements []value.Value
	var buffer token.Line

	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		v, err := ev.Execute(buffer)
		if err != nil {
			return err
		}
		if len(v) != 1 {
			return nlerrors.Syntaxf("malformed list item")
		}
		elements = append(elements, v[0])
		buffer = nil
		return nil
	}

	for _, t := range tokens {
		if t.HasTrailingComma() {
			buffer = append(buffer, t.TrimTrailingComma())
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		buffer = append(buffer, t)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return []value.Value{&value.List{Elements: elements}}, nil
}
