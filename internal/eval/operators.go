package eval

import (
	"fmt"
	"math"

	"github.com/andrewchester/nl/internal/nlerrors"
	"github.com/andrewchester/nl/internal/token"
	"github.com/andrewchester/nl/internal/value"
)

// assign implements `is` (spec.md §4.4): the LHS arrives as raw Tokens (not
// pre-evaluated, so the target name survives instead of being looked up).
func (ev *Evaluator) assign(lhsRaw token.Line, rhs []value.Value) ([]value.Value, error) {
	if len(lhsRaw) < 1 || len(rhs) < 1 {
		return nil, nlerrors.Runtimef("assignment error")
	}

	name := string(lhsRaw[0])
	val := rhs[0]

	if fn, ok := val.(*value.Function); ok && ev.St.LoadingFunction {
		fn.Name = name
		ev.St.ActiveFunction = name
	}

	ev.St.Env.Set(name, val)
	return nil, nil
}

// display implements `Display`: prints each input separated by a single
// space, followed by a newline; with no operands it prints just the newline.
// A bare `Display.` line never reaches here: Execute rejects a lone operator
// token as a syntax error.
func (ev *Evaluator) display(operands []value.Value) ([]value.Value, error) {
	for _, v := range operands {
		fmt.Fprint(ev.Out, v.String(), " ")
	}
	fmt.Fprintln(ev.Out)
	return nil, nil
}

// arithmetic implements `+ - * / % ^` (spec.md §4.4), including elementwise
// broadcasting against a List operand. A List on either side is broadcast
// recursively; each element's recursive result is a single Value appended
// as one element, so nested Lists keep their nesting in the result
// (`[[1, 2], 3] + 1` gives `[[2.0, 3.0], 4.0]`) rather than being flattened
// or rejected.
func (ev *Evaluator) arithmetic(op string, operands []value.Value) ([]value.Value, error) {
	if len(operands) != 2 {
		return nil, nlerrors.Runtimef("input error")
	}

	left, right := operands[0], operands[1]

	if _, ok := left.(*value.Word); ok {
		return nil, nlerrors.Typef("invalid type for mathematical operation")
	}
	if _, ok := right.(*value.Word); ok {
		return nil, nlerrors.Typef("invalid type for mathematical operation")
	}

	if l, ok := left.(*value.List); ok {
		elements := make([]value.Value, 0, len(l.Elements))
		for _, item := range l.Elements {
			r, err := ev.arithmetic(op, []value.Value{item, right})
			if err != nil {
				return nil, err
			}
			elements = append(elements, r...)
		}
		return []value.Value{&value.List{Elements: elements}}, nil
	}

	if r, ok := right.(*value.List); ok {
		elements := make([]value.Value, 0, len(r.Elements))
		for _, item := range r.Elements {
			res, err := ev.arithmetic(op, []value.Value{left, item})
			if err != nil {
				return nil, err
			}
			elements = append(elements, res...)
		}
		return []value.Value{&value.List{Elements: elements}}, nil
	}

	ln, lok := left.(*value.Number)
	rn, rok := right.(*value.Number)
	if !lok || !rok {
		return nil, nlerrors.Typef("invalid type for mathematical operation")
	}

	var out float64
	switch op {
	case "+":
		out = ln.Val + rn.Val
	case "-":
		out = ln.Val - rn.Val
	case "*":
		out = ln.Val * rn.Val
	case "/":
		// Deliberately unclassified, matching the out-of-range-index case
		// below: the original interpreter's `a / b` raises ZeroDivisionError,
		// caught by its generic exception handler and reported as an
		// "Unknown Error", rather than letting the statement proceed with a
		// silent +Inf/-Inf/NaN.
		if rn.Val == 0 {
			return nil, fmt.Errorf("float division by zero")
		}
		out = ln.Val / rn.Val
	case "%":
		divisor := int64(rn.Val)
		if divisor == 0 {
			return nil, fmt.Errorf("integer division or modulo by zero")
		}
		out = float64(int64(ln.Val) % divisor)
	case "^":
		out = math.Pow(ln.Val, rn.Val)
	}
	return []value.Value{&value.Number{Val: out}}, nil
}

// index implements `at` (spec.md §4.4), 1-based.
func (ev *Evaluator) index(operands []value.Value) ([]value.Value, error) {
	if len(operands) != 2 {
		return nil, nlerrors.Syntaxf("index requires a list and an index")
	}

	num, ok := operands[1].(*value.Number)
	if !ok {
		return nil, nlerrors.Typef("index must be a number")
	}
	lst, ok := operands[0].(*value.List)
	if !ok {
		return nil, nlerrors.Typef("you can only index a list")
	}

	i := int(num.Val) - 1
	if i < 0 || i >= len(lst.Elements) {
		// Deliberately unclassified: spec.md §7 treats out-of-range
		// indexing the same way the original's unguarded Python list
		// index does — it falls through to the driver's generic
		// "Unknown Error" case rather than a named Syntax/Type kind.
		return nil, fmt.Errorf("list index %d out of range", int(num.Val))
	}
	return []value.Value{lst.Elements[i]}, nil
}

// with implements `with` (spec.md §4.4): either pairs a function definition
// with its parameter names, or a function value with call-site arguments.
func (ev *Evaluator) with(operands []value.Value) ([]value.Value, error) {
	if len(operands) <= 1 {
		return nil, nlerrors.Syntaxf("function calls or definitions must specify a function to pair parameters with")
	}

	if w, ok := operands[0].(*value.Word); ok && w.Val == "function" {
		fn := &value.Function{Params: paramNames(operands[1:])}
		ev.St.LoadingFunction = true
		return []value.Value{fn}, nil
	}

	fn, ok := operands[0].(*value.Function)
	if !ok {
		return nil, nlerrors.Runtimef("%s is not a function", operands[0].String())
	}

	fn.Values = flattenArgs(operands[1:])
	return []value.Value{fn}, nil
}

// paramNames extracts parameter-name strings from `with function ...`'s
// remaining operands. A single List operand (produced when the definition
// names its parameters via a previously built list variable, since a bare
// comma-separated run of names is swallowed by the `,` operator's global
// precedence — see DESIGN.md) is unwrapped one level so each element
// contributes its own parameter name.
func paramNames(operands []value.Value) []string {
	var names []string
	for _, op := range operands {
		if l, ok := op.(*value.List); ok {
			for _, e := range l.Elements {
				names = append(names, paramNameOf(e))
			}
			continue
		}
		names = append(names, paramNameOf(op))
	}
	return names
}

func paramNameOf(v value.Value) string {
	if w, ok := v.(*value.Word); ok {
		return w.Val
	}
	return v.String()
}

// flattenArgs promotes a single scalar argument to a one-element slice, or
// unwraps a single List argument into its elements — covering both
// `Run f with 7.` and `Run f with args.` (args bound to a list).
func flattenArgs(operands []value.Value) []value.Value {
	if len(operands) == 1 {
		if l, ok := operands[0].(*value.List); ok {
			return append([]value.Value(nil), l.Elements...)
		}
	}
	return operands
}

// run implements `Run` (spec.md §4.4): invokes a Function value whose
// Params/Values are already paired by `with`.
func (ev *Evaluator) run(operands []value.Value) ([]value.Value, error) {
	if len(operands) != 1 {
		return nil, nlerrors.Runtimef("run requires exactly one function value")
	}

	fn, ok := operands[0].(*value.Function)
	if !ok {
		return nil, nlerrors.Runtimef("%s is not a function", operands[0].String())
	}
	if len(fn.Params) != len(fn.Values) {
		return nil, nlerrors.Runtimef("function expects %d argument(s), got %d", len(fn.Params), len(fn.Values))
	}

	snapshot := ev.St.Env.Snapshot()
	defer ev.St.Env.Restore(snapshot)

	for i, p := range fn.Params {
		ev.St.Env.Set(p, fn.Values[i])
	}

	wasInFunction := ev.St.InFunction
	ev.St.InFunction = true
	defer func() { ev.St.InFunction = wasInFunction }()

	var bodyErr error
	for _, stmt := range fn.Body {
		if ev.St.ReturnValue != nil {
			break
		}
		if len(stmt) > 0 && stmt[0] == "If" {
			if ev.ConditionalHook == nil {
				bodyErr = nlerrors.Runtimef("conditional evaluation is not wired")
			} else {
				bodyErr = ev.ConditionalHook(stmt[1:])
			}
		} else {
			_, bodyErr = ev.Execute(stmt)
		}
		if bodyErr != nil {
			break
		}
	}

	result := ev.St.ReturnValue
	ev.St.ReturnValue = nil

	if bodyErr != nil {
		return nil, bodyErr
	}
	if result != nil {
		return []value.Value{result}, nil
	}
	return nil, nil
}

// ret implements `return` (spec.md §4.4).
func (ev *Evaluator) ret(operands []value.Value) ([]value.Value, error) {
	if len(operands) != 1 {
		return nil, nlerrors.Runtimef("only one value can be returned from a function")
	}
	if !ev.St.InFunction {
		return nil, nlerrors.Runtimef("you can only return from inside a function")
	}
	ev.St.ReturnValue = operands[0]
	return nil, nil
}
