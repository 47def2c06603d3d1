package eval

import (
	"bytes"
	"testing"

	"github.com/andrewchester/nl/internal/nlerrors"
	"github.com/andrewchester/nl/internal/state"
	"github.com/andrewchester/nl/internal/token"
	"github.com/andrewchester/nl/internal/value"
)

func newEvaluator() (*Evaluator, *bytes.Buffer) {
	st := state.New()
	ev := New(st)
	buf := &bytes.Buffer{}
	ev.Out = buf
	return ev, buf
}

func mustExecute(t *testing.T, ev *Evaluator, line string) []value.Value {
	t.Helper()
	vals, err := ev.Execute(token.Split(line))
	if err != nil {
		t.Fatalf("Execute(%q) returned error: %v", line, err)
	}
	return vals
}

func TestAssignmentBindsNumber(t *testing.T) {
	ev, _ := newEvaluator()
	mustExecute(t, ev, "x is 5")

	v, ok := ev.St.Env.Get("x")
	if !ok {
		t.Fatalf("x was not bound")
	}
	num, ok := v.(*value.Number)
	if !ok || num.Val != 5 {
		t.Fatalf("x = %#v, want Number{5}", v)
	}
}

func TestDisplayWritesSpaceJoinedLine(t *testing.T) {
	ev, buf := newEvaluator()
	mustExecute(t, ev, "x is 5")
	mustExecute(t, ev, "Display x")

	if got, want := buf.String(), "5.0 \n"; got != want {
		t.Fatalf("Display output = %q, want %q", got, want)
	}
}

func TestListConstructionAndBroadcastAdd(t *testing.T) {
	ev, _ := newEvaluator()
	mustExecute(t, ev, "xs is 1, 2, 3,")
	vals := mustExecute(t, ev, "xs + 10")

	lst, ok := vals[0].(*value.List)
	if !ok || len(lst.Elements) != 3 {
		t.Fatalf("xs + 10 = %#v", vals)
	}
	for i, want := range []float64{11, 12, 13} {
		n, ok := lst.Elements[i].(*value.Number)
		if !ok || n.Val != want {
			t.Fatalf("element %d = %#v, want %v", i, lst.Elements[i], want)
		}
	}
}

func TestIndexingIsOneBased(t *testing.T) {
	ev, _ := newEvaluator()
	mustExecute(t, ev, "xs is 10, 20, 30,")
	vals := mustExecute(t, ev, "xs at 2")

	n, ok := vals[0].(*value.Number)
	if !ok || n.Val != 20 {
		t.Fatalf("xs at 2 = %#v, want Number{20}", vals[0])
	}
}

func TestFunctionDefinitionAndInvocation(t *testing.T) {
	ev, _ := newEvaluator()
	mustExecute(t, ev, "sq is a function with n")
	// manually append the single body statement, mirroring what the line
	// dispatcher would do for the indented "return n * n" line.
	fn, _ := ev.St.Env.Get("sq")
	fn.(*value.Function).Body = append(fn.(*value.Function).Body, token.Split("return n * n"))

	vals := mustExecute(t, ev, "Run sq with 7")
	n, ok := vals[0].(*value.Number)
	if !ok || n.Val != 49 {
		t.Fatalf("Run sq with 7 = %#v, want Number{49}", vals[0])
	}
}

func TestRunRestoresEnvironmentAfterReturn(t *testing.T) {
	ev, _ := newEvaluator()
	mustExecute(t, ev, "x is 1")
	mustExecute(t, ev, "sq is a function with n")
	fn, _ := ev.St.Env.Get("sq")
	fnVal := fn.(*value.Function)
	fnVal.Body = append(fnVal.Body, token.Split("x is 99"), token.Split("return n"))

	mustExecute(t, ev, "Run sq with 5")

	v, _ := ev.St.Env.Get("x")
	n, ok := v.(*value.Number)
	if !ok || n.Val != 1 {
		t.Fatalf("x leaked out of function call: %#v", v)
	}
}

func TestArithmeticOnWordIsTypeError(t *testing.T) {
	ev, _ := newEvaluator()
	_, err := ev.Execute(token.Split("1 + hello"))
	ce, ok := err.(*nlerrors.Error)
	if !ok || ce.Kind != nlerrors.Type {
		t.Fatalf("Execute(\"1 + hello\") err = %#v, want a Type error", err)
	}
}

func TestSingleOperatorTokenIsSyntaxError(t *testing.T) {
	ev, _ := newEvaluator()
	_, err := ev.Execute(token.Split("is"))
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestModuloTruncatesOperands(t *testing.T) {
	ev, _ := newEvaluator()
	vals := mustExecute(t, ev, "7.9 % 2.9")
	n, ok := vals[0].(*value.Number)
	if !ok || n.Val != 1 {
		t.Fatalf("7.9 %% 2.9 = %#v, want Number{1} (int(7)%%int(2))", vals[0])
	}
}

func TestDivisionByZeroIsReportedNotSilentInf(t *testing.T) {
	ev, _ := newEvaluator()
	_, err := ev.Execute(token.Split("1 / 0"))
	if err == nil {
		t.Fatalf("expected an error for division by zero, got a result instead")
	}
}

func TestModuloByZeroTruncationIsReportedNotAPanic(t *testing.T) {
	ev, _ := newEvaluator()
	// 0.5 truncates to int64(0), so this hits the same zero-divisor guard
	// as a literal "5 % 0" without Go's integer % panicking.
	_, err := ev.Execute(token.Split("5 % 0.5"))
	if err == nil {
		t.Fatalf("expected an error for modulo by a zero-truncating divisor, got a result instead")
	}
}
