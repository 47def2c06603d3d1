package interp_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/andrewchester/nl/internal/driver"
	"github.com/andrewchester/nl/internal/interp"
	"github.com/gkampitakis/go-snaps/snaps"
)

// run drives a whole program through the driver (mirroring what the CLI
// does) and returns its stdout/stderr.
func run(t *testing.T, source string) (stdout, stderr string) {
	t.Helper()
	var out, errs bytes.Buffer
	ip := interp.New(&out)
	if err := driver.RunReader(bytes.NewBufferString(source), ip, &errs); err != nil {
		t.Fatalf("RunReader: %v", err)
	}
	return out.String(), errs.String()
}

func TestAssignAndDisplay(t *testing.T) {
	out, errs := run(t, "x is 5.\nDisplay x.\n")
	if errs != "" {
		t.Fatalf("unexpected stderr: %q", errs)
	}
	if out != "5.0 \n" {
		t.Fatalf("stdout = %q, want %q", out, "5.0 \n")
	}
}

func TestConditionalExample(t *testing.T) {
	out, _ := run(t, "x is 3.\nIf x equals 3, Display x.\n")
	if out != "3.0 \n" {
		t.Fatalf("stdout = %q, want %q", out, "3.0 \n")
	}
}

func TestFunctionDefinitionCallAndReturn(t *testing.T) {
	source := "sq is a function with n.\n return n * n.\nDisplay Run sq with 7.\n"
	out, errs := run(t, source)
	if errs != "" {
		t.Fatalf("unexpected stderr: %q", errs)
	}
	if out != "49.0 \n" {
		t.Fatalf("stdout = %q, want %q", out, "49.0 \n")
	}
}

func TestMissingPeriodIsSyntaxError(t *testing.T) {
	_, errs := run(t, "Display 1\n")
	want := "Syntax error on line 1: Each line must end with a '.'\n"
	if errs != want {
		t.Fatalf("stderr = %q, want %q", errs, want)
	}
}

func TestCommentsAndBlankLinesCountTowardLineNumbers(t *testing.T) {
	source := "// a comment\n\nDisplay 1 + hello.\n"
	_, errs := run(t, source)
	want := "Type Error on line 3: invalid type for mathematical operation\n"
	if errs != want {
		t.Fatalf("stderr = %q, want %q", errs, want)
	}
}

func TestFixturePrograms(t *testing.T) {
	programs := map[string]string{
		"list_broadcast": "xs is 1, 2, 3,.\nDisplay xs + 10.\n",
		"list_index":      "xs is 10, 20, 30,.\nDisplay xs at 2.\n",
		"triple_function": "triple is a function with n.\n return n * 3.\nDisplay Run triple with 4.\n",
	}

	for name, source := range programs {
		t.Run(name, func(t *testing.T) {
			out, errs := run(t, source)
			if errs != "" {
				t.Fatalf("unexpected stderr for %s: %q", name, errs)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), out)
		})
	}
}
