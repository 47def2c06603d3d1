package driver

import (
	"bytes"
	"testing"

	"github.com/andrewchester/nl/internal/interp"
)

func TestRunReaderSkipsBlankLinesAndComments(t *testing.T) {
	source := "// a header comment\n\nx is 5.\nDisplay x.\n"
	var out, errs bytes.Buffer
	ip := interp.New(&out)

	if err := RunReader(bytes.NewBufferString(source), ip, &errs); err != nil {
		t.Fatalf("RunReader: %v", err)
	}
	if errs.String() != "" {
		t.Fatalf("unexpected stderr: %q", errs.String())
	}
	if got, want := out.String(), "5.0 \n"; got != want {
		t.Fatalf("stdout = %q, want %q", got, want)
	}
}

func TestRunReaderContinuesAfterAPerLineFailure(t *testing.T) {
	source := "Display 1 + hello.\nDisplay 2.\n"
	var out, errs bytes.Buffer
	ip := interp.New(&out)

	if err := RunReader(bytes.NewBufferString(source), ip, &errs); err != nil {
		t.Fatalf("RunReader: %v", err)
	}
	if got, want := out.String(), "2.0 \n"; got != want {
		t.Fatalf("stdout = %q, want %q (the failing line should not abort the run)", got, want)
	}
	if got, want := errs.String(), "Type Error on line 1: invalid type for mathematical operation\n"; got != want {
		t.Fatalf("stderr = %q, want %q", got, want)
	}
}

func TestMissingTrailingPeriodIsASyntaxError(t *testing.T) {
	var out, errs bytes.Buffer
	ip := interp.New(&out)

	if err := RunReader(bytes.NewBufferString("Display 1\n"), ip, &errs); err != nil {
		t.Fatalf("RunReader: %v", err)
	}
	want := "Syntax error on line 1: Each line must end with a '.'\n"
	if got := errs.String(); got != want {
		t.Fatalf("stderr = %q, want %q", got, want)
	}
}
