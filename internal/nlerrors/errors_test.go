package nlerrors

import (
	"errors"
	"strings"
	"testing"
)

func TestReportFormatsEachClassifiedKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Syntaxf("Each line must end with a '.'"), "Syntax error on line 1: Each line must end with a '.'"},
		{Typef("invalid type for mathematical operation"), "Type Error on line 1: invalid type for mathematical operation"},
		{Runtimef("you can only return from inside a function"), "Runtime error on line 1: you can only return from inside a function"},
		{errors.New("list index 9 out of range"), "Unknown Error occured: list index 9 out of range"},
	}

	for _, c := range cases {
		if got := Report(1, c.err); got != c.want {
			t.Fatalf("Report(1, %v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestReportVerboseAppendsIndentedSourceContext(t *testing.T) {
	source := "x is 1\nDisplay x + hello\n"
	got := ReportVerbose(2, source, Typef("invalid type for mathematical operation"))

	if !strings.HasPrefix(got, "Type Error on line 2: invalid type for mathematical operation\n") {
		t.Fatalf("ReportVerbose() = %q, want the Report() header first", got)
	}
	if !strings.Contains(got, "2 | Display x + hello") {
		t.Fatalf("ReportVerbose() = %q, want the failing line quoted", got)
	}
}

func TestReportVerboseFallsBackWhenLineOutOfRange(t *testing.T) {
	got := ReportVerbose(5, "x is 1\n", Syntaxf("boom"))
	want := Report(5, Syntaxf("boom"))
	if got != want {
		t.Fatalf("ReportVerbose() = %q, want bare Report() %q when line is out of range", got, want)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Syntax:  "Syntax",
		Type:    "Type",
		Runtime: "Runtime",
		Unknown: "Unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
