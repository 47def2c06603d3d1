// Package driver reads a NaturalLanguage (.nl) source file and feeds it,
// one statement line at a time, to an interp.Interpreter (spec.md §6).
// It is the "external collaborator" spec.md keeps out of the evaluator
// core: blank/comment skipping, 1-based line numbering, and per-line error
// reporting all live here.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrewchester/nl/internal/interp"
	"github.com/andrewchester/nl/internal/nlerrors"
	"github.com/andrewchester/nl/internal/token"
)

// Run reads path and feeds each non-blank, non-comment line to ip, in
// order. Per-line failures are reported to stderr with their 1-based line
// number (spec.md §7) and do not abort the run; only a failure to read the
// file itself is returned.
func Run(path string, ip *interp.Interpreter, stderr io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	return RunReader(f, ip, stderr)
}

// RunReader is Run's testable core, decoupled from the filesystem.
func RunReader(r io.Reader, ip *interp.Interpreter, stderr io.Writer) error {
	source, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	scanner := bufio.NewScanner(strings.NewReader(string(source)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if err := dispatchLine(ip, line); err != nil {
			if ip.Trace {
				fmt.Fprintln(stderr, nlerrors.ReportVerbose(lineNo, string(source), err))
			} else {
				fmt.Fprintln(stderr, nlerrors.Report(lineNo, err))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	return nil
}

// dispatchLine implements spec.md §6's line-level contract: the line must
// end with '.', which is stripped before splitting on spaces.
func dispatchLine(ip *interp.Interpreter, line string) error {
	if !strings.HasSuffix(line, ".") {
		return nlerrors.Syntaxf("Each line must end with a '.'")
	}
	body := strings.TrimSuffix(line, ".")
	return ip.DispatchLine(token.Split(body))
}
