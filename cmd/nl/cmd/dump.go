package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/andrewchester/nl/internal/interp"
	"github.com/andrewchester/nl/internal/token"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

// printDumpAST tokenizes every non-blank, non-comment line of path (without
// evaluating any of them) and prints the result as YAML. There is no
// separate parse phase in this interpreter — "AST" here is the sequence of
// token.Lines the statement evaluator would otherwise consume one at a
// time — but the flag is the direct analogue of go-dws's --dump-ast.
func printDumpAST(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	var statements [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "//") {
			continue
		}
		body := strings.TrimSuffix(line, ".")
		statements = append(statements, token.Split(body).Strings())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	out, err := yaml.Marshal(statements)
	if err != nil {
		return fmt.Errorf("failed to render AST dump: %w", err)
	}
	fmt.Println("AST:")
	fmt.Print(string(out))
	return nil
}

// printEnv renders the interpreter's final variable bindings as JSON
// (env.Environment.Dump, built with tidwall/sjson), optionally narrowed to
// a single gjson path for --query.
func printEnv(ip *interp.Interpreter, query string) error {
	doc, err := ip.State.Env.Dump()
	if err != nil {
		return err
	}

	if query == "" {
		fmt.Println(doc)
		return nil
	}

	result := gjson.Get(doc, query)
	fmt.Println(result.String())
	return nil
}
