package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/andrewchester/nl/internal/driver"
	"github.com/andrewchester/nl/internal/interp"
	"github.com/spf13/cobra"
)

var (
	trace    bool
	dumpAST  bool
	dumpEnv  bool
	queryEnv string
)

var rootCmd = &cobra.Command{
	Use:   "nl [path]",
	Short: "NaturalLanguage interpreter",
	Long: `nl runs a NaturalLanguage (.nl) source file: a sequence of
single-line, period-terminated statements supporting numbers, booleans,
bare-word strings, lists, variables, single-return functions, arithmetic,
list indexing, one-armed conditionals, and line-oriented printing.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFile,
	// The exact stray-argument-count message below is part of the CLI
	// contract; cobra's own usage/error output would not match it.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&trace, "trace", false, "print each statement's tokens before evaluating it")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the tokenized statement list as YAML before running")
	rootCmd.Flags().BoolVar(&dumpEnv, "dump-env", false, "print the final variable bindings as JSON after running")
	rootCmd.Flags().StringVar(&queryEnv, "query", "", "print a single field (gjson path) out of the final variable bindings")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Println("Please specify source file.")
		return nil
	}
	path := args[0]

	if !strings.HasSuffix(path, ".nl") {
		fmt.Println("Please provide a NaturalLanguage .nl file.")
		// Matching existing behavior: this is a warning, not a hard stop.
	}

	if dumpAST {
		if err := printDumpAST(path); err != nil {
			return err
		}
	}

	ip := interp.New(os.Stdout)
	ip.Trace = trace

	if err := driver.Run(path, ip, os.Stderr); err != nil {
		return err
	}

	if dumpEnv || queryEnv != "" {
		return printEnv(ip, queryEnv)
	}
	return nil
}
