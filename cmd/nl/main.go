// Command nl runs a NaturalLanguage (.nl) source file.
package main

import (
	"os"

	"github.com/andrewchester/nl/cmd/nl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
