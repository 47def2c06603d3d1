// Package state holds the small mutable record threaded through evaluation:
// the environment plus the handful of flags that drive function loading,
// function invocation, and early return (spec.md §3, "Interpreter State").
package state

import (
	"github.com/andrewchester/nl/internal/env"
	"github.com/andrewchester/nl/internal/value"
)

// State is the process-wide interpreter state. There is exactly one
// instance for the lifetime of a run.
type State struct {
	Env *env.Environment

	// LoadingFunction is true while successive indented lines are being
	// appended to ActiveFunction's body.
	LoadingFunction bool
	// ActiveFunction names the Function value currently being populated.
	ActiveFunction string

	// InFunction is true while a function body is executing.
	InFunction bool
	// ReturnValue is set by `return` to short-circuit body execution; the
	// Run handler observes it between statements and clears it on exit.
	ReturnValue value.Value
}

// New creates a fresh State with an empty Environment.
func New() *State {
	return &State{Env: env.New()}
}
