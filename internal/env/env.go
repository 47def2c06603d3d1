// Package env implements the interpreter's single flat name->value mapping,
// including the snapshot/restore pair used to scope a function invocation.
package env

import (
	"fmt"

	"github.com/andrewchester/nl/internal/value"
	"github.com/maruel/natural"
	"github.com/tidwall/sjson"
)

// Environment is the process-wide variable table. Unlike a lexically scoped
// interpreter, NaturalLanguage has exactly one: keys are unique, insertion
// order is irrelevant, and nesting is achieved only through Snapshot/Restore
// around a function call.
type Environment struct {
	store map[string]value.Value
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// Get looks up name, reporting whether it is bound.
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.store[name]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (e *Environment) Set(name string, v value.Value) {
	e.store[name] = v
}

// Snapshot copies the current bindings. The copy is shallow: it isolates a
// function call's local assignments (rebinding or adding names) from the
// caller, but the Values themselves are shared, so a Function value changed
// in place during the call (its call-site arguments or its name label)
// stays changed after Restore.
func (e *Environment) Snapshot() map[string]value.Value {
	cp := make(map[string]value.Value, len(e.store))
	for k, v := range e.store {
		cp[k] = v
	}
	return cp
}

// Restore replaces the current bindings with a previously taken Snapshot.
// Called on every exit path of a function invocation — normal completion,
// early return, or a propagating classified error — so local assignments
// never leak into the caller's scope.
func (e *Environment) Restore(snapshot map[string]value.Value) {
	e.store = snapshot
}

// Dump renders the environment as a JSON text document, keyed "vars.<name>",
// with keys emitted in natural sort order (x2 before x10) so the output is
// stable and readable across runs. Built incrementally with sjson rather
// than encoding/json, since the shape is a loose bag of heterogeneous
// Values rather than a fixed struct.
func (e *Environment) Dump() (string, error) {
	names := make([]string, 0, len(e.store))
	for k := range e.store {
		names = append(names, k)
	}
	natural.Sort(names)

	doc := "{}"
	var err error
	for _, name := range names {
		doc, err = sjson.Set(doc, "vars."+name, renderValue(e.store[name]))
		if err != nil {
			return "", fmt.Errorf("dump environment: %w", err)
		}
	}
	return doc, nil
}

// renderValue projects a value.Value down to something sjson can encode:
// scalars as themselves, Lists/Functions as their textual form, since the
// debug dump is for human/--query inspection, not round-tripping.
func renderValue(v value.Value) any {
	switch vv := v.(type) {
	case *value.Number:
		return vv.Val
	case *value.Bool:
		return vv.Val
	case *value.Word:
		return vv.Val
	default:
		return v.String()
	}
}
