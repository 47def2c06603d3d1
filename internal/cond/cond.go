// Package cond implements the one-armed conditional evaluator for
// `If <lhs> <relation> <rhs>, <statement>` lines (spec.md §4.5).
package cond

import (
	"github.com/andrewchester/nl/internal/eval"
	"github.com/andrewchester/nl/internal/nlerrors"
	"github.com/andrewchester/nl/internal/token"
	"github.com/andrewchester/nl/internal/value"
)

var relations = map[token.Token]bool{
	"equals": true,
}

// Evaluator runs the tokens following the initial `If` keyword.
type Evaluator struct {
	Eval *eval.Evaluator
}

// New creates a conditional Evaluator delegating sub-expression evaluation
// to the given statement Evaluator.
func New(ev *eval.Evaluator) *Evaluator {
	return &Evaluator{Eval: ev}
}

// Execute runs the tokens that follow `If` (spec.md §4.5).
func (c *Evaluator) Execute(tokens token.Line) error {
	delimiterIdx := -1
	for i, t := range tokens {
		if t.HasTrailingComma() {
			if delimiterIdx != -1 {
				return nlerrors.Syntaxf("a conditional may only have one ','")
			}
			delimiterIdx = i
		}
	}
	if delimiterIdx == -1 {
		return nlerrors.Syntaxf("conditionals must contain a condition with an equivalence statement, then a ',', followed by a statement")
	}

	tokens[delimiterIdx] = tokens[delimiterIdx].TrimTrailingComma()

	condition := tokens[:delimiterIdx+1]
	statement := tokens[delimiterIdx+1:]

	if len(condition) == 0 {
		return nlerrors.Syntaxf("a conditional must have a condition")
	}
	if len(statement) == 0 {
		return nlerrors.Syntaxf("a conditional must have a statement to execute")
	}

	relationIdx := -1
	for i, t := range condition {
		if relations[t] {
			if relationIdx != -1 {
				return nlerrors.Syntaxf("a conditional must have only one relation")
			}
			relationIdx = i
		}
	}
	if relationIdx == -1 {
		return nlerrors.Syntaxf("a conditional must have a relation")
	}

	leftTokens := condition[:relationIdx]
	rightTokens := condition[relationIdx+1:]

	leftVal, err := c.evalSingle(leftTokens)
	if err != nil {
		return err
	}
	rightVal, err := c.evalSingle(rightTokens)
	if err != nil {
		return err
	}

	if equal(leftVal, rightVal) {
		_, err := c.Eval.Execute(statement)
		return err
	}
	return nil
}

func (c *Evaluator) evalSingle(tokens token.Line) (value.Value, error) {
	vals, err := c.Eval.Execute(tokens)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, nlerrors.Runtimef("conditional error")
	}
	return vals[0], nil
}

// equal implements the `equals` relation (spec.md §4.5 step 6). Operands
// arrive already literal-resolved by the statement evaluator, so the
// original interpreter's redundant second resolution pass over raw tokens
// is unified away here, per DESIGN.md's resolution of that Open Question.
func equal(a, b value.Value) bool {
	switch av := a.(type) {
	case *value.Number:
		bv, ok := b.(*value.Number)
		return ok && av.Val == bv.Val
	case *value.Bool:
		bv, ok := b.(*value.Bool)
		return ok && av.Val == bv.Val
	case *value.Word:
		bv, ok := b.(*value.Word)
		return ok && av.Val == bv.Val
	case *value.List:
		bv, ok := b.(*value.List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *value.Function:
		bv, ok := b.(*value.Function)
		return ok && av == bv
	default:
		return false
	}
}
