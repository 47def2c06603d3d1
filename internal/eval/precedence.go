package eval

import "github.com/andrewchester/nl/internal/token"

// precedenceEntry pairs an operator literal with its binding precedence
// (spec.md §4.2: lower number splits first / binds last). The slice order
// matters: when two different operators share a precedence and are both
// present in the same statement, the earlier entry in this list wins the
// tie, exactly as the original interpreter's dict-iteration order did.
type precedenceEntry struct {
	Op   token.Token
	Prec int
}

var precedenceOrder = []precedenceEntry{
	{"is", 1},
	{"Display", 2},
	{"+", 4},
	{"-", 5},
	{"*", 5},
	{"/", 5},
	{"%", 5},
	{"^", 6},
	{"at", 9},
	{",", 3},
	{"Run", 7},
	{"with", 8},
	{"return", 0},
}

var operatorLiterals = func() map[token.Token]bool {
	m := make(map[token.Token]bool, len(precedenceOrder))
	for _, e := range precedenceOrder {
		m[e.Op] = true
	}
	return m
}()

// isOperatorLiteral reports whether t is, by itself, one of the recognized
// operator tokens (used for the "a lone operator token" syntax error).
func isOperatorLiteral(t token.Token) bool {
	return operatorLiterals[t]
}

// lowestPrecedenceOp scans tokens for the operator with the minimum
// precedence that is present, per spec.md §4.3 step 2: for `,`, "present"
// means some token ends with a comma; for every other operator, it means
// some token equals the operator literal exactly.
func lowestPrecedenceOp(tokens token.Line) (token.Token, bool) {
	var best token.Token
	bestPrec := int(^uint(0) >> 1) // max int
	found := false

	for _, entry := range precedenceOrder {
		if entry.Op == "," {
			for _, t := range tokens {
				if t.HasTrailingComma() {
					if entry.Prec < bestPrec {
						best, bestPrec, found = entry.Op, entry.Prec, true
					}
					break
				}
			}
			continue
		}

		for _, t := range tokens {
			if t == entry.Op {
				if entry.Prec < bestPrec {
					best, bestPrec, found = entry.Op, entry.Prec, true
				}
				break
			}
		}
	}

	return best, found
}

// indexOfToken returns the first index of op in tokens, or -1.
func indexOfToken(tokens token.Line, op token.Token) int {
	for i, t := range tokens {
		if t == op {
			return i
		}
	}
	return -1
}
