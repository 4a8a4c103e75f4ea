// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import "math/rand"

// Solve extracts a satisfying assignment from d by walking backward from
// the 1-sink: whichever node's low (resp. high) child equals the running
// accumulator contributes a false (resp. true) assignment for that node's
// variable, and becomes the new accumulator. Variables the walk never
// visits are left unassigned in the result (see CheckSat, which treats
// such variables as "don't care" and assigns them false by convention).
func (d *Diagram) Solve(orderedVars []Variable) (map[Variable]bool, error) {
	if d.IsFalse() {
		return nil, ErrFormulaUnsolvable
	}
	assignment := make(map[Variable]bool, len(orderedVars))
	acc := Pointer(1)

	for _, p := range d.Indices() {
		if p.IsTerminal() {
			continue
		}
		if d.Low(p) == acc {
			assignment[d.VarOf(p)] = false
			acc = p
		}
		if d.High(p) == acc {
			assignment[d.VarOf(p)] = true
			acc = p
		}
	}
	return assignment, nil
}

// CheckSat samples a random subset of clauses and verifies that the
// assignment extracted by Solve satisfies all of them. Variables Solve
// left unassigned (because resolution made their polarity irrelevant
// along every path the walk took) are filled in as false before
// evaluation, matching the original's own "it is not important what
// polarity these variables have" comment.
func (d *Diagram) CheckSat(orderedVars []Variable, clauses [][]int32) error {
	assignment, err := d.Solve(orderedVars)
	if err != nil {
		return err
	}
	for _, v := range orderedVars {
		if _, ok := assignment[v]; !ok {
			if _, negOk := assignment[-v]; !negOk {
				assignment[v] = false
			}
		}
	}

	n := len(clauses)
	if n == 0 {
		return nil
	}
	amount := 1
	if n > 1 {
		amount = 1 + rand.Intn(n-1)
	}
	sample := sampleClauses(clauses, amount)

	for _, expr := range ParseClauses(sample) {
		value := evalExpr(expr, assignment)
		if value == nil {
			return ErrInsufficientAssignment
		}
		if !*value {
			return ErrFormulaUnsolvable
		}
	}
	return nil
}

func sampleClauses(clauses [][]int32, amount int) [][]int32 {
	idx := rand.Perm(len(clauses))[:amount]
	out := make([][]int32, amount)
	for i, j := range idx {
		out[i] = clauses[j]
	}
	return out
}

// evalExpr evaluates a parsed Expr against a full or partial assignment.
// A nil result means some referenced variable is missing from assignment,
// the condition ErrInsufficientAssignment reports.
func evalExpr(e Expr, assignment map[Variable]bool) optBool {
	switch n := e.(type) {
	case ConstExpr:
		return boolPtr(n.Value)
	case VarExpr:
		if v, ok := assignment[n.Var]; ok {
			return boolPtr(v)
		}
		if v, ok := assignment[-n.Var]; ok {
			return boolPtr(!v)
		}
		return nil
	case NotExpr:
		inner := evalExpr(n.Inner, assignment)
		if inner == nil {
			return nil
		}
		return boolPtr(!*inner)
	case AndExpr:
		return and(evalExpr(n.Left, assignment), evalExpr(n.Right, assignment))
	case OrExpr:
		return or(evalExpr(n.Left, assignment), evalExpr(n.Right, assignment))
	default:
		return nil
	}
}
