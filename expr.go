// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

// Expr is a small algebraic tree for CNF, built from a clause list by
// ParseClauses. It exists only to drive Builder.Build; it is not a general
// propositional-logic package.
type Expr interface {
	isExpr()
}

// ConstExpr is a Boolean constant.
type ConstExpr struct{ Value bool }

// VarExpr is a positive literal reference to a variable.
type VarExpr struct{ Var Variable }

// NotExpr negates its operand.
type NotExpr struct{ Inner Expr }

// AndExpr is the conjunction of two expressions.
type AndExpr struct{ Left, Right Expr }

// OrExpr is the disjunction of two expressions.
type OrExpr struct{ Left, Right Expr }

func (ConstExpr) isExpr() {}
func (VarExpr) isExpr()   {}
func (NotExpr) isExpr()   {}
func (AndExpr) isExpr()   {}
func (OrExpr) isExpr()    {}

// ParseClauses splits a clause list into a slice of Expr, each an And of
// (up to) two consecutive clauses. Clause i and i+1 are combined for even
// i; a trailing odd clause is padded with And(last, Const(true)) so that
// downstream code (Builder.ParallelBuild) always sees an even-sized
// pairing. The padding is semantically a no-op: And(e, true) ≡ e. A list of
// exactly one clause is the exception: it yields that clause's Or-chain
// alone, unpadded.
func ParseClauses(clauses [][]int32) []Expr {
	if len(clauses) == 1 {
		return []Expr{parseClause(clauses[0])}
	}
	out := make([]Expr, 0, (len(clauses)+1)/2)
	n := 0
	for n+1 < len(clauses) {
		out = append(out, AndExpr{Left: parseClause(clauses[n]), Right: parseClause(clauses[n+1])})
		n += 2
	}
	if len(clauses)%2 != 0 {
		out = append(out, AndExpr{Left: parseClause(clauses[len(clauses)-1]), Right: ConstExpr{Value: true}})
	}
	return out
}

// parseClause builds a right-associated Or-chain from a single clause's
// literals.
func parseClause(clause []int32) Expr {
	if len(clause) == 1 {
		return parseVar(clause[0])
	}
	return OrExpr{Left: parseVar(clause[0]), Right: parseClause(clause[1:])}
}

// parseVar turns a signed DIMACS literal into a Var or a Not(Var).
func parseVar(lit int32) Expr {
	if lit < 0 {
		return NotExpr{Inner: VarExpr{Var: Variable(-lit)}}
	}
	return VarExpr{Var: Variable(lit)}
}

// optBool is a ternary Boolean: known true, known false, or unknown (nil).
type optBool = *bool

func optTrue() optBool  { v := true; return &v }
func optFalse() optBool { v := false; return &v }

// and is the ternary truth table for conjunction: a known-false operand
// short-circuits regardless of the other side; two known-true operands
// give true; anything else is unknown.
func and(l, r optBool) optBool {
	switch {
	case l != nil && !*l:
		return optFalse()
	case r != nil && !*r:
		return optFalse()
	case l != nil && *l && r != nil && *r:
		return optTrue()
	default:
		return nil
	}
}

// or is the ternary truth table for disjunction, dual to and.
func or(l, r optBool) optBool {
	switch {
	case l != nil && *l:
		return optTrue()
	case r != nil && *r:
		return optTrue()
	case l != nil && !*l && r != nil && !*r:
		return optFalse()
	default:
		return nil
	}
}
