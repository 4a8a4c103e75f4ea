// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package cdcl defines the seam between the BDD builder and the CDCL
// solver it runs alongside. The solver itself is treated as an opaque
// external collaborator, reused as-is from the literature; this package
// only names the operations the BDD side needs, matching the interface
// shape a gini-backed SAT solver exposes (Assume, Solve, Value), without
// importing gini itself — CDCL internals are out of scope here.
package cdcl

// Solver is the surface a CDCL collaborator must expose to the BDD
// builder and its clause database.
type Solver interface {
	// AddToClause stages one literal of a clause the BDD side is
	// building up to commit with CommitClause.
	AddToClause(lit int32)
	// CommitClause finalizes the clause staged by AddToClause.
	CommitClause()
	// CleanClause discards a staged, not-yet-committed clause.
	CleanClause()

	// Assume adds a unit assumption for the solver's next Solve call.
	Assume(lit int32)

	// AddToClauseReceive stages one literal of a clause exported by the
	// BDD side toward the solver's incoming-clause staging area.
	AddToClauseReceive(lit int32)
	// CommitIncomingClause finalizes a clause staged by
	// AddToClauseReceive.
	CommitIncomingClause()

	// Solve runs the decision procedure. It returns 0 for SAT and a
	// nonzero code for UNSAT, matching the CDCL surface's convention.
	Solve() int

	// Value reports a variable's value in the current model: 0 for
	// true, 1 for false, 2 for undefined. varIndex is 0-based.
	Value(varIndex int) int
}
