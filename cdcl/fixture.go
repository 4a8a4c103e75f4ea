// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cdcl

// Fixture is a small backtracking solver implementing Solver, with no unit
// propagation. It
// exists only to give the builder, the coordinator, and the clause
// database integration tests something concrete to drive; it is not
// meant to be a competitive CDCL implementation, and it never learns
// clauses from conflicts (no analyzer, no VSIDS, no restarts) — it just
// enumerates assignments, which is enough to resolve the small instances
// this module's tests build.
type Fixture struct {
	clauses   [][]int32
	staging   []int32
	incoming  []int32
	assumed   []int32
	model     map[int32]bool
	nextVar   int
	nbVars    int
	satisfied bool
}

// NewFixture returns a Fixture over nbVars variables with no clauses yet.
func NewFixture(nbVars int) *Fixture {
	return &Fixture{nbVars: nbVars, model: map[int32]bool{}}
}

// AddClause registers a clause directly (test setup helper, bypassing the
// staging protocol AddToClause/CommitClause exist for).
func (f *Fixture) AddClause(clause ...int32) {
	c := make([]int32, len(clause))
	copy(c, clause)
	f.clauses = append(f.clauses, c)
}

func (f *Fixture) AddToClause(lit int32) {
	f.staging = append(f.staging, lit)
}

func (f *Fixture) CommitClause() {
	if len(f.staging) > 0 {
		f.clauses = append(f.clauses, f.staging)
	}
	f.staging = nil
}

func (f *Fixture) CleanClause() {
	f.staging = nil
}

func (f *Fixture) Assume(lit int32) {
	f.assumed = append(f.assumed, lit)
}

func (f *Fixture) AddToClauseReceive(lit int32) {
	f.incoming = append(f.incoming, lit)
}

func (f *Fixture) CommitIncomingClause() {
	if len(f.incoming) > 0 {
		f.clauses = append(f.clauses, f.incoming)
	}
	f.incoming = nil
}

// Solve performs exhaustive backtracking search over the (small) variable
// set, honoring any assumptions staged by Assume as forced unit clauses.
// It returns 0 on SAT, 1 on UNSAT.
func (f *Fixture) Solve() int {
	assignment := map[int32]bool{}
	for _, lit := range f.assumed {
		v, val := literalVar(lit)
		assignment[v] = val
	}
	if f.search(assignment, 1) {
		f.model = assignment
		f.satisfied = true
		return 0
	}
	f.satisfied = false
	return 1
}

func (f *Fixture) search(assignment map[int32]bool, v int32) bool {
	if int(v) > f.nbVars {
		return f.allSatisfied(assignment)
	}
	if _, ok := assignment[v]; ok {
		return f.search(assignment, v+1)
	}
	assignment[v] = true
	if f.search(assignment, v+1) {
		return true
	}
	assignment[v] = false
	if f.search(assignment, v+1) {
		return true
	}
	delete(assignment, v)
	return false
}

func (f *Fixture) allSatisfied(assignment map[int32]bool) bool {
	for _, clause := range f.clauses {
		ok := false
		for _, lit := range clause {
			v, want := literalVar(lit)
			if assignment[v] == want {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func literalVar(lit int32) (int32, bool) {
	if lit < 0 {
		return -lit, false
	}
	return lit, true
}

// Value reports 0 (true), 1 (false) or 2 (undefined) for a 0-based
// variable index, matching the Solver contract.
func (f *Fixture) Value(varIndex int) int {
	if !f.satisfied {
		return 2
	}
	val, ok := f.model[int32(varIndex)+1]
	if !ok {
		return 2
	}
	if val {
		return 0
	}
	return 1
}
