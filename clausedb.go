// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"github.com/kondylidou/master-thes-code/cdcl"
	"github.com/sirupsen/logrus"
)

// primeTable is the fixed set of 12 large primes the commutative hash
// family mixes literals through. Re-derived in Go from the original
// implementation's own filter (see DESIGN.md); not a language-specific
// port of a bitset/bloom-filter library, since none of the retrieved Go
// examples carry one.
var primeTable = [12]int64{
	2038072819, 2038073287, 2038073761, 2038074317,
	2038072823, 2038073321, 2038073767, 2038074319,
	2038072847, 2038073341, 2038073789, 2038074329,
}

const numPrimes = 12

// numBits sizes the filter's bit array at roughly 3.2MB, matching the
// original implementation's own constant.
const numBits = 26843543

// ClauseFilter is a probabilistic, order-invariant clause membership test:
// four hash functions, each commutative over literal order within a
// clause, so that permuting a clause's literals never changes whether it
// is considered a duplicate.
type ClauseFilter struct {
	bits []uint64
}

// NewClauseFilter returns an empty ClauseFilter.
func NewClauseFilter() *ClauseFilter {
	return &ClauseFilter{bits: make([]uint64, (numBits+63)/64)}
}

func (f *ClauseFilter) has(h int) bool {
	return f.bits[h/64]&(1<<uint(h%64)) != 0
}

func (f *ClauseFilter) set(h int) {
	f.bits[h/64] |= 1 << uint(h%64)
}

// Clear wipes the filter's bit array.
func (f *ClauseFilter) Clear() {
	for i := range f.bits {
		f.bits[i] = 0
	}
}

// commutativeHash is the XOR-reduction of lit*primeTable[(which*lit) mod
// numPrimes] over every literal in clause, for hash index which ∈
// {1,2,3,4}. Multiplication and XOR are both commutative, so literal order
// never changes the result.
func commutativeHash(clause []int32, which int64) int {
	var res int64
	for _, lit := range clause {
		l := int64(lit)
		idx := (which * l) % numPrimes
		if idx < 0 {
			idx = -idx
		}
		res ^= l * primeTable[idx]
	}
	m := res % numBits
	if m < 0 {
		m += numBits
	}
	return int(m)
}

// RegisterClause tests clause for membership and, on a miss, admits it.
// Unit clauses always pass without consulting the filter. A non-unit
// clause passes only if at least one of its four hashes misses; on pass,
// all four bits are set so a later identical (or hash-colliding) clause is
// rejected.
func (f *ClauseFilter) RegisterClause(clause []int32) bool {
	if len(clause) == 1 {
		return true
	}
	h1 := commutativeHash(clause, 1)
	h2 := commutativeHash(clause, 2)
	h3 := commutativeHash(clause, 3)
	h4 := commutativeHash(clause, 4)

	if f.has(h1) && f.has(h2) && f.has(h3) && f.has(h4) {
		return false
	}
	f.set(h1)
	f.set(h2)
	f.set(h3)
	f.set(h4)
	return true
}

// ClauseDatabase is the two-level deduplicating clause filter sitting
// between the BDD builder and the CDCL solver: a clause must pass both the
// global and the local filter before it is forwarded.
type ClauseDatabase struct {
	global *ClauseFilter
	local  *ClauseFilter
	solver cdcl.Solver
	log    *logrus.Entry

	Sent     uint64
	Received uint64
}

// NewClauseDatabase returns a ClauseDatabase that forwards admitted
// clauses to solver.
func NewClauseDatabase(solver cdcl.Solver) *ClauseDatabase {
	return &ClauseDatabase{
		global: NewClauseFilter(),
		local:  NewClauseFilter(),
		solver: solver,
		log:    logrus.WithField("component", "clausedb"),
	}
}

// ResetGlobal wipes the global filter.
func (cdb *ClauseDatabase) ResetGlobal() {
	cdb.global.Clear()
}

// ResetLocal wipes the local filter.
func (cdb *ClauseDatabase) ResetLocal() {
	cdb.local.Clear()
}

// Send registers clause with both filters and, if it passes both, stages
// it as a learned clause for the CDCL solver to commit.
func (cdb *ClauseDatabase) Send(clause []int32) {
	cdb.Sent++
	if !cdb.global.RegisterClause(clause) {
		return
	}
	if !cdb.local.RegisterClause(clause) {
		return
	}
	cdb.stageIncoming(clause)
	cdb.Received++
}

// SendAssumptions is Send's counterpart for the assumption-export path: on
// passing both filters, every literal in clause is staged as a unit
// assumption for the solver's next restart rather than as a learned
// clause.
func (cdb *ClauseDatabase) SendAssumptions(clause []int32) {
	cdb.Sent++
	if !cdb.global.RegisterClause(clause) {
		return
	}
	if !cdb.local.RegisterClause(clause) {
		return
	}
	if cdb.solver == nil {
		return
	}
	for _, lit := range clause {
		cdb.solver.Assume(lit)
	}
	cdb.Received++
}

func (cdb *ClauseDatabase) stageIncoming(clause []int32) {
	if cdb.solver == nil {
		return
	}
	for _, lit := range clause {
		cdb.solver.AddToClauseReceive(lit)
	}
	cdb.solver.CommitIncomingClause()
}

// Receive is the hook for pulling clauses the CDCL side exported back into
// the builder. It is a deliberate no-op, matching the original
// implementation's own stubbed contract exactly (see its commented-out
// "intended" body, preserved there as documentation of the never-finished
// direction): this is not a gap to fix.
func (cdb *ClauseDatabase) Receive() ([]int32, bool) {
	return nil, false
}
