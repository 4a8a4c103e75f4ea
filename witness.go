// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import "context"

// SendWitnessClauses builds one clause for each edge into the 0-sink in cur
// and hands it to cdb.Send. Each clause follows a single path upward from
// that edge, so a 0-edge reachable along several paths yields one clause. onGoing must be true while cur is
// still being grown by a ParallelBuild step (see buildWitnessClause); pass
// false only once the whole formula's conjunction is final.
//
// Each non-terminal node whose low or high child is the 0-sink seeds one
// clause; buildWitnessClause walks the rest of the diagram to extend it.
// SendWitnessClauses polls c's export cancellation signal between nodes.
func SendWitnessClauses(ctx context.Context, cur *Diagram, ord *Ordering, cdb *ClauseDatabase, onGoing bool, c *Coordinator) {
	for _, p := range cur.Indices() {
		if c.Cancelled(SignalWitness) {
			return
		}
		if p.IsTerminal() {
			continue
		}
		if cur.Low(p).IsZero() {
			v := cur.VarOf(p)
			if clause, ok := buildWitnessClause(cur, []int32{int32(v)}, []Pointer{p}, onGoing); ok {
				cdb.Send(clause)
			}
		}
		if cur.High(p).IsZero() {
			v := cur.VarOf(p)
			if clause, ok := buildWitnessClause(cur, []int32{-int32(v)}, []Pointer{p}, onGoing); ok {
				cdb.Send(clause)
			}
		}
	}
}

// SendWitnessAssumptions is SendWitnessClauses's alternative export mode:
// instead of learned clauses, every surviving witness becomes a set of
// unit assumptions for the CDCL side's next restart. Grounded on the
// original implementation's CDB.send_assumptions. ParallelBuild always uses
// SendWitnessClauses; nothing in this package calls SendWitnessAssumptions,
// and the Coordinator has no option that selects it.
func SendWitnessAssumptions(ctx context.Context, cur *Diagram, cdb *ClauseDatabase, onGoing bool, c *Coordinator) {
	for _, p := range cur.Indices() {
		if c.Cancelled(SignalWitness) {
			return
		}
		if p.IsTerminal() {
			continue
		}
		if cur.Low(p).IsZero() {
			v := cur.VarOf(p)
			if clause, ok := buildWitnessClause(cur, []int32{int32(v)}, []Pointer{p}, onGoing); ok {
				cdb.SendAssumptions(clause)
			}
		}
		if cur.High(p).IsZero() {
			v := cur.VarOf(p)
			if clause, ok := buildWitnessClause(cur, []int32{-int32(v)}, []Pointer{p}, onGoing); ok {
				cdb.SendAssumptions(clause)
			}
		}
	}
}

// buildWitnessClause walks cur forward from path[0], extending clause with
// a literal each time it finds the node whose low or high child is the
// running accumulator, until it runs out of nodes to extend through.
//
// When onGoing is true and the walk visits cur's root while the root is
// still the accumulator, i.e. the seed node path[0] is itself the root of
// the diagram still being built, the clause is withheld: such a clause is
// not yet known to be implied by the whole formula, since more conjuncts
// may still narrow it. A path that is extended up to the root from a lower
// seed node is kept.
func buildWitnessClause(cur *Diagram, clause []int32, path []Pointer, onGoing bool) ([]int32, bool) {
	acc := path[0]
	for _, p := range cur.Indices()[acc:] {
		if p.IsTerminal() {
			continue
		}
		if cur.Low(p) == acc {
			v := cur.VarOf(p)
			clause = append(clause, int32(v))
			acc = p
			path = append(path, p)
			continue
		}
		if cur.High(p) == acc {
			v := cur.VarOf(p)
			clause = append(clause, -int32(v))
			acc = p
			path = append(path, p)
			continue
		}
		if onGoing && p == cur.Root() && p == acc {
			return nil, false
		}
	}
	return clause, true
}
