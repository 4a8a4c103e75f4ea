// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import "sort"

// Ordering is a total order on CNF variables: rank[v] is lower for
// variables that should sit closer to a Diagram's root. The sentinel
// variable always receives the highest (last) rank, so it sorts below
// every real variable wherever an Ordering is consulted.
type Ordering struct {
	rank map[Variable]int
}

// Rank returns v's position in the order; variables never seen by
// NewOrdering fall back to the sentinel's rank, so unknown literals sort to
// the bottom rather than panicking (per the "never panic on a malformed
// clause" error policy).
func (o *Ordering) Rank(v Variable) int {
	if r, ok := o.rank[v]; ok {
		return r
	}
	return o.rank[sentinelVar]
}

// varScore is one variable's occurrence score before ranking.
type varScore struct {
	v     Variable
	score float64
}

// Score computes, for each variable occurring in clauses, the ratio of the
// number of clauses it occurs in (positively or negatively) to the mean
// arity of those clauses. Variables that recur across many short clauses
// are the most constraining and get the highest score.
func Score(clauses [][]int32) map[Variable]float64 {
	count := map[Variable]int{}
	aritySum := map[Variable]int{}
	for _, clause := range clauses {
		arity := len(clause)
		for _, lit := range clause {
			v := Variable(lit)
			if v < 0 {
				v = -v
			}
			count[v]++
			aritySum[v] += arity
		}
	}
	scores := make(map[Variable]float64, len(count))
	for v, c := range count {
		meanArity := float64(aritySum[v]) / float64(c)
		scores[v] = float64(c) / meanArity
	}
	return scores
}

// NewOrdering builds an Ordering from per-variable scores, in first-seen
// insertion order for variables, then ranked by Score descending, ties
// broken by insertion order (stable sort). order lists the variables in
// the order they were first encountered while parsing; it is permitted to
// contain variables absent from scores (treated as score 0).
func NewOrdering(order []Variable, scores map[Variable]float64) *Ordering {
	entries := make([]varScore, len(order))
	for i, v := range order {
		entries[i] = varScore{v: v, score: scores[v]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})
	rank := make(map[Variable]int, len(entries)+1)
	for i, e := range entries {
		rank[e.v] = i
	}
	rank[sentinelVar] = len(entries)
	return &Ordering{rank: rank}
}
