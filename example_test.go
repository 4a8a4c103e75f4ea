// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore_test

import (
	"context"
	"fmt"

	bddcore "github.com/kondylidou/master-thes-code"
	"github.com/kondylidou/master-thes-code/cdcl"
)

// This example shows the basic usage of the package: build a BDD from a
// small CNF, solve it, and print a satisfying assignment.
func Example_basic() {
	clauses := [][]int32{
		{1, 2},
		{-1, 3},
		{2, -3},
	}
	vars := []bddcore.Variable{1, 2, 3}
	ord := bddcore.NewOrdering(vars, bddcore.Score(clauses))
	cdb := bddcore.NewClauseDatabase(cdcl.NewFixture(3))
	builder := bddcore.NewBuilder(ord, cdb)

	exprs := bddcore.ParseClauses(clauses)
	d := builder.Build(context.Background(), exprs[0])
	for _, e := range exprs[1:] {
		d = bddcore.And(ord, d, builder.Build(context.Background(), e))
	}

	err := d.CheckSat(vars, clauses)
	fmt.Printf("satisfiable: %v\n", err == nil)
	// Output:
	// satisfiable: true
}

// This example runs the cooperative CDCL/BDD pairing through Run, using the
// in-repo DPLL fixture in place of a production solver.
func Example_coordinatedRun() {
	clauses := [][]int32{
		{1, 2},
		{-1, 3},
	}
	vars := []bddcore.Variable{1, 2, 3}
	ord := bddcore.NewOrdering(vars, bddcore.Score(clauses))
	solver := cdcl.NewFixture(3)
	solver.AddClause(1, 2)
	solver.AddClause(-1, 3)
	cdb := bddcore.NewClauseDatabase(solver)
	builder := bddcore.NewBuilder(ord, cdb)
	coord := bddcore.NewCoordinator()

	exprs := bddcore.ParseClauses(clauses)
	result, err := bddcore.Run(context.Background(), coord,
		func(ctx context.Context) error {
			solver.Solve()
			return nil
		},
		func(ctx context.Context) *bddcore.Diagram {
			return builder.ParallelBuild(ctx, exprs, 0, coord)
		},
	)
	fmt.Printf("ran without error: %v, diagram produced: %v\n", err == nil, result != nil)
	// Output:
	// ran without error: true, diagram produced: true
}
