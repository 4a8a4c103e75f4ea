// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"context"
	"testing"

	"github.com/kondylidou/master-thes-code/cdcl"
	"github.com/stretchr/testify/assert"
)

func TestBuilderBuildConstAndVar(t *testing.T) {
	ord := simpleOrdering()
	cdb := NewClauseDatabase(cdcl.NewFixture(3))
	b := NewBuilder(ord, cdb)

	assert.True(t, b.Build(context.Background(), ConstExpr{Value: true}).IsTrue())
	assert.True(t, b.Build(context.Background(), ConstExpr{Value: false}).IsFalse())

	d := b.Build(context.Background(), VarExpr{Var: 1})
	assert.Equal(t, Variable(1), d.VarOf(d.Root()))
}

func TestBuilderBuildNotNegates(t *testing.T) {
	ord := simpleOrdering()
	cdb := NewClauseDatabase(cdcl.NewFixture(3))
	b := NewBuilder(ord, cdb)
	d := b.Build(context.Background(), NotExpr{Inner: VarExpr{Var: 1}})
	root := d.Root()
	assert.True(t, d.Low(root).IsOne())
	assert.True(t, d.High(root).IsZero())
}

func TestBuilderBuildAndOfTwoVars(t *testing.T) {
	ord := simpleOrdering()
	cdb := NewClauseDatabase(cdcl.NewFixture(3))
	b := NewBuilder(ord, cdb)
	d := b.Build(context.Background(), AndExpr{Left: VarExpr{Var: 1}, Right: VarExpr{Var: 2}})
	assignment, err := d.Solve([]Variable{1, 2})
	assert.NoError(t, err)
	assert.True(t, assignment[1])
	assert.True(t, assignment[2])
}

func TestBuilderParallelBuildConjoinsAllClauses(t *testing.T) {
	clauses := [][]int32{{1, 2}, {-1, 3}, {-2, -3}}
	vars := []Variable{1, 2, 3}
	ord := NewOrdering(vars, Score(clauses))
	cdb := NewClauseDatabase(cdcl.NewFixture(3))
	b := NewBuilder(ord, cdb)
	coord := NewCoordinator()

	exprs := ParseClauses(clauses)
	d := b.ParallelBuild(context.Background(), exprs, 0, coord)
	assert.NoError(t, d.CheckSat(vars, clauses))
}

func TestBuilderParallelBuildStopsOnCancel(t *testing.T) {
	clauses := [][]int32{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}}
	vars := []Variable{1, 2, 3, 4, 5, 6}
	ord := NewOrdering(vars, Score(clauses))
	cdb := NewClauseDatabase(cdcl.NewFixture(6))
	b := NewBuilder(ord, cdb)
	coord := NewCoordinator()
	coord.Cancel()

	exprs := ParseClauses(clauses)
	d := b.ParallelBuild(context.Background(), exprs, 0, coord)
	assert.NotNil(t, d)
}

func TestAddClausesDuringBuildDeduplicates(t *testing.T) {
	ord := simpleOrdering()
	cdb := NewClauseDatabase(cdcl.NewFixture(3))
	b := NewBuilder(ord, cdb)

	pending := []Expr{VarExpr{Var: 1}}
	pending = b.AddClausesDuringBuild(pending, [][]int32{{1}, {2}})
	assert.Len(t, pending, 2)

	pending = b.AddClausesDuringBuild(pending, [][]int32{{2}})
	assert.Len(t, pending, 2, "duplicate clause must not be appended twice")
}
