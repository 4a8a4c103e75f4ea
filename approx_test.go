// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffSetOnConstants(t *testing.T) {
	_, ok := OffSet(NewTrue())
	assert.False(t, ok)
	p, ok := OffSet(NewFalse())
	assert.True(t, ok)
	assert.Equal(t, Pointer(0), p)
}

func TestOffSetFindsZeroOneCandidate(t *testing.T) {
	d := NewVar(1)
	p, ok := OffSet(d)
	assert.True(t, ok)
	assert.Equal(t, d.Root(), p)
}

func TestOffSetFindsBottomNodeOfConjunction(t *testing.T) {
	ord := simpleOrdering()
	d := And(ord, NewVar(1), NewVar(2))
	// x1 & x2 always has some node whose children are exactly {0, 1},
	// since a reduced diagram's low and high children never coincide.
	p, ok := OffSet(d)
	assert.True(t, ok)
	low, high := d.Low(p), d.High(p)
	assert.True(t, (low.IsZero() && high.IsOne()) || (high.IsZero() && low.IsOne()))
}

func TestRoundUpShrinksSingleVarDiagram(t *testing.T) {
	d := NewVar(1)
	c := NewCoordinator()
	RoundUp(d, c)
	assert.True(t, d.IsTrue(), "rounding up a single-variable diagram's only candidate collapses it to true")
}

func TestRoundUpOnlyWeakens(t *testing.T) {
	ord := simpleOrdering()
	d := And(ord, NewVar(1), NewVar(2))
	before := d.Size()
	RoundUp(d, NewCoordinator())
	assert.LessOrEqual(t, d.Size(), before)
	// x1 & x2 over-approximates to x1 after rounding up the x2 node;
	// the result must still accept the strictly smaller original model.
	assignment, err := d.Solve([]Variable{1})
	assert.NoError(t, err)
	assert.True(t, assignment[1])
}

func TestReduceTautologiesOnConstants(t *testing.T) {
	// Must not panic on terminal diagrams.
	ReduceTautologies(NewTrue())
	ReduceTautologies(NewFalse())
}
