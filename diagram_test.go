// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConstTrueFalse(t *testing.T) {
	assert.True(t, NewTrue().IsTrue())
	assert.True(t, NewFalse().IsFalse())
	assert.True(t, NewConst(true).IsTrue())
	assert.True(t, NewConst(false).IsFalse())
}

func TestNewVarShape(t *testing.T) {
	d := NewVar(5)
	assert.Equal(t, 3, d.Size())
	root := d.Root()
	assert.Equal(t, Variable(5), d.VarOf(root))
	assert.True(t, d.Low(root).IsZero())
	assert.True(t, d.High(root).IsOne())
}

func TestNewNotVarShape(t *testing.T) {
	d := NewNotVar(5)
	root := d.Root()
	assert.True(t, d.Low(root).IsOne())
	assert.True(t, d.High(root).IsZero())
}

func TestDiagramReplaceLowHigh(t *testing.T) {
	d := NewVar(5)
	root := d.Root()
	d.ReplaceLow(root, 1)
	assert.True(t, d.Low(root).IsOne())
	d.ReplaceHigh(root, 0)
	assert.True(t, d.High(root).IsZero())
}

func TestDiagramIndices(t *testing.T) {
	d := NewVar(5)
	idx := d.Indices()
	assert.Equal(t, []Pointer{0, 1, 2}, idx)
}

func TestDiagramNegateVar(t *testing.T) {
	d := NewVar(5)
	neg := d.Negate()
	root := neg.Root()
	assert.True(t, neg.Low(root).IsOne())
	assert.True(t, neg.High(root).IsZero())
}

func TestDiagramNegateConst(t *testing.T) {
	assert.True(t, NewTrue().Negate().IsFalse())
	assert.True(t, NewFalse().Negate().IsTrue())
}

func TestDiagramClone(t *testing.T) {
	d := NewVar(5)
	clone := d.Clone()
	clone.ReplaceLow(clone.Root(), 1)
	assert.True(t, d.Low(d.Root()).IsZero(), "mutating the clone must not affect the original")
}
