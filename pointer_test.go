// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerTerminals(t *testing.T) {
	assert.True(t, Pointer(0).IsTerminal())
	assert.True(t, Pointer(1).IsTerminal())
	assert.False(t, Pointer(2).IsTerminal())
	assert.True(t, Pointer(0).IsZero())
	assert.True(t, Pointer(1).IsOne())
}

func TestPointerFromBoolAsBool(t *testing.T) {
	assert.Equal(t, Pointer(1), FromBool(true))
	assert.Equal(t, Pointer(0), FromBool(false))

	v, ok := Pointer(1).AsBool()
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = Pointer(0).AsBool()
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = Pointer(2).AsBool()
	assert.False(t, ok)
}

func TestPointerFlipIfTerminal(t *testing.T) {
	p := Pointer(0)
	p.flipIfTerminal()
	assert.Equal(t, Pointer(1), p)

	p = Pointer(1)
	p.flipIfTerminal()
	assert.Equal(t, Pointer(0), p)

	p = Pointer(5)
	p.flipIfTerminal()
	assert.Equal(t, Pointer(5), p)
}

func TestNodeTerminals(t *testing.T) {
	assert.True(t, zeroNode().IsZero())
	assert.True(t, oneNode().IsOne())
	assert.False(t, zeroNode().IsOne())

	n := mkNode(3, 0, 1)
	assert.False(t, n.IsTerminal())
}
