// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "and", OpAnd.String())
	assert.Equal(t, "or", OpOr.String())
}

func TestOperatorTernaryDispatch(t *testing.T) {
	tr, fa := boolPtr(true), boolPtr(false)
	assert.Equal(t, false, *OpAnd.ternary()(tr, fa))
	assert.Equal(t, true, *OpOr.ternary()(tr, fa))
}
