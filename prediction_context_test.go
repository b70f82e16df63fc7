// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_IdempotentOnEqualInputs(t *testing.T) {
	a := NewSingletonPredictionContext(EmptyPredictionContext, 5)
	got := Merge(a, a, true, nil)
	assert.Same(t, a, got)

	b := NewSingletonPredictionContext(EmptyPredictionContext, 5)
	got2 := Merge(a, b, true, nil)
	assert.Same(t, a, got2)
}

func TestMerge_SymmetricOnDistinctSingletons(t *testing.T) {
	a := NewSingletonPredictionContext(EmptyPredictionContext, 5)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 7)

	ab := Merge(a, b, true, nil)
	ba := Merge(b, a, true, nil)

	require.True(t, ab.equals(ba))

	arr, ok := ab.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{5, 7}, arr.returnStates)
}

func TestMerge_EmptyAbsorbsUnderRootWildcard(t *testing.T) {
	a := NewSingletonPredictionContext(EmptyPredictionContext, 5)
	got := Merge(EmptyPredictionContext, a, true, nil)
	assert.Equal(t, EmptyPredictionContext, got)

	got2 := Merge(a, EmptyPredictionContext, true, nil)
	assert.Equal(t, EmptyPredictionContext, got2)
}

func TestMerge_EmptyReturnStateSortsLastInArray(t *testing.T) {
	d := NewSingletonPredictionContext(EmptyPredictionContext, EmptyReturnState)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 3)

	merged := mergeRoot(d, b, false)
	require.NotNil(t, merged)
	arr, ok := merged.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{3, EmptyReturnState}, arr.returnStates)
}

func TestMerge_ArraysStaySortedAscending(t *testing.T) {
	a := NewSingletonPredictionContext(EmptyPredictionContext, 3)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 7)
	c := NewSingletonPredictionContext(EmptyPredictionContext, 5)

	m1 := Merge(a, b, true, nil)
	m2 := Merge(m1, c, true, nil)

	arr, ok := m2.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{3, 5, 7}, arr.returnStates)
}

func TestMerge_CommonParentCollapsesToArrayOfTwo(t *testing.T) {
	parent := NewSingletonPredictionContext(EmptyPredictionContext, 99)
	a := NewSingletonPredictionContext(parent, 1)
	b := NewSingletonPredictionContext(parent, 2)

	merged := Merge(a, b, true, nil)
	arr, ok := merged.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, arr.returnStates)
	assert.True(t, contextsEqual(arr.parents[0], parent))
	assert.True(t, contextsEqual(arr.parents[1], parent))
}

func TestPredictionContextCache_InternsStructurallyEqualNodes(t *testing.T) {
	cache := NewPredictionContextCache()

	a := NewSingletonPredictionContext(EmptyPredictionContext, 12)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 12)
	require.False(t, a == b)

	ca := cache.getCachedContext(a, make(map[PredictionContext]PredictionContext))
	cb := cache.getCachedContext(b, make(map[PredictionContext]PredictionContext))
	assert.Same(t, ca, cb)
}

func TestFromRuleContext_NilYieldsEmpty(t *testing.T) {
	atn := NewATN(ATNTypeParser, 1)
	assert.Equal(t, EmptyPredictionContext, fromRuleContext(atn, nil))
}
