// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestATNConfigSet_AddMergesContextOnKeyHit(t *testing.T) {
	s := NewATNConfigSet(false)
	state := newBasicState(0)

	c1 := NewATNConfig(state, 1, NewSingletonPredictionContext(EmptyPredictionContext, 3), SemanticContextNone)
	c2 := NewATNConfig(state, 1, NewSingletonPredictionContext(EmptyPredictionContext, 7), SemanticContextNone)

	added1 := s.Add(c1, nil)
	added2 := s.Add(c2, nil)

	assert.True(t, added1)
	assert.False(t, added2)
	require.Equal(t, 1, s.Length())

	merged, ok := s.configs[0].context.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{3, 7}, merged.returnStates)
}

func TestATNConfigSet_HasSemanticContextFlag(t *testing.T) {
	s := NewATNConfigSet(false)
	state := newBasicState(0)

	s.Add(NewATNConfig(state, 1, EmptyPredictionContext, SemanticContextNone), nil)
	assert.False(t, s.HasSemanticContext())

	s.Add(NewATNConfig(state, 2, EmptyPredictionContext, NewPredicate(0, 0, false)), nil)
	assert.True(t, s.HasSemanticContext())
}

func TestATNConfigSet_DipsIntoOuterContextFlag(t *testing.T) {
	s := NewATNConfigSet(false)
	state := newBasicState(0)

	cfg := NewATNConfig(state, 1, EmptyPredictionContext, SemanticContextNone)
	assert.False(t, s.DipsIntoOuterContext())

	cfg.setOuterContextDepth(1)
	s.Add(cfg, nil)
	assert.True(t, s.DipsIntoOuterContext())
}

func TestATNConfigSet_GetAlts(t *testing.T) {
	s := NewATNConfigSet(false)
	s.Add(NewATNConfig(newBasicState(0), 1, EmptyPredictionContext, SemanticContextNone), nil)
	s.Add(NewATNConfig(newBasicState(0), 2, EmptyPredictionContext, SemanticContextNone), nil)

	alts := s.GetAlts()
	assert.ElementsMatch(t, []int{1, 2}, alts.Values())
}

func TestATNConfigSet_SetReadonlyThenAddPanics(t *testing.T) {
	s := NewATNConfigSet(false)
	s.Add(NewATNConfig(newBasicState(0), 1, EmptyPredictionContext, SemanticContextNone), nil)
	s.SetReadonly(true)

	assert.Panics(t, func() {
		s.Add(NewATNConfig(newBasicState(0), 2, EmptyPredictionContext, SemanticContextNone), nil)
	})
}

func TestATNConfigSet_EqualsComparesConfigsInOrder(t *testing.T) {
	state := newBasicState(0)

	s1 := NewATNConfigSet(false)
	s1.Add(NewATNConfig(state, 1, EmptyPredictionContext, SemanticContextNone), nil)

	s2 := NewATNConfigSet(false)
	s2.Add(NewATNConfig(state, 1, EmptyPredictionContext, SemanticContextNone), nil)

	assert.True(t, s1.equals(s2))

	s3 := NewATNConfigSet(false)
	s3.Add(NewATNConfig(state, 2, EmptyPredictionContext, SemanticContextNone), nil)
	assert.False(t, s1.equals(s3))
}
