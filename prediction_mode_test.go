// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConflictingAltSubsets_GroupsByStateThenMergesAltsPerState(t *testing.T) {
	s1 := newBasicState(0)
	s1.SetStateNumber(1)
	s2 := newBasicState(0)
	s2.SetStateNumber(2)

	set := NewATNConfigSet(false)
	set.Add(NewATNConfig(s1, 1, EmptyPredictionContext, nil), nil)
	set.Add(NewATNConfig(s1, 2, EmptyPredictionContext, nil), nil)
	set.Add(NewATNConfig(s2, 3, EmptyPredictionContext, nil), nil)

	altsets := getConflictingAltSubsets(set)
	if assert.Len(t, altsets, 2) {
		assert.Equal(t, []int{1, 2}, altsets[0].Values())
		assert.Equal(t, []int{3}, altsets[1].Values())
	}

	assert.True(t, hasConflictingAltSet(altsets))
	assert.False(t, allSubsetsConflict(altsets))
	assert.False(t, allSubsetsEqual(altsets))
}

func TestAllSubsetsEqual_TrueWhenEveryAltsetMatches(t *testing.T) {
	a := NewBitSet()
	a.Add(1)
	a.Add(2)
	b := NewBitSet()
	b.Add(1)
	b.Add(2)

	assert.True(t, allSubsetsEqual([]*BitSet{a, b}))
	assert.True(t, allSubsetsConflict([]*BitSet{a, b}))
}

func TestAllConfigsInRuleStopStates(t *testing.T) {
	stop := newRuleStop(0)
	basic := newBasicState(0)

	allStop := NewATNConfigSet(false)
	allStop.Add(NewATNConfig(stop, 1, EmptyPredictionContext, nil), nil)
	allStop.Add(NewATNConfig(stop, 2, EmptyPredictionContext, nil), nil)
	assert.True(t, allConfigsInRuleStopStates(allStop))

	mixed := NewATNConfigSet(false)
	mixed.Add(NewATNConfig(stop, 1, EmptyPredictionContext, nil), nil)
	mixed.Add(NewATNConfig(basic, 2, EmptyPredictionContext, nil), nil)
	assert.False(t, allConfigsInRuleStopStates(mixed))
}

func TestHasSLLConflictTerminatingPrediction_TrueWhenAllAtRuleStop(t *testing.T) {
	stop := newRuleStop(0)
	set := NewATNConfigSet(false)
	set.Add(NewATNConfig(stop, 1, EmptyPredictionContext, nil), nil)
	set.Add(NewATNConfig(stop, 2, EmptyPredictionContext, nil), nil)

	assert.True(t, hasSLLConflictTerminatingPrediction(PredictionModeLL, set))
	assert.True(t, hasSLLConflictTerminatingPrediction(PredictionModeSLL, set))
}

func TestHasSLLConflictTerminatingPrediction_SLLModeStopsOnAnyConflict(t *testing.T) {
	s1 := newBasicState(0)
	set := NewATNConfigSet(false)
	set.Add(NewATNConfig(s1, 1, EmptyPredictionContext, nil), nil)
	set.Add(NewATNConfig(s1, 2, EmptyPredictionContext, nil), nil)

	assert.True(t, hasSLLConflictTerminatingPrediction(PredictionModeSLL, set))
}

func TestHasSLLConflictTerminatingPrediction_LLModeKeepsExploringWhenOneAltStateSurvives(t *testing.T) {
	s1 := newBasicState(0)
	s1.SetStateNumber(1)
	s2 := newBasicState(0)
	s2.SetStateNumber(2)

	set := NewATNConfigSet(false)
	set.Add(NewATNConfig(s1, 1, EmptyPredictionContext, nil), nil)
	set.Add(NewATNConfig(s1, 2, EmptyPredictionContext, nil), nil)
	set.Add(NewATNConfig(s2, 1, EmptyPredictionContext, nil), nil)

	assert.False(t, hasSLLConflictTerminatingPrediction(PredictionModeLL, set))
}

func TestResolvesToJustOneViableAlt(t *testing.T) {
	a := NewBitSet()
	a.Add(1)
	a.Add(2)
	b := NewBitSet()
	b.Add(1)
	b.Add(3)
	assert.Equal(t, 1, resolvesToJustOneViableAlt([]*BitSet{a, b}))

	c := NewBitSet()
	c.Add(2)
	c.Add(3)
	assert.Equal(t, ATNInvalidAltNumber, resolvesToJustOneViableAlt([]*BitSet{a, c}))
}

func TestGetUniqueAlt(t *testing.T) {
	s1 := newBasicState(0)
	unique := NewATNConfigSet(false)
	unique.Add(NewATNConfig(s1, 4, EmptyPredictionContext, nil), nil)
	assert.Equal(t, 4, getUniqueAlt(unique))

	ambiguous := NewATNConfigSet(false)
	ambiguous.Add(NewATNConfig(s1, 1, EmptyPredictionContext, nil), nil)
	ambiguous.Add(NewATNConfig(s1, 2, EmptyPredictionContext, nil), nil)
	assert.Equal(t, ATNInvalidAltNumber, getUniqueAlt(ambiguous))
}

func TestGetAlts_UnionsAllSubsets(t *testing.T) {
	a := NewBitSet()
	a.Add(1)
	b := NewBitSet()
	b.Add(2)
	b.Add(3)

	assert.Equal(t, []int{1, 2, 3}, getAlts([]*BitSet{a, b}).Values())
}
