// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDFA_AddStateInternsStructurallyEqualConfigs(t *testing.T) {
	decision := newBlockStart(0)
	d := NewDFA(decision, 0)

	shared := newBasicState(0)

	setA := NewATNConfigSet(false)
	setA.Add(NewATNConfig(shared, 1, EmptyPredictionContext, nil), nil)
	setA.SetReadonly(true)

	setB := NewATNConfigSet(false)
	setB.Add(NewATNConfig(shared, 1, EmptyPredictionContext, nil), nil)
	setB.SetReadonly(true)

	first := d.addState(NewDFAState(setA))
	second := d.addState(NewDFAState(setB))

	assert.Same(t, first, second)
	assert.Equal(t, 1, d.numStates())
}

func TestDFA_AddStateKeepsDistinctConfigsSeparate(t *testing.T) {
	decision := newBlockStart(0)
	d := NewDFA(decision, 0)

	s1 := newBasicState(0)
	s1.SetStateNumber(1)
	s2 := newBasicState(0)
	s2.SetStateNumber(2)

	setA := NewATNConfigSet(false)
	setA.Add(NewATNConfig(s1, 1, EmptyPredictionContext, nil), nil)
	setA.SetReadonly(true)

	setB := NewATNConfigSet(false)
	setB.Add(NewATNConfig(s2, 1, EmptyPredictionContext, nil), nil)
	setB.SetReadonly(true)

	first := d.addState(NewDFAState(setA))
	second := d.addState(NewDFAState(setB))

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, d.numStates())
}

func TestDFA_NotPrecedenceByDefault(t *testing.T) {
	decision := newBlockStart(0)
	d := NewDFA(decision, 0)

	assert.False(t, d.IsPrecedenceDfa())
	assert.Nil(t, d.getPrecedenceStartState(0))
}

func TestDFA_PrecedenceDfaIndexesStartStatesByPrecedence(t *testing.T) {
	entry := &StarLoopEntryState{isPrecedenceDecision: true}
	d := NewDFA(entry, 0)

	assert.True(t, d.IsPrecedenceDfa())
	assert.NotNil(t, d.getS0())
	assert.Nil(t, d.getPrecedenceStartState(2))

	low := NewDFAState(NewATNConfigSet(false))
	high := NewDFAState(NewATNConfigSet(false))
	d.setPrecedenceStartState(2, low)
	d.setPrecedenceStartState(5, high)

	assert.Same(t, low, d.getPrecedenceStartState(2))
	assert.Same(t, high, d.getPrecedenceStartState(5))
	assert.Nil(t, d.getPrecedenceStartState(3))
}

func TestDFAState_EqualsComparesConfigsOnly(t *testing.T) {
	shared := newBasicState(0)

	setA := NewATNConfigSet(false)
	setA.Add(NewATNConfig(shared, 1, EmptyPredictionContext, nil), nil)

	setB := NewATNConfigSet(false)
	setB.Add(NewATNConfig(shared, 1, EmptyPredictionContext, nil), nil)

	a := NewDFAState(setA)
	b := NewDFAState(setB)

	assert.True(t, a.equals(b))
	assert.NotEqual(t, a.stateNumber, b.stateNumber)
}

func TestDFAState_EdgeLookupMissReturnsFalse(t *testing.T) {
	s := NewDFAState(NewATNConfigSet(false))
	target, ok := s.getEdge(5)
	assert.False(t, ok)
	assert.Nil(t, target)

	other := NewDFAState(NewATNConfigSet(false))
	s.setEdge(5, other)
	got, ok := s.getEdge(5)
	assert.True(t, ok)
	assert.Same(t, other, got)
}
