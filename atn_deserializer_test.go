// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleRuleAtomWireFormat encodes one parser rule:
//
//	ruleStart --epsilon--> mid --atom(1)--> ruleStop
func singleRuleAtomWireFormat() []int32 {
	return []int32{
		4, // version
		1, // grammarType: parser
		1, // maxTokenType
		3, // nStates
		2, 0, // state0: RuleStart, rule 0
		7, 0, // state1: RuleStop, rule 0
		1, 0, // state2: Basic, rule 0
		0, // nNonGreedy
		0, // nPrecedence
		1, // nRules
		0, // rule0 startState = state0 (parser: no token type field)
		0, // nModes
		0, // nSets
		2, // nEdges
		0, 2, 1, 0, 0, 0, // state0 -epsilon-> state2
		2, 1, 5, 1, 0, 0, // state2 -atom(1)-> state1
		0, // nDecisions
	}
}

func TestATNDeserializer_DeserializesSingleRuleATN(t *testing.T) {
	d := NewATNDeserializer(nil)
	atn, err := d.Deserialize(singleRuleAtomWireFormat())
	require.NoError(t, err)
	require.NotNil(t, atn)

	assert.Equal(t, ATNTypeParser, atn.GetGrammarType())
	assert.Len(t, atn.states, 3)

	ruleStart := atn.GetRuleToStartState(0)
	ruleStop := atn.GetRuleToStopState(0)
	require.NotNil(t, ruleStart)
	require.NotNil(t, ruleStop)
	assert.Same(t, ruleStop, ruleStart.stopState)

	mid := atn.states[2]
	assert.Len(t, mid.GetTransitions(), 1)
	assert.Equal(t, TransitionAtom, mid.GetTransitions()[0].getSerializationType())
}

func TestATNDeserializer_RejectsVersionMismatch(t *testing.T) {
	d := NewATNDeserializer(nil)
	atn, err := d.Deserialize([]int32{3})

	assert.Nil(t, atn)
	require.Error(t, err)
	var derr *ATNDeserializationError
	require.ErrorAs(t, err, &derr)
}

func TestATNDeserializer_RejectsUnknownStateType(t *testing.T) {
	d := NewATNDeserializer(nil)
	data := []int32{
		4, // version
		1, // grammarType: parser
		1, // maxTokenType
		1, // nStates
		99, 0, // state0: unknown type, ruleIndex 0
	}
	atn, err := d.Deserialize(data)

	assert.Nil(t, atn)
	require.Error(t, err)
	var derr *ATNDeserializationError
	require.ErrorAs(t, err, &derr)
}

func TestATNDeserializer_DefaultOptionsVerifyButDoNotBypass(t *testing.T) {
	opts := DefaultATNDeserializationOptions()
	assert.True(t, opts.VerifyATN)
	assert.False(t, opts.GenerateRuleBypassTransitions)
}
