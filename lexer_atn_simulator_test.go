// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildIfVsIdentifierLexerATN builds a two-rule, single-mode lexer ATN:
//
//	rule 0 (token type 1): the literal "if"
//	rule 1 (token type 2): one or more of [a-z]
//
// Rule 0 is declared first, so it wins priority ties against rule 1 at
// equal match length.
func buildIfVsIdentifierLexerATN() *ATN {
	atn := NewATN(ATNTypeLexer, 2)

	modeStart := &TokensStartState{}
	atn.addState(modeStart)

	ifStart := newRuleStart(0)
	atn.addState(ifStart)
	sI := newBasicState(0)
	atn.addState(sI)
	sF := newBasicState(0)
	atn.addState(sF)
	ifStop := newRuleStop(0)
	atn.addState(ifStop)

	ifStart.stopState = ifStop
	ifStart.AddTransition(NewEpsilonTransition(sI), -1)
	sI.AddTransition(NewAtomTransition(sF, int('i')), -1)
	sF.AddTransition(NewAtomTransition(ifStop, int('f')), -1)

	idStart := newRuleStart(1)
	atn.addState(idStart)
	charState := newBasicState(1)
	atn.addState(charState)
	afterChar := newBasicState(1)
	atn.addState(afterChar)
	loopDecision := newBasicState(1)
	atn.addState(loopDecision)
	idStop := newRuleStop(1)
	atn.addState(idStop)

	idStart.stopState = idStop
	idStart.AddTransition(NewEpsilonTransition(charState), -1)
	charState.AddTransition(NewRangeTransition(afterChar, int('a'), int('z')), -1)
	afterChar.AddTransition(NewEpsilonTransition(loopDecision), -1)
	loopDecision.AddTransition(NewEpsilonTransition(charState), -1)
	loopDecision.AddTransition(NewEpsilonTransition(idStop), -1)

	modeStart.AddTransition(NewEpsilonTransition(ifStart), -1)
	modeStart.AddTransition(NewEpsilonTransition(idStart), -1)

	atn.ruleToStartState = []*RuleStartState{ifStart, idStart}
	atn.ruleToStopState = []*RuleStopState{ifStop, idStop}
	atn.ruleToTokenType = []int{1, 2}
	atn.modeToStartState = []*TokensStartState{modeStart}

	return atn
}

func TestLexerATNSimulator_PriorityBreaksTieAtEqualLength(t *testing.T) {
	atn := buildIfVsIdentifierLexerATN()

	lex := NewLexer(atn, newFakeCharStream("if"))
	ttype, err := lex.Interpreter.Match(lex.Input, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, ttype)
}

func TestLexerATNSimulator_LongestMatchBeatsPriority(t *testing.T) {
	atn := buildIfVsIdentifierLexerATN()

	lex := NewLexer(atn, newFakeCharStream("ifx"))
	ttype, err := lex.Interpreter.Match(lex.Input, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, ttype)
}

func TestLexerATNSimulator_IdentifierAloneMatchesByLength(t *testing.T) {
	atn := buildIfVsIdentifierLexerATN()

	lex := NewLexer(atn, newFakeCharStream("xyz"))
	ttype, err := lex.Interpreter.Match(lex.Input, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, ttype)
}

func TestLexerATNSimulator_NoViableAltOnUnmatchedInput(t *testing.T) {
	atn := buildIfVsIdentifierLexerATN()

	lex := NewLexer(atn, newFakeCharStream("!"))
	ttype, err := lex.Interpreter.Match(lex.Input, 0)

	assert.Equal(t, TokenInvalidType, ttype)
	require.Error(t, err)
	var nvae *LexerNoViableAltException
	require.ErrorAs(t, err, &nvae)
}
