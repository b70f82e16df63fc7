// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "sync"

// ATNInvalidAltNumber represents an alt number that has yet to be computed,
// or that is invalid for a particular struct.
var ATNInvalidAltNumber int

// Grammar types recorded in the serialized header.
const (
	ATNTypeLexer = iota
	ATNTypeParser
)

// ATN is the read-only, deserialized Augmented Transition Network. It is
// immutable once deserialize() returns; mu guards the few fields that are
// lazily populated afterward (memoized NextToken interval sets) when the
// same ATN is shared by recognizers running on different goroutines.
// stateMu and edgeMu are not locked anywhere.
type ATN struct {
	// DecisionToState indexes every decision state by its 0-based decision
	// number, used to find the DFA for a given decision.
	DecisionToState []DecisionState

	grammarType  int
	maxTokenType int

	lexerActions []LexerAction

	modeNameToStartState map[string]*TokensStartState
	modeToStartState     []*TokensStartState

	ruleToStartState []*RuleStartState
	ruleToStopState  []*RuleStopState
	ruleToTokenType  []int

	states []ATNState

	mu      sync.Mutex
	stateMu sync.RWMutex
	edgeMu  sync.RWMutex
}

// NewATN returns an empty ATN of the given grammar type, ready for the
// deserializer to populate.
func NewATN(grammarType, maxTokenType int) *ATN {
	return &ATN{
		grammarType:          grammarType,
		maxTokenType:         maxTokenType,
		modeNameToStartState: make(map[string]*TokensStartState),
	}
}

func (a *ATN) GetGrammarType() int  { return a.grammarType }
func (a *ATN) GetMaxTokenType() int { return a.maxTokenType }

// NextTokensInContext computes the set of valid tokens starting at s,
// considering the caller chain in ctx.
func (a *ATN) NextTokensInContext(s ATNState, ctx RuleContext) *IntervalSet {
	return NewLL1Analyzer(a).Look(s, nil, ctx)
}

// NextTokensNoContext computes the set of valid tokens reachable from s
// while staying inside its own rule, memoizing the result on the state.
func (a *ATN) NextTokensNoContext(s ATNState) *IntervalSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	iset := s.GetNextTokenWithinRule()
	if iset == nil {
		iset = a.NextTokensInContext(s, nil)
		iset.readOnly = true
		s.SetNextTokenWithinRule(iset)
	}
	return iset
}

// NextTokens dispatches to NextTokensNoContext (ctx == nil) or
// NextTokensInContext otherwise.
func (a *ATN) NextTokens(s ATNState, ctx RuleContext) *IntervalSet {
	if ctx == nil {
		return a.NextTokensNoContext(s)
	}
	return a.NextTokensInContext(s, ctx)
}

func (a *ATN) addState(state ATNState) {
	if state != nil {
		state.SetATN(a)
		state.SetStateNumber(len(a.states))
	}
	a.states = append(a.states, state)
}

func (a *ATN) defineDecisionState(s DecisionState) int {
	a.DecisionToState = append(a.DecisionToState, s)
	s.setDecision(len(a.DecisionToState) - 1)
	return s.getDecision()
}

// GetExpectedTokens computes the set of input symbols that could follow
// stateNumber in the given full parse context, walking the invoking-state
// chain in ctx when stateNumber's own follow set still contains an epsilon.
func (a *ATN) GetExpectedTokens(stateNumber int, ctx RuleContext) *IntervalSet {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		panic("invalid state number")
	}

	s := a.states[stateNumber]
	following := a.NextTokens(s, nil)
	if !following.Contains(TokenEpsilon) {
		return following
	}

	expected := NewIntervalSet()
	expected.addSet(following)
	expected.removeOne(TokenEpsilon)

	for ctx != nil && ctx.GetInvokingState() >= 0 && following.Contains(TokenEpsilon) {
		invokingState := a.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0].(*RuleTransition)
		following = a.NextTokens(rt.followState, nil)
		expected.addSet(following)
		expected.removeOne(TokenEpsilon)
		ctx = ctx.GetParent()
	}

	if following.Contains(TokenEpsilon) {
		expected.AddOne(TokenEOF)
	}
	return expected
}

func (a *ATN) GetRuleToStartState(index int) *RuleStartState { return a.ruleToStartState[index] }
func (a *ATN) GetRuleToStopState(index int) *RuleStopState   { return a.ruleToStopState[index] }

// ATNDeserializationOptions toggles two optional deserializer behaviors:
// structural verification and rule-bypass transition synthesis.
type ATNDeserializationOptions struct {
	VerifyATN                     bool
	GenerateRuleBypassTransitions bool
}

// DefaultATNDeserializationOptions verifies but does not synthesize bypass
// transitions.
func DefaultATNDeserializationOptions() *ATNDeserializationOptions {
	return &ATNDeserializationOptions{VerifyATN: true}
}
