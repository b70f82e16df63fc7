// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ATN state variant tags, matching the serialized wire format and the
// invariants each variant must hold.
const (
	ATNStateInvalid = iota
	ATNStateBasic
	ATNStateRuleStart
	ATNStateBlockStart
	ATNStatePlusBlockStart
	ATNStateStarBlockStart
	ATNStateTokenStart
	ATNStateRuleStop
	ATNStateBlockEnd
	ATNStateStarLoopBack
	ATNStateStarLoopEntry
	ATNStatePlusLoopBack
	ATNStateLoopEnd
)

const ATNStateInvalidStateNumber = -1

// ATNState is the common interface satisfied by every state variant. The
// concrete structs below mirror the variant tags above exactly: one Go type
// per variant, rather than a single struct with a discriminant field, so
// each variant's extra links are statically typed.
type ATNState interface {
	GetStateNumber() int
	SetStateNumber(int)
	GetRuleIndex() int
	SetRuleIndex(int)
	GetATN() *ATN
	SetATN(*ATN)
	GetStateType() int
	GetTransitions() []Transition
	AddTransition(Transition, int)
	SetTransitions([]Transition)
	isEpsilonOnly() bool
	setEpsilonOnly(bool)
	GetNextTokenWithinRule() *IntervalSet
	SetNextTokenWithinRule(*IntervalSet)
	GetNonGreedy() bool
	SetNonGreedy(bool)
}

// BaseATNState implements the fields and behavior shared by every state
// variant; concrete variants embed it.
type BaseATNState struct {
	stateNumber           int
	ruleIndex             int
	atn                   *ATN
	transitions           []Transition
	epsilonOnlyTransition bool
	nonGreedy             bool
	nextTokenWithinRule   *IntervalSet
}

func (s *BaseATNState) GetStateNumber() int        { return s.stateNumber }
func (s *BaseATNState) SetStateNumber(n int)       { s.stateNumber = n }
func (s *BaseATNState) GetRuleIndex() int          { return s.ruleIndex }
func (s *BaseATNState) SetRuleIndex(n int)         { s.ruleIndex = n }
func (s *BaseATNState) GetATN() *ATN                { return s.atn }
func (s *BaseATNState) SetATN(a *ATN)               { s.atn = a }
func (s *BaseATNState) GetTransitions() []Transition { return s.transitions }
func (s *BaseATNState) SetTransitions(t []Transition) { s.transitions = t }
func (s *BaseATNState) isEpsilonOnly() bool         { return s.epsilonOnlyTransition }
func (s *BaseATNState) setEpsilonOnly(v bool)       { s.epsilonOnlyTransition = v }
func (s *BaseATNState) GetNonGreedy() bool          { return s.nonGreedy }
func (s *BaseATNState) SetNonGreedy(v bool)         { s.nonGreedy = v }
func (s *BaseATNState) GetNextTokenWithinRule() *IntervalSet { return s.nextTokenWithinRule }
func (s *BaseATNState) SetNextTokenWithinRule(is *IntervalSet) { s.nextTokenWithinRule = is }

func (s *BaseATNState) AddTransition(t Transition, index int) {
	if len(s.transitions) == 0 {
		s.epsilonOnlyTransition = t.getIsEpsilon()
	} else if s.epsilonOnlyTransition != t.getIsEpsilon() {
		// A Basic state must be either all-epsilon or have a single
		// non-epsilon transition; the deserializer's verify pass checks
		// this invariant once the table is fully built.
		s.epsilonOnlyTransition = false
	}
	if index == -1 {
		s.transitions = append(s.transitions, t)
		return
	}
	s.transitions = append(s.transitions[:index], append([]Transition{t}, s.transitions[index:]...)...)
}

// BasicState has at most one outgoing transition unless all its edges are
// epsilon.
type BasicState struct{ BaseATNState }

func (s *BasicState) GetStateType() int { return ATNStateBasic }

// DecisionState is the subset of states that carry a decision index: the
// parser/lexer simulators consult decision.DFA via this index.
type DecisionState interface {
	ATNState
	getDecision() int
	setDecision(int)
	getNonGreedy() bool
}

type BaseDecisionState struct {
	BaseATNState
	decision int
}

func (s *BaseDecisionState) getDecision() int     { return s.decision }
func (s *BaseDecisionState) setDecision(d int)     { s.decision = d }
func (s *BaseDecisionState) getNonGreedy() bool     { return s.nonGreedy }

// BlockStartState is the shared base of the three bracketing-block starts;
// each links forward to its BlockEnd counterpart.
type BlockStartState interface {
	DecisionState
	getEndState() *BlockEndState
	setEndState(*BlockEndState)
}

type BaseBlockStartState struct {
	BaseDecisionState
	endState *BlockEndState
}

func (s *BaseBlockStartState) getEndState() *BlockEndState   { return s.endState }
func (s *BaseBlockStartState) setEndState(e *BlockEndState)  { s.endState = e }

type BasicBlockStartState struct{ BaseBlockStartState }

func (s *BasicBlockStartState) GetStateType() int { return ATNStateBlockStart }

type PlusBlockStartState struct {
	BaseBlockStartState
	loopBackState *PlusLoopbackState
}

func (s *PlusBlockStartState) GetStateType() int { return ATNStatePlusBlockStart }

type StarBlockStartState struct{ BaseBlockStartState }

func (s *StarBlockStartState) GetStateType() int { return ATNStateStarBlockStart }

// BlockEndState links back to the BlockStart that created it.
type BlockEndState struct {
	BaseATNState
	startState ATNState
}

func (s *BlockEndState) GetStateType() int { return ATNStateBlockEnd }

// RuleStartState is the entry point of a rule; stopState is resolved by the
// deserializer's rule-table pass.
type RuleStartState struct {
	BaseATNState
	stopState        *RuleStopState
	isPrecedenceRule bool
}

func (s *RuleStartState) GetStateType() int { return ATNStateRuleStart }

// RuleStopState is the terminal state of a rule body; closure pops the GSS
// here.
type RuleStopState struct{ BaseATNState }

func (s *RuleStopState) GetStateType() int { return ATNStateRuleStop }

// RuleTransitionTarget is implemented by RuleStartState for type-safety at
// RuleTransition construction sites.
type RuleTransitionTarget interface {
	ATNState
}

// PlusLoopbackState is the decision that decides whether to iterate a (...)+
// block again.
type PlusLoopbackState struct{ BaseDecisionState }

func (s *PlusLoopbackState) GetStateType() int { return ATNStatePlusLoopBack }

// StarLoopbackState has exactly one transition, back to its StarLoopEntry.
type StarLoopbackState struct{ BaseATNState }

func (s *StarLoopbackState) GetStateType() int { return ATNStateStarLoopBack }

// StarLoopEntryState is the decision entering a (...)* block. When
// isPrecedenceDecision is set it marks a left-recursion-eliminated rule's
// precedence DFA entry point.
type StarLoopEntryState struct {
	BaseDecisionState
	loopBackState        *StarLoopbackState
	isPrecedenceDecision bool
}

func (s *StarLoopEntryState) GetStateType() int { return ATNStateStarLoopEntry }

// LoopEndState is the join point after a (...)* or (...)+ block.
type LoopEndState struct {
	BaseATNState
	loopBackState ATNState
}

func (s *LoopEndState) GetStateType() int { return ATNStateLoopEnd }

// TokensStartState is a lexer mode's entry point; it is a decision state
// whose alternatives are the mode's rules in declared priority order.
type TokensStartState struct{ BaseDecisionState }

func (s *TokensStartState) GetStateType() int { return ATNStateTokenStart }
