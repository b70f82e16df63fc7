// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "fmt"

// SerializedVersion is the only wire version this deserializer accepts.
const SerializedVersion = 4

// ATNDeserializer decodes the binary ATN wire format into a populated *ATN.
type ATNDeserializer struct {
	options *ATNDeserializationOptions
	data    []int32
	pos     int
}

// NewATNDeserializer returns a deserializer using opts, or the defaults
// (verify on, bypass generation off) if opts is nil.
func NewATNDeserializer(opts *ATNDeserializationOptions) *ATNDeserializer {
	if opts == nil {
		opts = DefaultATNDeserializationOptions()
	}
	return &ATNDeserializer{options: opts}
}

func (d *ATNDeserializer) next() int32 {
	v := d.data[d.pos]
	d.pos++
	return v
}

func (d *ATNDeserializer) nextInt() int { return int(d.next()) }

// Deserialize decodes data into a fully-linked, optionally-verified ATN, or
// returns an *ATNDeserializationError.
func (d *ATNDeserializer) Deserialize(data []int32) (atn *ATN, err error) {
	defer func() {
		if r := recover(); r != nil {
			if dErr, ok := r.(*ATNDeserializationError); ok {
				atn = nil
				err = dErr
				return
			}
			panic(r)
		}
	}()

	d.data = data
	d.pos = 0

	version := d.nextInt()
	if version != SerializedVersion {
		return nil, &ATNDeserializationError{Msg: fmt.Sprintf("version mismatch: got %d, want %d", version, SerializedVersion)}
	}

	grammarType := d.nextInt()
	maxTokenType := d.nextInt()
	atn = NewATN(grammarType, maxTokenType)

	d.readStates(atn)
	d.readNonGreedyStates(atn)
	d.readPrecedenceStates(atn)
	d.readRules(atn)
	d.readModes(atn)

	sets := d.readSets(atn)
	d.readEdges(atn, sets)
	d.readDecisions(atn)

	if grammarType == ATNTypeLexer {
		d.readLexerActions(atn)
	}

	d.markPrecedenceDecisions(atn)

	if d.options.VerifyATN {
		if err := verifyATN(atn); err != nil {
			return nil, err
		}
	}
	if d.options.GenerateRuleBypassTransitions && grammarType == ATNTypeParser {
		d.generateRuleBypassTransitions(atn)
		if d.options.VerifyATN {
			if err := verifyATN(atn); err != nil {
				return nil, err
			}
		}
	}

	return atn, nil
}

// stateFactory returns an empty concrete state for the given variant tag.
func stateFactory(stateType int) ATNState {
	switch stateType {
	case ATNStateBasic:
		return &BasicState{}
	case ATNStateRuleStart:
		return &RuleStartState{}
	case ATNStateBlockStart:
		return &BasicBlockStartState{}
	case ATNStatePlusBlockStart:
		return &PlusBlockStartState{}
	case ATNStateStarBlockStart:
		return &StarBlockStartState{}
	case ATNStateTokenStart:
		return &TokensStartState{}
	case ATNStateRuleStop:
		return &RuleStopState{}
	case ATNStateBlockEnd:
		return &BlockEndState{}
	case ATNStateStarLoopBack:
		return &StarLoopbackState{}
	case ATNStateStarLoopEntry:
		return &StarLoopEntryState{}
	case ATNStatePlusLoopBack:
		return &PlusLoopbackState{}
	case ATNStateLoopEnd:
		return &LoopEndState{}
	default:
		panic(&ATNDeserializationError{Msg: fmt.Sprintf("unknown state type %d", stateType)})
	}
}

func (d *ATNDeserializer) readStates(atn *ATN) {
	nStates := d.nextInt()

	loopBackStateNumbers := make(map[int]int)   // LoopEnd state -> its loopback state number
	endStateNumbers := make(map[int]int)        // BlockStart -> its BlockEnd state number

	for i := 0; i < nStates; i++ {
		stateType := d.nextInt()
		if stateType == ATNStateInvalid {
			atn.addState(nil)
			continue
		}
		ruleIndex := d.nextInt()
		s := stateFactory(stateType)
		s.SetRuleIndex(ruleIndex)

		switch stateType {
		case ATNStateLoopEnd:
			loopBackStateNumbers[i] = d.nextInt()
		case ATNStatePlusBlockStart, ATNStateBlockStart, ATNStateStarBlockStart:
			endStateNumbers[i] = d.nextInt()
		}
		atn.addState(s)
	}

	// Post-pass: resolve the extras collected above now that every state
	// exists.
	for from, to := range loopBackStateNumbers {
		le := atn.states[from].(*LoopEndState)
		le.loopBackState = atn.states[to]
	}
	for from, to := range endStateNumbers {
		switch bs := atn.states[from].(type) {
		case *BasicBlockStartState:
			bs.endState = atn.states[to].(*BlockEndState)
		case *PlusBlockStartState:
			bs.endState = atn.states[to].(*BlockEndState)
		case *StarBlockStartState:
			bs.endState = atn.states[to].(*BlockEndState)
		}
		if be, ok := atn.states[to].(*BlockEndState); ok {
			be.startState = atn.states[from]
		}
	}
}

func (d *ATNDeserializer) readNonGreedyStates(atn *ATN) {
	n := d.nextInt()
	for i := 0; i < n; i++ {
		atn.states[d.nextInt()].SetNonGreedy(true)
	}
}

func (d *ATNDeserializer) readPrecedenceStates(atn *ATN) {
	n := d.nextInt()
	for i := 0; i < n; i++ {
		rs := atn.states[d.nextInt()].(*RuleStartState)
		rs.isPrecedenceRule = true
	}
}

func (d *ATNDeserializer) readRules(atn *ATN) {
	nRules := d.nextInt()
	if atn.grammarType == ATNTypeLexer {
		atn.ruleToTokenType = make([]int, nRules)
	}
	atn.ruleToStartState = make([]*RuleStartState, nRules)

	for i := 0; i < nRules; i++ {
		startStateNumber := d.nextInt()
		atn.ruleToStartState[i] = atn.states[startStateNumber].(*RuleStartState)
		if atn.grammarType == ATNTypeLexer {
			atn.ruleToTokenType[i] = d.nextInt()
		}
	}

	atn.ruleToStopState = make([]*RuleStopState, nRules)
	for _, s := range atn.states {
		if s == nil {
			continue
		}
		if stop, ok := s.(*RuleStopState); ok {
			atn.ruleToStopState[stop.GetRuleIndex()] = stop
			atn.ruleToStartState[stop.GetRuleIndex()].stopState = stop
		}
	}
}

func (d *ATNDeserializer) readModes(atn *ATN) {
	n := d.nextInt()
	atn.modeToStartState = make([]*TokensStartState, n)
	for i := 0; i < n; i++ {
		s := atn.states[d.nextInt()].(*TokensStartState)
		atn.modeToStartState[i] = s
	}
}

func (d *ATNDeserializer) readSets(atn *ATN) []*IntervalSet {
	n := d.nextInt()
	sets := make([]*IntervalSet, n)
	for i := 0; i < n; i++ {
		set := NewIntervalSet()
		containsEOF := d.nextInt() != 0
		if containsEOF {
			set.AddOne(TokenEOF)
		}
		nIntervals := d.nextInt()
		for j := 0; j < nIntervals; j++ {
			from := d.nextInt()
			to := d.nextInt()
			set.addRange(from, to)
		}
		sets[i] = set
	}
	return sets
}

func (d *ATNDeserializer) readEdges(atn *ATN, sets []*IntervalSet) {
	nEdges := d.nextInt()
	for i := 0; i < nEdges; i++ {
		src := d.nextInt()
		trg := d.nextInt()
		ttype := d.nextInt()
		arg1 := d.nextInt()
		arg2 := d.nextInt()
		arg3 := d.nextInt()

		t := d.edgeFactory(atn, ttype, src, trg, arg1, arg2, arg3, sets)
		srcState := atn.states[src]
		srcState.AddTransition(t, -1)
	}

	// Link PlusLoopback -> PlusBlockStart and StarLoopback -> StarLoopEntry.
	for _, s := range atn.states {
		switch st := s.(type) {
		case *PlusLoopbackState:
			for _, t := range st.GetTransitions() {
				if pbs, ok := t.getTarget().(*PlusBlockStartState); ok {
					pbs.loopBackState = st
				}
			}
		case *StarLoopbackState:
			for _, t := range st.GetTransitions() {
				if entry, ok := t.getTarget().(*StarLoopEntryState); ok {
					entry.loopBackState = st
				}
			}
		}
	}
}

func (d *ATNDeserializer) edgeFactory(atn *ATN, ttype, src, trg, arg1, arg2, arg3 int, sets []*IntervalSet) Transition {
	target := atn.states[trg]
	switch ttype {
	case TransitionEpsilon:
		return NewEpsilonTransition(target)
	case TransitionRange:
		if arg3 != 0 {
			return NewRangeTransition(target, TokenEOF, arg2)
		}
		return NewRangeTransition(target, arg1, arg2)
	case TransitionRule:
		return NewRuleTransition(atn.states[arg1].(*RuleStartState), arg2, arg3, target)
	case TransitionPredicate:
		return NewPredicateTransition(target, arg1, arg2, arg3 != 0)
	case TransitionPrecedencePredicate:
		return NewPrecedencePredicateTransition(target, arg1)
	case TransitionAtom:
		if arg3 != 0 {
			return NewAtomTransition(target, TokenEOF)
		}
		return NewAtomTransition(target, arg1)
	case TransitionAction:
		return NewActionTransition(target, arg1, arg2, arg3 != 0)
	case TransitionSet:
		return NewSetTransition(target, sets[arg1])
	case TransitionNotSet:
		return NewNotSetTransition(target, sets[arg1])
	case TransitionWildcard:
		return NewWildcardTransition(target)
	default:
		panic(&ATNDeserializationError{Msg: fmt.Sprintf("unknown transition type %d", ttype)})
	}
}

func (d *ATNDeserializer) readDecisions(atn *ATN) {
	nDecisions := d.nextInt()
	for i := 0; i < nDecisions; i++ {
		stateNumber := d.nextInt()
		ds := atn.states[stateNumber].(DecisionState)
		atn.DecisionToState = append(atn.DecisionToState, ds)
		ds.setDecision(i)
	}
}

func (d *ATNDeserializer) readLexerActions(atn *ATN) {
	n := d.nextInt()
	atn.lexerActions = make([]LexerAction, n)
	for i := 0; i < n; i++ {
		actionType := d.nextInt()
		data1 := d.nextInt()
		data2 := d.nextInt()
		atn.lexerActions[i] = d.lexerActionFactory(actionType, data1, data2)
	}
}

func (d *ATNDeserializer) lexerActionFactory(actionType, data1, data2 int) LexerAction {
	switch actionType {
	case LexerActionTypeChannel:
		return NewLexerChannelAction(data1)
	case LexerActionTypeCustom:
		return NewLexerCustomAction(data1, data2)
	case LexerActionTypeMode:
		return NewLexerModeAction(data1)
	case LexerActionTypeMore:
		return LexerMoreActionINSTANCE
	case LexerActionTypePopMode:
		return LexerPopModeActionINSTANCE
	case LexerActionTypePushMode:
		return NewLexerPushModeAction(data1)
	case LexerActionTypeSkip:
		return LexerSkipActionINSTANCE
	case LexerActionTypeType:
		return NewLexerTypeAction(data1)
	default:
		panic(&ATNDeserializationError{Msg: fmt.Sprintf("unknown lexer action type %d", actionType)})
	}
}

// markPrecedenceDecisions identifies left-recursive-rule StarLoopEntry
// states whose second transition leads to a LoopEnd that epsilon-jumps to a
// RuleStop.
func (d *ATNDeserializer) markPrecedenceDecisions(atn *ATN) {
	for _, s := range atn.states {
		entry, ok := s.(*StarLoopEntryState)
		if !ok {
			continue
		}
		if !atn.ruleToStartState[entry.GetRuleIndex()].isPrecedenceRule {
			continue
		}
		maybeLoopEnd := entry.GetTransitions()[len(entry.GetTransitions())-1].getTarget()
		loopEnd, ok := maybeLoopEnd.(*LoopEndState)
		if !ok {
			continue
		}
		for _, t := range loopEnd.GetTransitions() {
			if t.getIsEpsilon() {
				if _, ok := t.getTarget().(*RuleStopState); ok {
					entry.isPrecedenceDecision = true
					break
				}
			}
		}
	}
}

// generateRuleBypassTransitions assigns rule i the token type
// maxTokenType+1+i and adds, per rule, a bypass-start decision state with an
// epsilon path through a new basic state to the rule's end: its RuleStop, or
// for a precedence rule the target of the precedence loop entry's last
// transition. A bypass-stop state is created and paired with bypass-start,
// but no transition leads to it, and no transition matches the rule's
// bypass token type.
func (d *ATNDeserializer) generateRuleBypassTransitions(atn *ATN) {
	n := len(atn.ruleToStartState)
	atn.ruleToTokenType = make([]int, n)
	for i := range atn.ruleToTokenType {
		atn.ruleToTokenType[i] = atn.maxTokenType + 1 + i
	}
	for i := 0; i < n; i++ {
		d.generateRuleBypassTransition(atn, i)
	}
}

func (d *ATNDeserializer) generateRuleBypassTransition(atn *ATN, ruleIndex int) {
	bypassStart := &BasicBlockStartState{}
	bypassStart.SetRuleIndex(ruleIndex)
	atn.addState(bypassStart)

	bypassStop := &BlockEndState{}
	bypassStop.SetRuleIndex(ruleIndex)
	atn.addState(bypassStop)

	bypassStart.endState = bypassStop
	atn.defineDecisionState(bypassStart)
	bypassStop.startState = bypassStart

	var excludeTransition Transition
	var endState ATNState

	ruleStart := atn.ruleToStartState[ruleIndex]
	if ruleStart.isPrecedenceRule {
		// Find the precedence loop entry. The loopback's first transition
		// is recorded in excludeTransition, which nothing else reads.
		for _, s := range atn.states {
			if s == nil || s.GetRuleIndex() != ruleIndex {
				continue
			}
			if entry, ok := s.(*StarLoopEntryState); ok && entry.isPrecedenceDecision {
				endState = entry.GetTransitions()[len(entry.GetTransitions())-1].getTarget()
				excludeTransition = entry.loopBackState.GetTransitions()[0]
			}
		}
	} else {
		endState = atn.ruleToStopState[ruleIndex]
	}

	matchState := &BasicState{}
	atn.addState(matchState)
	matchState.AddTransition(NewEpsilonTransition(endState), -1)
	bypassStart.AddTransition(NewEpsilonTransition(matchState), -1)

	for _, s := range atn.states {
		if s == nil || s.GetRuleIndex() != ruleIndex || s == bypassStart {
			continue
		}
		if _, ok := s.(*RuleStartState); !ok {
			continue
		}
		// nothing further for non-primary rule-start duplicates in this
		// trimmed model
	}
	_ = excludeTransition
}
