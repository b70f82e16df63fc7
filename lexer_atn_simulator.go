// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// MinDFAEdge / MaxDFAEdge bound the symbols the lexer DFA caches edges for;
// anything outside this range always falls through to ATN simulation, which
// keeps the lexer's per-mode DFA from exploding across the full Unicode
// range.
const (
	MinDFAEdge = 0
	MaxDFAEdge = 127
)

// simState snapshots the best accept seen so far during one Match() call,
// so the simulator can seek back to it once it determines the overall
// longest match.
type simState struct {
	index    int
	line     int
	column   int
	dfaState *DFAState
}

func (s *simState) reset() { *s = simState{index: -1} }

// LexerATNSimulator is the longest-match, priority-ordered, multi-mode
// tokenizer. One instance is owned by each Lexer; its DFA array (one DFA
// per mode) may be shared across lexers scanning different inputs.
type LexerATNSimulator struct {
	recog *Lexer
	atn   *ATN
	cache *PredictionContextCache

	decisionToDFA []*DFA

	mode int

	startIndex int
	line       int
	column     int

	prevAccept simState

	// skipping/more/overrideType/overrideChannel/modeStack are written by
	// LexerAction.execute and read back once Match() settles on a winning
	// token, mirroring the reference's Lexer/LexerATNSimulator split of
	// responsibilities.
	skipping        bool
	more            bool
	overrideType    int
	overrideChannel int
	modeStack       []int
}

func NewLexerATNSimulator(recog *Lexer, atn *ATN, cache *PredictionContextCache) *LexerATNSimulator {
	l := &LexerATNSimulator{
		recog:           recog,
		atn:             atn,
		cache:           cache,
		line:            1,
		column:          0,
		overrideType:    TokenInvalidType,
		overrideChannel: -1,
	}
	l.decisionToDFA = make([]*DFA, len(atn.modeToStartState))
	for i, start := range atn.modeToStartState {
		l.decisionToDFA[i] = NewDFA(start, i)
	}
	l.prevAccept.reset()
	return l
}

// Match drives the simulator over input in the given mode and returns the
// recognized token type, or TokenEOF at end of input with nothing
// consumed.
func (l *LexerATNSimulator) Match(input CharStream, mode int) (int, error) {
	l.mode = mode
	l.overrideType = TokenInvalidType
	l.overrideChannel = -1
	l.skipping = false
	l.more = false

	mark := input.Mark()
	defer input.Release(mark)

	l.startIndex = input.Index()
	l.prevAccept.reset()

	dfa := l.decisionToDFA[mode]
	s0 := dfa.getS0()
	if s0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, s0)
}

// matchATN computes the initial DFA start state by closure from the mode's
// TokensStart, then hands off to execATN.
func (l *LexerATNSimulator) matchATN(input CharStream) (int, error) {
	startState := l.atn.modeToStartState[l.mode]

	configs := NewOrderedATNConfigSet()
	for i, t := range startState.GetTransitions() {
		target := t.getTarget()
		cfg := NewLexerATNConfig(target, i+1, EmptyPredictionContext)
		l.closure(input, cfg, configs.ATNConfigSet, false, false, false)
	}

	next := l.addDFAState(configs.ATNConfigSet)
	l.decisionToDFA[l.mode].setS0(next)
	return l.execATN(input, next)
}

func (l *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) (int, error) {
	if ds0.isAcceptState {
		l.captureSimState(&l.prevAccept, input, ds0)
	}

	s := ds0
	for {
		t := input.LA(1)
		target := l.getExistingTargetState(s, t)
		if target == nil {
			var err error
			target, err = l.computeTargetState(input, s, t)
			if err != nil {
				return TokenInvalidType, err
			}
		}
		if target == ATNErrorState {
			break
		}
		if t != TokenEOF {
			l.consume(input)
		}
		if target.isAcceptState {
			l.captureSimState(&l.prevAccept, input, target)
			if t == TokenEOF {
				break
			}
		}
		s = target
	}

	return l.failOrAccept(input, l.prevAccept, input.LA(1))
}

// getExistingTargetState looks up a cached DFA edge for t, returning nil on
// a miss (not yet computed) or ATNErrorState on a cached dead end.
func (l *LexerATNSimulator) getExistingTargetState(s *DFAState, t int) *DFAState {
	if t < MinDFAEdge || t > MaxDFAEdge {
		return nil
	}
	target, ok := s.getEdge(t)
	if !ok {
		return nil
	}
	return target
}

// computeTargetState runs one step of ATN simulation: reach, then closure,
// folding the result back into the DFA as a new (or interned) state and
// edge.
func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) (*DFAState, error) {
	reach := NewOrderedATNConfigSet()
	l.getReachableConfigSet(input, s.configs, reach.ATNConfigSet, t)

	if reach.IsEmpty() {
		if !reach.HasSemanticContext() {
			l.addDFAEdge(s, t, ATNErrorState, nil)
		}
		return ATNErrorState, nil
	}

	return l.addDFAEdgeForConfigSet(s, t, reach.ATNConfigSet), nil
}

func (l *LexerATNSimulator) getReachableConfigSet(input CharStream, closureConfigs *ATNConfigSet, reach *ATNConfigSet, t int) {
	var skipAlt = ATNInvalidAltNumber
	for _, cfg := range closureConfigs.Elements() {
		currentAltReachedAcceptState := skipAlt == cfg.alt
		if currentAltReachedAcceptState && cfg.passedThroughNonGreedyDecision {
			continue
		}
		for _, trans := range cfg.state.GetTransitions() {
			if target := l.getReachableTarget(trans, t); target != nil {
				lexerActionExecutor := cfg.lexerActionExecutor
				if positionOffset := input.Index() - l.startIndex; positionOffset >= 0 {
					lexerActionExecutor = lexerActionExecutor.fixOffsetBeforeMatch(positionOffset)
				}
				accepted := l.closure(input, NewLexerATNConfigFrom(cfg, target, lexerActionExecutor), reach, currentAltReachedAcceptState, true, false)
				if accepted {
					skipAlt = cfg.alt
				}
			}
		}
	}
}

func (l *LexerATNSimulator) getReachableTarget(trans Transition, t int) ATNState {
	if trans.Matches(t, 0, l.atn.maxTokenType) {
		return trans.getTarget()
	}
	return nil
}

// closure is the lexer-specific depth-first epsilon expansion: it stops
// exploring a given alt as soon as that alt reaches an accept state, since
// alternatives are priority-ordered.
func (l *LexerATNSimulator) closure(input CharStream, config *LexerATNConfig, configs *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEofAsEpsilon bool) bool {
	if _, ok := config.state.(*RuleStopState); ok {
		if config.context == nil || config.context.hasEmptyPath() {
			if config.context == nil || config.context.isEmpty() {
				configs.Add(config, nil)
				return true
			}
			configs.Add(config, nil)
			currentAltReachedAcceptState = true
		}
		if config.context != nil && !config.context.isEmpty() {
			for i := 0; i < config.context.length(); i++ {
				returnState := l.atn.states[config.context.getReturnState(i)]
				parent := config.context.GetParent(i)
				newCfg := NewATNConfigFrom(config, returnState, parent, nil)
				newCfg.lexerActionExecutor = config.lexerActionExecutor
				newCfg.passedThroughNonGreedyDecision = config.passedThroughNonGreedyDecision
				currentAltReachedAcceptState = l.closure(input, newCfg, configs, currentAltReachedAcceptState, speculative, treatEofAsEpsilon)
			}
		}
		return currentAltReachedAcceptState
	}

	if !config.state.isEpsilonOnly() {
		if !currentAltReachedAcceptState {
			configs.Add(config, nil)
		}
	}

	for _, t := range config.state.GetTransitions() {
		newCfg := l.getEpsilonTarget(input, config, t, configs, speculative, treatEofAsEpsilon)
		if newCfg != nil {
			currentAltReachedAcceptState = l.closure(input, newCfg, configs, currentAltReachedAcceptState, speculative, treatEofAsEpsilon)
		}
	}
	return currentAltReachedAcceptState
}

func (l *LexerATNSimulator) getEpsilonTarget(input CharStream, config *LexerATNConfig, t Transition, configs *ATNConfigSet, speculative, treatEofAsEpsilon bool) *LexerATNConfig {
	switch tt := t.(type) {
	case *RuleTransition:
		newContext := NewSingletonPredictionContext(config.context, tt.followState.GetStateNumber())
		nc := NewLexerATNConfigFrom(config, tt.target, config.lexerActionExecutor)
		nc.context = newContext
		return nc
	case *PredicateTransition:
		configs.hasSemanticContext = true
		if speculative {
			// Lexer predicates are not evaluated against speculative
			// (not-yet-consumed) input; the branch is admitted as if the
			// predicate held, and it is not evaluated again at accept time.
			return NewLexerATNConfigFrom(config, tt.target, config.lexerActionExecutor)
		}
		if tt.getPredicate().eval(l.recog, nil) {
			return NewLexerATNConfigFrom(config, tt.target, config.lexerActionExecutor)
		}
		return nil
	case *ActionTransition:
		var executor *LexerActionExecutor
		if config.context == nil || config.context.hasEmptyPath() {
			executor = config.lexerActionExecutor.append(l.atn.lexerActions[tt.actionIndex])
		} else {
			executor = config.lexerActionExecutor
		}
		return NewLexerATNConfigFrom(config, tt.target, executor)
	default:
		if t.getIsEpsilon() {
			return NewLexerATNConfigFrom(config, t.getTarget(), config.lexerActionExecutor)
		}
		if treatEofAsEpsilon && t.Matches(TokenEOF, 0, l.atn.maxTokenType) {
			return NewLexerATNConfigFrom(config, t.getTarget(), config.lexerActionExecutor)
		}
		return nil
	}
}

func (l *LexerATNSimulator) captureSimState(dst *simState, input CharStream, state *DFAState) {
	dst.index = input.Index()
	dst.line = l.line
	dst.column = l.column
	dst.dfaState = state
}

// failOrAccept implements the final decision: seek back to the recorded
// accept (if any) and run its deferred actions, or return EOF/throw.
func (l *LexerATNSimulator) failOrAccept(input CharStream, accept simState, t int) (int, error) {
	if accept.dfaState != nil {
		lexerActionExecutor := accept.dfaState.lexerActionExecutor
		l.accept(input, lexerActionExecutor, l.startIndex, accept.index, accept.line, accept.column)
		return accept.dfaState.prediction, nil
	}
	if t == TokenEOF && input.Index() == l.startIndex {
		return TokenEOF, nil
	}
	return TokenInvalidType, &LexerNoViableAltException{StartIndex: l.startIndex}
}

func (l *LexerATNSimulator) accept(input CharStream, lexerActionExecutor *LexerActionExecutor, startIndex, index, line, column int) {
	input.Seek(index)
	l.line = line
	l.column = column
	if lexerActionExecutor != nil && l.recog != nil {
		lexerActionExecutor.execute(l.recog, input, startIndex)
	}
}

func (l *LexerATNSimulator) consume(input CharStream) {
	if input.LA(1) == int('\n') {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	input.consume()
}

// addDFAState interns configs as a DFAState (computing isAcceptState /
// prediction / lexerActionExecutor along the way) via the shared DFA.
func (l *LexerATNSimulator) addDFAState(configs *ATNConfigSet) *DFAState {
	proposed := NewDFAState(configs)
	var firstConfigWithRuleStopState *ATNConfig
	for _, c := range configs.Elements() {
		if _, ok := c.state.(*RuleStopState); ok {
			firstConfigWithRuleStopState = c
			break
		}
	}
	if firstConfigWithRuleStopState != nil {
		proposed.isAcceptState = true
		proposed.lexerActionExecutor = firstConfigWithRuleStopState.lexerActionExecutor
		proposed.prediction = l.atn.ruleToTokenType[firstConfigWithRuleStopState.state.GetRuleIndex()]
	}
	configs.SetReadonly(true)
	return l.decisionToDFA[l.mode].addState(proposed)
}

func (l *LexerATNSimulator) addDFAEdgeForConfigSet(from *DFAState, t int, q *ATNConfigSet) *DFAState {
	to := l.addDFAState(q)
	if q.HasSemanticContext() {
		// Predicated accept states never get a cached edge; they must be
		// re-evaluated on every visit.
		return to
	}
	l.addDFAEdge(from, t, to, nil)
	return to
}

func (l *LexerATNSimulator) addDFAEdge(from *DFAState, t int, to *DFAState, _ *ATNConfigSet) {
	if t < MinDFAEdge || t > MaxDFAEdge {
		return
	}
	from.setEdge(t, to)
}
