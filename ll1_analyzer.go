// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// LL1AnalyzerHitPred is the pseudo-symbol LL1Analyzer.Look inserts in place of a
// Predicate transition it could not evaluate statically, matching the
// teacher's use of a reserved negative token value for this purpose.
const LL1AnalyzerHitPred = -3

// LL1Analyzer computes FIRST/FOLLOW sets over the ATN, used by
// ATN.NextTokens (and so by ATN.GetExpectedTokens and the default error
// recovery strategy, which is otherwise out of scope here).
type LL1Analyzer struct {
	atn *ATN
}

func NewLL1Analyzer(atn *ATN) *LL1Analyzer { return &LL1Analyzer{atn: atn} }

// Look computes the set of tokens reachable from s. If stopState is
// non-nil, the walk also stops there instead of only at rule stop states.
// ctx bounds recursion across rule invocations: nil means "stay within s's
// own rule," matching ATN.NextTokensNoContext's contract.
func (l *LL1Analyzer) Look(s, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	seeThruPreds := true
	var lookContext PredictionContext
	if ctx != nil {
		lookContext = fromRuleContext(l.atn, ctx)
	}
	l.look(s, stopState, lookContext, r, newATNConfigVisitSet(), NewBitSet(), seeThruPreds, true)
	return r
}

// look performs the depth-first walk. calledRuleStack guards against
// infinite recursion through directly or indirectly recursive rules, the
// same role ATNConfig's busy set plays in closure.
func (l *LL1Analyzer) look(s, stopState ATNState, ctx PredictionContext, look *IntervalSet, visited atnStateCtxSet, calledRuleStack *BitSet, seeThruPreds, addEOF bool) {
	c := NewATNConfig(s, 0, ctx, SemanticContextNone)
	if visited.seen(c) {
		return
	}
	visited.add(c)

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
		if ctx != EmptyPredictionContext {
			removed := calledRuleStack.Contains(s.GetRuleIndex())
			defer func() {
				if removed {
					calledRuleStack.Add(s.GetRuleIndex())
				}
			}()
			calledRuleStack.words = removeBit(calledRuleStack.words, s.GetRuleIndex())
			for i := 0; i < ctx.length(); i++ {
				returnState := l.atn.states[ctx.getReturnState(i)]
				l.look(returnState, stopState, ctx.GetParent(i), look, visited, calledRuleStack, seeThruPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			if calledRuleStack.Contains(tt.ruleIndex) {
				continue
			}
			newContext := NewSingletonPredictionContext(ctx, tt.followState.GetStateNumber())
			calledRuleStack.Add(tt.ruleIndex)
			l.look(tt.target, stopState, newContext, look, visited, calledRuleStack, seeThruPreds, addEOF)
			calledRuleStack.words = removeBit(calledRuleStack.words, tt.ruleIndex)
		case *PredicateTransition:
			if seeThruPreds {
				l.look(tt.target, stopState, ctx, look, visited, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(LL1AnalyzerHitPred)
			}
		case *PrecedencePredicateTransition:
			if seeThruPreds {
				l.look(tt.target, stopState, ctx, look, visited, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(LL1AnalyzerHitPred)
			}
		default:
			if t.getIsEpsilon() {
				l.look(t.getTarget(), stopState, ctx, look, visited, calledRuleStack, seeThruPreds, addEOF)
				continue
			}
			if wc, ok := t.(*WildcardTransition); ok {
				_ = wc
				look.addSet(NewIntervalSetFromRange(TokenMinUserTokenType, l.atn.maxTokenType))
				continue
			}
			if lbl := t.getLabel(); lbl != nil {
				look.addSet(lbl)
			}
		}
	}
}

func removeBit(words []uint64, bit int) []uint64 {
	idx := bit / 64
	if idx >= len(words) {
		return words
	}
	words[idx] &^= 1 << uint(bit%64)
	return words
}

// atnStateCtxSet dedupes (state, context) pairs visited during one Look
// call; a plain map keyed by state number + context hash is enough since
// Look never mutates contexts in place.
type atnStateCtxSet map[int]map[int]bool

func newATNConfigVisitSet() atnStateCtxSet { return make(atnStateCtxSet) }

func (v atnStateCtxSet) seen(c *ATNConfig) bool {
	ctxHash := 0
	if c.context != nil {
		ctxHash = c.context.hash()
	}
	m, ok := v[c.state.GetStateNumber()]
	return ok && m[ctxHash]
}

func (v atnStateCtxSet) add(c *ATNConfig) {
	ctxHash := 0
	if c.context != nil {
		ctxHash = c.context.hash()
	}
	m, ok := v[c.state.GetStateNumber()]
	if !ok {
		m = make(map[int]bool)
		v[c.state.GetStateNumber()] = m
	}
	m[ctxHash] = true
}
