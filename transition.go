// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// Transition type tags, matching the serialized wire format ordinals.
const (
	TransitionEpsilon = iota + 1
	TransitionRange
	TransitionRule
	TransitionPredicate
	TransitionAtom
	TransitionAction
	TransitionSet
	TransitionNotSet
	TransitionWildcard
	TransitionPrecedencePredicate
)

// Transition is a directed, labeled edge in the ATN. Matches decides, for a
// terminal transition, whether an input symbol is admitted; epsilon
// transitions are always taken during closure.
type Transition interface {
	getTarget() ATNState
	setTarget(ATNState)
	getIsEpsilon() bool
	getLabel() *IntervalSet
	getSerializationType() int
	Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool
}

type BaseTransition struct {
	target      ATNState
	isEpsilon   bool
	label       int
	intervalSet *IntervalSet
}

func (t *BaseTransition) getTarget() ATNState    { return t.target }
func (t *BaseTransition) setTarget(s ATNState)   { t.target = s }
func (t *BaseTransition) getIsEpsilon() bool     { return t.isEpsilon }
func (t *BaseTransition) getLabel() *IntervalSet { return t.intervalSet }

// EpsilonTransition is always taken for free during closure.
type EpsilonTransition struct {
	BaseTransition
}

func NewEpsilonTransition(target ATNState) *EpsilonTransition {
	return &EpsilonTransition{BaseTransition: BaseTransition{target: target, isEpsilon: true}}
}

func (t *EpsilonTransition) getSerializationType() int { return TransitionEpsilon }
func (t *EpsilonTransition) Matches(int, int, int) bool { return false }

// RangeTransition admits any symbol in [from, to].
type RangeTransition struct {
	BaseTransition
	from, to int
}

func NewRangeTransition(target ATNState, from, to int) *RangeTransition {
	t := &RangeTransition{BaseTransition: BaseTransition{target: target}, from: from, to: to}
	t.intervalSet = NewIntervalSetFromRange(from, to)
	return t
}

func (t *RangeTransition) getSerializationType() int { return TransitionRange }
func (t *RangeTransition) Matches(symbol, min, max int) bool {
	return symbol >= t.from && symbol <= t.to
}

// RuleTransition pushes followState onto the GSS and jumps into the callee
// rule's start state.
type RuleTransition struct {
	BaseTransition
	ruleIndex    int
	precedence   int
	followState  ATNState
}

func NewRuleTransition(ruleStart *RuleStartState, ruleIndex, precedence int, followState ATNState) *RuleTransition {
	return &RuleTransition{
		BaseTransition: BaseTransition{target: ruleStart, isEpsilon: true},
		ruleIndex:      ruleIndex,
		precedence:     precedence,
		followState:    followState,
	}
}

func (t *RuleTransition) getSerializationType() int { return TransitionRule }
func (t *RuleTransition) Matches(int, int, int) bool { return false }

// PredicateTransition guards a branch with a runtime-evaluated semantic
// predicate. isCtxDependent means the predicate reads the full rule-
// invocation chain, not just the current context.
type PredicateTransition struct {
	BaseTransition
	ruleIndex      int
	predIndex      int
	isCtxDependent bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	return &PredicateTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true},
		ruleIndex:      ruleIndex,
		predIndex:      predIndex,
		isCtxDependent: isCtxDependent,
	}
}

func (t *PredicateTransition) getSerializationType() int { return TransitionPredicate }
func (t *PredicateTransition) Matches(int, int, int) bool { return false }
func (t *PredicateTransition) getPredicate() *Predicate {
	return NewPredicate(t.ruleIndex, t.predIndex, t.isCtxDependent)
}

// PrecedencePredicateTransition implements the synthesized `{precedence >= N}?`
// guard on a left-recursive rule's enter branch.
type PrecedencePredicateTransition struct {
	BaseTransition
	precedence int
}

func NewPrecedencePredicateTransition(target ATNState, precedence int) *PrecedencePredicateTransition {
	return &PrecedencePredicateTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true},
		precedence:     precedence,
	}
}

func (t *PrecedencePredicateTransition) getSerializationType() int { return TransitionPrecedencePredicate }
func (t *PrecedencePredicateTransition) Matches(int, int, int) bool { return false }
func (t *PrecedencePredicateTransition) getPredicate() *PrecedencePredicate {
	return NewPrecedencePredicate(t.precedence)
}

// AtomTransition admits exactly one symbol.
type AtomTransition struct {
	BaseTransition
	atomLabel int
}

func NewAtomTransition(target ATNState, label int) *AtomTransition {
	t := &AtomTransition{BaseTransition: BaseTransition{target: target}, atomLabel: label}
	t.intervalSet = NewIntervalSetFromRange(label, label)
	return t
}

func (t *AtomTransition) getSerializationType() int { return TransitionAtom }
func (t *AtomTransition) Matches(symbol, min, max int) bool { return t.atomLabel == symbol }

// ActionTransition fires a side-effecting grammar action; it never admits a
// terminal symbol and clears any in-flight predicate collection during
// closure.
type ActionTransition struct {
	BaseTransition
	ruleIndex      int
	actionIndex    int
	isCtxDependent bool
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int, isCtxDependent bool) *ActionTransition {
	return &ActionTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true},
		ruleIndex:      ruleIndex,
		actionIndex:    actionIndex,
		isCtxDependent: isCtxDependent,
	}
}

func (t *ActionTransition) getSerializationType() int { return TransitionAction }
func (t *ActionTransition) Matches(int, int, int) bool { return false }

// SetTransition admits any symbol in the given IntervalSet.
type SetTransition struct{ BaseTransition }

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSetFromRange(TokenInvalidType, TokenInvalidType)
	}
	return &SetTransition{BaseTransition: BaseTransition{target: target, intervalSet: set}}
}

func (t *SetTransition) getSerializationType() int { return TransitionSet }
func (t *SetTransition) Matches(symbol, min, max int) bool { return t.intervalSet.Contains(symbol) }

// NotSetTransition admits any symbol in [minVocab, maxVocab] not covered by
// the given set.
type NotSetTransition struct{ BaseTransition }

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	if set == nil {
		set = NewIntervalSetFromRange(TokenInvalidType, TokenInvalidType)
	}
	return &NotSetTransition{BaseTransition: BaseTransition{target: target, intervalSet: set}}
}

func (t *NotSetTransition) getSerializationType() int { return TransitionNotSet }
func (t *NotSetTransition) Matches(symbol, min, max int) bool {
	return symbol >= min && symbol <= max && !t.intervalSet.Contains(symbol)
}

// WildcardTransition admits any symbol in [minVocab, maxVocab].
type WildcardTransition struct{ BaseTransition }

func NewWildcardTransition(target ATNState) *WildcardTransition {
	return &WildcardTransition{BaseTransition: BaseTransition{target: target}}
}

func (t *WildcardTransition) getSerializationType() int { return TransitionWildcard }
func (t *WildcardTransition) Matches(symbol, min, max int) bool {
	return symbol >= min && symbol <= max
}
