// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// suppressedBit is the reserved high bit of reachesIntoOuterContext used to
// pack precedenceFilterSuppressed alongside the outer-context depth counter.
const suppressedBit = 1 << 30

// ATNConfig is one (state, alt, context, semanticContext) tuple tracked
// during closure/reach. The lexerActionExecutor and
// passedThroughNonGreedyDecision fields are meaningful only for configs
// created by LexerATNSimulator; parser configs leave them at their zero
// value. Folding both shapes into one struct (rather than a wrapper type)
// avoids a second parallel slice type through ATNConfigSet, which both the
// parser and lexer simulators share.
type ATNConfig struct {
	state                   ATNState
	alt                     int
	context                 PredictionContext
	semanticContext         SemanticContext
	reachesIntoOuterContext int

	lexerActionExecutor            *LexerActionExecutor
	passedThroughNonGreedyDecision bool
}

// LexerATNConfig is an alias used at lexer call sites purely for
// readability; it is the same type as ATNConfig.
type LexerATNConfig = ATNConfig

// NewATNConfig builds a fresh config from scratch.
func NewATNConfig(state ATNState, alt int, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if semanticContext == nil {
		semanticContext = SemanticContextNone
	}
	return &ATNConfig{state: state, alt: alt, context: context, semanticContext: semanticContext}
}

// NewATNConfigFrom copies c, substituting state, and optionally context and
// semanticContext when non-nil, mirroring the reference's ATNConfig(c, ...)
// copy constructors used throughout closure.
func NewATNConfigFrom(c *ATNConfig, state ATNState, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if context == nil {
		context = c.context
	}
	if semanticContext == nil {
		semanticContext = c.semanticContext
	}
	return &ATNConfig{
		state:                   state,
		alt:                     c.alt,
		context:                 context,
		semanticContext:         semanticContext,
		reachesIntoOuterContext: c.reachesIntoOuterContext,

		lexerActionExecutor:            c.lexerActionExecutor,
		passedThroughNonGreedyDecision: c.passedThroughNonGreedyDecision,
	}
}

// NewLexerATNConfig builds a fresh lexer config (alt is the rule's priority
// order within its mode).
func NewLexerATNConfig(state ATNState, alt int, context PredictionContext) *ATNConfig {
	return NewATNConfig(state, alt, context, SemanticContextNone)
}

// NewLexerATNConfigFrom copies c into a new config at state, carrying over
// (or replacing) the lexer action executor and OR-ing in whether state
// itself is a non-greedy decision.
func NewLexerATNConfigFrom(c *ATNConfig, state ATNState, lexerActionExecutor *LexerActionExecutor) *ATNConfig {
	nc := NewATNConfigFrom(c, state, nil, nil)
	nc.lexerActionExecutor = lexerActionExecutor
	nc.passedThroughNonGreedyDecision = c.passedThroughNonGreedyDecision || isNonGreedyDecisionState(state)
	return nc
}

func (c *ATNConfig) GetState() ATNState                 { return c.state }
func (c *ATNConfig) GetAlt() int                         { return c.alt }
func (c *ATNConfig) GetContext() PredictionContext       { return c.context }
func (c *ATNConfig) SetContext(ctx PredictionContext)    { c.context = ctx }
func (c *ATNConfig) GetSemanticContext() SemanticContext { return c.semanticContext }
func (c *ATNConfig) getLexerActionExecutor() *LexerActionExecutor { return c.lexerActionExecutor }

func (c *ATNConfig) getOuterContextDepth() int { return c.reachesIntoOuterContext &^ suppressedBit }
func (c *ATNConfig) setOuterContextDepth(d int) {
	c.reachesIntoOuterContext = (c.reachesIntoOuterContext & suppressedBit) | (d &^ suppressedBit)
}

func (c *ATNConfig) getPrecedenceFilterSuppressed() bool {
	return c.reachesIntoOuterContext&suppressedBit != 0
}

func (c *ATNConfig) setPrecedenceFilterSuppressed(v bool) {
	if v {
		c.reachesIntoOuterContext |= suppressedBit
	} else {
		c.reachesIntoOuterContext &^= suppressedBit
	}
}

// equals is full equality: (state, alt, semanticContext, context).
func (c *ATNConfig) equals(other *ATNConfig) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	sameContext := (c.context == nil && other.context == nil) ||
		(c.context != nil && other.context != nil && c.context.equals(other.context))
	return c.state.GetStateNumber() == other.state.GetStateNumber() &&
		c.alt == other.alt &&
		c.semanticContext.equals(other.semanticContext) &&
		sameContext
}

// equivalenceKey is the reduced (state, alt, semanticContext) key used by
// ATNConfigSet's in-set merge. It deliberately excludes lexerActionExecutor:
// two lexer configs that land on the same (state, alt, semanticContext) are
// treated as the same configuration even if they'd run different actions,
// and the first one inserted wins. None of the lexer rules this runtime
// drives produce two distinct executors at a single shared keyed state, so
// this narrowing is safe in practice, but it is a real divergence from
// keying on the executor too.
type equivalenceKey struct {
	stateNumber int
	alt         int
	semHash     int
	semStr      string
}

func (c *ATNConfig) equivKey() equivalenceKey {
	return equivalenceKey{
		stateNumber: c.state.GetStateNumber(),
		alt:         c.alt,
		semHash:     c.semanticContext.hash(),
		semStr:      c.semanticContext.String(),
	}
}

func isNonGreedyDecisionState(state ATNState) bool {
	ds, ok := state.(DecisionState)
	return ok && ds.GetNonGreedy()
}
