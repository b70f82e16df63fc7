// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ParserATNSimulator is the adaptive LL(*) predictor: SLL prediction first,
// falling back to full-context LL only on conflict, with precedence-DFA
// support for left-recursion-eliminated rules and on-the-fly semantic and
// precedence predicate evaluation.
type ParserATNSimulator struct {
	parser *Parser
	atn    *ATN

	sharedContextCache *PredictionContextCache
	decisionToDFA      []*DFA

	predictionMode PredictionMode

	// mergeCache is scoped to a single AdaptivePredict call and discarded
	// once it returns.
	mergeCache *MergeCache

	input      TokenStream
	startIndex int
	outerContext RuleContext
	dfa        *DFA
}

func NewParserATNSimulator(parser *Parser, atn *ATN, sharedContextCache *PredictionContextCache) *ParserATNSimulator {
	p := &ParserATNSimulator{
		parser:             parser,
		atn:                atn,
		sharedContextCache: sharedContextCache,
		predictionMode:     PredictionModeLL,
	}
	p.decisionToDFA = make([]*DFA, len(atn.DecisionToState))
	for i, ds := range atn.DecisionToState {
		p.decisionToDFA[i] = NewDFA(ds, i)
	}
	return p
}

func (p *ParserATNSimulator) GetPredictionMode() PredictionMode  { return p.predictionMode }
func (p *ParserATNSimulator) SetPredictionMode(m PredictionMode) { p.predictionMode = m }

// AdaptivePredict returns the predicted alternative (>= 1) for decision, or
// a *NoViableAltException.
func (p *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext RuleContext) (int, error) {
	p.input = input
	p.startIndex = input.Index()
	p.outerContext = outerContext
	p.mergeCache = NewMergeCache()
	defer func() { p.mergeCache = nil }()

	dfa := p.decisionToDFA[decision]
	p.dfa = dfa

	m := input.Mark()
	defer input.Release(m)

	var s0 *DFAState
	if dfa.precedenceDfa {
		s0 = dfa.getPrecedenceStartState(p.parser.GetPrecedence())
	} else {
		s0 = dfa.getS0()
	}

	if s0 == nil {
		s0Closure := p.computeStartState(dfa.atnStartState, outerContext, false)
		if dfa.precedenceDfa {
			s0Closure = p.applyPrecedenceFilter(s0Closure)
			s0 = dfa.addState(NewDFAState(s0Closure))
			dfa.setPrecedenceStartState(p.parser.GetPrecedence(), s0)
		} else {
			s0 = dfa.addState(NewDFAState(s0Closure))
			dfa.setS0(s0)
		}
	}

	return p.execATN(dfa, s0, input, p.startIndex, outerContext)
}

func (p *ParserATNSimulator) execATN(dfa *DFA, s0 *DFAState, input TokenStream, startIndex int, outerContext RuleContext) (int, error) {
	previousD := s0
	t := input.LA(1)

	for {
		d := p.getExistingTargetState(previousD, t)
		if d == nil {
			d = p.computeTargetState(dfa, previousD, t)
		}
		if d == ATNErrorState {
			return p.noViableAlt(input, outerContext, previousD.configs, startIndex)
		}

		if d.requiresFullContext && p.predictionMode != PredictionModeSLL {
			conflictingAlts := d.configs.GetConflictingAlts()
			if d.predicates != nil {
				conflictingAlts = p.evalSemanticContext(d.predicates, outerContext, true)
			}
			if conflictingAlts != nil && conflictingAlts.Len() == 1 {
				return conflictingAlts.Minimum(), nil
			}
			p.reportAttemptingFullContext(dfa, conflictingAlts, d.configs, startIndex, input.Index())
			fullCtxConfigs := p.computeStartState(dfa.atnStartState, outerContext, true)
			return p.execATNWithFullContext(dfa, d, fullCtxConfigs, input, startIndex, outerContext)
		}

		if d.isAcceptState {
			if d.predicates == nil {
				return d.prediction, nil
			}
			stopIndex := input.Index()
			input.Seek(startIndex)
			alts := p.evalSemanticContext(d.predicates, outerContext, true)
			switch alts.Len() {
			case 0:
				return 0, &NoViableAltException{
					StartIndex:     startIndex,
					DeadEndConfigs: d.configs,
					ExpectedTokens: p.atn.GetExpectedTokens(dfa.atnStartState.GetStateNumber(), outerContext),
				}
			case 1:
				return alts.Minimum(), nil
			default:
				p.reportAmbiguity(dfa, d, startIndex, stopIndex, false, alts, d.configs)
				return alts.Minimum(), nil
			}
		}

		previousD = d
		if t != TokenEOF {
			input.consume()
			t = input.LA(1)
		} else {
			break
		}
	}

	return 0, &NoViableAltException{
		StartIndex:     startIndex,
		DeadEndConfigs: previousD.configs,
		ExpectedTokens: p.atn.GetExpectedTokens(dfa.atnStartState.GetStateNumber(), outerContext),
	}
}

func (p *ParserATNSimulator) getExistingTargetState(previousD *DFAState, t int) *DFAState {
	target, ok := previousD.getEdge(t + 1)
	if !ok {
		return nil
	}
	return target
}

func (p *ParserATNSimulator) addDFAEdge(dfa *DFA, from *DFAState, t int, to *DFAState) {
	if from == nil || to == nil {
		return
	}
	from.setEdge(t+1, to)
}

// computeTargetState runs one reach+interning step, recording acceptance,
// the SLL-conflict tentative prediction, or predicate-gated acceptance.
func (p *ParserATNSimulator) computeTargetState(dfa *DFA, previousD *DFAState, t int) *DFAState {
	reach := p.computeReachSet(previousD.configs, t, false)
	if reach == nil {
		p.addDFAEdge(dfa, previousD, t, ATNErrorState)
		return ATNErrorState
	}

	d := NewDFAState(reach)
	predictedAlt := getUniqueAlt(reach)

	switch {
	case predictedAlt != ATNInvalidAltNumber:
		d.isAcceptState = true
		d.prediction = predictedAlt
	case hasSLLConflictTerminatingPrediction(p.predictionMode, reach):
		altSubsets := getConflictingAltSubsets(reach)
		reach.SetConflictingAlts(getAlts(altSubsets))
		d.isAcceptState = true
		d.requiresFullContext = true
		d.prediction = reach.GetConflictingAlts().Minimum()
	}

	if d.isAcceptState && reach.HasSemanticContext() {
		nalts := len(dfa.atnStartState.GetTransitions())
		predAlts := reach.GetConflictingAlts()
		if predAlts == nil {
			predAlts = reach.GetAlts()
		}
		altToPred := p.getPredsForAmbigAlts(predAlts, reach, nalts)
		if altToPred != nil {
			d.predicates = p.getPredicatePredictions(predAlts, altToPred)
			d.prediction = ATNInvalidAltNumber
		}
	}

	d = dfa.addState(d)
	p.addDFAEdge(dfa, previousD, t, d)
	return d
}

func (p *ParserATNSimulator) noViableAlt(input TokenStream, outerContext RuleContext, configs *ATNConfigSet, startIndex int) (int, error) {
	if alt := p.getSynValidOrSemInvalidAltThatFinishedDecisionEntryRule(configs, outerContext); alt != ATNInvalidAltNumber {
		return alt, nil
	}
	return 0, &NoViableAltException{
		StartIndex:     startIndex,
		OffendingToken: input.LT(1),
		DeadEndConfigs: configs,
		ExpectedTokens: p.atn.GetExpectedTokens(p.dfa.atnStartState.GetStateNumber(), outerContext),
	}
}

// getSynValidOrSemInvalidAltThatFinishedDecisionEntryRule offers a recovery
// hint when reach comes back empty: the minimum alt among configs that
// reached a rule stop having either fallen off the outermost caller or
// dipped into outer context, preferring predicate-satisfied configs over
// predicate-failed ones.
func (p *ParserATNSimulator) getSynValidOrSemInvalidAltThatFinishedDecisionEntryRule(configs *ATNConfigSet, outerContext RuleContext) int {
	var semValid, semInvalid []*ATNConfig
	for _, c := range configs.Elements() {
		if _, ok := c.state.(*RuleStopState); !ok {
			continue
		}
		if c.context != nil && !c.context.isEmpty() && c.getOuterContextDepth() == 0 {
			continue
		}
		if c.semanticContext == SemanticContextNone || c.semanticContext.eval(p.parser, outerContext) {
			semValid = append(semValid, c)
		} else {
			semInvalid = append(semInvalid, c)
		}
	}
	if semValid != nil {
		return minAltOf(semValid)
	}
	if semInvalid != nil {
		return minAltOf(semInvalid)
	}
	return ATNInvalidAltNumber
}

func minAltOf(cs []*ATNConfig) int {
	m := cs[0].alt
	for _, c := range cs[1:] {
		if c.alt < m {
			m = c.alt
		}
	}
	return m
}

// execATNWithFullContext re-runs reach/closure with full rule-invocation
// context after an SLL conflict, terminating per the alt-subset rules in
// PredictionMode. Results here are never cached in the DFA.
func (p *ParserATNSimulator) execATNWithFullContext(dfa *DFA, d *DFAState, s0 *ATNConfigSet, input TokenStream, startIndex int, outerContext RuleContext) (int, error) {
	foundExactAmbig := false
	previous := s0
	input.Seek(startIndex)
	t := input.LA(1)
	predictedAlt := ATNInvalidAltNumber

	var reach *ATNConfigSet
	for {
		reach = p.computeReachSet(previous, t, true)
		if reach == nil {
			return p.noViableAlt(input, outerContext, previous, startIndex)
		}

		altSubsets := getConflictingAltSubsets(reach)
		reach.SetConflictingAlts(getAlts(altSubsets))
		reach.uniqueAlt = getUniqueAlt(reach)
		if reach.uniqueAlt != ATNInvalidAltNumber {
			predictedAlt = reach.uniqueAlt
			break
		}

		if p.predictionMode != PredictionModeLLExactAmbigDetection {
			predictedAlt = resolvesToJustOneViableAlt(altSubsets)
			if predictedAlt != ATNInvalidAltNumber {
				break
			}
		} else if allSubsetsConflict(altSubsets) && allSubsetsEqual(altSubsets) {
			foundExactAmbig = true
			predictedAlt = getSingleViableAlt(altSubsets)
			if predictedAlt == ATNInvalidAltNumber {
				predictedAlt = getAlts(altSubsets).Minimum()
			}
			break
		}

		previous = reach
		if t != TokenEOF {
			input.consume()
			t = input.LA(1)
		}
	}

	if reach.uniqueAlt != ATNInvalidAltNumber {
		p.reportContextSensitivity(dfa, predictedAlt, reach, startIndex, input.Index())
		return predictedAlt, nil
	}

	p.reportAmbiguity(dfa, d, startIndex, input.Index(), foundExactAmbig, reach.GetConflictingAlts(), reach)
	return predictedAlt, nil
}

// computeReachSet consumes one symbol from closureConfigs, returning the
// resulting (closed) configuration set, or nil on a dead end.
func (p *ParserATNSimulator) computeReachSet(closureConfigs *ATNConfigSet, t int, fullCtx bool) *ATNConfigSet {
	intermediate := NewATNConfigSet(fullCtx)

	var skippedStopStates []*ATNConfig
	for _, c := range closureConfigs.Elements() {
		if _, ok := c.state.(*RuleStopState); ok {
			if fullCtx || t == TokenEOF {
				skippedStopStates = append(skippedStopStates, c)
			}
			continue
		}
		for _, trans := range c.state.GetTransitions() {
			if target := p.getReachableTarget(trans, t); target != nil {
				intermediate.Add(NewATNConfigFrom(c, target, nil, nil), p.mergeCache)
			}
		}
	}

	var reach *ATNConfigSet
	if skippedStopStates == nil && t != TokenEOF {
		if intermediate.Length() == 1 || getUniqueAlt(intermediate) != ATNInvalidAltNumber {
			reach = intermediate
		}
	}

	if reach == nil {
		reach = NewATNConfigSet(fullCtx)
		busy := newConfigBusySet()
		treatEofAsEpsilon := t == TokenEOF
		for _, c := range intermediate.Elements() {
			p.closure(c, reach, busy, false, fullCtx, treatEofAsEpsilon)
		}
	}

	if t == TokenEOF {
		reach = p.removeAllConfigsNotInRuleStopState(reach, fullCtx)
	}

	if skippedStopStates != nil && (!fullCtx || !hasConfigInRuleStopState(reach)) {
		for _, c := range skippedStopStates {
			reach.Add(c, p.mergeCache)
		}
	}

	if reach.IsEmpty() {
		return nil
	}
	return reach
}

func (p *ParserATNSimulator) removeAllConfigsNotInRuleStopState(configs *ATNConfigSet, fullCtx bool) *ATNConfigSet {
	if allConfigsInRuleStopStates(configs) {
		return configs
	}
	result := NewATNConfigSet(fullCtx)
	for _, c := range configs.Elements() {
		if _, ok := c.state.(*RuleStopState); ok {
			result.Add(c, p.mergeCache)
			continue
		}
		if p.atn.NextTokensNoContext(c.state).Contains(TokenEpsilon) {
			endOfRuleState := p.atn.ruleToStopState[c.state.GetRuleIndex()]
			result.Add(NewATNConfigFrom(c, endOfRuleState, nil, nil), p.mergeCache)
		}
	}
	return result
}

func (p *ParserATNSimulator) getReachableTarget(trans Transition, t int) ATNState {
	if trans.Matches(t, 0, p.atn.maxTokenType) {
		return trans.getTarget()
	}
	return nil
}

// computeStartState builds the initial configuration set for a decision:
// one config per outgoing alternative of s, closed over epsilon.
func (p *ParserATNSimulator) computeStartState(s ATNState, ctx RuleContext, fullCtx bool) *ATNConfigSet {
	initialContext := fromRuleContext(p.atn, ctx)
	configs := NewATNConfigSet(fullCtx)
	busy := newConfigBusySet()
	for i, t := range s.GetTransitions() {
		c := NewATNConfig(t.getTarget(), i+1, initialContext, SemanticContextNone)
		p.closure(c, configs, busy, true, fullCtx, false)
	}
	return configs
}

// applyPrecedenceFilter keeps, for alt 1 (the rule's left-recursive "enter"
// branch), only configs whose precedence predicate still holds, and drops
// any alt > 1 config ("exit" branches) that shares state and context with a
// surviving alt-1 config, unless its precedence filter is suppressed.
func (p *ParserATNSimulator) applyPrecedenceFilter(configs *ATNConfigSet) *ATNConfigSet {
	statesFromAlt1 := make(map[int]PredictionContext)
	result := NewATNConfigSet(configs.fullCtx)
	for _, c := range configs.Elements() {
		if c.alt != 1 {
			if !c.getPrecedenceFilterSuppressed() {
				if ctx, ok := statesFromAlt1[c.state.GetStateNumber()]; ok && contextsEqual(ctx, c.context) {
					continue
				}
			}
			result.Add(c, p.mergeCache)
			continue
		}
		reduced := c.semanticContext.evalPrecedence(p.parser, p.outerContext)
		if reduced == nil {
			continue
		}
		statesFromAlt1[c.state.GetStateNumber()] = c.context
		if reduced != c.semanticContext {
			result.Add(NewATNConfigFrom(c, c.state, nil, reduced), p.mergeCache)
		} else {
			result.Add(c, p.mergeCache)
		}
	}
	return result
}

// closure is the depth-first epsilon expansion. It first checks for a
// RuleStop, which pops the GSS via cfg.context; a RuleStop state has no
// outgoing transitions of its own.
func (p *ParserATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, busy *configBusySet, collectPredicates, fullCtx, treatEofAsEpsilon bool) {
	p.closureCheckingStopState(config, configs, busy, collectPredicates, fullCtx, 0, treatEofAsEpsilon)
}

func (p *ParserATNSimulator) closureCheckingStopState(config *ATNConfig, configs *ATNConfigSet, busy *configBusySet, collectPredicates, fullCtx bool, depth int, treatEofAsEpsilon bool) {
	if _, ok := config.state.(*RuleStopState); ok {
		for i := 0; i < config.context.length(); i++ {
			if config.context.getReturnState(i) == EmptyReturnState {
				if fullCtx {
					configs.Add(NewATNConfigFrom(config, config.state, EmptyPredictionContext, nil), p.mergeCache)
					continue
				}
				c := NewATNConfigFrom(config, config.state, EmptyPredictionContext, nil)
				c.setOuterContextDepth(c.getOuterContextDepth() + 1)
				p.closureWork(c, configs, busy, collectPredicates, fullCtx, depth, treatEofAsEpsilon)
				continue
			}
			returnState := p.atn.states[config.context.getReturnState(i)]
			newContext := config.context.GetParent(i)
			c := NewATNConfigFrom(config, returnState, newContext, nil)
			p.closureCheckingStopState(c, configs, busy, collectPredicates, fullCtx, depth-1, treatEofAsEpsilon)
		}
		return
	}
	p.closureWork(config, configs, busy, collectPredicates, fullCtx, depth, treatEofAsEpsilon)
}

func (p *ParserATNSimulator) closureWork(config *ATNConfig, configs *ATNConfigSet, busy *configBusySet, collectPredicates, fullCtx bool, depth int, treatEofAsEpsilon bool) {
	if busy.contains(config) {
		return
	}
	busy.add(config)

	if !config.state.isEpsilonOnly() {
		configs.Add(config, p.mergeCache)
	}

	for i, t := range config.state.GetTransitions() {
		if entry, ok := config.state.(*StarLoopEntryState); ok && entry.isPrecedenceDecision && i == 0 {
			if p.canDropLoopEntryEdgeInLeftRecursiveRule(config) {
				continue
			}
		}

		continueCollecting := collectPredicates
		if _, ok := t.(*ActionTransition); ok {
			continueCollecting = false
		}

		c := p.getEpsilonTarget(config, t, continueCollecting, depth == 0, fullCtx, treatEofAsEpsilon)
		if c == nil {
			continue
		}
		newDepth := depth
		if _, ok := t.(*RuleTransition); ok {
			newDepth++
		}
		p.closureCheckingStopState(c, configs, busy, continueCollecting, fullCtx, newDepth, treatEofAsEpsilon)
	}
}

// canDropLoopEntryEdgeInLeftRecursiveRule decides whether the loop-entry
// branch (transition 0) of a left-recursive rule's precedence decision can
// be skipped because every return state on the context stack already stays
// within the same rule at this loop's boundary: the remaining alternatives
// cover every outcome the entry branch would have reached.
func (p *ParserATNSimulator) canDropLoopEntryEdgeInLeftRecursiveRule(config *ATNConfig) bool {
	s := config.state
	entry, ok := s.(*StarLoopEntryState)
	if !ok || !entry.isPrecedenceDecision {
		return false
	}
	if config.context == nil || config.context.isEmpty() || config.context.hasEmptyPath() {
		return false
	}
	numCtxs := config.context.length()
	for i := 0; i < numCtxs; i++ {
		returnState := p.atn.states[config.context.getReturnState(i)]
		if returnState.GetRuleIndex() != s.GetRuleIndex() {
			return false
		}
	}

	decisionStart, ok := entry.GetTransitions()[0].getTarget().(BlockStartState)
	if !ok {
		return false
	}
	blockEndState := decisionStart.getEndState()

	for i := 0; i < numCtxs; i++ {
		returnState := p.atn.states[config.context.getReturnState(i)]
		if len(returnState.GetTransitions()) != 1 || !returnState.GetTransitions()[0].getIsEpsilon() {
			return false
		}
		target := returnState.GetTransitions()[0].getTarget()
		switch {
		case returnState == ATNState(blockEndState):
			continue
		case target == ATNState(blockEndState):
			continue
		case target == s:
			continue
		default:
			return false
		}
	}
	return true
}

func (p *ParserATNSimulator) getEpsilonTarget(config *ATNConfig, t Transition, collectPredicates, inContext, fullCtx, treatEofAsEpsilon bool) *ATNConfig {
	switch tt := t.(type) {
	case *RuleTransition:
		return p.ruleTransition(config, tt)
	case *PrecedencePredicateTransition:
		return p.precedenceTransition(config, tt, collectPredicates, inContext, fullCtx)
	case *PredicateTransition:
		return p.predTransition(config, tt, collectPredicates, inContext, fullCtx)
	case *ActionTransition:
		return NewATNConfigFrom(config, tt.target, nil, nil)
	default:
		if t.getIsEpsilon() {
			return NewATNConfigFrom(config, t.getTarget(), nil, nil)
		}
		if treatEofAsEpsilon && t.Matches(TokenEOF, 0, p.atn.maxTokenType) {
			return NewATNConfigFrom(config, t.getTarget(), nil, nil)
		}
		return nil
	}
}

func (p *ParserATNSimulator) ruleTransition(config *ATNConfig, t *RuleTransition) *ATNConfig {
	newContext := NewSingletonPredictionContext(config.context, t.followState.GetStateNumber())
	return NewATNConfigFrom(config, t.target, newContext, nil)
}

func (p *ParserATNSimulator) precedenceTransition(config *ATNConfig, t *PrecedencePredicateTransition, collectPredicates, inContext, fullCtx bool) *ATNConfig {
	if !collectPredicates || !inContext {
		return NewATNConfigFrom(config, t.target, nil, nil)
	}
	if fullCtx {
		currentPosition := p.input.Index()
		p.input.Seek(p.startIndex)
		predSucceeds := t.getPredicate().eval(p.parser, p.outerContext)
		p.input.Seek(currentPosition)
		if !predSucceeds {
			return nil
		}
		return NewATNConfigFrom(config, t.target, nil, nil)
	}
	newSemCtx := SemanticContextAnd(config.semanticContext, t.getPredicate())
	return NewATNConfigFrom(config, t.target, nil, newSemCtx)
}

func (p *ParserATNSimulator) predTransition(config *ATNConfig, t *PredicateTransition, collectPredicates, inContext, fullCtx bool) *ATNConfig {
	if !collectPredicates || (t.isCtxDependent && !inContext) {
		return NewATNConfigFrom(config, t.target, nil, nil)
	}
	if fullCtx {
		currentPosition := p.input.Index()
		p.input.Seek(p.startIndex)
		predSucceeds := t.getPredicate().eval(p.parser, p.outerContext)
		p.input.Seek(currentPosition)
		if !predSucceeds {
			return nil
		}
		return NewATNConfigFrom(config, t.target, nil, nil)
	}
	newSemCtx := SemanticContextAnd(config.semanticContext, t.getPredicate())
	return NewATNConfigFrom(config, t.target, nil, newSemCtx)
}

func (p *ParserATNSimulator) getPredsForAmbigAlts(ambigAlts *BitSet, configs *ATNConfigSet, nalts int) []SemanticContext {
	altToPred := make([]SemanticContext, nalts+1)
	for _, c := range configs.Elements() {
		if ambigAlts.Contains(c.alt) {
			altToPred[c.alt] = SemanticContextOr(altToPred[c.alt], c.semanticContext)
		}
	}
	nPredAlts := 0
	for i := 1; i <= nalts; i++ {
		if altToPred[i] == nil {
			altToPred[i] = SemanticContextNone
		} else if altToPred[i] != SemanticContextNone {
			nPredAlts++
		}
	}
	if nPredAlts == 0 {
		return nil
	}
	return altToPred
}

func (p *ParserATNSimulator) getPredicatePredictions(ambigAlts *BitSet, altToPred []SemanticContext) []*PredPrediction {
	var pairs []*PredPrediction
	containsPredicate := false
	for alt := 1; alt < len(altToPred); alt++ {
		pred := altToPred[alt]
		if ambigAlts != nil && ambigAlts.Contains(alt) {
			pairs = append(pairs, &PredPrediction{Pred: pred, Alt: alt})
		}
		if pred != SemanticContextNone {
			containsPredicate = true
		}
	}
	if !containsPredicate {
		return nil
	}
	return pairs
}

func (p *ParserATNSimulator) evalSemanticContext(predPredictions []*PredPrediction, outerContext RuleContext, complete bool) *BitSet {
	predictions := NewBitSet()
	for _, pair := range predPredictions {
		if pair.Pred == SemanticContextNone {
			predictions.Add(pair.Alt)
			if !complete {
				break
			}
			continue
		}
		if pair.Pred.eval(p.parser, outerContext) {
			predictions.Add(pair.Alt)
			if !complete {
				break
			}
		}
	}
	return predictions
}

func (p *ParserATNSimulator) reportAmbiguity(dfa *DFA, d *DFAState, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	for _, l := range p.parser.Listeners {
		l.ReportAmbiguity(p.parser, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
	}
}

func (p *ParserATNSimulator) reportAttemptingFullContext(dfa *DFA, conflictingAlts *BitSet, configs *ATNConfigSet, startIndex, stopIndex int) {
	for _, l := range p.parser.Listeners {
		l.ReportAttemptingFullContext(p.parser, dfa, startIndex, stopIndex, conflictingAlts, configs)
	}
}

func (p *ParserATNSimulator) reportContextSensitivity(dfa *DFA, prediction int, configs *ATNConfigSet, startIndex, stopIndex int) {
	for _, l := range p.parser.Listeners {
		l.ReportContextSensitivity(p.parser, dfa, startIndex, stopIndex, prediction, configs)
	}
}

// configBusySet dedupes configs already expanded during one closure call,
// by full (state, alt, semanticContext, context) equality rather than the
// reduced key ATNConfigSet uses for merging.
type configBusySet struct {
	buckets map[int][]*ATNConfig
}

func newConfigBusySet() *configBusySet { return &configBusySet{buckets: make(map[int][]*ATNConfig)} }

func configBusyHash(c *ATNConfig) int {
	h := c.state.GetStateNumber()*31 + c.alt
	h = h*31 + c.semanticContext.hash()
	if c.context != nil {
		h = h*31 + c.context.hash()
	}
	return h
}

func (b *configBusySet) contains(c *ATNConfig) bool {
	h := configBusyHash(c)
	for _, e := range b.buckets[h] {
		if e.equals(c) {
			return true
		}
	}
	return false
}

func (b *configBusySet) add(c *ATNConfig) {
	h := configBusyHash(c)
	b.buckets[h] = append(b.buckets[h], c)
}
