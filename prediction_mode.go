// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// PredictionMode selects how eagerly adaptivePredict commits to SLL
// results versus falling back to full LL.
type PredictionMode int

const (
	// PredictionModeSLL uses context-insensitive prediction only: an SLL
	// conflict resolves to its minimum alt without a full-context retry.
	PredictionModeSLL PredictionMode = iota
	// PredictionModeLL resolves conflicts with full rule-invocation
	// context, returning the minimum viable alt as soon as one exists.
	PredictionModeLL
	// PredictionModeLLExactAmbigDetection behaves like PredictionModeLL but
	// only terminates once every alt-subset conflicts and they are all
	// equal, so true ambiguities are reported exactly rather than
	// resolved to the minimum alt at the first opportunity.
	PredictionModeLLExactAmbigDetection
)

// altSubsetKey identifies a distinct (state, context) pair when grouping
// configs into alt-subsets.
type altSubsetKey struct {
	state   int
	ctxHash int
}

// getConflictingAltSubsets groups configs from a reach set by their
// (state, PredictionContext), producing one BitSet of alts per distinct
// (state, context) pair: the "alt-subset" list the conflict/ambiguity
// checks below operate on.
func getConflictingAltSubsets(configs *ATNConfigSet) []*BitSet {
	var order []altSubsetKey
	byKey := make(map[altSubsetKey]*BitSet)
	for _, c := range configs.Elements() {
		key := altSubsetKey{state: c.state.GetStateNumber()}
		if c.context != nil {
			key.ctxHash = c.context.hash()
		}
		alts, ok := byKey[key]
		if !ok {
			alts = NewBitSet()
			byKey[key] = alts
			order = append(order, key)
		}
		alts.Add(c.alt)
	}
	out := make([]*BitSet, len(order))
	for i, k := range order {
		out[i] = byKey[k]
	}
	return out
}

// getStateToAltMap groups alts purely by ATN state, ignoring context; used
// by the SLL-conflict heuristic which does not need full context
// discrimination.
func getStateToAltMap(configs *ATNConfigSet) map[int]*BitSet {
	out := make(map[int]*BitSet)
	for _, c := range configs.Elements() {
		sn := c.state.GetStateNumber()
		alts, ok := out[sn]
		if !ok {
			alts = NewBitSet()
			out[sn] = alts
		}
		alts.Add(c.alt)
	}
	return out
}

// allConfigsInRuleStopStates reports whether every config in the set sits
// at a RuleStop, the strongest "unambiguously done" signal prediction has.
func allConfigsInRuleStopStates(configs *ATNConfigSet) bool {
	for _, c := range configs.Elements() {
		if _, ok := c.state.(*RuleStopState); !ok {
			return false
		}
	}
	return true
}

// hasSLLConflictTerminatingPrediction implements the eager SLL
// termination rule: stop as soon as the alt-subsets can no longer change
// the outcome.
func hasSLLConflictTerminatingPrediction(mode PredictionMode, configs *ATNConfigSet) bool {
	if allConfigsInRuleStopStates(configs) {
		return true
	}
	if mode == PredictionModeSLL && hasConfigInRuleStopState(configs) {
		return true
	}

	altsets := getConflictingAltSubsets(configs)
	if !hasConflictingAltSet(altsets) {
		return false
	}
	if mode == PredictionModeSLL {
		return true
	}
	return !hasStateAssociatedWithOneAlt(configs)
}

func hasConfigInRuleStopState(configs *ATNConfigSet) bool {
	for _, c := range configs.Elements() {
		if _, ok := c.state.(*RuleStopState); ok {
			return true
		}
	}
	return false
}

func hasConflictingAltSet(altsets []*BitSet) bool {
	for _, a := range altsets {
		if a.Len() > 1 {
			return true
		}
	}
	return false
}

// hasStateAssociatedWithOneAlt reports whether at least one ATN state in
// the set is reached by exactly one alt (full LL keeps exploring as long
// as such a state exists, since it means the conflict might still resolve).
func hasStateAssociatedWithOneAlt(configs *ATNConfigSet) bool {
	for _, alts := range getStateToAltMap(configs) {
		if alts.Len() == 1 {
			return true
		}
	}
	return false
}

// allSubsetsConflict reports whether every alt-subset has more than one
// element.
func allSubsetsConflict(altsets []*BitSet) bool {
	return !hasNonConflictingAltSet(altsets)
}

func hasNonConflictingAltSet(altsets []*BitSet) bool {
	for _, a := range altsets {
		if a.Len() == 1 {
			return true
		}
	}
	return false
}

// allSubsetsEqual reports whether every alt-subset is identical.
func allSubsetsEqual(altsets []*BitSet) bool {
	if len(altsets) == 0 {
		return true
	}
	first := altsets[0]
	for _, a := range altsets[1:] {
		if !bitSetsEqual(first, a) {
			return false
		}
	}
	return true
}

func bitSetsEqual(a, b *BitSet) bool {
	av, bv := a.Values(), b.Values()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}

// resolvesToJustOneViableAlt returns the alt that getSingleViableAlt finds,
// or ATNInvalidAltNumber.
func resolvesToJustOneViableAlt(altsets []*BitSet) int {
	return getSingleViableAlt(altsets)
}

// getSingleViableAlt takes the minimum alt of each alt-subset and returns it
// when every subset has the same minimum, or ATNInvalidAltNumber when the
// minimums differ (or a subset is empty).
func getSingleViableAlt(altsets []*BitSet) int {
	viableAlts := NewBitSet()
	for _, alts := range altsets {
		minAlt := alts.Minimum()
		if minAlt == -1 {
			return ATNInvalidAltNumber
		}
		viableAlts.Add(minAlt)
		if viableAlts.Len() > 1 {
			return ATNInvalidAltNumber
		}
	}
	if viableAlts.Len() != 1 {
		return ATNInvalidAltNumber
	}
	return viableAlts.Minimum()
}

// getAlts returns the union of every alt-subset.
func getAlts(altsets []*BitSet) *BitSet {
	all := NewBitSet()
	for _, a := range altsets {
		all = all.Or(a)
	}
	return all
}

// getUniqueAlt returns the sole alt present across every config in the set,
// or ATNInvalidAltNumber if more than one alt is present.
func getUniqueAlt(configs *ATNConfigSet) int {
	alts := configs.GetAlts()
	if alts.Len() == 1 {
		return alts.Minimum()
	}
	return ATNInvalidAltNumber
}
