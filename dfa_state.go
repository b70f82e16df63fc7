// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "sync/atomic"

var globalDFAStateID int64

func nextDFAStateID() int64 { return atomic.AddInt64(&globalDFAStateID, 1) }

// PredPrediction pairs a predicate with the alt it guards, used when a
// DFAState's acceptance must be confirmed by evaluating predicates at
// runtime.
type PredPrediction struct {
	Pred SemanticContext
	Alt  int
}

// DFAState is one node of a per-decision or per-mode DFA. Equality and
// hashing are defined purely by the ATNConfigSet it seals in, so two
// distinct DFAStates discovered via different paths but carrying equal
// config sets are recognized as the same state by addDFAState.
type DFAState struct {
	stateNumber int
	configs     *ATNConfigSet

	// edges is a sparse symbol -> DFAState map. The parser simulator keys
	// by symbol+1 (so EOF, -1, has slot 0); the lexer simulator only ever
	// populates [0, 127] and keys directly by symbol.
	edges map[int]*DFAState

	isAcceptState      bool
	prediction         int
	lexerActionExecutor *LexerActionExecutor
	requiresFullContext bool
	predicates          []*PredPrediction
}

func NewDFAState(configs *ATNConfigSet) *DFAState {
	if configs == nil {
		configs = NewATNConfigSet(false)
	}
	return &DFAState{
		stateNumber: int(nextDFAStateID()),
		configs:     configs,
		edges:       make(map[int]*DFAState),
		prediction:  ATNInvalidAltNumber,
	}
}

func (d *DFAState) GetAltSet() *BitSet {
	if d.configs == nil {
		return nil
	}
	return d.configs.GetAlts()
}

func (d *DFAState) getEdge(symbol int) (*DFAState, bool) {
	s, ok := d.edges[symbol]
	return s, ok
}

func (d *DFAState) setEdge(symbol int, target *DFAState) {
	d.edges[symbol] = target
}

// equals implements the configs-only equality DFAState relies on for
// interning: two states with equal config sets are the same state.
func (d *DFAState) equals(other *DFAState) bool {
	if d == other {
		return true
	}
	if other == nil {
		return false
	}
	return d.configs.equals(other.configs)
}

func (d *DFAState) hash() int { return d.configs.hash() }

// ATNErrorState is the process-wide sentinel marking "no transition" in a
// DFAState's edge map. Comparisons against it must use identity, which Go's
// pointer equality gives for free.
var ATNErrorState = &DFAState{stateNumber: -1, prediction: ATNInvalidAltNumber}
