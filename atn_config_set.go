// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ATNConfigSet is the ordered, keyed-merge collection of configurations
// closure/reach build up.
type ATNConfigSet struct {
	configs []*ATNConfig
	lookup  map[equivalenceKey]*ATNConfig

	hasSemanticContext   bool
	dipsIntoOuterContext bool
	uniqueAlt            int
	conflictingAlts      *BitSet
	fullCtx              bool
	readOnly             bool

	cachedHash int
}

// NewATNConfigSet returns an empty, mutable config set. fullCtx selects the
// merge mode Add uses (rootIsWildcard = !fullCtx).
func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		lookup:    make(map[equivalenceKey]*ATNConfig),
		fullCtx:   fullCtx,
		uniqueAlt: ATNInvalidAltNumber,
	}
}

// Add inserts cfg, merging contexts in place on an equivalence-key hit.
func (s *ATNConfigSet) Add(cfg *ATNConfig, mergeCache *MergeCache) bool {
	if s.readOnly {
		panic("cannot modify read-only ATNConfigSet")
	}
	if cfg.semanticContext != SemanticContextNone {
		s.hasSemanticContext = true
	}
	if cfg.getOuterContextDepth() > 0 {
		s.dipsIntoOuterContext = true
	}

	key := cfg.equivKey()
	if existing, ok := s.lookup[key]; ok {
		rootIsWildcard := !s.fullCtx
		merged := Merge(existing.context, cfg.context, rootIsWildcard, mergeCache)
		existing.context = merged
		if cfg.getOuterContextDepth() > existing.getOuterContextDepth() {
			existing.setOuterContextDepth(cfg.getOuterContextDepth())
		}
		if cfg.getPrecedenceFilterSuppressed() {
			existing.setPrecedenceFilterSuppressed(true)
		}
		return false
	}

	s.lookup[key] = cfg
	s.configs = append(s.configs, cfg)
	return true
}

func (s *ATNConfigSet) Elements() []*ATNConfig { return s.configs }
func (s *ATNConfigSet) Length() int             { return len(s.configs) }
func (s *ATNConfigSet) IsEmpty() bool           { return len(s.configs) == 0 }

// GetStates returns the distinct ATN states carried by this set's configs.
func (s *ATNConfigSet) GetStates() map[ATNState]struct{} {
	out := make(map[ATNState]struct{}, len(s.configs))
	for _, c := range s.configs {
		out[c.state] = struct{}{}
	}
	return out
}

// GetAlts returns the set of distinct alt numbers present.
func (s *ATNConfigSet) GetAlts() *BitSet {
	out := NewBitSet()
	for _, c := range s.configs {
		out.Add(c.alt)
	}
	return out
}

// SetReadonly seals the set, discarding the lookup table.
func (s *ATNConfigSet) SetReadonly(v bool) {
	s.readOnly = v
	if v {
		s.lookup = nil
	}
}

func (s *ATNConfigSet) IsReadOnly() bool { return s.readOnly }

// HasSemanticContext / DipsIntoOuterContext / FullContext expose the flags
// the simulators branch on.
func (s *ATNConfigSet) HasSemanticContext() bool   { return s.hasSemanticContext }
func (s *ATNConfigSet) DipsIntoOuterContext() bool { return s.dipsIntoOuterContext }
func (s *ATNConfigSet) FullContext() bool           { return s.fullCtx }

func (s *ATNConfigSet) SetConflictingAlts(b *BitSet) { s.conflictingAlts = b }
func (s *ATNConfigSet) GetConflictingAlts() *BitSet   { return s.conflictingAlts }

func (s *ATNConfigSet) hash() int {
	if s.cachedHash != 0 {
		return s.cachedHash
	}
	h := 1
	for _, c := range s.configs {
		h = h*31 + c.state.GetStateNumber()*13 + c.alt
	}
	s.cachedHash = h
	return h
}

// equals compares two sealed config sets by their configs, the way
// DFAState equality is defined.
func (s *ATNConfigSet) equals(other *ATNConfigSet) bool {
	if s == other {
		return true
	}
	if other == nil || len(s.configs) != len(other.configs) {
		return false
	}
	for i, c := range s.configs {
		if !c.equals(other.configs[i]) {
			return false
		}
	}
	return true
}

// OrderedATNConfigSet preserves insertion order identically to ATNConfigSet;
// the lexer simulator uses it for its start-state closure and reach sets,
// and it is kept separate from ATNConfigSet so callers that need it are
// explicit about the distinction.
type OrderedATNConfigSet struct{ *ATNConfigSet }

func NewOrderedATNConfigSet() *OrderedATNConfigSet {
	return &OrderedATNConfigSet{ATNConfigSet: NewATNConfigSet(false)}
}
