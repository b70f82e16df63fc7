// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"sync"

	"golang.org/x/exp/slices"
)

// EmptyReturnState marks an Array entry whose rule invocation fell off the
// outermost caller. It must sort after every real state number, so it is
// represented as MaxInt.
const EmptyReturnState = int(^uint(0) >> 1)

// PredictionContext is a node in the graph-structured stack (GSS): an
// immutable representation of the set of possible rule-return-state stacks
// that could have led to the configuration carrying it.
type PredictionContext interface {
	GetParent(i int) PredictionContext
	getReturnState(i int) int
	length() int
	isEmpty() bool
	hasEmptyPath() bool
	hash() int
	equals(other PredictionContext) bool
}

// emptyPredictionContext represents `$`, the bottom of the outermost
// invocation.
type emptyPredictionContext struct{}

// EmptyPredictionContext is the shared Empty singleton.
var EmptyPredictionContext PredictionContext = emptyPredictionContext{}

func (emptyPredictionContext) GetParent(int) PredictionContext { return nil }
func (emptyPredictionContext) getReturnState(int) int           { return EmptyReturnState }
func (emptyPredictionContext) length() int                      { return 1 }
func (emptyPredictionContext) isEmpty() bool                    { return true }
func (emptyPredictionContext) hasEmptyPath() bool                { return true }
func (emptyPredictionContext) hash() int                        { return 1 }
func (emptyPredictionContext) equals(other PredictionContext) bool {
	_, ok := other.(emptyPredictionContext)
	return ok
}

// SingletonPredictionContext is one (parent, returnState) frame.
type SingletonPredictionContext struct {
	parent      PredictionContext
	returnState int
	cachedHash  int
}

// NewSingletonPredictionContext builds a Singleton node; a nil parent
// denotes Empty, matching the reference coercion rule.
func NewSingletonPredictionContext(parent PredictionContext, returnState int) *SingletonPredictionContext {
	if parent == nil {
		parent = EmptyPredictionContext
	}
	s := &SingletonPredictionContext{parent: parent, returnState: returnState}
	s.cachedHash = calculateSingletonHash(parent, returnState)
	return s
}

func calculateSingletonHash(parent PredictionContext, returnState int) int {
	h := 1
	if parent != nil {
		h = parent.hash()
	}
	h = h*31 + returnState
	return h
}

func (s *SingletonPredictionContext) GetParent(int) PredictionContext { return s.parent }
func (s *SingletonPredictionContext) getReturnState(int) int           { return s.returnState }
func (s *SingletonPredictionContext) length() int                      { return 1 }
func (s *SingletonPredictionContext) isEmpty() bool {
	_, ok := s.parent.(emptyPredictionContext)
	return s.returnState == EmptyReturnState && ok
}
func (s *SingletonPredictionContext) hasEmptyPath() bool { return s.returnState == EmptyReturnState }
func (s *SingletonPredictionContext) hash() int          { return s.cachedHash }
func (s *SingletonPredictionContext) equals(other PredictionContext) bool {
	o, ok := other.(*SingletonPredictionContext)
	if !ok {
		return false
	}
	return s.returnState == o.returnState && contextsEqual(s.parent, o.parent)
}

// ArrayPredictionContext holds the parents/returnStates of a configuration
// that can be reached from more than one caller. Invariant: returnStates is
// sorted ascending, with EmptyReturnState (if present) always last.
type ArrayPredictionContext struct {
	parents      []PredictionContext
	returnStates []int
	cachedHash   int
}

func NewArrayPredictionContext(parents []PredictionContext, returnStates []int) *ArrayPredictionContext {
	a := &ArrayPredictionContext{parents: parents, returnStates: returnStates}
	h := 1
	for i := range parents {
		if parents[i] != nil {
			h = h*31 + parents[i].hash()
		}
		h = h*31 + returnStates[i]
	}
	a.cachedHash = h
	return a
}

func (a *ArrayPredictionContext) GetParent(i int) PredictionContext { return a.parents[i] }
func (a *ArrayPredictionContext) getReturnState(i int) int           { return a.returnStates[i] }
func (a *ArrayPredictionContext) length() int                        { return len(a.returnStates) }
func (a *ArrayPredictionContext) isEmpty() bool {
	return len(a.returnStates) == 1 && a.returnStates[0] == EmptyReturnState
}
func (a *ArrayPredictionContext) hasEmptyPath() bool {
	return a.getReturnState(a.length()-1) == EmptyReturnState
}
func (a *ArrayPredictionContext) hash() int { return a.cachedHash }
func (a *ArrayPredictionContext) equals(other PredictionContext) bool {
	o, ok := other.(*ArrayPredictionContext)
	if !ok || len(a.returnStates) != len(o.returnStates) {
		return false
	}
	for i := range a.returnStates {
		if a.returnStates[i] != o.returnStates[i] || !contextsEqual(a.parents[i], o.parents[i]) {
			return false
		}
	}
	return true
}

func contextsEqual(a, b PredictionContext) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equals(b)
}

// asArray coerces a Singleton or Empty into a single-entry Array so
// mergeArrays can handle every shape uniformly.
func asArray(ctx PredictionContext) *ArrayPredictionContext {
	if a, ok := ctx.(*ArrayPredictionContext); ok {
		return a
	}
	if _, ok := ctx.(emptyPredictionContext); ok {
		return NewArrayPredictionContext([]PredictionContext{nil}, []int{EmptyReturnState})
	}
	s := ctx.(*SingletonPredictionContext)
	return NewArrayPredictionContext([]PredictionContext{s.parent}, []int{s.returnState})
}

// mergeCacheKey identifies an ordered pair of merge inputs for the
// per-prediction merge cache.
type mergeCacheKey struct{ a, b PredictionContext }

// MergeCache memoizes merge(a, b) results for the lifetime of a single
// AdaptivePredict call; it must be discarded afterward.
type MergeCache struct {
	m map[mergeCacheKey]PredictionContext
}

func NewMergeCache() *MergeCache { return &MergeCache{m: make(map[mergeCacheKey]PredictionContext)} }

func (c *MergeCache) get(a, b PredictionContext) (PredictionContext, bool) {
	v, ok := c.m[mergeCacheKey{a, b}]
	return v, ok
}

func (c *MergeCache) put(a, b PredictionContext, v PredictionContext) {
	c.m[mergeCacheKey{a, b}] = v
}

// Merge combines a and b into the context representing the union of the
// stacks they denote.
func Merge(a, b PredictionContext, rootIsWildcard bool, mergeCache *MergeCache) PredictionContext {
	if a == b || a.equals(b) {
		return a
	}
	as, aOk := a.(*SingletonPredictionContext)
	bs, bOk := b.(*SingletonPredictionContext)
	if aOk && bOk {
		return mergeSingletons(as, bs, rootIsWildcard, mergeCache)
	}
	if _, ok := a.(emptyPredictionContext); ok {
		if rootIsWildcard {
			return EmptyPredictionContext
		}
	}
	if _, ok := b.(emptyPredictionContext); ok {
		if rootIsWildcard {
			return EmptyPredictionContext
		}
	}
	return mergeArrays(asArray(a), asArray(b), rootIsWildcard, mergeCache)
}

func mergeSingletons(a, b *SingletonPredictionContext, rootIsWildcard bool, mergeCache *MergeCache) PredictionContext {
	if mergeCache != nil {
		if v, ok := mergeCache.get(a, b); ok {
			return v
		}
		if v, ok := mergeCache.get(b, a); ok {
			return v
		}
	}

	rootMerge := mergeRoot(a, b, rootIsWildcard)
	if rootMerge != nil {
		if mergeCache != nil {
			mergeCache.put(a, b, rootMerge)
		}
		return rootMerge
	}

	var result PredictionContext
	if a.returnState == b.returnState {
		parent := Merge(a.parent, b.parent, rootIsWildcard, mergeCache)
		switch {
		case contextsEqual(parent, a.parent):
			result = a
		case contextsEqual(parent, b.parent):
			result = b
		default:
			result = NewSingletonPredictionContext(parent, a.returnState)
		}
	} else {
		var parent PredictionContext
		if a.parent != nil && b.parent != nil && contextsEqual(a.parent, b.parent) {
			parent = a.parent
			lo, hi := a.returnState, b.returnState
			if lo > hi {
				lo, hi = hi, lo
			}
			result = NewArrayPredictionContext([]PredictionContext{parent, parent}, []int{lo, hi})
		} else {
			var parents []PredictionContext
			var states []int
			if a.returnState < b.returnState {
				parents = []PredictionContext{a.parent, b.parent}
				states = []int{a.returnState, b.returnState}
			} else {
				parents = []PredictionContext{b.parent, a.parent}
				states = []int{b.returnState, a.returnState}
			}
			result = NewArrayPredictionContext(parents, states)
		}
	}

	if mergeCache != nil {
		mergeCache.put(a, b, result)
	}
	return result
}

// mergeRoot special-cases a merge where one side is Empty.
func mergeRoot(a, b *SingletonPredictionContext, rootIsWildcard bool) PredictionContext {
	if rootIsWildcard {
		if a.returnState == EmptyReturnState {
			return EmptyPredictionContext
		}
		if b.returnState == EmptyReturnState {
			return EmptyPredictionContext
		}
		return nil
	}
	if a.returnState == EmptyReturnState && b.returnState == EmptyReturnState {
		return a
	}
	if a.returnState == EmptyReturnState {
		parents := []PredictionContext{b.parent, nil}
		states := []int{b.returnState, EmptyReturnState}
		return NewArrayPredictionContext(parents, states)
	}
	if b.returnState == EmptyReturnState {
		parents := []PredictionContext{a.parent, nil}
		states := []int{a.returnState, EmptyReturnState}
		return NewArrayPredictionContext(parents, states)
	}
	return nil
}

// mergeArrays is the classic sorted-merge of two Array contexts.
func mergeArrays(a, b *ArrayPredictionContext, rootIsWildcard bool, mergeCache *MergeCache) PredictionContext {
	if mergeCache != nil {
		if v, ok := mergeCache.get(a, b); ok {
			return v
		}
		if v, ok := mergeCache.get(b, a); ok {
			return v
		}
	}

	i, j := 0, 0
	var mergedParents []PredictionContext
	var mergedStates []int

	for i < len(a.returnStates) && j < len(b.returnStates) {
		pa, pb := a.parents[i], b.parents[j]
		sa, sb := a.returnStates[i], b.returnStates[j]
		switch {
		case sa == sb:
			state := sa
			var mergedParent PredictionContext
			if state == EmptyReturnState && pa == nil && pb == nil {
				mergedParent = nil
			} else if pa != nil && pb != nil && contextsEqual(pa, pb) {
				mergedParent = pa
			} else {
				mergedParent = Merge(pa, pb, rootIsWildcard, mergeCache)
			}
			mergedParents = append(mergedParents, mergedParent)
			mergedStates = append(mergedStates, state)
			i++
			j++
		case sa < sb:
			mergedParents = append(mergedParents, pa)
			mergedStates = append(mergedStates, sa)
			i++
		default:
			mergedParents = append(mergedParents, pb)
			mergedStates = append(mergedStates, sb)
			j++
		}
	}
	for ; i < len(a.returnStates); i++ {
		mergedParents = append(mergedParents, a.parents[i])
		mergedStates = append(mergedStates, a.returnStates[i])
	}
	for ; j < len(b.returnStates); j++ {
		mergedParents = append(mergedParents, b.parents[j])
		mergedStates = append(mergedStates, b.returnStates[j])
	}

	mergedParents, mergedStates = combineCommonParents(mergedParents, mergedStates)

	var result PredictionContext
	switch len(mergedStates) {
	case 1:
		result = NewSingletonPredictionContext(mergedParents[0], mergedStates[0])
	default:
		merged := NewArrayPredictionContext(mergedParents, mergedStates)
		switch {
		case merged.equals(a):
			result = a
		case merged.equals(b):
			result = b
		default:
			result = merged
		}
	}

	if mergeCache != nil {
		mergeCache.put(a, b, result)
	}
	return result
}

// combineCommonParents de-duplicates parents that are structurally equal
// but not reference-equal, so downstream identity checks keep working.
func combineCommonParents(parents []PredictionContext, states []int) ([]PredictionContext, []int) {
	uniq := make(map[int]PredictionContext)
	var order []int
	for _, p := range parents {
		if p == nil {
			continue
		}
		h := p.hash()
		if existing, ok := uniq[h]; ok && existing.equals(p) {
			continue
		}
		uniq[h] = p
		order = append(order, h)
	}
	canon := func(p PredictionContext) PredictionContext {
		if p == nil {
			return nil
		}
		if existing, ok := uniq[p.hash()]; ok && existing.equals(p) {
			return existing
		}
		return p
	}
	out := make([]PredictionContext, len(parents))
	for i, p := range parents {
		out[i] = canon(p)
	}
	return out, states
}

// fromRuleContext walks the caller chain from innermost to outermost,
// emitting one Singleton frame per invocation.
func fromRuleContext(atn *ATN, outerContext RuleContext) PredictionContext {
	if outerContext == nil {
		return EmptyPredictionContext
	}
	if outerContext.IsEmpty() || outerContext.GetParent() == nil {
		return EmptyPredictionContext
	}
	parent := fromRuleContext(atn, outerContext.GetParent())
	state := atn.states[outerContext.GetInvokingState()]
	transition := state.GetTransitions()[0].(*RuleTransition)
	return NewSingletonPredictionContext(parent, transition.followState.GetStateNumber())
}

// PredictionContextCache is the process-wide intern table that canonicalizes
// nodes retained across predictions. It is safe for concurrent use by
// multiple recognizers sharing DFAs.
type PredictionContextCache struct {
	mu    sync.Mutex
	cache map[int][]PredictionContext
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: make(map[int][]PredictionContext)}
}

// add interns ctx, returning the canonical shared instance for its
// structural identity.
func (c *PredictionContextCache) add(ctx PredictionContext) PredictionContext {
	if _, ok := ctx.(emptyPredictionContext); ok {
		return EmptyPredictionContext
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	h := ctx.hash()
	for _, existing := range c.cache[h] {
		if existing.equals(ctx) {
			return existing
		}
	}
	c.cache[h] = append(c.cache[h], ctx)
	return ctx
}

// getCachedContext rebuilds ctx bottom-up, substituting cached equivalents
// for every parent before interning the result.
func (c *PredictionContextCache) getCachedContext(ctx PredictionContext, visited map[PredictionContext]PredictionContext) PredictionContext {
	if ctx.isEmpty() {
		return ctx
	}
	if existing, ok := visited[ctx]; ok {
		return existing
	}
	if cached := c.add(ctx); cached != ctx {
		visited[ctx] = cached
		return cached
	}

	switch v := ctx.(type) {
	case *SingletonPredictionContext:
		parent := c.getCachedContext(v.parent, visited)
		updated := NewSingletonPredictionContext(parent, v.returnState)
		canon := c.add(updated)
		visited[ctx] = canon
		return canon
	case *ArrayPredictionContext:
		parents := make([]PredictionContext, len(v.parents))
		changed := false
		for i, p := range v.parents {
			if p == nil {
				parents[i] = nil
				continue
			}
			np := c.getCachedContext(p, visited)
			parents[i] = np
			if np != p {
				changed = true
			}
		}
		if !changed {
			canon := c.add(v)
			visited[ctx] = canon
			return canon
		}
		states := slices.Clone(v.returnStates)
		updated := NewArrayPredictionContext(parents, states)
		canon := c.add(updated)
		visited[ctx] = canon
		return canon
	default:
		return ctx
	}
}
