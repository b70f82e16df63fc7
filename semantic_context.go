// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"fmt"
	"sort"
	"strings"
)

// SemanticContext is a tree of runtime-evaluated predicates attached to an
// ATNConfig. SemanticContextNone (the value semanticContextNone{}) represents the
// always-true predicate and is what most configs carry.
type SemanticContext interface {
	eval(recog Recognizer, ctx RuleContext) bool
	evalPrecedence(recog Recognizer, ctx RuleContext) SemanticContext
	hash() int
	equals(other SemanticContext) bool
	String() string
}

type semanticContextNone struct{}

// SemanticContextNone is the shared always-true predicate.
var SemanticContextNone SemanticContext = semanticContextNone{}

func (semanticContextNone) eval(Recognizer, RuleContext) bool { return true }
func (s semanticContextNone) evalPrecedence(Recognizer, RuleContext) SemanticContext { return s }
func (semanticContextNone) hash() int                   { return 1 }
func (semanticContextNone) equals(o SemanticContext) bool { _, ok := o.(semanticContextNone); return ok }
func (semanticContextNone) String() string               { return "" }

// Predicate is a `{...}?` semantic predicate that reads the recognizer's
// rule-invocation chain when isCtxDependent is set.
type Predicate struct {
	ruleIndex      int
	predIndex      int
	isCtxDependent bool
}

func NewPredicate(ruleIndex, predIndex int, isCtxDependent bool) *Predicate {
	return &Predicate{ruleIndex: ruleIndex, predIndex: predIndex, isCtxDependent: isCtxDependent}
}

func (p *Predicate) eval(recog Recognizer, ctx RuleContext) bool {
	var c RuleContext
	if p.isCtxDependent {
		c = ctx
	}
	return recog.Sempred(c, p.ruleIndex, p.predIndex)
}

func (p *Predicate) evalPrecedence(Recognizer, RuleContext) SemanticContext { return p }
func (p *Predicate) hash() int { return p.ruleIndex*31*31 + p.predIndex*31 + boolHash(p.isCtxDependent) }
func (p *Predicate) equals(o SemanticContext) bool {
	op, ok := o.(*Predicate)
	return ok && op.ruleIndex == p.ruleIndex && op.predIndex == p.predIndex && op.isCtxDependent == p.isCtxDependent
}
func (p *Predicate) String() string { return fmt.Sprintf("{%d:%d}?", p.ruleIndex, p.predIndex) }

// PrecedencePredicate is the synthesized `{precedence >= N}?` guard on a
// left-recursive rule's enter branch.
type PrecedencePredicate struct{ precedence int }

func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{precedence: precedence}
}

func (p *PrecedencePredicate) eval(recog Recognizer, ctx RuleContext) bool {
	return recog.Precpred(ctx, p.precedence)
}

// evalPrecedence returns SemanticContextNone when the current precedence
// still satisfies this predicate, or nil (meaning "false") otherwise.
// applyPrecedenceFilter uses it to prune a precedence DFA's start state.
func (p *PrecedencePredicate) evalPrecedence(recog Recognizer, ctx RuleContext) SemanticContext {
	if recog.Precpred(ctx, p.precedence) {
		return SemanticContextNone
	}
	return nil
}

func (p *PrecedencePredicate) hash() int { return p.precedence * 31 }
func (p *PrecedencePredicate) equals(o SemanticContext) bool {
	op, ok := o.(*PrecedencePredicate)
	return ok && op.precedence == p.precedence
}
func (p *PrecedencePredicate) String() string { return fmt.Sprintf("{%d>=prec}?", p.precedence) }

func (p *PrecedencePredicate) compareTo(other *PrecedencePredicate) int {
	return p.precedence - other.precedence
}

// andContext is the conjunction of two or more operands, flattened so no
// operand is itself an andContext.
type andContext struct{ opnds []SemanticContext }

// orContext is the disjunction counterpart of andContext.
type orContext struct{ opnds []SemanticContext }

// SemanticContextAnd builds the conjunction of a and b, flattening nested
// And nodes and special-casing None (identity element) as the operands are
// combined during closure.
func SemanticContextAnd(a, b SemanticContext) SemanticContext {
	if a == nil || a == SemanticContextNone {
		return b
	}
	if b == nil || b == SemanticContextNone {
		return a
	}
	operands := make(map[string]SemanticContext)
	seen := make(map[string]bool)
	var order []string
	add := func(sc SemanticContext) {
		key := sc.String() + fmt.Sprintf("#%d", sc.hash())
		operands[key] = sc
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}
	if and, ok := a.(*andContext); ok {
		for _, o := range and.opnds {
			add(o)
		}
	} else {
		add(a)
	}
	if and, ok := b.(*andContext); ok {
		for _, o := range and.opnds {
			add(o)
		}
	} else {
		add(b)
	}

	precedencePredicates := filterPrecedencePredicates(order, operands)
	if len(precedencePredicates) > 0 {
		// Keep only the most restrictive (highest) precedence predicate,
		// mirroring the reference reduction.
		sort.Slice(precedencePredicates, func(i, j int) bool {
			return precedencePredicates[i].compareTo(precedencePredicates[j]) < 0
		})
		add(precedencePredicates[len(precedencePredicates)-1])
	}

	var result []SemanticContext
	for _, k := range order {
		if sc, ok := operands[k]; ok {
			result = append(result, sc)
		}
	}
	if len(result) == 1 {
		return result[0]
	}
	return &andContext{opnds: result}
}

// SemanticContextOr is the disjunction counterpart of SemanticContextAnd.
func SemanticContextOr(a, b SemanticContext) SemanticContext {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a == SemanticContextNone || b == SemanticContextNone {
		return SemanticContextNone
	}
	operands := make(map[string]SemanticContext)
	seen := make(map[string]bool)
	var order []string
	add := func(sc SemanticContext) {
		key := sc.String() + fmt.Sprintf("#%d", sc.hash())
		operands[key] = sc
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}
	if or, ok := a.(*orContext); ok {
		for _, o := range or.opnds {
			add(o)
		}
	} else {
		add(a)
	}
	if or, ok := b.(*orContext); ok {
		for _, o := range or.opnds {
			add(o)
		}
	} else {
		add(b)
	}

	precedencePredicates := filterPrecedencePredicates(order, operands)
	if len(precedencePredicates) > 0 {
		sort.Slice(precedencePredicates, func(i, j int) bool {
			return precedencePredicates[i].compareTo(precedencePredicates[j]) < 0
		})
		add(precedencePredicates[0])
	}

	var result []SemanticContext
	for _, k := range order {
		if sc, ok := operands[k]; ok {
			result = append(result, sc)
		}
	}
	if len(result) == 1 {
		return result[0]
	}
	return &orContext{opnds: result}
}

// filterPrecedencePredicates removes PrecedencePredicate operands from the
// operand map and returns them separately, the way the reference
// implementation collapses multiple precedence guards into one.
func filterPrecedencePredicates(order []string, operands map[string]SemanticContext) []*PrecedencePredicate {
	var out []*PrecedencePredicate
	for _, k := range order {
		if pp, ok := operands[k].(*PrecedencePredicate); ok {
			out = append(out, pp)
			delete(operands, k)
		}
	}
	return out
}

func (a *andContext) eval(recog Recognizer, ctx RuleContext) bool {
	for _, o := range a.opnds {
		if !o.eval(recog, ctx) {
			return false
		}
	}
	return true
}

func (a *andContext) evalPrecedence(recog Recognizer, ctx RuleContext) SemanticContext {
	differs := false
	var operands []SemanticContext
	for _, o := range a.opnds {
		evaluated := o.evalPrecedence(recog, ctx)
		differs = differs || evaluated != o
		if evaluated == nil {
			return nil
		}
		if evaluated != SemanticContextNone {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return a
	}
	if len(operands) == 0 {
		return SemanticContextNone
	}
	result := operands[0]
	for _, o := range operands[1:] {
		result = SemanticContextAnd(result, o)
	}
	return result
}

func (a *andContext) hash() int {
	h := 0
	for _, o := range a.opnds {
		h = h*31 + o.hash()
	}
	return h
}

func (a *andContext) equals(other SemanticContext) bool {
	oa, ok := other.(*andContext)
	if !ok || len(oa.opnds) != len(a.opnds) {
		return false
	}
	for i, o := range a.opnds {
		if !o.equals(oa.opnds[i]) {
			return false
		}
	}
	return true
}

func (a *andContext) String() string {
	parts := make([]string, len(a.opnds))
	for i, o := range a.opnds {
		parts[i] = o.String()
	}
	return strings.Join(parts, "&&")
}

func (o *orContext) eval(recog Recognizer, ctx RuleContext) bool {
	for _, c := range o.opnds {
		if c.eval(recog, ctx) {
			return true
		}
	}
	return false
}

func (o *orContext) evalPrecedence(recog Recognizer, ctx RuleContext) SemanticContext {
	differs := false
	var operands []SemanticContext
	for _, c := range o.opnds {
		evaluated := c.evalPrecedence(recog, ctx)
		differs = differs || evaluated != c
		if evaluated == SemanticContextNone {
			return SemanticContextNone
		}
		if evaluated != nil {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return o
	}
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, c := range operands[1:] {
		result = SemanticContextOr(result, c)
	}
	return result
}

func (o *orContext) hash() int {
	h := 0
	for _, c := range o.opnds {
		h = h*31 + c.hash()
	}
	return h
}

func (o *orContext) equals(other SemanticContext) bool {
	oo, ok := other.(*orContext)
	if !ok || len(oo.opnds) != len(o.opnds) {
		return false
	}
	for i, c := range o.opnds {
		if !c.equals(oo.opnds[i]) {
			return false
		}
	}
	return true
}

func (o *orContext) String() string {
	parts := make([]string, len(o.opnds))
	for i, c := range o.opnds {
		parts[i] = c.String()
	}
	return strings.Join(parts, "||")
}

func boolHash(b bool) int {
	if b {
		return 1
	}
	return 0
}
