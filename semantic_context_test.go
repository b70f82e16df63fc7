// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicate_EvalDelegatesToSempred(t *testing.T) {
	var gotCtx RuleContext
	recog := &fakeRecognizer{sempred: func(ctx RuleContext, ruleIndex, predIndex int) bool {
		gotCtx = ctx
		return ruleIndex == 2 && predIndex == 1
	}}

	ctxDependent := NewPredicate(2, 1, true)
	assert.True(t, ctxDependent.eval(recog, nil))

	notCtxDependent := NewPredicate(2, 1, false)
	assert.True(t, notCtxDependent.eval(recog, nil))
	assert.Nil(t, gotCtx)
}

func TestPrecedencePredicate_EvalDelegatesToPrecpred(t *testing.T) {
	recog := &fakeRecognizer{precpred: func(ctx RuleContext, prec int) bool { return prec <= 5 }}

	assert.True(t, NewPrecedencePredicate(5).eval(recog, nil))
	assert.False(t, NewPrecedencePredicate(6).eval(recog, nil))
}

func TestPrecedencePredicate_EvalPrecedenceReducesToNoneOrFalse(t *testing.T) {
	recog := &fakeRecognizer{precpred: func(ctx RuleContext, prec int) bool { return prec <= 5 }}

	pp := NewPrecedencePredicate(5)
	assert.Equal(t, SemanticContextNone, pp.evalPrecedence(recog, nil))

	pp2 := NewPrecedencePredicate(6)
	assert.Nil(t, pp2.evalPrecedence(recog, nil))
}

func TestSemanticContextAnd_NoneIsIdentity(t *testing.T) {
	p := NewPredicate(0, 0, false)
	assert.Same(t, SemanticContext(p), SemanticContextAnd(SemanticContextNone, p))
	assert.Same(t, SemanticContext(p), SemanticContextAnd(p, SemanticContextNone))
}

func TestSemanticContextAnd_DedupesIdenticalOperands(t *testing.T) {
	p := NewPredicate(0, 0, false)
	got := SemanticContextAnd(p, p)
	assert.Equal(t, p, got)
}

func TestSemanticContextAnd_FlattensNestedAnd(t *testing.T) {
	p1 := NewPredicate(0, 0, false)
	p2 := NewPredicate(0, 1, false)
	p3 := NewPredicate(0, 2, false)

	nested := SemanticContextAnd(SemanticContextAnd(p1, p2), p3)
	and, ok := nested.(*andContext)
	if ok {
		assert.Len(t, and.opnds, 3)
	} else {
		t.Fatalf("expected *andContext, got %T", nested)
	}
}

func TestSemanticContextAnd_CollapsesToMostRestrictivePrecedencePredicate(t *testing.T) {
	low := NewPrecedencePredicate(2)
	high := NewPrecedencePredicate(5)

	got := SemanticContextAnd(low, high)
	assert.Equal(t, high, got)
}

func TestSemanticContextOr_NoneIsAbsorbing(t *testing.T) {
	p := NewPredicate(0, 0, false)
	assert.Equal(t, SemanticContextNone, SemanticContextOr(SemanticContextNone, p))
	assert.Equal(t, SemanticContextNone, SemanticContextOr(p, SemanticContextNone))
}

func TestSemanticContextOr_CollapsesToLeastRestrictivePrecedencePredicate(t *testing.T) {
	low := NewPrecedencePredicate(2)
	high := NewPrecedencePredicate(5)

	got := SemanticContextOr(low, high)
	assert.Equal(t, low, got)
}

func TestAndContext_EvalIsConjunction(t *testing.T) {
	alwaysTrue := &fakeRecognizer{sempred: func(RuleContext, int, int) bool { return true }}
	alwaysFalse := &fakeRecognizer{sempred: func(RuleContext, int, int) bool { return false }}

	p1 := NewPredicate(0, 0, false)
	p2 := NewPredicate(0, 1, false)
	and := SemanticContextAnd(p1, p2)

	assert.True(t, and.eval(alwaysTrue, nil))
	assert.False(t, and.eval(alwaysFalse, nil))
}

func TestOrContext_EvalIsDisjunction(t *testing.T) {
	calls := 0
	recog := &fakeRecognizer{sempred: func(_ RuleContext, _ int, predIndex int) bool {
		calls++
		return predIndex == 1
	}}

	p1 := NewPredicate(0, 0, false)
	p2 := NewPredicate(0, 1, false)
	or := SemanticContextOr(p1, p2)

	assert.True(t, or.eval(recog, nil))
	assert.Equal(t, 2, calls)
}
