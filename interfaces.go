// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// This file defines the external collaborators the core simulators depend
// on. They depend only on these contracts; concrete parse-tree datatypes,
// listener/visitor walkers, token/char stream implementations, and the
// default error-recovery strategy are out of scope and live outside this
// module.

// RuleContext is the caller's view of the current rule-invocation chain,
// used to build and walk PredictionContext stacks and to evaluate
// context-dependent predicates.
type RuleContext interface {
	GetInvokingState() int
	SetInvokingState(int)
	GetParent() RuleContext
	GetRuleIndex() int
	IsEmpty() bool
}

// Recognizer is implemented by whatever owns the current parse (a generated
// parser or lexer). The core simulators call back into it to evaluate
// semantic and precedence predicates and to run grammar actions; they never
// touch a parse tree.
type Recognizer interface {
	Sempred(localctx RuleContext, ruleIndex, actionIndex int) bool
	Precpred(localctx RuleContext, precedence int) bool
	Action(localctx RuleContext, ruleIndex, actionIndex int)
	GetATN() *ATN
}

// CharStream is the input contract for LexerATNSimulator.
type CharStream interface {
	IntStream
	GetTextFromInterval(Interval) string
}

// TokenStream is the input contract for ParserATNSimulator.
type TokenStream interface {
	IntStream
	LT(k int) Token
	Get(index int) Token
}

// IntStream is the shared mark/seek/release contract both stream kinds
// implement; mark/release must nest LIFO.
type IntStream interface {
	consume()
	LA(offset int) int
	Mark() int
	Release(marker int)
	Index() int
	Seek(index int)
	Size() int
}

// ErrorListener receives the non-exceptional conditions the simulators
// report: failed predicates never arrive here (they're folded into
// NoViableAlt or silently pruned), but ambiguity and context-sensitivity do.
type ErrorListener interface {
	SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e error)
	ReportAmbiguity(recognizer *Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet)
	ReportAttemptingFullContext(recognizer *Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet)
	ReportContextSensitivity(recognizer *Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet)
}
