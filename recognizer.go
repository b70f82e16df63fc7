// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// BaseRecognizer is the minimal shared scaffolding a generated parser or
// lexer embeds to satisfy Recognizer. Grammar-specific predicate/action
// bodies are generated code and out of scope here; they are supplied as
// function hooks so the simulators have something real to call during
// tests without pulling in a code generator.
type BaseRecognizer struct {
	atn *ATN

	SempredFunc func(localctx RuleContext, ruleIndex, actionIndex int) bool
	PrecpredFunc func(localctx RuleContext, precedence int) bool
	ActionFunc  func(localctx RuleContext, ruleIndex, actionIndex int)

	Listeners []ErrorListener
}

func (r *BaseRecognizer) GetATN() *ATN { return r.atn }
func (r *BaseRecognizer) SetATN(a *ATN) { r.atn = a }

func (r *BaseRecognizer) Sempred(localctx RuleContext, ruleIndex, actionIndex int) bool {
	if r.SempredFunc == nil {
		return true
	}
	return r.SempredFunc(localctx, ruleIndex, actionIndex)
}

func (r *BaseRecognizer) Precpred(localctx RuleContext, precedence int) bool {
	if r.PrecpredFunc == nil {
		return true
	}
	return r.PrecpredFunc(localctx, precedence)
}

func (r *BaseRecognizer) Action(localctx RuleContext, ruleIndex, actionIndex int) {
	if r.ActionFunc != nil {
		r.ActionFunc(localctx, ruleIndex, actionIndex)
	}
}

func (r *BaseRecognizer) AddErrorListener(l ErrorListener) {
	r.Listeners = append(r.Listeners, l)
}

// Parser is the driver that owns one token stream, its rule-invocation
// context, and the current precedence for left-recursive rules. The parse
// tree / listener-walking layer built on top of it is out of scope here.
type Parser struct {
	BaseRecognizer

	Interpreter *ParserATNSimulator
	Input       TokenStream
	ctx         RuleContext
	precedence  int
}

func NewParser(atn *ATN, input TokenStream, sharedCtxCache *PredictionContextCache) *Parser {
	p := &Parser{Input: input, precedence: -1}
	p.SetATN(atn)
	p.Interpreter = NewParserATNSimulator(p, atn, sharedCtxCache)
	return p
}

func (p *Parser) GetContext() RuleContext     { return p.ctx }
func (p *Parser) SetContext(ctx RuleContext)  { p.ctx = ctx }
func (p *Parser) GetPrecedence() int          { return p.precedence }
func (p *Parser) SetPrecedence(prec int)      { p.precedence = prec }

func (p *Parser) NotifyErrorListeners(msg string, offendingSymbol interface{}, e error) {
	var line, col int
	if t, ok := offendingSymbol.(Token); ok {
		line, col = t.GetLine(), t.GetColumn()
	}
	for _, l := range p.Listeners {
		l.SyntaxError(p, offendingSymbol, line, col, msg, e)
	}
}

// Lexer is the driver that owns one character stream and the currently
// active lexical mode.
type Lexer struct {
	BaseRecognizer

	Interpreter *LexerATNSimulator
	Input       CharStream
	Mode        int
}

func NewLexer(atn *ATN, input CharStream) *Lexer {
	l := &Lexer{Input: input}
	l.SetATN(atn)
	l.Interpreter = NewLexerATNSimulator(l, atn, NewPredictionContextCache())
	return l
}

func (l *Lexer) NotifyErrorListeners(msg string, line, col int, e error) {
	for _, lst := range l.Listeners {
		lst.SyntaxError(l, nil, line, col, msg, e)
	}
}
