// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// This file collects the small fakes every other _test.go file in this
// package shares: a minimal Token/TokenStream pair for the parser
// simulator, a minimal CharStream for the lexer simulator, and a
// recording ErrorListener. None of these are part of the public API;
// they exist only so the core simulators (which depend on interfaces.go,
// not concrete implementations) can be exercised without pulling in a
// generated parser.

type fakeToken struct {
	ttype int
}

func (t *fakeToken) GetTokenType() int { return t.ttype }
func (t *fakeToken) GetChannel() int   { return 0 }
func (t *fakeToken) GetStart() int     { return 0 }
func (t *fakeToken) GetStop() int      { return 0 }
func (t *fakeToken) GetLine() int      { return 1 }
func (t *fakeToken) GetColumn() int    { return 0 }

// fakeTokenStream is a TokenStream over a fixed slice of token types,
// always EOF-terminated.
type fakeTokenStream struct {
	toks []*fakeToken
	idx  int
}

func newFakeTokenStream(types ...int) *fakeTokenStream {
	toks := make([]*fakeToken, 0, len(types)+1)
	for _, t := range types {
		toks = append(toks, &fakeToken{ttype: t})
	}
	toks = append(toks, &fakeToken{ttype: TokenEOF})
	return &fakeTokenStream{toks: toks}
}

func (f *fakeTokenStream) consume() { f.idx++ }
func (f *fakeTokenStream) LA(offset int) int {
	i := f.idx + offset - 1
	if i < 0 || i >= len(f.toks) {
		return TokenEOF
	}
	return f.toks[i].GetTokenType()
}
func (f *fakeTokenStream) Mark() int      { return -1 }
func (f *fakeTokenStream) Release(int)    {}
func (f *fakeTokenStream) Index() int     { return f.idx }
func (f *fakeTokenStream) Seek(i int)     { f.idx = i }
func (f *fakeTokenStream) Size() int      { return len(f.toks) }
func (f *fakeTokenStream) Get(i int) Token { return f.toks[i] }
func (f *fakeTokenStream) LT(k int) Token {
	i := f.idx + k - 1
	if i < 0 {
		i = 0
	}
	if i >= len(f.toks) {
		i = len(f.toks) - 1
	}
	return f.toks[i]
}

// fakeCharStream is a CharStream over a fixed byte slice.
type fakeCharStream struct {
	data []byte
	idx  int
}

func newFakeCharStream(s string) *fakeCharStream {
	return &fakeCharStream{data: []byte(s)}
}

func (f *fakeCharStream) consume() { f.idx++ }
func (f *fakeCharStream) LA(offset int) int {
	i := f.idx + offset - 1
	if i < 0 || i >= len(f.data) {
		return TokenEOF
	}
	return int(f.data[i])
}
func (f *fakeCharStream) Mark() int   { return -1 }
func (f *fakeCharStream) Release(int) {}
func (f *fakeCharStream) Index() int  { return f.idx }
func (f *fakeCharStream) Seek(i int)  { f.idx = i }
func (f *fakeCharStream) Size() int   { return len(f.data) }
func (f *fakeCharStream) GetTextFromInterval(iv Interval) string {
	if iv.Start < 0 || iv.Stop >= len(f.data) || iv.Stop < iv.Start {
		return ""
	}
	return string(f.data[iv.Start : iv.Stop+1])
}

// recordingListener captures every ErrorListener callback it receives so
// tests can assert on what the simulators reported.
type recordingListener struct {
	syntaxErrors             int
	ambiguities              []*BitSet
	exactAmbiguities         []bool
	attemptingFullContexts   int
	contextSensitivities     int
}

func (r *recordingListener) SyntaxError(Recognizer, interface{}, int, int, string, error) {
	r.syntaxErrors++
}
func (r *recordingListener) ReportAmbiguity(_ *Parser, _ *DFA, _, _ int, exact bool, ambigAlts *BitSet, _ *ATNConfigSet) {
	r.ambiguities = append(r.ambiguities, ambigAlts)
	r.exactAmbiguities = append(r.exactAmbiguities, exact)
}
func (r *recordingListener) ReportAttemptingFullContext(*Parser, *DFA, int, int, *BitSet, *ATNConfigSet) {
	r.attemptingFullContexts++
}
func (r *recordingListener) ReportContextSensitivity(*Parser, *DFA, int, int, int, *ATNConfigSet) {
	r.contextSensitivities++
}

// fakeRecognizer is a minimal Recognizer for exercising SemanticContext
// evaluation without a real Parser/Lexer.
type fakeRecognizer struct {
	sempred  func(RuleContext, int, int) bool
	precpred func(RuleContext, int) bool
}

func (f *fakeRecognizer) Sempred(ctx RuleContext, ruleIndex, actionIndex int) bool {
	if f.sempred == nil {
		return true
	}
	return f.sempred(ctx, ruleIndex, actionIndex)
}
func (f *fakeRecognizer) Precpred(ctx RuleContext, precedence int) bool {
	if f.precpred == nil {
		return true
	}
	return f.precpred(ctx, precedence)
}
func (f *fakeRecognizer) Action(RuleContext, int, int) {}
func (f *fakeRecognizer) GetATN() *ATN                 { return nil }

// ---- small ATN-building helpers shared across simulator tests ----

func newBasicState(ruleIndex int) *BasicState {
	s := &BasicState{}
	s.SetRuleIndex(ruleIndex)
	return s
}

func newRuleStart(ruleIndex int) *RuleStartState {
	s := &RuleStartState{}
	s.SetRuleIndex(ruleIndex)
	return s
}

func newRuleStop(ruleIndex int) *RuleStopState {
	s := &RuleStopState{}
	s.SetRuleIndex(ruleIndex)
	return s
}

func newBlockStart(ruleIndex int) *BasicBlockStartState {
	s := &BasicBlockStartState{}
	s.SetRuleIndex(ruleIndex)
	return s
}

func newBlockEnd(ruleIndex int) *BlockEndState {
	s := &BlockEndState{}
	s.SetRuleIndex(ruleIndex)
	return s
}
