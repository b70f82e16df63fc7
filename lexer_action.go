// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// Lexer action type tags, matching the serialized lexer-action table ordinals.
const (
	LexerActionTypeChannel = iota
	LexerActionTypeCustom
	LexerActionTypeMode
	LexerActionTypeMore
	LexerActionTypePopMode
	LexerActionTypePushMode
	LexerActionTypeSkip
	LexerActionTypeType
)

// LexerAction is one entry of ATN.lexerActions, executed once a token
// accepts. Position-dependent actions wrapped by fixOffsetBeforeMatch run
// with the input positioned where their Action transition was taken.
type LexerAction interface {
	getActionType() int
	isPositionDependent() bool
	execute(lexer *Lexer)
	hash() int
	equals(other LexerAction) bool
}

type baseLexerAction struct{ actionType int }

func (b baseLexerAction) getActionType() int { return b.actionType }

// LexerSkipAction discards the current token entirely.
type LexerSkipAction struct{ baseLexerAction }

var LexerSkipActionINSTANCE = &LexerSkipAction{baseLexerAction{LexerActionTypeSkip}}

func (a *LexerSkipAction) isPositionDependent() bool { return false }
func (a *LexerSkipAction) execute(lexer *Lexer)       { lexer.Interpreter.skipping = true }
func (a *LexerSkipAction) hash() int                  { return a.actionType }
func (a *LexerSkipAction) equals(o LexerAction) bool   { _, ok := o.(*LexerSkipAction); return ok }

// LexerTypeAction overrides the token type about to be emitted.
type LexerTypeAction struct {
	baseLexerAction
	tokenType int
}

func NewLexerTypeAction(tokenType int) *LexerTypeAction {
	return &LexerTypeAction{baseLexerAction{LexerActionTypeType}, tokenType}
}
func (a *LexerTypeAction) isPositionDependent() bool { return false }
func (a *LexerTypeAction) execute(lexer *Lexer)       { lexer.Interpreter.overrideType = a.tokenType }
func (a *LexerTypeAction) hash() int                  { return a.actionType*31 + a.tokenType }
func (a *LexerTypeAction) equals(o LexerAction) bool {
	op, ok := o.(*LexerTypeAction)
	return ok && op.tokenType == a.tokenType
}

// LexerPushModeAction pushes the current mode and switches to mode.
type LexerPushModeAction struct {
	baseLexerAction
	mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{baseLexerAction{LexerActionTypePushMode}, mode}
}
func (a *LexerPushModeAction) isPositionDependent() bool { return false }
func (a *LexerPushModeAction) execute(lexer *Lexer) {
	lexer.Interpreter.modeStack = append(lexer.Interpreter.modeStack, lexer.Mode)
	lexer.Mode = a.mode
}
func (a *LexerPushModeAction) hash() int { return a.actionType*31 + a.mode }
func (a *LexerPushModeAction) equals(o LexerAction) bool {
	op, ok := o.(*LexerPushModeAction)
	return ok && op.mode == a.mode
}

// LexerPopModeAction restores the mode active before the last push.
type LexerPopModeAction struct{ baseLexerAction }

var LexerPopModeActionINSTANCE = &LexerPopModeAction{baseLexerAction{LexerActionTypePopMode}}

func (a *LexerPopModeAction) isPositionDependent() bool { return false }
func (a *LexerPopModeAction) execute(lexer *Lexer) {
	n := len(lexer.Interpreter.modeStack)
	if n == 0 {
		return
	}
	lexer.Mode = lexer.Interpreter.modeStack[n-1]
	lexer.Interpreter.modeStack = lexer.Interpreter.modeStack[:n-1]
}
func (a *LexerPopModeAction) hash() int                { return a.actionType }
func (a *LexerPopModeAction) equals(o LexerAction) bool { _, ok := o.(*LexerPopModeAction); return ok }

// LexerModeAction switches mode without pushing.
type LexerModeAction struct {
	baseLexerAction
	mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{baseLexerAction{LexerActionTypeMode}, mode}
}
func (a *LexerModeAction) isPositionDependent() bool { return false }
func (a *LexerModeAction) execute(lexer *Lexer)       { lexer.Mode = a.mode }
func (a *LexerModeAction) hash() int                  { return a.actionType*31 + a.mode }
func (a *LexerModeAction) equals(o LexerAction) bool {
	op, ok := o.(*LexerModeAction)
	return ok && op.mode == a.mode
}

// LexerMoreAction requests that the next Match() append to rather than
// replace the current token text.
type LexerMoreAction struct{ baseLexerAction }

var LexerMoreActionINSTANCE = &LexerMoreAction{baseLexerAction{LexerActionTypeMore}}

func (a *LexerMoreAction) isPositionDependent() bool { return false }
func (a *LexerMoreAction) execute(lexer *Lexer)       { lexer.Interpreter.more = true }
func (a *LexerMoreAction) hash() int                  { return a.actionType }
func (a *LexerMoreAction) equals(o LexerAction) bool   { _, ok := o.(*LexerMoreAction); return ok }

// LexerChannelAction overrides the channel of the token about to be
// emitted.
type LexerChannelAction struct {
	baseLexerAction
	channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{baseLexerAction{LexerActionTypeChannel}, channel}
}
func (a *LexerChannelAction) isPositionDependent() bool { return false }
func (a *LexerChannelAction) execute(lexer *Lexer)       { lexer.Interpreter.overrideChannel = a.channel }
func (a *LexerChannelAction) hash() int                  { return a.actionType*31 + a.channel }
func (a *LexerChannelAction) equals(o LexerAction) bool {
	op, ok := o.(*LexerChannelAction)
	return ok && op.channel == a.channel
}

// LexerCustomAction invokes a grammar action body; it is position-dependent
// because actions may read lexer.Input state.
type LexerCustomAction struct {
	baseLexerAction
	ruleIndex, actionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{baseLexerAction{LexerActionTypeCustom}, ruleIndex, actionIndex}
}
func (a *LexerCustomAction) isPositionDependent() bool { return true }
func (a *LexerCustomAction) execute(lexer *Lexer) {
	lexer.Action(nil, a.ruleIndex, a.actionIndex)
}
func (a *LexerCustomAction) hash() int {
	return a.actionType*31*31 + a.ruleIndex*31 + a.actionIndex
}
func (a *LexerCustomAction) equals(o LexerAction) bool {
	op, ok := o.(*LexerCustomAction)
	return ok && op.ruleIndex == a.ruleIndex && op.actionIndex == a.actionIndex
}

// LexerIndexedCustomAction wraps a position-dependent action with the input
// offset it must be replayed at, produced by fixOffsetBeforeMatch.
type LexerIndexedCustomAction struct {
	baseLexerAction
	offset int
	action LexerAction
}

func NewLexerIndexedCustomAction(offset int, action LexerAction) *LexerIndexedCustomAction {
	return &LexerIndexedCustomAction{baseLexerAction{action.getActionType()}, offset, action}
}
func (a *LexerIndexedCustomAction) isPositionDependent() bool { return true }
func (a *LexerIndexedCustomAction) execute(lexer *Lexer)       { a.action.execute(lexer) }
func (a *LexerIndexedCustomAction) hash() int                  { return a.offset*31 + a.action.hash() }
func (a *LexerIndexedCustomAction) equals(o LexerAction) bool {
	op, ok := o.(*LexerIndexedCustomAction)
	return ok && op.offset == a.offset && op.action.equals(a.action)
}

// LexerActionExecutor is an ordered, immutable list of LexerActions
// deferred until the winning token is known.
type LexerActionExecutor struct {
	actions    []LexerAction
	cachedHash int
}

func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{actions: actions}
	h := 1
	for _, a := range actions {
		h = h*31 + a.hash()
	}
	e.cachedHash = h
	return e
}

// append returns an executor with lexerAction appended, used while closure
// walks through an Action transition.
func (e *LexerActionExecutor) append(action LexerAction) *LexerActionExecutor {
	if e == nil {
		return NewLexerActionExecutor([]LexerAction{action})
	}
	actions := make([]LexerAction, len(e.actions)+1)
	copy(actions, e.actions)
	actions[len(e.actions)] = action
	return NewLexerActionExecutor(actions)
}

// fixOffsetBeforeMatch rewrites every position-dependent action still
// pending so it captures its offset from the token start before the match
// transition is taken, keeping the resulting DFA edge independent of
// absolute stream position.
func (e *LexerActionExecutor) fixOffsetBeforeMatch(offset int) *LexerActionExecutor {
	if e == nil {
		return nil
	}
	var updated []LexerAction
	for i, a := range e.actions {
		if a.isPositionDependent() {
			if _, already := a.(*LexerIndexedCustomAction); !already {
				if updated == nil {
					updated = make([]LexerAction, len(e.actions))
					copy(updated, e.actions)
				}
				updated[i] = NewLexerIndexedCustomAction(offset, a)
			}
		}
	}
	if updated == nil {
		return e
	}
	return NewLexerActionExecutor(updated)
}

// execute runs every action in order. Custom actions that were captured
// mid-token via fixOffsetBeforeMatch temporarily seek the input back to the
// captured offset so the action body sees the same position it would have
// seen had it fired immediately.
func (e *LexerActionExecutor) execute(lexer *Lexer, input CharStream, startIndex int) {
	if e == nil {
		return
	}
	indexUnchanged := true
	for _, a := range e.actions {
		if ica, ok := a.(*LexerIndexedCustomAction); ok {
			lexerIndex := input.Index()
			input.Seek(startIndex + ica.offset)
			indexUnchanged = false
			ica.action.execute(lexer)
			input.Seek(lexerIndex)
		} else {
			a.execute(lexer)
		}
	}
	_ = indexUnchanged
}

func (e *LexerActionExecutor) hash() int {
	if e == nil {
		return 0
	}
	return e.cachedHash
}

func (e *LexerActionExecutor) equals(other *LexerActionExecutor) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil || len(e.actions) != len(other.actions) {
		return false
	}
	for i, a := range e.actions {
		if !a.equals(other.actions[i]) {
			return false
		}
	}
	return true
}
