// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "fmt"

// ATNDeserializationError is the fatal error returned by Deserialize on a
// version mismatch, an unknown state/transition/action type, or a
// verifyATN invariant violation.
type ATNDeserializationError struct {
	Msg string
}

func (e *ATNDeserializationError) Error() string { return "ATN deserialization failed: " + e.Msg }

// NoViableAltException is raised when computeReachSet yields an empty reach
// set at the current token and no finishing alt could be found in the
// previous config set. ExpectedTokens, when set, is the follow set computed
// by ATN.GetExpectedTokens at the point prediction died.
type NoViableAltException struct {
	StartIndex     int
	OffendingToken Token
	DeadEndConfigs *ATNConfigSet
	ExpectedTokens *IntervalSet
}

func (e *NoViableAltException) Error() string {
	if e.ExpectedTokens != nil {
		return fmt.Sprintf("no viable alternative at input index %d, expected one of %s", e.StartIndex, e.ExpectedTokens)
	}
	return fmt.Sprintf("no viable alternative at input index %d", e.StartIndex)
}

// LexerNoViableAltException is raised when no live lexer configuration
// admits the current character and no earlier accept state exists.
type LexerNoViableAltException struct {
	StartIndex     int
	DeadEndConfigs *ATNConfigSet
}

func (e *LexerNoViableAltException) Error() string {
	return fmt.Sprintf("token recognition error at input index %d", e.StartIndex)
}
