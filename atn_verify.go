// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "fmt"

// verifyATN checks the state-variant invariants after deserialization,
// returning an *ATNDeserializationError describing the first violation
// found.
func verifyATN(atn *ATN) error {
	for _, s := range atn.states {
		if s == nil {
			continue
		}
		if err := verifyState(atn, s); err != nil {
			return err
		}
	}
	return nil
}

func verifyState(atn *ATN, s ATNState) error {
	switch st := s.(type) {
	case *BasicState:
		if !st.isEpsilonOnly() && len(st.GetTransitions()) > 1 {
			return badState(s, "Basic state has more than one non-epsilon outgoing transition")
		}
	case *RuleStartState:
		if st.stopState == nil {
			return badState(s, "RuleStart state has no RuleStop link")
		}
	case *BasicBlockStartState:
		if st.endState == nil {
			return badState(s, "BlockStart state has no BlockEnd link")
		}
	case *PlusBlockStartState:
		if st.endState == nil {
			return badState(s, "PlusBlockStart state has no BlockEnd link")
		}
	case *StarBlockStartState:
		if st.endState == nil {
			return badState(s, "StarBlockStart state has no BlockEnd link")
		}
	case *BlockEndState:
		if st.startState == nil {
			return badState(s, "BlockEnd state has no BlockStart back-link")
		}
	case *PlusLoopbackState:
		found := false
		for _, t := range st.GetTransitions() {
			if pbs, ok := t.getTarget().(*PlusBlockStartState); ok && pbs.loopBackState == st {
				found = true
			}
		}
		if !found && len(st.GetTransitions()) > 0 {
			return badState(s, "PlusLoopback does not set its target PlusBlockStart's loopBackState")
		}
	case *StarLoopEntryState:
		if len(st.GetTransitions()) != 2 {
			return badState(s, "StarLoopEntry does not have exactly 2 transitions")
		}
	case *StarLoopbackState:
		if len(st.GetTransitions()) != 1 {
			return badState(s, "StarLoopback does not have exactly 1 transition")
		}
	case *LoopEndState:
		if st.loopBackState == nil {
			return badState(s, "LoopEnd state has no loopBackState")
		}
	}
	return nil
}

func badState(s ATNState, msg string) error {
	return &ATNDeserializationError{Msg: fmt.Sprintf("state %d: %s", s.GetStateNumber(), msg)}
}
