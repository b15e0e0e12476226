// SPDX-License-Identifier: MIT

// Package accepter holds the per-kind token matchers.
//
// Every matcher is a deterministic finite automaton over runes. A matcher's progress is a Step,
// Step 0 being the initial state of every matcher; a missing transition is a rejection, not an
// error.
package accepter

import (
	"gitlab.com/fisherprime/auralex/lexeme"
)

type (
	// Step is a matcher's progress through its grammar.
	Step uint8

	// Accepter defines the transition & acceptance functions of a token grammar.
	Accepter interface {
		// Accept obtains the successor of s on reading r; ok is false when r is rejected.
		Accept(s Step, r rune) (next Step, ok bool)

		// Acceptable reports whether s denotes a complete token.
		//
		// An acceptable Step may still accept more runes.
		Acceptable(s Step) bool
	}

	// Candidate pairs a Kind with the progress of its matcher.
	Candidate struct {
		Kind lexeme.Kind
		Step Step
	}
)

// Start is the initial Step of every matcher.
const Start Step = 0

// For obtains the Accepter registered for a Kind.
func For(k lexeme.Kind) Accepter { return registry[k] }

// Accept advances the Candidate on r.
func (c Candidate) Accept(r rune) (next Candidate, ok bool) {
	next.Kind = c.Kind
	next.Step, ok = registry[c.Kind].Accept(c.Step, r)

	return
}

// Acceptable reports whether the Candidate denotes a complete token.
func (c Candidate) Acceptable() bool { return registry[c.Kind].Acceptable(c.Step) }

// Pending reports whether the Candidate is inside an unclosed string, char or block comment.
func (c Candidate) Pending() bool { return enclosing[c.Kind] && c.Step != Start && !c.Acceptable() }
