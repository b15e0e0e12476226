// SPDX-License-Identifier: MIT
package accepter

// Identifier grammars.
//
//	value:   [a-z][a-z0-9_]*
//	type:    [A-Z][a-zA-Z0-9]*
//	tag:     #[a-z][a-z0-9]*(-[a-z0-9]+)*
//	macro:   @[a-z][a-z0-9:]*
//	subtype: $[a-zA-Z][a-zA-Z0-9]*

type (
	// word matches a leading rune class followed by a continuation class.
	word struct {
		lead, rest func(rune) bool
	}

	// sigilWord matches a sigil, then a word.
	sigilWord struct {
		sigil rune
		word
	}

	// dashed matches a sigil, a lowercase word & dash separated alphanumeric segments.
	dashed struct {
		sigil rune
	}
)

const (
	wordBody Step = iota + 1
)

const (
	sigilRead Step = iota + 1
	sigilBody
)

const (
	dashedSigil Step = iota + 1
	dashedBody
	dashedDash
)

// Accept implements Accepter.
func (w word) Accept(s Step, r rune) (next Step, ok bool) {
	switch {
	case s == Start && w.lead(r), s == wordBody && w.rest(r):
		return wordBody, true
	}

	return
}

// Acceptable implements Accepter.
func (w word) Acceptable(s Step) bool { return s == wordBody }

// Accept implements Accepter.
func (w sigilWord) Accept(s Step, r rune) (next Step, ok bool) {
	switch {
	case s == Start && r == w.sigil:
		return sigilRead, true
	case s == sigilRead && w.lead(r), s == sigilBody && w.rest(r):
		return sigilBody, true
	}

	return
}

// Acceptable implements Accepter.
func (w sigilWord) Acceptable(s Step) bool { return s == sigilBody }

// Accept implements Accepter.
func (d dashed) Accept(s Step, r rune) (next Step, ok bool) {
	switch s {
	case Start:
		if r == d.sigil {
			return dashedSigil, true
		}
	case dashedSigil:
		if isLower(r) {
			return dashedBody, true
		}
	case dashedBody:
		switch {
		case isLower(r) || isDigit(r):
			return dashedBody, true
		case r == '-':
			return dashedDash, true
		}
	case dashedDash:
		if isLower(r) || isDigit(r) {
			return dashedBody, true
		}
	}

	return
}

// Acceptable implements Accepter.
func (d dashed) Acceptable(s Step) bool { return s == dashedBody }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isAlpha(r rune) bool { return isLower(r) || isUpper(r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlnum(r rune) bool { return isAlpha(r) || isDigit(r) }

func isValueRest(r rune) bool { return isLower(r) || isDigit(r) || r == '_' }

func isMacroRest(r rune) bool { return isLower(r) || isDigit(r) || r == ':' }
