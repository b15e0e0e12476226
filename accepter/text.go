// SPDX-License-Identifier: MIT
package accepter

import "unicode"

type (
	// char matches a single printable rune between single quotes.
	//
	// Escape sequences are not recognised.
	char struct{}

	// str matches a double quoted string, `\` escaping the rune that follows it.
	str struct{}
)

const (
	charOpen Step = iota + 1
	charRune
	charClose
)

const (
	strBody Step = iota + 1
	strEscape
	strClose
)

// Accept implements Accepter.
func (char) Accept(s Step, r rune) (next Step, ok bool) {
	switch s {
	case Start:
		if r == '\'' {
			return charOpen, true
		}
	case charOpen:
		if unicode.IsPrint(r) {
			return charRune, true
		}
	case charRune:
		if r == '\'' {
			return charClose, true
		}
	}

	return
}

// Acceptable implements Accepter.
func (char) Acceptable(s Step) bool { return s == charClose }

// Accept implements Accepter.
func (str) Accept(s Step, r rune) (next Step, ok bool) {
	switch s {
	case Start:
		if r == '"' {
			return strBody, true
		}
	case strBody:
		switch r {
		case '\\':
			return strEscape, true
		case '"':
			return strClose, true
		default:
			return strBody, true
		}
	case strEscape:
		return strBody, true
	}

	return
}

// Acceptable implements Accepter.
func (str) Acceptable(s Step) bool { return s == strClose }
