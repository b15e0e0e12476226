// SPDX-License-Identifier: MIT
package accepter

import "unicode"

type (
	// whitespace matches a run of Unicode whitespace.
	whitespace struct{}

	// lineComment matches `//` up to, excluding, the next newline.
	lineComment struct{}

	// blockComment matches `/*` through the first `*/`; block comments don't nest.
	blockComment struct{}
)

const (
	wsRun Step = iota + 1
)

const (
	lineSlash Step = iota + 1
	lineBody
)

const (
	blockSlash Step = iota + 1
	blockBody
	blockStar
	blockClose
)

// Accept implements Accepter.
func (whitespace) Accept(s Step, r rune) (next Step, ok bool) {
	if (s == Start || s == wsRun) && unicode.IsSpace(r) {
		return wsRun, true
	}

	return
}

// Acceptable implements Accepter.
func (whitespace) Acceptable(s Step) bool { return s == wsRun }

// Accept implements Accepter.
func (lineComment) Accept(s Step, r rune) (next Step, ok bool) {
	switch s {
	case Start:
		if r == '/' {
			return lineSlash, true
		}
	case lineSlash:
		if r == '/' {
			return lineBody, true
		}
	case lineBody:
		if r != '\n' {
			return lineBody, true
		}
	}

	return
}

// Acceptable implements Accepter.
func (lineComment) Acceptable(s Step) bool { return s == lineBody }

// Accept implements Accepter.
func (blockComment) Accept(s Step, r rune) (next Step, ok bool) {
	switch s {
	case Start:
		if r == '/' {
			return blockSlash, true
		}
	case blockSlash:
		if r == '*' {
			return blockBody, true
		}
	case blockBody:
		if r == '*' {
			return blockStar, true
		}

		return blockBody, true
	case blockStar:
		switch r {
		case '*':
			return blockStar, true
		case '/':
			return blockClose, true
		default:
			return blockBody, true
		}
	}

	return
}

// Acceptable implements Accepter.
func (blockComment) Acceptable(s Step) bool { return s == blockClose }
