// SPDX-License-Identifier: MIT
package lexeme

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// Kinds is the ordered set of Kinds simultaneously acceptable for a span.
	//
	// A Lexeme with more than one Kind is ambiguous; the consumer decides which applies.
	Kinds []Kind

	// Lexeme is a classified, positioned span of source text.
	Lexeme struct {
		Kinds Kinds

		// Text is the exact source slice, borrowed from the source string.
		Text string

		// Start & End are the half-open byte offsets of Text in the source.
		Start int
		End   int

		StartCoord Coord
		// EndCoord is the position just past the last rune of Text.
		EndCoord Coord
	}
)

// Has reports whether k is in the set.
func (ks Kinds) Has(k Kind) bool { return slices.Contains(ks, k) }

// All reports whether every Kind in the set satisfies fn.
func (ks Kinds) All(fn func(Kind) bool) bool {
	if len(ks) < 1 {
		return false
	}

	return slices.IndexFunc(ks, func(k Kind) bool { return !fn(k) }) < 0
}

// String is the fmt.Stringer implementation for Kinds.
func (ks Kinds) String() string {
	names := make([]string, len(ks))
	for index := range ks {
		names[index] = ks[index].String()
	}

	return strings.Join(names, "|")
}

// Kind obtains the Lexeme's Kind when unambiguous.
func (l Lexeme) Kind() (k Kind, ok bool) {
	if len(l.Kinds) != 1 {
		return
	}

	return l.Kinds[0], true
}

// Is reports whether k is one of the Lexeme's Kinds.
func (l Lexeme) Is(k Kind) bool { return l.Kinds.Has(k) }

// Ambiguous reports whether the Lexeme carries more than one Kind.
func (l Lexeme) Ambiguous() bool { return len(l.Kinds) > 1 }

// Len is the Lexeme's length in bytes.
func (l Lexeme) Len() int { return l.End - l.Start }

// String is the fmt.Stringer implementation for Lexeme.
func (l Lexeme) String() string {
	return fmt.Sprintf("%s-%s %s %s", l.StartCoord, l.EndCoord, l.Kinds, strconv.Quote(l.Text))
}
