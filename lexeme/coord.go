// SPDX-License-Identifier: MIT
package lexeme

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type (
	// Coord is a 1-based line & column position counted in runes.
	Coord struct {
		Line int
		Col  int
	}
)

// Origin is the Coord of the first rune in a source.
var Origin = Coord{Line: 1, Col: 1}

// Advance returns the Coord following r.
func (c Coord) Advance(r rune) Coord {
	if r == '\n' {
		return Coord{Line: c.Line + 1, Col: 1}
	}

	return Coord{Line: c.Line, Col: c.Col + 1}
}

// Compare returns -1, 0 or +1 depending on whether c is before, equal to or after o.
func (c Coord) Compare(o Coord) int {
	if resl := compare(c.Line, o.Line); resl != 0 {
		return resl
	}

	return compare(c.Col, o.Col)
}

// Before reports whether c precedes o.
func (c Coord) Before(o Coord) bool { return c.Compare(o) < 0 }

// String is the fmt.Stringer implementation for Coord.
func (c Coord) String() string { return fmt.Sprintf("%d:%d", c.Line, c.Col) }

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
