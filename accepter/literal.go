// SPDX-License-Identifier: MIT
package accepter

type (
	// Literal matches an exact rune sequence.
	//
	// The Step counts the runes matched so far; the Literal is acceptable at full length only.
	Literal []rune
)

// NewLiteral creates a Literal for s.
func NewLiteral(s string) Literal { return Literal(s) }

// Accept implements Accepter.
func (l Literal) Accept(s Step, r rune) (next Step, ok bool) {
	if int(s) >= len(l) || l[s] != r {
		return
	}

	return s + 1, true
}

// Acceptable implements Accepter.
func (l Literal) Acceptable(s Step) bool { return int(s) == len(l) }

// String is the fmt.Stringer implementation for Literal.
func (l Literal) String() string { return string(l) }
