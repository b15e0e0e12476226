// SPDX-License-Identifier: MIT
package lexer

import "gitlab.com/fisherprime/auralex/lexeme"

type (
	// ItemID int holding an identifier for the Item types
	ItemID int

	// Item type holding a scanned Lexeme or a lexing error.
	Item struct {
		Err    error
		Lexeme lexeme.Lexeme // Valid for ItemLexeme
		ID     ItemID        // The type of this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_          = iota // Consume 0 to start actual numbering at 1.
	ItemError         // Notify occurrence of an `error`.
	ItemEOF           // End of the source.
	ItemLexeme        // A classified lexeme.
)
