// SPDX-License-Identifier: MIT
package lexer

import (
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/auralex/lexeme"
)

// Filter returns the Lexemes for which drop is false; the input is left untouched.
func Filter(lexemes []lexeme.Lexeme, drop func(lexeme.Lexeme) bool) []lexeme.Lexeme {
	return slices.DeleteFunc(slices.Clone(lexemes), drop)
}

// RemoveWhitespace drops whitespace Lexemes.
//
// An ambiguous Lexeme is dropped only when all of its Kinds are whitespace.
func RemoveWhitespace(lexemes []lexeme.Lexeme) []lexeme.Lexeme {
	return Filter(lexemes, inCategory(lexeme.CategoryWhitespace))
}

// RemoveComments drops line & block comment Lexemes.
//
// An ambiguous Lexeme is dropped only when all of its Kinds are comments.
func RemoveComments(lexemes []lexeme.Lexeme) []lexeme.Lexeme {
	return Filter(lexemes, inCategory(lexeme.CategoryComment))
}

func inCategory(c lexeme.Category) func(lexeme.Lexeme) bool {
	return func(lx lexeme.Lexeme) bool {
		return lx.Kinds.All(func(k lexeme.Kind) bool { return k.Category() == c })
	}
}
