// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/fisherprime/auralex/lexeme"
)

func TestErrorList(t *testing.T) {
	var el ErrorList
	assert.NoError(t, el.Err())
	assert.Equal(t, "no errors", el.Error())

	el.Add(&Error{Err: ErrUnrecognizedCharacter, Start: 3, End: 4, Coord: lexeme.Coord{Line: 1, Col: 4}, Text: "`"})
	assert.Equal(t, "1:4: unrecognized character: \"`\"", el.Error())

	el.Add(&Error{Err: ErrUnterminatedLiteral, Start: 5, End: 7, Coord: lexeme.Coord{Line: 2, Col: 1}, Text: `"a`})
	assert.Equal(t, 2, el.Len())
	assert.Equal(t, "2 errors: 1:4: unrecognized character: \"`\"; 2:1: unterminated literal: \"\\\"a\"", el.Error())

	err := el.Err()
	assert.ErrorIs(t, err, ErrUnrecognizedCharacter)
	assert.ErrorIs(t, err, ErrUnterminatedLiteral)

	var lexErr *Error
	if assert.True(t, errors.As(err, &lexErr)) {
		assert.Equal(t, 3, lexErr.Start)
	}
}
