// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/fisherprime/auralex/lexeme"
)

type (
	// Error is a positioned lexing error.
	//
	// The source span [Start, End) is not covered by any emitted Lexeme.
	Error struct {
		Err   error
		Start int
		End   int
		Coord lexeme.Coord
		Text  string
	}

	// ErrorList collects the Errors met while lexing a source.
	ErrorList []*Error
)

// Lexing errors.
var (
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
	ErrUnterminatedLiteral   = errors.New("unterminated literal")
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s: %v", e.Coord, e.Err)
	}

	return fmt.Sprintf("%s: %v: %s", e.Coord, e.Err, strconv.Quote(e.Text))
}

// Unwrap obtains the wrapped error.
func (e *Error) Unwrap() error { return e.Err }

// Add an Error to the ErrorList.
func (el *ErrorList) Add(e *Error) { *el = append(*el, e) }

// Len is the number of Errors in the list.
func (el ErrorList) Len() int { return len(el) }

// Error implements the error interface.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	}

	msgs := make([]string, len(el))
	for index := range el {
		msgs[index] = el[index].Error()
	}

	return fmt.Sprintf("%d errors: %s", len(el), strings.Join(msgs, "; "))
}

// Unwrap exposes the listed Errors to errors.Is & errors.As.
func (el ErrorList) Unwrap() []error {
	errs := make([]error, len(el))
	for index := range el {
		errs[index] = el[index]
	}

	return errs
}

// Err returns an error equivalent to this ErrorList, nil when empty.
func (el ErrorList) Err() error {
	if len(el) < 1 {
		return nil
	}

	return el
}
