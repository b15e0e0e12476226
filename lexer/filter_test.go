// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/auralex/lexeme"
)

func TestRemoveWhitespace(t *testing.T) {
	lexemes, errs := Lex("val x := 1 // one\n/* two */")
	require.NoError(t, errs.Err())

	got := RemoveWhitespace(lexemes)
	assert.Equal(t, []span{
		{ks(lexeme.KwVal, lexeme.IdentVal), "val"},
		{ks(lexeme.IdentVal), "x"},
		{ks(lexeme.OpDecl), ":="},
		{ks(lexeme.LitIntDec), "1"},
		{ks(lexeme.CommentLine), "// one"},
		{ks(lexeme.CommentBlock), "/* two */"},
	}, spans(got))

	// The input is left untouched.
	assert.Len(t, lexemes, 11)
}

func TestRemoveComments(t *testing.T) {
	lexemes, errs := Lex("val x := 1 // one\n/* two */")
	require.NoError(t, errs.Err())

	got := RemoveWhitespace(RemoveComments(lexemes))
	assert.Equal(t, []span{
		{ks(lexeme.KwVal, lexeme.IdentVal), "val"},
		{ks(lexeme.IdentVal), "x"},
		{ks(lexeme.OpDecl), ":="},
		{ks(lexeme.LitIntDec), "1"},
	}, spans(got))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		input []lexeme.Lexeme
		want  int
	}{
		{name: "nil", input: nil, want: 0},
		{
			name: "mixed ambiguity is kept",
			input: []lexeme.Lexeme{
				{Kinds: ks(lexeme.Ws, lexeme.IdentVal), Text: " "},
				{Kinds: ks(lexeme.Ws), Text: " "},
			},
			want: 1,
		},
		{
			name:  "empty kind set is kept",
			input: []lexeme.Lexeme{{Text: "?"}},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, RemoveWhitespace(tt.input), tt.want)
		})
	}
}
