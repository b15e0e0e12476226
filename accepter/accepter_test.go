// SPDX-License-Identifier: MIT
package accepter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/auralex/lexeme"
)

// run feeds s to k's matcher; ok is false once a rune is rejected.
func run(k lexeme.Kind, s string) (step Step, ok bool) {
	acp := For(k)
	for _, r := range s {
		if step, ok = acp.Accept(step, r); !ok {
			return
		}
	}

	return step, true
}

func acceptable(k lexeme.Kind, s string) bool {
	step, ok := run(k, s)
	return ok && For(k).Acceptable(step)
}

func TestAccepters(t *testing.T) {
	tests := []struct {
		kind   lexeme.Kind
		accept []string
		reject []string
	}{
		{lexeme.KwFn, []string{"fn"}, []string{"f", "fnx", "Fn", ""}},
		{lexeme.KwImport, []string{"import"}, []string{"impor", "imports"}},
		{lexeme.IdentVal, []string{"a", "a_1", "value", "x9"}, []string{"", "A", "_a", "1a", "a-b"}},
		{lexeme.IdentType, []string{"T", "Point3D"}, []string{"t", "T_1", "$T"}},
		{lexeme.IdentTag, []string{"#a", "#on-air", "#a1-2b-c"}, []string{"#", "#a-", "#A", "#1", "#a--b"}},
		{lexeme.IdentMacro, []string{"@a", "@a:b", "@std::fmt:"}, []string{"@", "@:", "@A", "@a-b"}},
		{lexeme.IdentSubtype, []string{"$a", "$Int32"}, []string{"$", "$1", "$a_b"}},
		{lexeme.OpCRange, []string{"..="}, []string{"..", "...", "..=="}},
		{lexeme.OpBSlash, []string{`\`}, []string{`\\`}},
		{
			lexeme.LitIntDec,
			[]string{"0", "7", "10", "1_000", "10U8", "10I16", "0U32", "9I64"},
			[]string{"", "00", "01", "0_1", "1_", "1__0", "10U", "10U3", "10U12", "10U_8", "1_U8", "10u8", "10U88"},
		},
		{lexeme.LitIntBin, []string{"0b0", "0b1_0_1"}, []string{"0b", "0b_1", "0b1_", "0b2", "1b1", "0B1"}},
		{lexeme.LitIntOct, []string{"0o7", "0o1_7"}, []string{"0o", "0o8", "0o_1"}},
		{lexeme.LitIntHex, []string{"0xF", "0xdead_BEEF"}, []string{"0x", "0xg", "0x_f", "0xf_"}},
		{lexeme.LitFlt, []string{"0.0", "1.25", "10.5"}, []string{"1.", ".5", "01.5", "1.2.3", "1_0.5"}},
		{lexeme.LitChr, []string{"'a'", "' '", "'''", "'é'"}, []string{"''", "'ab'", "'a"}},
		{lexeme.LitStr, []string{`""`, `"Hello World"`, `"a\"b"`, `"\\"`, "\"multi\nline\""}, []string{`"`, `"a`, `"a\"`, `"a""`}},
		{lexeme.LitAtom, []string{"'a", "'ok-go", "'a1-2"}, []string{"'", "'A", "'a-", "'a'"}},
		{lexeme.PtColon, []string{":"}, []string{"::"}},
		{lexeme.Ws, []string{" ", "\t\n\r ", " "}, []string{"", "x", " x"}},
		{lexeme.CommentLine, []string{"//", "// note", "///"}, []string{"/", "// a\n", "/*"}},
		{lexeme.CommentBlock, []string{"/**/", "/* a */", "/***/", "/* a\n*b */"}, []string{"/*", "/*/", "/* */ ", "/* **"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			for _, s := range tt.accept {
				assert.True(t, acceptable(tt.kind, s), "%q should be acceptable", s)
			}
			for _, s := range tt.reject {
				assert.False(t, acceptable(tt.kind, s), "%q should not be acceptable", s)
			}
		})
	}
}

func TestAccepters_NumericBoundary(t *testing.T) {
	steps := []struct {
		prefix     string
		acceptable bool
	}{
		{"1", true},
		{"10", true},
		{"10U", false},
		{"10U3", false},
		{"10U32", true},
	}

	for _, s := range steps {
		assert.Equal(t, s.acceptable, acceptable(lexeme.LitIntDec, s.prefix), "%q", s.prefix)
	}

	// Complete bit widths are terminal.
	_, ok := run(lexeme.LitIntDec, "10U320")
	assert.False(t, ok)
}

func TestAccepters_AcceptableIsNotTerminal(t *testing.T) {
	for _, k := range []lexeme.Kind{lexeme.IdentVal, lexeme.CommentLine, lexeme.Ws, lexeme.LitIntDec} {
		step, ok := run(k, map[lexeme.Kind]string{
			lexeme.IdentVal:    "ab",
			lexeme.CommentLine: "//",
			lexeme.Ws:          " ",
			lexeme.LitIntDec:   "1",
		}[k])
		require.True(t, ok)
		require.True(t, For(k).Acceptable(step))

		_, ok = For(k).Accept(step, map[lexeme.Kind]rune{
			lexeme.IdentVal:    'c',
			lexeme.CommentLine: 'x',
			lexeme.Ws:          '\t',
			lexeme.LitIntDec:   '2',
		}[k])
		assert.True(t, ok, "%s stops after an acceptable state", k)
	}
}

func TestLiteral(t *testing.T) {
	lit := NewLiteral("..=")

	step, ok := lit.Accept(Start, '.')
	require.True(t, ok)
	assert.False(t, lit.Acceptable(step))

	_, ok = lit.Accept(step, '=')
	assert.False(t, ok)

	step, _ = lit.Accept(step, '.')
	step, ok = lit.Accept(step, '=')
	require.True(t, ok)
	assert.True(t, lit.Acceptable(step))

	_, ok = lit.Accept(step, '=')
	assert.False(t, ok)
	assert.Equal(t, "..=", lit.String())
}

func TestTemplate(t *testing.T) {
	got := Template()
	require.Len(t, got, lexeme.KindCount)

	for index, c := range got {
		assert.Equal(t, lexeme.Kind(index), c.Kind)
		assert.Equal(t, Start, c.Step)
		assert.False(t, c.Acceptable(), "%s acceptable before any rune", c.Kind)
	}

	// Mutating a template copy leaves the registry untouched.
	got[0].Step = 2
	assert.Equal(t, Start, Template()[0].Step)
}

func TestSeed(t *testing.T) {
	kinds := func(cs []Candidate) (out []lexeme.Kind) {
		for _, c := range cs {
			out = append(out, c.Kind)
		}
		return
	}

	assert.Equal(t, []lexeme.Kind{lexeme.OpRange, lexeme.OpCRange, lexeme.OpSpread, lexeme.PtDot}, kinds(Seed('.')))
	assert.Equal(t, []lexeme.Kind{lexeme.OpSlash, lexeme.CommentLine, lexeme.CommentBlock}, kinds(Seed('/')))
	assert.Equal(t, []lexeme.Kind{lexeme.LitChr, lexeme.LitAtom}, kinds(Seed('\'')))
	assert.Empty(t, Seed('`'))
}

func TestCandidate_Pending(t *testing.T) {
	c, ok := Candidate{Kind: lexeme.LitStr}.Accept('"')
	require.True(t, ok)
	assert.True(t, c.Pending())

	c, _ = c.Accept('"')
	assert.False(t, c.Pending())

	c, _ = Candidate{Kind: lexeme.IdentSubtype}.Accept('$')
	assert.False(t, c.Pending())
	assert.False(t, Candidate{Kind: lexeme.CommentBlock}.Pending())
}
