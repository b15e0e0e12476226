// SPDX-License-Identifier: MIT
package lexeme

import "fmt"

type (
	// Kind identifies a token grammar.
	Kind uint8

	// Category groups related Kinds.
	Category uint8

	kindInfo struct {
		name     string
		category Category
		// literal is the exact text matched by fixed-text kinds, empty otherwise.
		literal string
	}
)

// Categories.
const (
	CategoryKeyword Category = iota
	CategoryIdentifier
	CategoryOperator
	CategoryDelimiter
	CategoryLiteral
	CategoryPunctuation
	CategoryWhitespace
	CategoryComment

	// CategoryUnknown is reported for invalid Kinds.
	CategoryUnknown
)

// Kinds, in registry order.
const (
	KwVal Kind = iota
	KwFn
	KwType
	KwTag
	KwMain
	KwMacro
	KwImport
	KwObject

	IdentVal
	IdentType
	IdentTag
	IdentMacro
	IdentSubtype

	OpDecl
	OpEq
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpCaret
	OpUScore
	OpPercent
	OpAnd
	OpAndAnd
	OpOr
	OpOrOr
	OpNot
	OpNotEq
	OpEqEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpLtLt
	OpGtGt
	OpRArw
	OpFatRArw
	OpTilde
	OpJoin
	OpBSlash
	OpRange
	OpCRange
	OpSpread

	DelimOParen
	DelimCParen
	DelimOBrack
	DelimCBrack
	DelimOBrace
	DelimCBrace

	LitIntDec
	LitIntBin
	LitIntOct
	LitIntHex
	LitFlt
	LitChr
	LitStr
	LitAtom

	PtDot
	PtComma
	PtColon
	PtSemi

	Ws

	CommentLine
	CommentBlock

	// KindCount is the number of Kinds.
	KindCount int = iota
)

var (
	kinds = [KindCount]kindInfo{
		KwVal:    {"KwVal", CategoryKeyword, "val"},
		KwFn:     {"KwFn", CategoryKeyword, "fn"},
		KwType:   {"KwType", CategoryKeyword, "type"},
		KwTag:    {"KwTag", CategoryKeyword, "tag"},
		KwMain:   {"KwMain", CategoryKeyword, "main"},
		KwMacro:  {"KwMacro", CategoryKeyword, "macro"},
		KwImport: {"KwImport", CategoryKeyword, "import"},
		KwObject: {"KwObject", CategoryKeyword, "object"},

		IdentVal:     {"IdentVal", CategoryIdentifier, ""},
		IdentType:    {"IdentType", CategoryIdentifier, ""},
		IdentTag:     {"IdentTag", CategoryIdentifier, ""},
		IdentMacro:   {"IdentMacro", CategoryIdentifier, ""},
		IdentSubtype: {"IdentSubtype", CategoryIdentifier, ""},

		OpDecl:    {"OpDecl", CategoryOperator, ":="},
		OpEq:      {"OpEq", CategoryOperator, "="},
		OpPlus:    {"OpPlus", CategoryOperator, "+"},
		OpMinus:   {"OpMinus", CategoryOperator, "-"},
		OpStar:    {"OpStar", CategoryOperator, "*"},
		OpSlash:   {"OpSlash", CategoryOperator, "/"},
		OpCaret:   {"OpCaret", CategoryOperator, "^"},
		OpUScore:  {"OpUScore", CategoryOperator, "_"},
		OpPercent: {"OpPercent", CategoryOperator, "%"},
		OpAnd:     {"OpAnd", CategoryOperator, "&"},
		OpAndAnd:  {"OpAndAnd", CategoryOperator, "&&"},
		OpOr:      {"OpOr", CategoryOperator, "|"},
		OpOrOr:    {"OpOrOr", CategoryOperator, "||"},
		OpNot:     {"OpNot", CategoryOperator, "!"},
		OpNotEq:   {"OpNotEq", CategoryOperator, "!="},
		OpEqEq:    {"OpEqEq", CategoryOperator, "=="},
		OpGt:      {"OpGt", CategoryOperator, ">"},
		OpGtEq:    {"OpGtEq", CategoryOperator, ">="},
		OpLt:      {"OpLt", CategoryOperator, "<"},
		OpLtEq:    {"OpLtEq", CategoryOperator, "<="},
		OpLtLt:    {"OpLtLt", CategoryOperator, "<<"},
		OpGtGt:    {"OpGtGt", CategoryOperator, ">>"},
		OpRArw:    {"OpRArw", CategoryOperator, "->"},
		OpFatRArw: {"OpFatRArw", CategoryOperator, "=>"},
		OpTilde:   {"OpTilde", CategoryOperator, "~"},
		OpJoin:    {"OpJoin", CategoryOperator, "::"},
		OpBSlash:  {"OpBSlash", CategoryOperator, `\`},
		OpRange:   {"OpRange", CategoryOperator, ".."},
		OpCRange:  {"OpCRange", CategoryOperator, "..="},
		OpSpread:  {"OpSpread", CategoryOperator, "..."},

		DelimOParen: {"DelimOParen", CategoryDelimiter, "("},
		DelimCParen: {"DelimCParen", CategoryDelimiter, ")"},
		DelimOBrack: {"DelimOBrack", CategoryDelimiter, "["},
		DelimCBrack: {"DelimCBrack", CategoryDelimiter, "]"},
		DelimOBrace: {"DelimOBrace", CategoryDelimiter, "{"},
		DelimCBrace: {"DelimCBrace", CategoryDelimiter, "}"},

		LitIntDec: {"LitIntDec", CategoryLiteral, ""},
		LitIntBin: {"LitIntBin", CategoryLiteral, ""},
		LitIntOct: {"LitIntOct", CategoryLiteral, ""},
		LitIntHex: {"LitIntHex", CategoryLiteral, ""},
		LitFlt:    {"LitFlt", CategoryLiteral, ""},
		LitChr:    {"LitChr", CategoryLiteral, ""},
		LitStr:    {"LitStr", CategoryLiteral, ""},
		LitAtom:   {"LitAtom", CategoryLiteral, ""},

		PtDot:   {"PtDot", CategoryPunctuation, "."},
		PtComma: {"PtComma", CategoryPunctuation, ","},
		PtColon: {"PtColon", CategoryPunctuation, ":"},
		PtSemi:  {"PtSemi", CategoryPunctuation, ";"},

		Ws: {"Ws", CategoryWhitespace, ""},

		CommentLine:  {"CommentLine", CategoryComment, ""},
		CommentBlock: {"CommentBlock", CategoryComment, ""},
	}

	categoryNames = [...]string{
		CategoryKeyword:     "keyword",
		CategoryIdentifier:  "identifier",
		CategoryOperator:    "operator",
		CategoryDelimiter:   "delimiter",
		CategoryLiteral:     "literal",
		CategoryPunctuation: "punctuation",
		CategoryWhitespace:  "whitespace",
		CategoryComment:     "comment",
		CategoryUnknown:     "unknown",
	}

	byName map[string]Kind
)

func init() {
	byName = make(map[string]Kind, KindCount)
	for index := range kinds {
		byName[kinds[index].name] = Kind(index)
	}
}

// Lookup resolves a Kind from its name.
func Lookup(name string) (k Kind, ok bool) {
	k, ok = byName[name]
	return
}

// Valid reports whether k is a known Kind.
func (k Kind) Valid() bool { return int(k) < KindCount }

// String is the fmt.Stringer implementation for Kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", k)
	}

	return kinds[k].name
}

// Category obtains the Kind's Category.
func (k Kind) Category() Category {
	if !k.Valid() {
		return CategoryUnknown
	}

	return kinds[k].category
}

// Literal obtains the exact text matched by a fixed-text Kind.
//
// ok is false for Kinds matched by a pattern.
func (k Kind) Literal() (lit string, ok bool) {
	if !k.Valid() {
		return
	}

	lit = kinds[k].literal
	ok = lit != ""

	return
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// String is the fmt.Stringer implementation for Category.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return fmt.Sprintf("Category(%d)", c)
}
