// SPDX-License-Identifier: MIT
package accepter

import (
	"fmt"

	"gitlab.com/fisherprime/auralex/lexeme"
)

var (
	// registry maps every Kind to its matcher; fixed-text Kinds get a Literal.
	registry [lexeme.KindCount]Accepter

	// template holds every Kind at its initial Step, in Kind order.
	template [lexeme.KindCount]Candidate

	patterns = map[lexeme.Kind]Accepter{
		lexeme.IdentVal:     word{lead: isLower, rest: isValueRest},
		lexeme.IdentType:    word{lead: isUpper, rest: isAlnum},
		lexeme.IdentTag:     dashed{sigil: '#'},
		lexeme.IdentMacro:   sigilWord{sigil: '@', word: word{lead: isLower, rest: isMacroRest}},
		lexeme.IdentSubtype: sigilWord{sigil: '$', word: word{lead: isAlpha, rest: isAlnum}},

		lexeme.LitIntDec: decimal{},
		lexeme.LitIntBin: radix{marker: 'b', digit: isBinary},
		lexeme.LitIntOct: radix{marker: 'o', digit: isOctal},
		lexeme.LitIntHex: radix{marker: 'x', digit: isHex},
		lexeme.LitFlt:    float{},
		lexeme.LitChr:    char{},
		lexeme.LitStr:    str{},
		lexeme.LitAtom:   dashed{sigil: '\''},

		lexeme.Ws: whitespace{},

		lexeme.CommentLine:  lineComment{},
		lexeme.CommentBlock: blockComment{},
	}

	// enclosing marks the Kinds that stay open until a closing delimiter is read.
	enclosing = [lexeme.KindCount]bool{
		lexeme.LitChr:       true,
		lexeme.LitStr:       true,
		lexeme.CommentBlock: true,
	}
)

func init() {
	for index := 0; index < lexeme.KindCount; index++ {
		k := lexeme.Kind(index)

		if lit, ok := k.Literal(); ok {
			registry[k] = NewLiteral(lit)
		} else if acp, ok := patterns[k]; ok {
			registry[k] = acp
		} else {
			panic(fmt.Sprintf("accepter: no matcher registered for %s", k))
		}

		template[k] = Candidate{Kind: k, Step: Start}
	}
}

// Template obtains a fresh candidate set: every Kind at its initial Step.
func Template() []Candidate {
	candidates := make([]Candidate, lexeme.KindCount)
	copy(candidates, template[:])

	return candidates
}

// Seed obtains the candidates accepting r as the first rune of a token.
func Seed(r rune) (candidates []Candidate) {
	for index := range template {
		if next, ok := template[index].Accept(r); ok {
			candidates = append(candidates, next)
		}
	}

	return
}
