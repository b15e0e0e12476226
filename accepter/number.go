// SPDX-License-Identifier: MIT
package accepter

type (
	// decimal matches (0|[1-9][0-9_]*)((U|I)(8|16|32|64))?
	//
	// Underscores separate digits of a non-zero literal; a bit width must be complete.
	decimal struct{}

	// radix matches 0<marker><digit>(_?<digit>)*
	radix struct {
		marker rune
		digit  func(rune) bool
	}

	// float matches (0|[1-9][0-9]*)\.[0-9]+
	float struct{}
)

const (
	decZero Step = iota + 1
	decDigits
	decUnderscore
	decSign
	decWidth1
	decWidth3
	decWidth6
	decWidth
)

const (
	radixZero Step = iota + 1
	radixMarker
	radixDigits
	radixUnderscore
)

const (
	floatZero Step = iota + 1
	floatDigits
	floatPoint
	floatFraction
)

// Accept implements Accepter.
func (decimal) Accept(s Step, r rune) (next Step, ok bool) {
	switch s {
	case Start:
		switch {
		case r == '0':
			return decZero, true
		case isDigit(r):
			return decDigits, true
		}
	case decZero:
		if isSign(r) {
			return decSign, true
		}
	case decDigits:
		switch {
		case isDigit(r):
			return decDigits, true
		case r == '_':
			return decUnderscore, true
		case isSign(r):
			return decSign, true
		}
	case decUnderscore:
		if isDigit(r) {
			return decDigits, true
		}
	case decSign:
		switch r {
		case '8':
			return decWidth, true
		case '1':
			return decWidth1, true
		case '3':
			return decWidth3, true
		case '6':
			return decWidth6, true
		}
	case decWidth1:
		if r == '6' {
			return decWidth, true
		}
	case decWidth3:
		if r == '2' {
			return decWidth, true
		}
	case decWidth6:
		if r == '4' {
			return decWidth, true
		}
	}

	return
}

// Acceptable implements Accepter.
func (decimal) Acceptable(s Step) bool { return s == decZero || s == decDigits || s == decWidth }

// Accept implements Accepter.
func (x radix) Accept(s Step, r rune) (next Step, ok bool) {
	switch s {
	case Start:
		if r == '0' {
			return radixZero, true
		}
	case radixZero:
		if r == x.marker {
			return radixMarker, true
		}
	case radixMarker, radixUnderscore:
		if x.digit(r) {
			return radixDigits, true
		}
	case radixDigits:
		switch {
		case x.digit(r):
			return radixDigits, true
		case r == '_':
			return radixUnderscore, true
		}
	}

	return
}

// Acceptable implements Accepter.
func (radix) Acceptable(s Step) bool { return s == radixDigits }

// Accept implements Accepter.
func (float) Accept(s Step, r rune) (next Step, ok bool) {
	switch s {
	case Start:
		switch {
		case r == '0':
			return floatZero, true
		case isDigit(r):
			return floatDigits, true
		}
	case floatZero:
		if r == '.' {
			return floatPoint, true
		}
	case floatDigits:
		switch {
		case isDigit(r):
			return floatDigits, true
		case r == '.':
			return floatPoint, true
		}
	case floatPoint, floatFraction:
		if isDigit(r) {
			return floatFraction, true
		}
	}

	return
}

// Acceptable implements Accepter.
func (float) Acceptable(s Step) bool { return s == floatFraction }

func isSign(r rune) bool { return r == 'U' || r == 'I' }

func isBinary(r rune) bool { return r == '0' || r == '1' }

func isOctal(r rune) bool { return r >= '0' && r <= '7' }

func isHex(r rune) bool { return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') }
