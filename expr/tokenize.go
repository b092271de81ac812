// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"unicode/utf8"
)

// token types
const (
	tokEOF    = iota
	tokNumber // fval holds the value
	tokIdent  // sval holds the name
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret // '^' or '**'
	tokLParen
	tokRParen
	tokComma
)

var tokNames = map[int]string{
	tokEOF: "end of input", tokNumber: "number", tokIdent: "identifier",
	tokPlus: "'+'", tokMinus: "'-'", tokStar: "'*'", tokSlash: "'/'",
	tokCaret: "'^'", tokLParen: "'('", tokRParen: "')'", tokComma: "','",
}

type token struct {
	typ  int
	pos  int // byte offset of the first character
	fval float64
	sval string
}

func (t token) String() string {
	switch t.typ {
	case tokNumber:
		return strconv.FormatFloat(t.fval, 'g', -1, 64)
	case tokIdent:
		return strconv.Quote(t.sval)
	default:
		return tokNames[t.typ]
	}
}

// tokenize scans an infix expression into tokens, ending with tokEOF.
func tokenize(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]

		// whitespace
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}

		start := i
		switch {
		case c == '+':
			tokens = append(tokens, token{typ: tokPlus, pos: start})
			i++
		case c == '-':
			tokens = append(tokens, token{typ: tokMinus, pos: start})
			i++
		case c == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				tokens = append(tokens, token{typ: tokCaret, pos: start})
				i += 2
				continue
			}
			tokens = append(tokens, token{typ: tokStar, pos: start})
			i++
		case c == '/':
			tokens = append(tokens, token{typ: tokSlash, pos: start})
			i++
		case c == '^':
			tokens = append(tokens, token{typ: tokCaret, pos: start})
			i++
		case c == '(':
			tokens = append(tokens, token{typ: tokLParen, pos: start})
			i++
		case c == ')':
			tokens = append(tokens, token{typ: tokRParen, pos: start})
			i++
		case c == ',':
			tokens = append(tokens, token{typ: tokComma, pos: start})
			i++

		case isDigit(c) || c == '.':
			i = scanNumber(src, i)
			fv, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, syntaxErrorf(start, "malformed number %q", src[start:i])
			}
			tokens = append(tokens, token{typ: tokNumber, pos: start, fval: fv})

		case isIdentStart(c):
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, token{typ: tokIdent, pos: start, sval: src[start:i]})

		default:
			r, _ := utf8.DecodeRuneInString(src[i:])
			return nil, syntaxErrorf(start, "unexpected character %q", r)
		}
	}
	tokens = append(tokens, token{typ: tokEOF, pos: len(src)})

	return tokens, nil
}

// scanNumber returns the end offset of the number literal starting at i:
// digits, an optional fraction and an optional exponent. An 'e' that is not
// followed by digits (optionally signed) ends the literal, so "2*e" and
// "2e3" both scan as intended.
func scanNumber(src string, i int) int {
	for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
		i++
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}

	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
