package lexer

import (
	"strconv"
	"unicode"

	"github.com/KimNorgaard/go-kod/errors"
	"github.com/KimNorgaard/go-kod/token"
)

// scanNumber scans a numeric literal. The accepted forms are:
//
//	decimal integer    0, 42, 1000           (no leading zeros)
//	prefixed integer   0x1F, 0o17, 0b101     (prefix letter in either case)
//	float              3.14, 1e9, 2.5E-3
//
// A '.' that is not followed by a digit is not part of the literal, so
// "1.foo" scans as INT, DOT, ID. A literal that runs straight into a
// letter, digit or underscore is invalid, as is any value that does not fit
// in an int64 or float64.
func (s *scanner) scanNumber() (token.Token, error) {
	start, begin := s.loc, s.index

	if s.char() == '0' {
		if base, ok := prefixBase(s.peekChar()); ok {
			return s.scanPrefixed(base, start, begin)
		}
	}

	s.acceptDigits()
	isFloat := false
	if s.char() == '.' && isDigit(s.peekChar()) {
		isFloat = true
		s.advance() // consume '.'
		s.acceptDigits()
	}
	if ch := s.char(); ch == 'e' || ch == 'E' {
		isFloat = true
		s.advance()
		if ch := s.char(); ch == '+' || ch == '-' {
			s.advance()
		}
		if !isDigit(s.char()) {
			return s.invalidNumber(start, begin)
		}
		s.acceptDigits()
	}
	if continuesLiteral(s.char()) {
		return s.invalidNumber(start, begin)
	}

	lit := string(s.src[begin:s.index])
	if len(lit) > 1 && lit[0] == '0' && isDigit(rune(lit[1])) {
		return s.invalidNumber(start, begin)
	}
	if isFloat {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return s.invalidNumber(start, begin)
		}
		return token.Token{Type: token.FLOAT, Literal: lit, Loc: start, Float: v}, nil
	}
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return s.invalidNumber(start, begin)
	}
	return token.Token{Type: token.INT, Literal: lit, Loc: start, Int: v}, nil
}

func (s *scanner) scanPrefixed(base int, start token.Location, begin int) (token.Token, error) {
	s.advance() // consume '0'
	s.advance() // consume base letter
	digitsBegin := s.index
	for !s.atEnd() && isDigitOf(s.char(), base) {
		s.advance()
	}
	if s.index == digitsBegin || continuesLiteral(s.char()) {
		return s.invalidNumber(start, begin)
	}
	v, err := strconv.ParseInt(string(s.src[digitsBegin:s.index]), base, 64)
	if err != nil {
		return s.invalidNumber(start, begin)
	}
	return token.Token{Type: token.INT, Literal: string(s.src[begin:s.index]), Loc: start, Int: v}, nil
}

// invalidNumber consumes the rest of the offending literal so the error
// names the whole lexeme.
func (s *scanner) invalidNumber(start token.Location, begin int) (token.Token, error) {
	for !s.atEnd() && (continuesLiteral(s.char()) || s.char() == '.') {
		s.advance()
	}
	return token.Token{}, errors.InvalidNumericLiteral(string(s.src[begin:s.index]), begin, start)
}

func (s *scanner) acceptDigits() {
	for !s.atEnd() && isDigit(s.char()) {
		s.advance()
	}
}

func prefixBase(ch rune) (int, bool) {
	switch ch {
	case 'x', 'X':
		return 16, true
	case 'o', 'O':
		return 8, true
	case 'b', 'B':
		return 2, true
	}
	return 0, false
}

func isDigitOf(ch rune, base int) bool {
	switch base {
	case 2:
		return ch == '0' || ch == '1'
	case 8:
		return '0' <= ch && ch <= '7'
	case 16:
		return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
	}
	return isDigit(ch)
}

func continuesLiteral(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
