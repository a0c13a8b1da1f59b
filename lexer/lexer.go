package lexer

import (
	"unicode"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-kod/errors"
	"github.com/KimNorgaard/go-kod/token"
)

// cursor is a read position in the input. It is copied, never shared, so
// a failed or speculative scan is rolled back by dropping the copy.
type cursor struct {
	index int
	loc   token.Location
}

// Lexer holds the state for tokenizing Kod source.
type Lexer struct {
	src    []rune
	cur    cursor
	logger logrus.FieldLogger
	debug  bool
}

var dump = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

// New creates and returns a new Lexer for src. The file name is used only
// to stamp token and error locations.
func New(src, file string, opts ...Option) *Lexer {
	l := &Lexer{
		src:    []rune(src),
		cur:    cursor{loc: token.NewLocation(file)},
		logger: logrus.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Next scans the input and returns the next token. At the end of the input
// it returns an END_OF_INPUT token, on this and every following call.
//
// On error the lexer does not advance; SkipLine can be used to resume.
func (l *Lexer) Next() (token.Token, error) {
	s := l.scanner(false)
	tok, err := s.scan()
	if err != nil {
		return token.Token{}, err
	}
	l.cur = s.cursor
	if l.debug {
		l.logger.Debugf("lexer next: %s", dump.Sdump(tok))
	}
	return tok, nil
}

// Peek returns the token the next call to Next would return, without
// moving the lexer. The lexer is left untouched even when scanning fails.
func (l *Lexer) Peek() (token.Token, error) {
	s := l.scanner(true)
	return s.scan()
}

// SkipLine moves the lexer to the end of the current line, so that the next
// token is a NEW_LINE or END_OF_INPUT. It is used to recover after an error.
func (l *Lexer) SkipLine() {
	s := l.scanner(true)
	for !s.atEnd() && s.char() != '\n' {
		s.advance()
	}
	l.cur = s.cursor
}

// Location returns the location of the next unread character.
func (l *Lexer) Location() token.Location { return l.cur.loc }

// Index returns the rune index of the next unread character.
func (l *Lexer) Index() int { return l.cur.index }

func (l *Lexer) scanner(peeking bool) *scanner {
	return &scanner{src: l.src, cursor: l.cur, logger: l.logger, peeking: peeking}
}

// scanner runs a single scan over a private copy of the lexer's cursor.
type scanner struct {
	cursor
	src     []rune
	logger  logrus.FieldLogger
	peeking bool
}

func (s *scanner) scan() (token.Token, error) {
	for {
		s.skipWhitespace()
		if s.atEnd() {
			return token.Token{Type: token.END_OF_INPUT, Loc: s.loc}, nil
		}
		ch, err := s.current()
		if err != nil {
			return token.Token{}, err
		}
		switch {
		case ch == '"' || ch == '\'':
			return s.scanString()
		case isDigit(ch):
			return s.scanNumber()
		case isLetter(ch):
			return s.scanIdentifier(), nil
		case token.IsSymbol(ch):
			skipped, err := s.skipComment()
			if err != nil {
				return token.Token{}, err
			}
			if skipped {
				continue
			}
			return s.scanSymbol(), nil
		case ch == '\n':
			tok := token.Token{Type: token.NEW_LINE, Loc: s.loc}
			s.advance()
			return tok, nil
		}
		return token.Token{}, errors.UnknownCharacter(ch, s.index, s.loc)
	}
}

// atEnd reports whether the input is exhausted. A NUL character
// terminates the input like the end of the slice does.
func (s *scanner) atEnd() bool {
	return s.index >= len(s.src) || s.src[s.index] == 0
}

func (s *scanner) current() (rune, error) {
	if s.atEnd() {
		return 0, errors.CursorOutOfRange(s.index, s.loc)
	}
	return s.src[s.index], nil
}

// char returns the current character, or 0 at the end of the input.
func (s *scanner) char() rune {
	if s.atEnd() {
		return 0
	}
	return s.src[s.index]
}

// peekChar returns the character after the current one, or 0.
func (s *scanner) peekChar() rune {
	if s.atEnd() || s.index+1 >= len(s.src) {
		return 0
	}
	return s.src[s.index+1]
}

func (s *scanner) advance() {
	if s.atEnd() {
		return
	}
	s.loc = s.loc.Advance(s.src[s.index])
	s.index++
}

func (s *scanner) skipWhitespace() {
	for !s.atEnd() && s.char() != '\n' && unicode.IsSpace(s.char()) {
		s.advance()
	}
}

func (s *scanner) scanIdentifier() token.Token {
	start, begin := s.loc, s.index
	for !s.atEnd() && isIdentifierChar(s.char()) {
		s.advance()
	}
	lit := string(s.src[begin:s.index])
	typ, kw := token.LookupIdent(lit)
	return token.Token{Type: typ, Keyword: kw, Literal: lit, Loc: start}
}

// scanSymbol scans an operator or punctuation token. A two character
// operator wins over its one character prefix.
func (s *scanner) scanSymbol() token.Token {
	start := s.loc
	sym := string(s.char())
	s.advance()
	typ := token.LookupOperator(sym)

	if !s.atEnd() && token.IsSymbol(s.char()) {
		pair := sym + string(s.char())
		if pairType := token.LookupOperator(pair); pairType != token.UNKNOWN && !token.IsComment(pairType) {
			typ, sym = pairType, pair
			s.advance()
		}
	}
	return token.Token{Type: typ, Literal: sym, Loc: start}
}

func (s *scanner) scanString() (token.Token, error) {
	start := s.loc
	quote := s.char()
	s.advance() // consume opening quote

	var buf []rune
	for !s.atEnd() && s.char() != quote {
		if s.char() != '\\' {
			buf = append(buf, s.char())
			s.advance()
			continue
		}
		s.advance() // consume backslash
		if s.atEnd() {
			break
		}
		if r, ok := unescape(s.char()); ok {
			buf = append(buf, r)
		} else {
			s.warnEscape()
		}
		s.advance()
	}

	if s.atEnd() {
		return token.Token{}, errors.UnterminatedString(s.index, s.loc)
	}
	s.advance() // consume closing quote
	return token.Token{Type: token.STRING, Literal: string(buf), Loc: start}, nil
}

// warnEscape reports an unknown escape sequence. The sequence is dropped
// from the string.
func (s *scanner) warnEscape() {
	if s.peeking {
		return
	}
	s.logger.WithFields(logrus.Fields{
		"file":   s.loc.File,
		"line":   s.loc.Line,
		"column": s.loc.Column,
		"escape": "\\" + string(s.char()),
	}).Warn("lexer: unknown escape sequence dropped")
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentifierChar(ch rune) bool {
	return isLetter(ch) || unicode.IsDigit(ch)
}

func unescape(ch rune) (rune, bool) {
	switch ch {
	case 'b':
		return '\b', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	}
	return 0, false
}
