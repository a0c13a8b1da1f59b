package lexer

import "github.com/KimNorgaard/go-kod/errors"

// skipComment consumes a comment starting at the current character and
// reports whether one was found.
//
// A line comment runs up to, but not including, the next newline, so the
// newline still produces a NEW_LINE token. A block comment runs through the
// first "*/" and does not nest.
func (s *scanner) skipComment() (bool, error) {
	if s.char() != '/' {
		return false, nil
	}
	switch s.peekChar() {
	case '/':
		for !s.atEnd() && s.char() != '\n' {
			s.advance()
		}
		return true, nil
	case '*':
		start, begin := s.loc, s.index
		s.advance() // consume '/'
		s.advance() // consume '*'
		for !s.atEnd() {
			if s.char() == '*' && s.peekChar() == '/' {
				s.advance()
				s.advance()
				return true, nil
			}
			s.advance()
		}
		return false, errors.UnterminatedComment(begin, start)
	}
	return false, nil
}
