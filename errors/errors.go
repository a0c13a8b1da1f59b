// Package errors defines the failures reported while tokenizing Kod source.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/KimNorgaard/go-kod/token"
)

// Lexical error kinds. Every *Error unwraps to one of these.
var (
	ErrUnknownCharacter      = stderrors.New("unknown character")
	ErrCursorOutOfRange      = stderrors.New("cursor out of range")
	ErrUnterminatedString    = stderrors.New("unterminated string")
	ErrUnterminatedComment   = stderrors.New("unterminated block comment")
	ErrInvalidNumericLiteral = stderrors.New("invalid numeric literal")
)

// Error is a single lexical error. It includes the rune index and the
// source location where scanning stopped.
type Error struct {
	Err      error
	Char     rune   // Offending character, for ErrUnknownCharacter.
	Text     string // Offending lexeme, for ErrInvalidNumericLiteral.
	Index    int
	Location token.Location
}

func (e *Error) Error() string {
	switch {
	case e.Err == ErrUnknownCharacter:
		return fmt.Sprintf("kod: %s: %s %q (U+%04X) at index %d", e.Location, e.Err, e.Char, e.Char, e.Index)
	case e.Text != "":
		return fmt.Sprintf("kod: %s: %s %q at index %d", e.Location, e.Err, e.Text, e.Index)
	default:
		return fmt.Sprintf("kod: %s: %s at index %d", e.Location, e.Err, e.Index)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// UnknownCharacter reports a character that cannot start any token.
func UnknownCharacter(ch rune, index int, loc token.Location) *Error {
	return &Error{Err: ErrUnknownCharacter, Char: ch, Index: index, Location: loc}
}

// CursorOutOfRange reports a read past the end of the input.
func CursorOutOfRange(index int, loc token.Location) *Error {
	return &Error{Err: ErrCursorOutOfRange, Index: index, Location: loc}
}

// UnterminatedString reports a string literal missing its closing quote.
func UnterminatedString(index int, loc token.Location) *Error {
	return &Error{Err: ErrUnterminatedString, Index: index, Location: loc}
}

// UnterminatedComment reports a block comment missing its closing marker.
func UnterminatedComment(index int, loc token.Location) *Error {
	return &Error{Err: ErrUnterminatedComment, Index: index, Location: loc}
}

// InvalidNumericLiteral reports a malformed or out of range number.
func InvalidNumericLiteral(text string, index int, loc token.Location) *Error {
	return &Error{Err: ErrInvalidNumericLiteral, Text: text, Index: index, Location: loc}
}

// List is a slice of Error that implements the error interface.
// This allows returning all lexical errors found in a source at once.
type List []*Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Unwrap exposes every collected error to errors.Is and errors.As.
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}
