// Package source loads Kod source files into memory for the lexer.
package source

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrCannotOpen is returned when a source file cannot be read. It is
// distinct from every lexical error.
var ErrCannotOpen = errors.New("cannot open source")

// ReadFile reads the whole file at path and decodes it.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCannotOpen, err)
	}
	return Decode(data), nil
}

// Decode converts raw file contents to text. UTF-8 is assumed unless the
// data starts with a UTF-8 or UTF-16 byte order mark, which is honoured and
// removed. Invalid sequences become U+FFFD.
func Decode(data []byte) string {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		// The decoders replace bad input rather than failing.
		return string(data)
	}
	return string(out)
}
