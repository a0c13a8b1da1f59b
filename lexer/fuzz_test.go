//go:build go1.18

package lexer_test

import (
	"testing"
	"unicode/utf8"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kod/lexer"
	"github.com/KimNorgaard/go-kod/token"
)

func FuzzNext(f *testing.F) {
	f.Add("x=1\n")
	f.Add(`fn main() { return "a\nb" }`)
	f.Add("/* unterminated")
	f.Add("0x1F 0b101 3.14 1e9")
	f.Add("a <= b && c != d // done")
	f.Add("'single' \"double\"")

	f.Fuzz(func(t *testing.T, src string) {
		logger, _ := test.NewNullLogger()
		l := lexer.New(src, "fuzz.kod", lexer.WithLogger(logger))

		// Every call either consumes input or ends the scan, so the number of
		// tokens is bounded by the number of runes.
		limit := utf8.RuneCountInString(src) + 1
		for i := 0; i < limit+1; i++ {
			index, loc := l.Index(), l.Location()

			peeked, peekErr := l.Peek()
			require.Equal(t, index, l.Index(), "Peek moved the cursor")
			require.Equal(t, loc, l.Location(), "Peek moved the location")

			tok, err := l.Next()
			if err != nil {
				// Errors are reported identically by Peek and Next and never advance.
				require.Error(t, peekErr)
				require.Equal(t, peekErr.Error(), err.Error())
				require.Equal(t, index, l.Index())
				return
			}
			require.NoError(t, peekErr)
			require.Equal(t, peeked, tok)

			if tok.Is(token.END_OF_INPUT) {
				return
			}
			require.Greater(t, l.Index(), index, "Next returned %s without advancing", tok)
		}
		t.Fatalf("scan of %q did not terminate", src)
	})
}
