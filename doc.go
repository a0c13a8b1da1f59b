/*
Package kod provides a lexical scanner for the Kod scripting language. It turns
source text into a stream of typed tokens, each stamped with the file, line
and column it came from, for consumption by a parser.

The package offers two workflows depending on the use case:

1. Pull-Based Scanning

The lexer package exposes the scanner itself. Next returns one token per call
and Peek returns the same token without consuming it:

	l := lexer.New("x = 0x1F // answer\n", "main.kod")
	for {
		tok, err := l.Next()
		if err != nil {
			// handle error, or call l.SkipLine() and carry on
		}
		if tok.Is(token.END_OF_INPUT) {
			break
		}
		fmt.Println(tok) // main.kod:1:1: (ID): x
	}

Comments are skipped and never reach the caller. Numeric literals are decimal
integers, 0x/0o/0b prefixed integers, or decimal floats with an optional
exponent; their parsed value is carried in Token.Int or Token.Float.

2. Whole-Source Tokenizing

Tokenize and TokenizeFile drain a lexer into a slice. With ContinueOnError the
scan resumes at the next line after a lexical error and every error found is
returned as an errors.List:

	toks, err := kod.TokenizeFile("main.kod", kod.ContinueOnError())

Lexical errors unwrap to the sentinels in the errors package, so callers match
them with errors.Is. A file that cannot be read fails with
source.ErrCannotOpen instead.
*/
package kod
