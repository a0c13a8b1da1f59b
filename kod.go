package kod

import (
	stderrors "errors"

	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-kod/errors"
	"github.com/KimNorgaard/go-kod/lexer"
	"github.com/KimNorgaard/go-kod/source"
	"github.com/KimNorgaard/go-kod/token"
)

// Tokenize scans src and returns all of its tokens, ending with the
// END_OF_INPUT token. The file name is used only in locations.
func Tokenize(src []byte, file string, opts ...Option) ([]token.Token, error) {
	return tokenize(source.Decode(src), file, opts)
}

// TokenizeFile reads the file at path and tokenizes it. A file that cannot
// be read yields an error wrapping source.ErrCannotOpen.
func TokenizeFile(path string, opts ...Option) ([]token.Token, error) {
	text, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return tokenize(text, path, opts)
}

func tokenize(text, file string, opts []Option) ([]token.Token, error) {
	o := options{
		logger:    logrus.New(),
		maxErrors: defaultMaxErrors,
	}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	l := lexer.New(text, file, lexer.WithLogger(o.logger), lexer.WithDebug(o.debug))

	var (
		toks []token.Token
		errs errors.List
	)
	for {
		tok, err := l.Next()
		if err != nil {
			var lexErr *errors.Error
			if !o.continueOnError || !stderrors.As(err, &lexErr) {
				return toks, err
			}
			errs = append(errs, lexErr)
			if len(errs) >= o.maxErrors {
				return toks, errs
			}
			index := l.Index()
			l.SkipLine()
			if l.Index() == index {
				return toks, errs
			}
			continue
		}
		toks = append(toks, tok)
		if tok.Is(token.END_OF_INPUT) {
			break
		}
	}

	if len(errs) > 0 {
		return toks, errs
	}
	return toks, nil
}
