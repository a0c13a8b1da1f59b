package lexer

import "github.com/sirupsen/logrus"

// Option defines the Lexer functional option type.
type Option func(*Lexer)

// WithLogger configures the logger used for warnings and debug output.
// A nil logger leaves the default in place.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithDebug configures the debug option. When set, every token returned by
// Next is logged at debug level.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }
