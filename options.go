package kod

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Option configures Tokenize and TokenizeFile.
type Option func(*options) error

type options struct {
	logger          logrus.FieldLogger
	debug           bool
	continueOnError bool
	maxErrors       int
}

const defaultMaxErrors = 10

// Logger returns an Option that sets the logger used for lexer warnings
// and debug output.
func Logger(logger logrus.FieldLogger) Option {
	return func(o *options) error {
		if logger == nil {
			return fmt.Errorf("kod: logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// Debug returns an Option that logs every token at debug level.
func Debug() Option {
	return func(o *options) error {
		o.debug = true
		return nil
	}
}

// ContinueOnError returns an Option that makes a lexical error skip the
// rest of the offending line instead of ending the scan. All errors are
// returned together as an errors.List.
func ContinueOnError() Option {
	return func(o *options) error {
		o.continueOnError = true
		return nil
	}
}

// MaxErrors returns an Option that sets how many errors ContinueOnError
// collects before giving up.
//
// The limit n must be a positive integer.
func MaxErrors(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("kod: max errors must be a positive integer")
		}
		o.maxErrors = n
		return nil
	}
}
