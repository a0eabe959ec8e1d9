package config

import "errors"

// Configuration errors returned by [APIConfig] accessors. They are always
// wrapped in a [*KeyError] naming the offending variable; match them with
// [errors.Is].
var (
	// ErrMissingConfig indicates that a required environment variable is not
	// set. A variable set to an empty string is considered set.
	ErrMissingConfig = errors.New("environment variable does not set")

	// ErrInvalidNumber indicates that a variable is set but its value is not
	// a well-formed decimal number (or not an integer where one is required).
	ErrInvalidNumber = errors.New("environment variable is not a number")

	// ErrInvalidBoolean indicates that a boolean variable could not be read.
	ErrInvalidBoolean = errors.New("environment variable is not a boolean")
)

// Errors returned while assembling runtime [Options].
var (
	// ErrInvalidShutdownTimeout indicates a negative shutdown timeout.
	ErrInvalidShutdownTimeout = errors.New("invalid shutdown timeout")
)

// KeyError reports a configuration failure for a single environment
// variable.
type KeyError struct {
	// Key is the environment variable name.
	Key string

	// Err is one of ErrMissingConfig, ErrInvalidNumber or ErrInvalidBoolean.
	Err error

	// cause is the underlying failure, if any (e.g. the missing read behind
	// an ErrInvalidBoolean).
	cause error
}

func newKeyError(key string, err, cause error) *KeyError {
	return &KeyError{Key: key, Err: err, cause: cause}
}

func (e *KeyError) Error() string {
	msg := e.Key + " " + e.Err.Error()
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}

	return msg
}

// Unwrap exposes both the classification error and the underlying cause to
// [errors.Is] and [errors.As].
func (e *KeyError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.cause}
}
