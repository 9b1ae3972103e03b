package args

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// ErrInvalidOption is a malformed token: bad short-form length, a stray
	// '=' in short form, or a missing leading hyphen.
	ErrInvalidOption ErrorKind = iota
	// ErrUnrecognisedOption means no definition matches the parsed name.
	ErrUnrecognisedOption
	// ErrMissingArgument means a valued option has no value available.
	ErrMissingArgument
	// ErrUnexpectedArgument means a value was supplied to a flag.
	ErrUnexpectedArgument
	// ErrInvalidArgumentValue means the value failed numeric parsing or is
	// not in the allowed string set.
	ErrInvalidArgumentValue
	// ErrConflictingArguments means the same option was repeated with a
	// different value.
	ErrConflictingArguments
)

// ParseError is the only error type produced by the parser. The message is
// intended for direct display to the user; callers wrap it with the program
// or command name and a usage prompt.
type ParseError struct {
	Kind    ErrorKind
	message string
}

func (e *ParseError) Error() string {
	return e.message
}

func newParseError(kind ErrorKind, format string, a ...any) *ParseError {
	return &ParseError{Kind: kind, message: fmt.Sprintf(format, a...)}
}
