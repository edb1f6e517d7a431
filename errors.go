package cali

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedToken is returned when a token does not name any registered flag, or when a
	// bare value appears where a flag was expected.
	ErrUnrecognizedToken = errors.New("unrecognized token")

	// ErrMissingValue is returned when a flag requires a value and none follows it.
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidValue is returned when a captured value is rejected by the flag's value type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateDefinition is returned when two registered flags share a short or long
	// identifier.
	ErrDuplicateDefinition = errors.New("duplicate flag definition")

	// ErrInvalidDefinition is returned when a registered flag has no identifier or an identifier
	// that can never be matched.
	ErrInvalidDefinition = errors.New("invalid flag definition")
)

// ParseError is the single failure returned by [Parser.Parse]. Use [errors.Is] with one of the
// sentinel errors to tell the kinds apart.
type ParseError struct {
	// Err is one of the sentinel errors of this package, possibly wrapping a more specific cause.
	Err error
	// Token is the offending input token or flag identifier. It is empty when the failure is not
	// tied to a single identifier.
	Token string
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingValue):
		return fmt.Sprintf("missing value for flag %q", e.Token)
	case errors.Is(e.Err, ErrUnrecognizedToken):
		return fmt.Sprintf("unrecognized token %q", e.Token)
	case e.Token == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("flag %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
