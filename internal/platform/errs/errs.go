package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the sentinel for missing entities.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is the sentinel for the unique constraint on user email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrReferentialIntegrity is the sentinel for writes referencing a
	// non-existent parent entity.
	ErrReferentialIntegrity = errors.New("referenced entity does not exist")
	// ErrDependencyFailure marks a failed call to an external collaborator.
	// Callers must answer with a fallback payload, never surface it.
	ErrDependencyFailure = errors.New("dependency failure")
)

// ValidationError reports malformed or missing required input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalidf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
