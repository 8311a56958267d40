// Package apierr carries an HTTP status and machine-readable code
// alongside an error, letting handlers force a specific response status
// ahead of the sentinel mapping in the response helpers.
package apierr

import "fmt"

// Error is checked first by the handlers' error mapping, before the
// storage sentinels, so a wrapped cause never downgrades the chosen
// status. Code ends up in the response envelope's error.code field.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}
