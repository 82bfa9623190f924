package service

import (
	"errors"
	"fmt"

	"dinebook/constants"
)

// Error kinds. Every error returned by the service wraps exactly one of them.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTransient    = errors.New("transient failure")
	ErrInternal     = errors.New("internal error")
)

// Error carries a user-facing message for one of the error kinds.
type Error struct {
	Kind    error
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Kind, e.cause}
	}
	return []error{e.Kind}
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind error, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Message returns the user-facing text of err, or "" when it carries none.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

func internal(cause error) *Error {
	return wrapError(ErrInternal, cause, constants.ERROR_INTERNAL_ERROR)
}

func transient(cause error) *Error {
	return wrapError(ErrTransient, cause, constants.ERROR_TRANSIENT)
}
