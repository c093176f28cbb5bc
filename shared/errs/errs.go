// Package errs defines the error type shared by the command, query and
// transport layers. Every error that reaches an HTTP response carries a Kind,
// and the Kind alone decides the status code.
package errs

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindInvalidRequest  Kind = "INVALID_REQUEST"
	KindNotFound        Kind = "NOT_FOUND"
	KindInternalFailure Kind = "INTERNAL_FAILURE"
)

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type Error struct {
	Kind    Kind
	Message string
	Details []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewInvalidRequest(message string, details ...FieldError) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message, Details: details}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewInternal wraps an unexpected error. The message is the wrapped error's
// text so it can be surfaced when internal errors are exposed.
func NewInternal(err error) *Error {
	if err == nil {
		return &Error{Kind: KindInternalFailure, Message: "internal failure"}
	}
	return &Error{Kind: KindInternalFailure, Message: err.Error(), Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternalFailure
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// From returns err as *Error, wrapping anything else as an internal failure.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewInternal(err)
}
