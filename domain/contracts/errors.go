// Package contracts defines the collaborator interfaces and typed
// error kinds the application core depends on. Backend wire formats
// are owned by the infrastructure layer; the core only sees these
// shapes.
package contracts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures crossing component boundaries. Errors
// are returned as values, never thrown across layers; a throwing
// dependency is converted at the point of call.
type ErrorKind string

const (
	// ErrorKindValidation: request never sent; caller-correctable.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindPermission: request never sent; caller lacks capability.
	ErrorKindPermission ErrorKind = "permission"
	// ErrorKindTransport: network failure or timeout; retryable, and
	// previously cached data is preserved.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindServer: non-2xx response; terminal for the call, message
	// surfaced verbatim.
	ErrorKindServer ErrorKind = "server"
)

// Error is the typed failure value used across the core.
type Error struct {
	Kind    ErrorKind
	Message string

	// Details carries per-check messages for validation errors.
	Details []string

	// Timeout marks transport errors caused by the request deadline.
	Timeout bool

	// Status is the HTTP status for server errors, zero otherwise.
	Status int
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
	}
	return e.Message
}

// NewValidationError builds a validation failure carrying the failing
// check messages.
func NewValidationError(details ...string) *Error {
	return &Error{
		Kind:    ErrorKindValidation,
		Message: "validation failed",
		Details: details,
	}
}

// NewPermissionError builds a permission failure.
func NewPermissionError(message string) *Error {
	return &Error{Kind: ErrorKindPermission, Message: message}
}

// NewTransportError wraps a network-level failure.
func NewTransportError(message string, timeout bool) *Error {
	return &Error{Kind: ErrorKindTransport, Message: message, Timeout: timeout}
}

// NewServerError wraps a non-2xx backend response.
func NewServerError(status int, message string) *Error {
	return &Error{Kind: ErrorKindServer, Message: message, Status: status}
}

// KindOf returns the classified kind of err, or an empty kind for
// untyped errors.
func KindOf(err error) ErrorKind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return ""
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	var typed *Error
	return errors.As(err, &typed) && typed.Kind == ErrorKindTransport && typed.Timeout
}
