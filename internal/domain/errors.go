package domain

import "fmt"

// Kind classifies a domain error so the API layer can map it to a status code
type Kind string

const (
	KindValidation         Kind = "validation"          // Bad or missing input
	KindNotFound           Kind = "not_found"           // Missing user, order, menu item or address
	KindInvalidTransition  Kind = "invalid_transition"  // Illegal status move
	KindAuthorization      Kind = "authorization"       // Wrong role for the action
	KindServiceUnavailable Kind = "service_unavailable" // Delivery disabled
	KindConflict           Kind = "conflict"            // Lost a concurrent update or duplicate key
)

// Error is the error type returned by every service operation
type Error struct {
	Kind    Kind   // Machine-readable classification
	Message string // User-facing message
	Cause   error  // Wrapped underlying error, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks
var (
	ErrValidation         = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "not found"}
	ErrInvalidTransition  = &Error{Kind: KindInvalidTransition, Message: "invalid status transition"}
	ErrAuthorization      = &Error{Kind: KindAuthorization, Message: "not allowed"}
	ErrServiceUnavailable = &Error{Kind: KindServiceUnavailable, Message: "service unavailable"}
	ErrConflict           = &Error{Kind: KindConflict, Message: "conflict"}
)

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a validation error
func Validationf(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

// NotFoundf builds a not-found error
func NotFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

// InvalidTransitionf builds an invalid-transition error
func InvalidTransitionf(format string, args ...any) *Error {
	return newError(KindInvalidTransition, format, args...)
}

// Authorizationf builds an authorization error
func Authorizationf(format string, args ...any) *Error {
	return newError(KindAuthorization, format, args...)
}

// ServiceUnavailablef builds a service-unavailable error
func ServiceUnavailablef(format string, args ...any) *Error {
	return newError(KindServiceUnavailable, format, args...)
}

// Conflictf builds a conflict error
func Conflictf(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}
