// Package apperr defines the error outcomes the service surfaces to its
// request boundary. Each error carries a stable kind and message; anything
// that is not one of these kinds is an internal failure.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindValidation
	KindUnauthenticated
	KindConflict
	KindNotImplemented
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound marks an entity as absent or soft-deleted.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Forbidden marks an entity that exists but outside the caller's tenant.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Validation marks malformed or cross-reference-invalid input.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Unauthenticated marks a missing or unresolvable caller identity.
func Unauthenticated(msg string) error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

// Conflict marks a race-induced uniqueness violation surfaced by the store.
func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

// NotImplemented marks an operation the service deliberately does not support.
func NotImplemented(msg string) error {
	return &Error{Kind: KindNotImplemented, Message: msg}
}

// Internal wraps an unexpected store or infrastructure failure. The wrapped
// cause is for logs; callers only ever see the opaque message.
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf reports the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to its response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
