// Package apierrors defines the typed errors services return to the transport layer.
// Every error carries exactly one Kind, and every Kind maps to exactly one HTTP status.
package apierrors

import (
	"errors"
	"net/http"
)

// Kind classifies an API error.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status returns the HTTP status for the kind.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// APIError is an error safe to show to clients.
type APIError struct {
	Kind    Kind
	Message string
	// Err is the underlying cause. It is logged, never sent to clients.
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error.
func (e *APIError) Status() int {
	return e.Kind.Status()
}

// From returns the APIError in err's chain, or an internal error wrapping err.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewErrInternalServerError(err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func NewErrBadRequest(msg string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: msg}
}

func NewErrUnauthorized(msg string) *APIError {
	return &APIError{Kind: KindUnauthorized, Message: msg}
}

func NewErrNotFound(msg string) *APIError {
	return &APIError{Kind: KindNotFound, Message: msg}
}

func NewErrConflict(msg string) *APIError {
	return &APIError{Kind: KindConflict, Message: msg}
}

func NewErrInternalServerError(err error) *APIError {
	return &APIError{Kind: KindInternal, Message: "internal server error", Err: err}
}

func NewErrMissingAuthorizationToken() *APIError {
	return NewErrUnauthorized("Unauthorized request")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return NewErrUnauthorized("Invalid access token")
}

func NewErrInvalidRefreshToken() *APIError {
	return NewErrUnauthorized("Invalid refresh token")
}

func NewErrRefreshTokenUsed() *APIError {
	return NewErrUnauthorized("Refresh token is expired or used")
}

func NewErrUserNotFound() *APIError {
	return NewErrNotFound("User does not exist")
}

func NewErrInvalidCredentials() *APIError {
	return NewErrUnauthorized("Invalid user credentials")
}

func NewErrUserExists() *APIError {
	return NewErrConflict("User with these credentials already exists")
}

func NewErrNoteNotFound() *APIError {
	return NewErrNotFound("Note not found")
}
