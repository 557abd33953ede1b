package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned by the data layer when no row matched.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique constraint was violated.
	ErrConflict = errors.New("conflict")

	ErrEmailTaken          = errors.New("Email already registered")
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrAuthRequired        = errors.New("Authentication required")
	ErrInvalidToken        = errors.New("Invalid token")
	ErrInvalidJSON         = errors.New("invalid JSON body")
	ErrRateLimited         = errors.New("Too many requests")
	ErrServiceUnavailable  = errors.New("Service unavailable")
	errInternalServerError = errors.New("Internal server error")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

// Missing is shorthand for a required field that was absent.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Msg: "is required"}
}

func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// PersistenceError wraps any failure coming out of the database driver.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("db: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// HTTPStatus maps an error to the status code the router replies with.
func HTTPStatus(err error) int {
	var ve *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &ve),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidToken):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text safe to show to clients. Anything that maps to a 500
// collapses to a generic message.
func PublicMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	for _, known := range []error{
		ErrEmailTaken, ErrInvalidCredentials, ErrAuthRequired, ErrInvalidToken,
		ErrInvalidJSON, ErrNotFound, ErrConflict, ErrRateLimited, ErrServiceUnavailable,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return errInternalServerError.Error()
}
