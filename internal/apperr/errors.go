// Package apperr defines the stable error kinds surfaced by every
// mutating operation. Services wrap these with context via fmt.Errorf
// and %w; handlers map them to HTTP statuses with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound: a referenced id is absent from the store.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized: caller is authenticated but lacks role or ownership.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnauthenticated: missing or invalid credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidTransition: a state machine guard rejected the request.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrValidation: malformed or missing required field.
	ErrValidation = errors.New("validation failed")
	// ErrConflict: unique-constraint violation, e.g. duplicate username.
	ErrConflict = errors.New("conflict")
)
