package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error taxonomy shared by the services. Controllers map any of these to an
// HTTP status through StatusCode; anything unrecognized is a 500.

var (
	// ErrNotFound is returned when an id does not resolve to a row.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthenticated is returned on a missing, invalid or expired token.
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports malformed, missing or out-of-range input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError reports a valid caller with the wrong role or ownership.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

func NewAuthorizationError(format string, args ...interface{}) error {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a unique-constraint or state-precondition violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// InvalidStateTransition reports a status-machine precondition failure. It is
// distinct from ConflictError so callers can tell "wrong prior state" apart
// from duplicate-key conflicts, though both map to 409.
type InvalidStateTransition struct {
	Entity string
	From   string
	Action string
}

func (e *InvalidStateTransition) Error() string {
	return fmt.Sprintf("cannot %s %s in status %q", e.Action, e.Entity, e.From)
}

// DependencyError reports an unreachable store or third-party collaborator.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// StatusCode maps a service error onto the HTTP status the API contract
// promises for it.
func StatusCode(err error) int {
	var (
		validationErr *ValidationError
		authzErr      *AuthorizationError
		conflictErr   *ConflictError
		stateErr      *InvalidStateTransition
		depErr        *DependencyError
	)

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.As(err, &authzErr):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &conflictErr), errors.As(err, &stateErr):
		return fiber.StatusConflict
	case errors.As(err, &depErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
