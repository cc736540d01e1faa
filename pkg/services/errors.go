// Package services implements the persistence-facing operations of the
// investigation runtime: state snapshots, insight and recommendation
// lifecycle, audit, and the investigation facade that drives the graph.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGuardedUpdateNotApplied is returned when a compare-and-swap
	// status update found the row in a different state.
	ErrGuardedUpdateNotApplied = errors.New("status update not applied")

	// ErrDependencyFailure is returned when an external collaborator
	// failed unrecoverably after retries.
	ErrDependencyFailure = errors.New("dependency failure")
)

// ConflictError reports a duplicate in-flight investigation for the same
// transaction. Carries the existing investigation so callers can point
// the client at it.
type ConflictError struct {
	TransactionID           string
	ExistingInvestigationID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("investigation for transaction %s already in flight (%s)",
		e.TransactionID, e.ExistingInvestigationID)
}

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
