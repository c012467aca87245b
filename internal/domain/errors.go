package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrCascadeFailed = errors.New("cascade failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// CascadeError reports the step of a cascading delete that failed.
// It matches both ErrCascadeFailed and the underlying cause with errors.Is.
type CascadeError struct {
	Entity string
	ID     uuid.UUID
	Step   string
	Err    error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade delete %s %s: %s: %v", e.Entity, e.ID, e.Step, e.Err)
}

func (e *CascadeError) Unwrap() []error { return []error{ErrCascadeFailed, e.Err} }

// NewCascadeError wraps err as a failure of the named cascade step.
func NewCascadeError(entity string, id uuid.UUID, step string, err error) *CascadeError {
	return &CascadeError{Entity: entity, ID: id, Step: step, Err: err}
}
