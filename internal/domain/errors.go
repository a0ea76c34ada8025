package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrInvalidScope  = errors.New("invalid scope")
	ErrCorruptKey    = errors.New("corrupt storage key")
	ErrIntegrity     = errors.New("box integrity violation")
	ErrStaleScope    = errors.New("stale scope")
	ErrNoActiveScope = errors.New("no active scope")
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

// IntegrityError reports a broken box invariant for a single word.
type IntegrityError struct {
	WordID int64
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("box integrity: word %d: %s", e.WordID, e.Reason)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrity }
