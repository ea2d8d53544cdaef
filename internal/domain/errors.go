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
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Action and time-accounting errors. Each one wraps the generic sentinel
// the transport layer maps to a status code.
var (
	ErrInvalidTimezoneOffset = fmt.Errorf("%w: timezone offset out of range", ErrValidation)
	ErrActionNotFound        = fmt.Errorf("action %w", ErrNotFound)
	ErrDuplicateActionText   = fmt.Errorf("action text %w", ErrAlreadyExists)
	ErrActionNotEligible     = errors.New("action not eligible")
)

// BlockReason explains why an action cannot be logged right now.
type BlockReason string

const (
	BlockNone          BlockReason = "none"
	BlockSelfLogged    BlockReason = "self-already-logged"
	BlockSimilarLogged BlockReason = "similar-already-logged"
)

// NotEligibleError is returned when a logging request hits a blocked action.
type NotEligibleError struct {
	Text             string
	Reason           BlockReason
	BlockingPeerText string
}

func (e *NotEligibleError) Error() string {
	if e.BlockingPeerText != "" {
		return fmt.Sprintf("action %q not eligible: %s (%q)", e.Text, e.Reason, e.BlockingPeerText)
	}
	return fmt.Sprintf("action %q not eligible: %s", e.Text, e.Reason)
}

func (e *NotEligibleError) Unwrap() error { return ErrActionNotEligible }

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
