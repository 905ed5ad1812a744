package store

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed input field.
// The triggering operation has no effect on the store.
type ValidationError struct {
	// Field is the offending field or argument name.
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports that a referenced id does not exist in a
// collection. No partial mutation occurs.
type NotFoundError struct {
	Collection string
	ID         string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Collection, e.ID)
}

// InvariantViolation reports an operation that would break a structural
// invariant, such as deleting the default CV variant. Rejected before any
// mutation.
type InvariantViolation struct {
	Message string
}

// Error implements the error interface.
func (e *InvariantViolation) Error() string {
	return e.Message
}

// IsValidation returns true if the error is a ValidationError.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound returns true if the error is a NotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvariantViolation returns true if the error is an InvariantViolation.
// Uses errors.As to handle wrapped errors.
func IsInvariantViolation(err error) bool {
	var iv *InvariantViolation
	return errors.As(err, &iv)
}

func newValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func newNotFound(collection, id string) *NotFoundError {
	return &NotFoundError{Collection: collection, ID: id}
}
