// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidAmount is returned when a payment amount is not positive or
	// exceeds the outstanding balance of its reservation.
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrInvalidRating is returned when a review's star rating is outside [1,5].
	ErrInvalidRating = errors.New("invalid star rating")

	// ErrInvalidFrequency is returned when a practice frequency is not one of
	// the recognized categories.
	ErrInvalidFrequency = errors.New("invalid practice frequency")

	// ErrInvalidEnumValue is returned when a value is not a member of its
	// schema-defined enumeration. It is usually wrapped by an
	// *InvalidEnumError carrying the permitted set.
	ErrInvalidEnumValue = errors.New("value not in enumeration")
)

// InvalidEnumError reports a value that is not a member of the schema-defined
// enumeration for a field. It carries the permitted set so callers can surface
// it to clients without a second lookup.
type InvalidEnumError struct {
	Field   string   // the offending field (e.g. "method", "status")
	Value   string   // the rejected value
	Allowed []string // the permitted values at the time of the check
}

// Error implements the error interface for InvalidEnumError.
func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q: permitted values are [%s]",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Unwrap lets errors.Is(err, ErrInvalidEnumValue) match.
func (e *InvalidEnumError) Unwrap() error {
	return ErrInvalidEnumValue
}

// NewInvalidEnumError creates an InvalidEnumError for the given field.
// The allowed slice is copied so later schema reads cannot mutate it.
func NewInvalidEnumError(field, value string, allowed []string) *InvalidEnumError {
	cp := make([]string, len(allowed))
	copy(cp, allowed)
	return &InvalidEnumError{Field: field, Value: value, Allowed: cp}
}
