package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is a generic version of the entity-specific not found
	// errors (e.g., ErrPaymentNotFound, ErrReviewNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a second review for the same reservation).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInsufficientBalance is returned by the conditional balance debit
	// when the reservation exists but its outstanding balance cannot cover
	// the requested amount. The check and the debit are one atomic
	// statement, so this is safe under concurrent payments.
	ErrInsufficientBalance = errors.New("insufficient outstanding balance")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrPaymentNotFound indicates that the requested payment does not exist.
	ErrPaymentNotFound = fmt.Errorf("%w: payment", ErrNotFound)

	// ErrReviewNotFound indicates that the requested review does not exist.
	ErrReviewNotFound = fmt.Errorf("%w: review", ErrNotFound)

	// ErrReservationNotFound indicates that the referenced reservation does
	// not exist.
	ErrReservationNotFound = fmt.Errorf("%w: reservation", ErrNotFound)

	// ErrCourtNotFound indicates that the referenced court does not exist.
	ErrCourtNotFound = fmt.Errorf("%w: court", ErrNotFound)

	// ErrDisciplineNotFound indicates that the referenced discipline does
	// not exist.
	ErrDisciplineNotFound = fmt.Errorf("%w: discipline", ErrNotFound)

	// ErrAssociationNotFound indicates that no practice relationship exists
	// for the requested (court, discipline) pair.
	ErrAssociationNotFound = fmt.Errorf("%w: practice relationship", ErrNotFound)

	// ErrEnumTypeNotFound indicates that the named enumeration type does not
	// exist in the schema. This is an infrastructure-class failure: the
	// application asked for a domain attribute the database does not define.
	ErrEnumTypeNotFound = fmt.Errorf("%w: enumeration type", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrDuplicateReview indicates the reservation already has a review.
	ErrDuplicateReview = fmt.Errorf("%w: review for reservation", ErrDuplicate)

	// ErrDuplicateAssociation indicates the (court, discipline) pair is
	// already associated.
	ErrDuplicateAssociation = fmt.Errorf("%w: practice relationship", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// All entity-specific not found errors wrap ErrNotFound, so a single
// errors.Is covers them.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "payment", "review")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v",
			e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
