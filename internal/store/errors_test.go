package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapGenericSentinels(t *testing.T) {
	notFound := []error{
		ErrPaymentNotFound,
		ErrReviewNotFound,
		ErrReservationNotFound,
		ErrCourtNotFound,
		ErrDisciplineNotFound,
		ErrAssociationNotFound,
		ErrEnumTypeNotFound,
	}
	for _, err := range notFound {
		assert.ErrorIs(t, err, ErrNotFound, "%v", err)
		assert.True(t, IsNotFoundError(err))
	}

	duplicates := []error{ErrDuplicateReview, ErrDuplicateAssociation}
	for _, err := range duplicates {
		assert.ErrorIs(t, err, ErrDuplicate, "%v", err)
		assert.True(t, IsDuplicateError(err))
	}
}

func TestIsNotFoundError_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", ErrPaymentNotFound)
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsNotFoundError(errors.New("something else")))
	assert.False(t, IsNotFoundError(nil))
}

func TestStoreError(t *testing.T) {
	base := errors.New("connection reset")
	err := NewStoreError("payment", "create", "insert failed", base)

	assert.Equal(t, "create operation on payment failed: insert failed: connection reset", err.Error())
	assert.ErrorIs(t, err, base)

	bare := NewStoreError("review", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on review failed: no rows", bare.Error())
}

func TestStoreError_PreservesSentinelChain(t *testing.T) {
	err := NewStoreError("payment", "get", "lookup", ErrPaymentNotFound)
	assert.True(t, IsNotFoundError(err))
}
