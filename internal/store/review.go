package store

import (
	"context"
	"database/sql"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/google/uuid"
)

// ReviewStore defines the interface for review data persistence.
type ReviewStore interface {
	// Create saves a new review to the store.
	// Returns ErrDuplicateReview if the reservation already has a review
	// (the reviews table carries a unique constraint on the reservation
	// reference, so this holds under concurrent creates).
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by its unique ID.
	// Returns ErrReviewNotFound if the review does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// FindByReservation retrieves the reviews referencing a reservation.
	// A healthy store yields zero or one element; more than one indicates a
	// prior invariant violation and is surfaced as-is so callers can alarm.
	FindByReservation(ctx context.Context, reservationID int64) ([]*domain.Review, error)

	// Update saves changes to an existing review.
	// Returns ErrReviewNotFound if the review does not exist.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes a review from the store by its ID.
	// Returns ErrReviewNotFound if the review does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ReviewStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ReviewStore
}
