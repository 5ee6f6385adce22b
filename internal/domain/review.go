package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Star rating bounds for a review.
const (
	MinStars = 1
	MaxStars = 5
)

// Common validation errors for Review
var (
	ErrEmptyReviewID          = errors.New("review ID cannot be empty")
	ErrEmptyReviewReservation = errors.New("review reservation reference cannot be empty")
)

// Review is a guest's rating of a completed reservation. At most one review
// may ever reference a reservation; the Review Integrity Service and a unique
// constraint on the reviews table both enforce it.
type Review struct {
	ID            uuid.UUID `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	Stars         int       `json:"stars"`
	Comment       string    `json:"comment,omitempty"`
	Visible       bool      `json:"visible"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewReview creates a new Review with a generated ID and timestamps.
// Reviews are visible by default.
// Returns an error if validation fails.
func NewReview(reservationID int64, stars int, comment string, visible bool) (*Review, error) {
	now := time.Now().UTC()
	review := &Review{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Stars:         stars,
		Comment:       comment,
		Visible:       visible,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
func (r *Review) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyReviewID
	}

	if r.ReservationID <= 0 {
		return ErrEmptyReviewReservation
	}

	if !ValidStars(r.Stars) {
		return ErrInvalidRating
	}

	return nil
}

// ValidStars reports whether stars is within [MinStars, MaxStars].
func ValidStars(stars int) bool {
	return stars >= MinStars && stars <= MaxStars
}
