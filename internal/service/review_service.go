package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/store"
	"github.com/google/uuid"
)

// CreateReviewInput carries the fields for leaving a review on a
// reservation.
type CreateReviewInput struct {
	ReservationID int64
	Stars         int
	Comment       string
	Visible       *bool // nil defaults to visible
}

// UpdateReviewInput carries a partial update for an existing review.
// Nil fields are left unchanged. The reservation association is immutable:
// moving a review to another reservation is not an update, it is a delete
// plus a create.
type UpdateReviewInput struct {
	Stars   *int
	Comment *string
	Visible *bool
}

// ReviewService manages reviews under the one-review-per-reservation rule.
// The rule is enforced twice: a pre-check here for a friendly error, and a
// unique constraint in the database for correctness under races.
type ReviewService interface {
	// CreateReview validates and persists a new review. Fails with
	// store.ErrDuplicateReview if the reservation already has one.
	CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error)

	// UpdateReview applies a partial update to an existing review.
	UpdateReview(ctx context.Context, id uuid.UUID, input UpdateReviewInput) (*domain.Review, error)

	// DeleteReview removes a review, freeing the reservation for a new one.
	DeleteReview(ctx context.Context, id uuid.UUID) error

	// GetReview retrieves a review by ID.
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// ListReviewsByReservation retrieves the reviews attached to a
	// reservation. Under the invariant the slice has at most one element;
	// the list shape keeps the read side honest about what the store can
	// hold.
	ListReviewsByReservation(ctx context.Context, reservationID int64) ([]*domain.Review, error)
}

// ReviewServiceError wraps unexpected errors from the review service with
// operation context.
type ReviewServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ReviewServiceError.
func (e *ReviewServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("review service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("review service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ReviewServiceError) Unwrap() error {
	return e.Err
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	reviews      store.ReviewStore
	reservations store.ReservationStore
	logger       *slog.Logger
}

// NewReviewService creates a new ReviewService. The reservation store is
// needed to tell an unreviewed reservation apart from a nonexistent one.
func NewReviewService(
	reviews store.ReviewStore,
	reservations store.ReservationStore,
	logger *slog.Logger,
) (ReviewService, error) {
	if reviews == nil {
		return nil, &ReviewServiceError{Operation: "create_service", Message: "reviews store cannot be nil"}
	}
	if reservations == nil {
		return nil, &ReviewServiceError{Operation: "create_service", Message: "reservations store cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		reviews:      reviews,
		reservations: reservations,
		logger:       logger.With("component", "review_service"),
	}, nil
}

// CreateReview validates and persists a new review for a reservation.
func (s *reviewServiceImpl) CreateReview(
	ctx context.Context,
	input CreateReviewInput,
) (*domain.Review, error) {
	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	review, err := domain.NewReview(input.ReservationID, input.Stars, input.Comment, visible)
	if err != nil {
		return nil, err
	}

	if _, err := s.reservations.GetByID(ctx, input.ReservationID); err != nil {
		return nil, err
	}

	// Pre-check for a precise error message. The unique constraint on
	// reservation_id is what actually holds the line when two creates race.
	existing, err := s.reviews.FindByReservation(ctx, input.ReservationID)
	if err != nil {
		return nil, &ReviewServiceError{
			Operation: "create_review",
			Message:   "failed to check for existing review",
			Err:       err,
		}
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: reservation %d already has a review",
			store.ErrDuplicateReview, input.ReservationID)
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		if !errors.Is(err, store.ErrDuplicate) && !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to create review",
				"error", err,
				"reservation_id", input.ReservationID)
		}
		return nil, err
	}

	s.logger.Info("review created",
		"review_id", review.ID,
		"reservation_id", review.ReservationID,
		"stars", review.Stars)
	return review, nil
}

// UpdateReview applies a partial update to an existing review.
func (s *reviewServiceImpl) UpdateReview(
	ctx context.Context,
	id uuid.UUID,
	input UpdateReviewInput,
) (*domain.Review, error) {
	if input.Stars != nil && !domain.ValidStars(*input.Stars) {
		return nil, fmt.Errorf("%w: stars must be between %d and %d, got %d",
			domain.ErrInvalidRating, domain.MinStars, domain.MaxStars, *input.Stars)
	}

	current, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if input.Stars != nil {
		next.Stars = *input.Stars
	}
	if input.Comment != nil {
		next.Comment = *input.Comment
	}
	if input.Visible != nil {
		next.Visible = *input.Visible
	}
	next.UpdatedAt = time.Now().UTC()

	if err := s.reviews.Update(ctx, &next); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to update review", "error", err, "review_id", id)
		}
		return nil, err
	}

	s.logger.Info("review updated", "review_id", id)
	return &next, nil
}

// DeleteReview removes a review by ID.
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to delete review", "error", err, "review_id", id)
		}
		return err
	}

	s.logger.Info("review deleted", "review_id", id)
	return nil
}

// GetReview retrieves a review by its ID.
func (s *reviewServiceImpl) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

// ListReviewsByReservation retrieves all reviews for a reservation. The
// reservation must exist; given that, an empty result is a normal outcome,
// not an error. More than one row means the unique constraint has been
// bypassed somewhere; that gets logged loudly but the data is still returned
// as found.
func (s *reviewServiceImpl) ListReviewsByReservation(
	ctx context.Context,
	reservationID int64,
) ([]*domain.Review, error) {
	if _, err := s.reservations.GetByID(ctx, reservationID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if len(reviews) > 1 {
		s.logger.Error("data integrity violation: reservation has multiple reviews",
			"reservation_id", reservationID,
			"review_count", len(reviews))
	}

	return reviews, nil
}
