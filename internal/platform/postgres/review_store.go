package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/platform/logger"
	"github.com/canchaclub/cancha-api/internal/store"
	"github.com/google/uuid"
)

// PostgresReviewStore implements the store.ReviewStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewStore creates a new PostgreSQL implementation of the
// ReviewStore interface.
func NewPostgresReviewStore(db store.DBTX, logger *slog.Logger) *PostgresReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure PostgresReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*PostgresReviewStore)(nil)

// WithTx implements store.ReviewStore.WithTx
func (s *PostgresReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &PostgresReviewStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ReviewStore.Create
// The reviews table carries UNIQUE (reservation_id); a violation maps to
// store.ErrDuplicateReview, which is what makes the one-review invariant
// hold under concurrent creates.
func (s *PostgresReviewStore) Create(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during create",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	query := `
		INSERT INTO reviews (id, reservation_id, stars, comment, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.ReservationID,
		review.Stars,
		review.Comment,
		review.Visible,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate review rejected",
				slog.Int64("reservation_id", review.ReservationID))
			return fmt.Errorf("%w %d", store.ErrDuplicateReview, review.ReservationID)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: reservation %d", store.ErrReservationNotFound, review.ReservationID)
		}

		log.Error("failed to create review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()),
			slog.Int64("reservation_id", review.ReservationID))
		return MapError(err)
	}

	log.Info("review created successfully",
		slog.String("review_id", review.ID.String()),
		slog.Int64("reservation_id", review.ReservationID),
		slog.Int("stars", review.Stars))
	return nil
}

// GetByID implements store.ReviewStore.GetByID
// Returns store.ErrReviewNotFound if the review does not exist.
func (s *PostgresReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, reservation_id, stars, COALESCE(comment, ''), visible, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review domain.Review
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&review.ID,
		&review.ReservationID,
		&review.Stars,
		&review.Comment,
		&review.Visible,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("review not found", slog.String("review_id", id.String()))
			return nil, store.ErrReviewNotFound
		}
		log.Error("failed to get review by ID",
			slog.String("error", err.Error()),
			slog.String("review_id", id.String()))
		return nil, MapError(err)
	}

	return &review, nil
}

// FindByReservation implements store.ReviewStore.FindByReservation
// Returns an empty slice when the reservation has no review. More than one
// row means the uniqueness invariant was violated before this store existed;
// the rows are returned as-is so the caller can raise an alarm.
func (s *PostgresReviewStore) FindByReservation(
	ctx context.Context,
	reservationID int64,
) ([]*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, reservation_id, stars, COALESCE(comment, ''), visible, created_at, updated_at
		FROM reviews
		WHERE reservation_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, reservationID)
	if err != nil {
		log.Error("failed to query reviews by reservation",
			slog.String("error", err.Error()),
			slog.Int64("reservation_id", reservationID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var reviews []*domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.ReservationID,
			&review.Stars,
			&review.Comment,
			&review.Visible,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan review row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if reviews == nil {
		reviews = []*domain.Review{}
	}

	return reviews, nil
}

// Update implements store.ReviewStore.Update
// Returns store.ErrReviewNotFound if the review does not exist.
func (s *PostgresReviewStore) Update(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during update",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	query := `
		UPDATE reviews
		SET stars = $1, comment = $2, visible = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		review.Stars,
		review.Comment,
		review.Visible,
		review.UpdatedAt,
		review.ID,
	)

	if err != nil {
		log.Error("failed to update review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrReviewNotFound); err != nil {
		return err
	}

	log.Info("review updated successfully",
		slog.String("review_id", review.ID.String()))
	return nil
}

// Delete implements store.ReviewStore.Delete
// Returns store.ErrReviewNotFound if the review does not exist.
func (s *PostgresReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete review",
			slog.String("error", err.Error()),
			slog.String("review_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrReviewNotFound); err != nil {
		return err
	}

	log.Info("review deleted successfully", slog.String("review_id", id.String()))
	return nil
}
