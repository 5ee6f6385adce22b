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
)

// PostgresReservationStore implements the store.ReservationStore interface.
// The reservations table is owned by an external collaborator; this store
// reads it and adjusts outstanding_cents only on behalf of the Payment
// Ledger Service, which calls the debit/credit methods inside a transaction
// together with the payment write.
type PostgresReservationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReservationStore creates a new PostgreSQL implementation of the
// ReservationStore interface.
func NewPostgresReservationStore(db store.DBTX, logger *slog.Logger) *PostgresReservationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReservationStore{
		db:     db,
		logger: logger.With(slog.String("component", "reservation_store")),
	}
}

// Ensure PostgresReservationStore implements store.ReservationStore interface
var _ store.ReservationStore = (*PostgresReservationStore)(nil)

// WithTx implements store.ReservationStore.WithTx
func (s *PostgresReservationStore) WithTx(tx *sql.Tx) store.ReservationStore {
	return &PostgresReservationStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetByID implements store.ReservationStore.GetByID
// Returns store.ErrReservationNotFound if the reservation does not exist.
func (s *PostgresReservationStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, total_cents, outstanding_cents, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var reservation domain.Reservation
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.TotalCents,
		&reservation.OutstandingCents,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("reservation not found", slog.Int64("reservation_id", id))
			return nil, store.ErrReservationNotFound
		}
		log.Error("failed to get reservation by ID",
			slog.String("error", err.Error()),
			slog.Int64("reservation_id", id))
		return nil, MapError(err)
	}

	return &reservation, nil
}

// DebitOutstanding implements store.ReservationStore.DebitOutstanding
//
// The balance check and the subtraction are one conditional UPDATE, so two
// concurrent debits can never both pass a stale check: the row's own state
// arbitrates. Zero rows affected is disambiguated by a follow-up existence
// read into ErrReservationNotFound or ErrInsufficientBalance.
func (s *PostgresReservationStore) DebitOutstanding(ctx context.Context, id int64, amountCents int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if amountCents <= 0 {
		return fmt.Errorf("%w: debit amount must be positive", store.ErrInvalidEntity)
	}

	query := `
		UPDATE reservations
		SET outstanding_cents = outstanding_cents - $1, updated_at = now()
		WHERE id = $2 AND outstanding_cents >= $1
	`

	result, err := s.db.ExecContext(ctx, query, amountCents, id)
	if err != nil {
		log.Error("failed to debit outstanding balance",
			slog.String("error", err.Error()),
			slog.Int64("reservation_id", id),
			slog.Int64("amount_cents", amountCents))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Either the reservation is absent or the balance cannot cover the
		// amount; a read tells them apart.
		reservation, getErr := s.GetByID(ctx, id)
		if getErr != nil {
			return getErr
		}
		log.Debug("debit rejected: insufficient balance",
			slog.Int64("reservation_id", id),
			slog.Int64("amount_cents", amountCents),
			slog.Int64("outstanding_cents", reservation.OutstandingCents))
		return fmt.Errorf("%w: amount %d exceeds outstanding %d",
			store.ErrInsufficientBalance, amountCents, reservation.OutstandingCents)
	}

	log.Debug("outstanding balance debited",
		slog.Int64("reservation_id", id),
		slog.Int64("amount_cents", amountCents))
	return nil
}

// CreditOutstanding implements store.ReservationStore.CreditOutstanding
// The credit is capped at total_cents so an amended or removed payment can
// never push the outstanding balance above the reservation total.
func (s *PostgresReservationStore) CreditOutstanding(ctx context.Context, id int64, amountCents int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if amountCents <= 0 {
		return fmt.Errorf("%w: credit amount must be positive", store.ErrInvalidEntity)
	}

	query := `
		UPDATE reservations
		SET outstanding_cents = LEAST(outstanding_cents + $1, total_cents), updated_at = now()
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, amountCents, id)
	if err != nil {
		log.Error("failed to credit outstanding balance",
			slog.String("error", err.Error()),
			slog.Int64("reservation_id", id),
			slog.Int64("amount_cents", amountCents))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrReservationNotFound); err != nil {
		return err
	}

	log.Debug("outstanding balance credited",
		slog.Int64("reservation_id", id),
		slog.Int64("amount_cents", amountCents))
	return nil
}
