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

// PostgresPaymentStore implements the store.PaymentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPaymentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPaymentStore creates a new PostgreSQL implementation of the
// PaymentStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPaymentStore(db store.DBTX, logger *slog.Logger) *PostgresPaymentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPaymentStore{
		db:     db,
		logger: logger.With(slog.String("component", "payment_store")),
	}
}

// Ensure PostgresPaymentStore implements store.PaymentStore interface
var _ store.PaymentStore = (*PostgresPaymentStore)(nil)

// WithTx implements store.PaymentStore.WithTx
func (s *PostgresPaymentStore) WithTx(tx *sql.Tx) store.PaymentStore {
	return &PostgresPaymentStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PaymentStore.Create
// It saves a new payment to the database, handling domain validation.
// Returns store.ErrReservationNotFound (wrapped in ErrInvalidEntity context)
// if the reservation reference violates the foreign key.
func (s *PostgresPaymentStore) Create(ctx context.Context, payment *domain.Payment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := payment.Validate(); err != nil {
		log.Warn("payment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("payment_id", payment.ID.String()))
		return err
	}

	query := `
		INSERT INTO payments (id, reservation_id, amount_cents, method, status, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		payment.ID,
		payment.ReservationID,
		payment.AmountCents,
		payment.Method,
		payment.Status,
		payment.PaidAt,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during payment creation",
				slog.String("error", err.Error()),
				slog.String("payment_id", payment.ID.String()),
				slog.Int64("reservation_id", payment.ReservationID))
			return fmt.Errorf("%w: reservation %d", store.ErrReservationNotFound, payment.ReservationID)
		}

		log.Error("failed to create payment",
			slog.String("error", err.Error()),
			slog.String("payment_id", payment.ID.String()),
			slog.Int64("reservation_id", payment.ReservationID))
		return MapError(err)
	}

	log.Info("payment created successfully",
		slog.String("payment_id", payment.ID.String()),
		slog.Int64("reservation_id", payment.ReservationID),
		slog.Int64("amount_cents", payment.AmountCents))
	return nil
}

// GetByID implements store.PaymentStore.GetByID
// Returns store.ErrPaymentNotFound if the payment does not exist.
func (s *PostgresPaymentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, reservation_id, amount_cents, method, status, paid_at, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment domain.Payment
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&payment.ID,
		&payment.ReservationID,
		&payment.AmountCents,
		&payment.Method,
		&payment.Status,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("payment not found", slog.String("payment_id", id.String()))
			return nil, store.ErrPaymentNotFound
		}
		log.Error("failed to get payment by ID",
			slog.String("error", err.Error()),
			slog.String("payment_id", id.String()))
		return nil, MapError(err)
	}

	return &payment, nil
}

// List implements store.PaymentStore.List
// The order is stable (paid_at DESC, id) but not part of the contract.
func (s *PostgresPaymentStore) List(ctx context.Context) ([]*domain.Payment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, reservation_id, amount_cents, method, status, paid_at, created_at, updated_at
		FROM payments
		ORDER BY paid_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query payments", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var payments []*domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.ReservationID,
			&payment.AmountCents,
			&payment.Method,
			&payment.Status,
			&payment.PaidAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan payment row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if no payments found
	if payments == nil {
		payments = []*domain.Payment{}
	}

	return payments, nil
}

// Update implements store.PaymentStore.Update
// Returns store.ErrPaymentNotFound if the payment does not exist.
func (s *PostgresPaymentStore) Update(ctx context.Context, payment *domain.Payment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := payment.Validate(); err != nil {
		log.Warn("payment validation failed during update",
			slog.String("error", err.Error()),
			slog.String("payment_id", payment.ID.String()))
		return err
	}

	query := `
		UPDATE payments
		SET reservation_id = $1, amount_cents = $2, method = $3, status = $4, paid_at = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		payment.ReservationID,
		payment.AmountCents,
		payment.Method,
		payment.Status,
		payment.PaidAt,
		payment.UpdatedAt,
		payment.ID,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: reservation %d", store.ErrReservationNotFound, payment.ReservationID)
		}
		log.Error("failed to update payment",
			slog.String("error", err.Error()),
			slog.String("payment_id", payment.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPaymentNotFound); err != nil {
		return err
	}

	log.Info("payment updated successfully",
		slog.String("payment_id", payment.ID.String()))
	return nil
}

// Delete implements store.PaymentStore.Delete
// Returns store.ErrPaymentNotFound if the payment does not exist.
func (s *PostgresPaymentStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete payment",
			slog.String("error", err.Error()),
			slog.String("payment_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPaymentNotFound); err != nil {
		return err
	}

	log.Info("payment deleted successfully", slog.String("payment_id", id.String()))
	return nil
}
