package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/store"
	"github.com/google/uuid"
)

// RecordPaymentInput carries the fields for posting a new payment against a
// reservation's outstanding balance.
type RecordPaymentInput struct {
	ReservationID int64
	AmountCents   int64
	Method        string
	Status        string
	PaidAt        time.Time // zero value defaults to now
}

// AmendPaymentInput carries a partial update for an existing payment.
// Nil fields are left unchanged. If AmountCents or ReservationID is
// supplied, the amount-vs-balance check re-runs against the (possibly new)
// reservation.
type AmendPaymentInput struct {
	ReservationID *int64
	AmountCents   *int64
	Method        *string
	Status        *string
	PaidAt        *time.Time
}

// PaymentService is the payment ledger: it posts, amends, and removes
// payments while upholding two invariants. A payment's amount never exceeds
// the reservation's outstanding balance at the time of the write, and method
// and status are always members of their schema-defined enumerations.
type PaymentService interface {
	// RecordPayment validates and persists a new payment, debiting the
	// reservation's outstanding balance in the same transaction.
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error)

	// AmendPayment applies a partial update. Balance effects of an amount or
	// reservation change are settled atomically: the old amount is credited
	// back and the new amount debited inside one transaction.
	AmendPayment(ctx context.Context, id uuid.UUID, input AmendPaymentInput) (*domain.Payment, error)

	// RemovePayment deletes a payment and credits its amount back to the
	// reservation. Returns the deleted record for auditability.
	RemovePayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error)

	// GetPayment retrieves a payment by ID.
	GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error)

	// ListPayments retrieves all payments. No ordering is guaranteed across
	// calls.
	ListPayments(ctx context.Context) ([]*domain.Payment, error)

	// GetReservationBalance exposes the balance accessor: the reservation's
	// identity, total, and outstanding balance.
	GetReservationBalance(ctx context.Context, reservationID int64) (*domain.Reservation, error)

	// ListPaymentMethods returns the legal payment methods, resolved from
	// the schema at call time.
	ListPaymentMethods(ctx context.Context) ([]string, error)

	// ListPaymentStatuses returns the legal payment statuses, resolved from
	// the schema at call time.
	ListPaymentStatuses(ctx context.Context) ([]string, error)
}

// PaymentServiceError wraps unexpected errors from the payment service with
// operation context.
type PaymentServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for PaymentServiceError.
func (e *PaymentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("payment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PaymentServiceError) Unwrap() error {
	return e.Err
}

// paymentServiceImpl implements the PaymentService interface
type paymentServiceImpl struct {
	db           *sql.DB
	payments     store.PaymentStore
	reservations store.ReservationStore
	enums        store.EnumStore
	logger       *slog.Logger
}

// NewPaymentService creates a new PaymentService.
// It returns an error if any of the required dependencies are nil.
func NewPaymentService(
	db *sql.DB,
	payments store.PaymentStore,
	reservations store.ReservationStore,
	enums store.EnumStore,
	logger *slog.Logger,
) (PaymentService, error) {
	if db == nil {
		return nil, &PaymentServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if payments == nil {
		return nil, &PaymentServiceError{Operation: "create_service", Message: "payments store cannot be nil"}
	}
	if reservations == nil {
		return nil, &PaymentServiceError{Operation: "create_service", Message: "reservations store cannot be nil"}
	}
	if enums == nil {
		return nil, &PaymentServiceError{Operation: "create_service", Message: "enums store cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &paymentServiceImpl{
		db:           db,
		payments:     payments,
		reservations: reservations,
		enums:        enums,
		logger:       logger.With("component", "payment_service"),
	}, nil
}

// RecordPayment posts a new payment. The order of checks is part of the
// contract: amount shape first, then enumeration membership, then, inside
// the transaction, the balance debit, then the insert. The conditional
// debit makes the balance check safe under concurrent payments against the
// same reservation.
func (s *paymentServiceImpl) RecordPayment(
	ctx context.Context,
	input RecordPaymentInput,
) (*domain.Payment, error) {
	if input.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d",
			domain.ErrInvalidAmount, input.AmountCents)
	}

	if err := s.validateEnumField(ctx, "method", store.EnumPaymentMethod, input.Method); err != nil {
		return nil, err
	}
	if err := s.validateEnumField(ctx, "status", store.EnumPaymentStatus, input.Status); err != nil {
		return nil, err
	}

	payment, err := domain.NewPayment(
		input.ReservationID,
		input.AmountCents,
		input.Method,
		input.Status,
		input.PaidAt,
	)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txReservations := s.reservations.WithTx(tx)
		txPayments := s.payments.WithTx(tx)

		if err := txReservations.DebitOutstanding(ctx, payment.ReservationID, payment.AmountCents); err != nil {
			return mapBalanceError(err)
		}

		return txPayments.Create(ctx, payment)
	})
	if err != nil {
		s.logger.Error("failed to record payment",
			"error", err,
			"reservation_id", input.ReservationID,
			"amount_cents", input.AmountCents)
		return nil, err
	}

	s.logger.Info("payment recorded",
		"payment_id", payment.ID,
		"reservation_id", payment.ReservationID,
		"amount_cents", payment.AmountCents)
	return payment, nil
}

// AmendPayment applies a partial update to an existing payment.
func (s *paymentServiceImpl) AmendPayment(
	ctx context.Context,
	id uuid.UUID,
	input AmendPaymentInput,
) (*domain.Payment, error) {
	if input.AmountCents != nil && *input.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d",
			domain.ErrInvalidAmount, *input.AmountCents)
	}

	if input.Method != nil {
		if err := s.validateEnumField(ctx, "method", store.EnumPaymentMethod, *input.Method); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		if err := s.validateEnumField(ctx, "status", store.EnumPaymentStatus, *input.Status); err != nil {
			return nil, err
		}
	}

	var amended *domain.Payment
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txReservations := s.reservations.WithTx(tx)
		txPayments := s.payments.WithTx(tx)

		current, err := txPayments.GetByID(ctx, id)
		if err != nil {
			return err
		}

		next := *current
		if input.ReservationID != nil {
			next.ReservationID = *input.ReservationID
		}
		if input.AmountCents != nil {
			next.AmountCents = *input.AmountCents
		}
		if input.Method != nil {
			next.Method = *input.Method
		}
		if input.Status != nil {
			next.Status = *input.Status
		}
		if input.PaidAt != nil {
			next.PaidAt = input.PaidAt.UTC()
		}
		next.UpdatedAt = time.Now().UTC()

		// A supplied amount or reservation re-runs the balance check against
		// the (possibly new) reservation: settle the old debit, then apply
		// the new one.
		if input.AmountCents != nil || input.ReservationID != nil {
			if err := txReservations.CreditOutstanding(ctx, current.ReservationID, current.AmountCents); err != nil {
				return err
			}
			if err := txReservations.DebitOutstanding(ctx, next.ReservationID, next.AmountCents); err != nil {
				return mapBalanceError(err)
			}
		}

		if err := txPayments.Update(ctx, &next); err != nil {
			return err
		}

		amended = &next
		return nil
	})
	if err != nil {
		s.logger.Error("failed to amend payment", "error", err, "payment_id", id)
		return nil, err
	}

	s.logger.Info("payment amended", "payment_id", id)
	return amended, nil
}

// RemovePayment deletes a payment and restores its amount to the
// reservation's outstanding balance in the same transaction.
func (s *paymentServiceImpl) RemovePayment(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Payment, error) {
	var removed *domain.Payment
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txReservations := s.reservations.WithTx(tx)
		txPayments := s.payments.WithTx(tx)

		current, err := txPayments.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := txPayments.Delete(ctx, id); err != nil {
			return err
		}

		if err := txReservations.CreditOutstanding(ctx, current.ReservationID, current.AmountCents); err != nil {
			return err
		}

		removed = current
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to remove payment", "error", err, "payment_id", id)
		}
		return nil, err
	}

	s.logger.Info("payment removed",
		"payment_id", id,
		"reservation_id", removed.ReservationID,
		"amount_cents", removed.AmountCents)
	return removed, nil
}

// GetPayment retrieves a payment by its ID.
func (s *paymentServiceImpl) GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

// ListPayments retrieves all payments.
func (s *paymentServiceImpl) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.payments.List(ctx)
}

// GetReservationBalance retrieves a reservation through the balance accessor.
func (s *paymentServiceImpl) GetReservationBalance(
	ctx context.Context,
	reservationID int64,
) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, reservationID)
}

// ListPaymentMethods returns the schema-defined payment methods.
func (s *paymentServiceImpl) ListPaymentMethods(ctx context.Context) ([]string, error) {
	return s.enums.ResolveEnumeration(ctx, store.EnumPaymentMethod)
}

// ListPaymentStatuses returns the schema-defined payment statuses.
func (s *paymentServiceImpl) ListPaymentStatuses(ctx context.Context) ([]string, error) {
	return s.enums.ResolveEnumeration(ctx, store.EnumPaymentStatus)
}

// validateEnumField resolves the named enumeration and checks membership.
// The resolved set is a point-in-time snapshot; a schema migration changing
// the legal values takes effect on the next call.
func (s *paymentServiceImpl) validateEnumField(
	ctx context.Context,
	field, enumName, value string,
) error {
	allowed, err := s.enums.ResolveEnumeration(ctx, enumName)
	if err != nil {
		return &PaymentServiceError{
			Operation: "resolve_enumeration",
			Message:   fmt.Sprintf("failed to resolve %s", enumName),
			Err:       err,
		}
	}

	if !slices.Contains(allowed, value) {
		return domain.NewInvalidEnumError(field, value, allowed)
	}

	return nil
}

// mapBalanceError converts the store's insufficient-balance signal into the
// domain's invalid-amount error; everything else passes through unchanged.
func mapBalanceError(err error) error {
	if errors.Is(err, store.ErrInsufficientBalance) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
	}
	return err
}
