package store

import (
	"context"
	"database/sql"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/google/uuid"
)

// PaymentStore defines the interface for payment data persistence.
//
// PaymentStore methods never check the amount-vs-balance invariant; that is
// the Payment Ledger Service's job, done by pairing these calls with
// ReservationStore.DebitOutstanding inside one transaction.
type PaymentStore interface {
	// Create saves a new payment to the store.
	// It handles domain validation internally.
	// Returns ErrReservationNotFound (wrapped) if the reservation reference
	// violates the foreign key.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByID retrieves a payment by its unique ID.
	// Returns ErrPaymentNotFound if the payment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)

	// List retrieves all payments. The SQL applies a paid_at DESC, id order
	// for stability, but callers must not rely on any particular order.
	List(ctx context.Context) ([]*domain.Payment, error)

	// Update saves changes to an existing payment.
	// Returns ErrPaymentNotFound if the payment does not exist.
	Update(ctx context.Context, payment *domain.Payment) error

	// Delete removes a payment from the store by its ID.
	// Returns ErrPaymentNotFound if the payment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PaymentStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service via RunInTransaction).
	WithTx(tx *sql.Tx) PaymentStore
}
