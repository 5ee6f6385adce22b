package store

import (
	"context"
	"database/sql"

	"github.com/canchaclub/cancha-api/internal/domain"
)

// ReservationStore is the balance accessor over the externally owned
// reservations table. Reads are open to any caller; the debit/credit
// mutations exist solely for the Payment Ledger Service and MUST run inside
// a transaction alongside the payment write they belong to.
type ReservationStore interface {
	// GetByID retrieves a reservation's identity, total, outstanding
	// balance, and lifecycle status.
	// Returns ErrReservationNotFound if the reservation does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)

	// DebitOutstanding atomically subtracts amountCents from the
	// reservation's outstanding balance, but only if the balance covers it:
	//
	//   UPDATE ... SET outstanding = outstanding - $amt
	//   WHERE id = $id AND outstanding >= $amt
	//
	// Zero rows affected is classified with a follow-up existence read:
	// ErrReservationNotFound if the row is absent, ErrInsufficientBalance
	// otherwise. Because check and write are one statement, the
	// non-overpayment invariant holds under concurrent debits.
	DebitOutstanding(ctx context.Context, id int64, amountCents int64) error

	// CreditOutstanding adds amountCents back to the reservation's
	// outstanding balance, capped at the reservation total. Used when a
	// payment is removed or re-pointed during amendment.
	// Returns ErrReservationNotFound if the reservation does not exist.
	CreditOutstanding(ctx context.Context, id int64, amountCents int64) error

	// WithTx returns a new ReservationStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ReservationStore
}
