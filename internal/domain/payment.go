package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Payment
var (
	ErrEmptyPaymentID          = errors.New("payment ID cannot be empty")
	ErrEmptyPaymentReservation = errors.New("payment reservation reference cannot be empty")
	ErrEmptyPaymentMethod      = errors.New("payment method cannot be empty")
	ErrEmptyPaymentStatus      = errors.New("payment status cannot be empty")
)

// Payment is a single ledger entry posted against a reservation's outstanding
// balance. Amounts are integer cents; floats never touch money.
//
// Method and Status are members of the schema-defined payment_method and
// payment_status enumerations. Membership is checked by the service against
// the enumeration resolver, not here: the legal sets live in the database and
// this package holds no copy of them.
type Payment struct {
	ID            uuid.UUID `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	AmountCents   int64     `json:"amount_cents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	PaidAt        time.Time `json:"paid_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewPayment creates a new Payment with a generated ID and timestamps.
// A zero paidAt defaults to the current time.
// Returns an error if structural validation fails; enumeration membership and
// the amount-vs-balance check are the Payment Ledger Service's responsibility.
func NewPayment(
	reservationID int64,
	amountCents int64,
	method, status string,
	paidAt time.Time,
) (*Payment, error) {
	now := time.Now().UTC()
	if paidAt.IsZero() {
		paidAt = now
	}

	payment := &Payment{
		ID:            uuid.New(),
		ReservationID: reservationID,
		AmountCents:   amountCents,
		Method:        method,
		Status:        status,
		PaidAt:        paidAt.UTC(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	return payment, nil
}

// Validate checks if the Payment has valid data.
// Returns an error for the first field that fails validation.
func (p *Payment) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPaymentID
	}

	if p.ReservationID <= 0 {
		return ErrEmptyPaymentReservation
	}

	if p.AmountCents <= 0 {
		return ErrInvalidAmount
	}

	if p.Method == "" {
		return ErrEmptyPaymentMethod
	}

	if p.Status == "" {
		return ErrEmptyPaymentStatus
	}

	return nil
}
