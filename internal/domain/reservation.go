package domain

import "time"

// Reservation is a booked usage slot for a court. It is created and owned by
// an external collaborator; this service only reads it and adjusts the
// outstanding balance as payments are accepted, amended, or removed.
//
// Invariant: OutstandingCents never goes negative. The persistence layer
// enforces this with a conditional debit; nothing here may bypass it.
type Reservation struct {
	ID               int64     `json:"id"`
	TotalCents       int64     `json:"total_cents"`
	OutstandingCents int64     `json:"outstanding_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Court is a playable facility, owned by an external collaborator.
// Practice relationships may only be attached to active courts.
type Court struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Discipline is a sport practiced at the facility, owned by an external
// collaborator.
type Discipline struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
