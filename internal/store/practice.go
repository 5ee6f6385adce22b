package store

import (
	"context"
	"database/sql"

	"github.com/canchaclub/cancha-api/internal/domain"
)

// PracticeStore defines the interface for practice-relationship persistence.
// A relationship's identity is the composite (court, discipline) pair.
type PracticeStore interface {
	// Create saves a new practice relationship.
	// Returns ErrDuplicateAssociation if the pair is already associated
	// (backed by the table's composite primary key, so this holds under
	// concurrent creates).
	Create(ctx context.Context, rel *domain.PracticeRelationship) error

	// Get retrieves the relationship for a (court, discipline) pair.
	// Returns ErrAssociationNotFound if no such relationship exists.
	Get(ctx context.Context, courtID, disciplineID int64) (*domain.PracticeRelationship, error)

	// UpdateFrequency changes the frequency category of an existing
	// relationship and returns the updated row, so callers need no follow-up
	// read that could race a concurrent delete. Returns
	// ErrAssociationNotFound if the pair is not associated.
	UpdateFrequency(
		ctx context.Context,
		courtID, disciplineID int64,
		frequency domain.PracticeFrequency,
	) (*domain.PracticeRelationship, error)

	// Delete removes the relationship for a (court, discipline) pair.
	// Returns ErrAssociationNotFound if the pair is not associated.
	Delete(ctx context.Context, courtID, disciplineID int64) error

	// ListByCourt retrieves the disciplines practiced on a court, joined
	// with their names. An empty slice is a valid result.
	ListByCourt(ctx context.Context, courtID int64) ([]*domain.PracticeListing, error)

	// ListByDiscipline retrieves the courts a discipline is practiced on,
	// joined with their names. An empty slice is a valid result.
	ListByDiscipline(ctx context.Context, disciplineID int64) ([]*domain.PracticeListing, error)

	// WithTx returns a new PracticeStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) PracticeStore
}

// CourtStore provides read-only lookups on the externally owned courts table.
type CourtStore interface {
	// GetByID retrieves a court by its ID.
	// Returns ErrCourtNotFound if the court does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// DisciplineStore provides read-only lookups on the externally owned
// disciplines table.
type DisciplineStore interface {
	// GetByID retrieves a discipline by its ID.
	// Returns ErrDisciplineNotFound if the discipline does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Discipline, error)
}
