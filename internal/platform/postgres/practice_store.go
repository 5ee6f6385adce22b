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

// PostgresPracticeStore implements the store.PracticeStore interface
// using a PostgreSQL database as the storage backend. The composite primary
// key on (court_id, discipline_id) backs the one-association-per-pair
// invariant.
type PostgresPracticeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPracticeStore creates a new PostgreSQL implementation of the
// PracticeStore interface.
func NewPostgresPracticeStore(db store.DBTX, logger *slog.Logger) *PostgresPracticeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPracticeStore{
		db:     db,
		logger: logger.With(slog.String("component", "practice_store")),
	}
}

// Ensure PostgresPracticeStore implements store.PracticeStore interface
var _ store.PracticeStore = (*PostgresPracticeStore)(nil)

// WithTx implements store.PracticeStore.WithTx
func (s *PostgresPracticeStore) WithTx(tx *sql.Tx) store.PracticeStore {
	return &PostgresPracticeStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PracticeStore.Create
// A primary key violation maps to store.ErrDuplicateAssociation.
func (s *PostgresPracticeStore) Create(ctx context.Context, rel *domain.PracticeRelationship) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rel.Validate(); err != nil {
		log.Warn("practice relationship validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("court_id", rel.CourtID),
			slog.Int64("discipline_id", rel.DisciplineID))
		return err
	}

	query := `
		INSERT INTO court_disciplines (court_id, discipline_id, frequency, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, rel.CourtID, rel.DisciplineID, rel.Frequency, rel.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate association rejected",
				slog.Int64("court_id", rel.CourtID),
				slog.Int64("discipline_id", rel.DisciplineID))
			return fmt.Errorf("%w: court %d, discipline %d",
				store.ErrDuplicateAssociation, rel.CourtID, rel.DisciplineID)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: court %d or discipline %d",
				store.ErrNotFound, rel.CourtID, rel.DisciplineID)
		}

		log.Error("failed to create practice relationship",
			slog.String("error", err.Error()),
			slog.Int64("court_id", rel.CourtID),
			slog.Int64("discipline_id", rel.DisciplineID))
		return MapError(err)
	}

	log.Info("practice relationship created",
		slog.Int64("court_id", rel.CourtID),
		slog.Int64("discipline_id", rel.DisciplineID),
		slog.String("frequency", string(rel.Frequency)))
	return nil
}

// Get implements store.PracticeStore.Get
// Returns store.ErrAssociationNotFound if the pair is not associated.
func (s *PostgresPracticeStore) Get(
	ctx context.Context,
	courtID, disciplineID int64,
) (*domain.PracticeRelationship, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT court_id, discipline_id, frequency, created_at
		FROM court_disciplines
		WHERE court_id = $1 AND discipline_id = $2
	`

	var rel domain.PracticeRelationship
	err := s.db.QueryRowContext(ctx, query, courtID, disciplineID).Scan(
		&rel.CourtID,
		&rel.DisciplineID,
		&rel.Frequency,
		&rel.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAssociationNotFound
		}
		log.Error("failed to get practice relationship",
			slog.String("error", err.Error()),
			slog.Int64("court_id", courtID),
			slog.Int64("discipline_id", disciplineID))
		return nil, MapError(err)
	}

	return &rel, nil
}

// UpdateFrequency implements store.PracticeStore.UpdateFrequency
// The update and the read of the resulting row are one statement, so a
// concurrent delete cannot slip between them.
// Returns store.ErrAssociationNotFound if the pair is not associated.
func (s *PostgresPracticeStore) UpdateFrequency(
	ctx context.Context,
	courtID, disciplineID int64,
	frequency domain.PracticeFrequency,
) (*domain.PracticeRelationship, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.ValidFrequency(frequency) {
		return nil, domain.ErrInvalidFrequency
	}

	query := `
		UPDATE court_disciplines
		SET frequency = $1
		WHERE court_id = $2 AND discipline_id = $3
		RETURNING court_id, discipline_id, frequency, created_at
	`

	var rel domain.PracticeRelationship
	err := s.db.QueryRowContext(ctx, query, frequency, courtID, disciplineID).Scan(
		&rel.CourtID,
		&rel.DisciplineID,
		&rel.Frequency,
		&rel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: court %d, discipline %d",
				store.ErrAssociationNotFound, courtID, disciplineID)
		}
		log.Error("failed to update practice frequency",
			slog.String("error", err.Error()),
			slog.Int64("court_id", courtID),
			slog.Int64("discipline_id", disciplineID))
		return nil, MapError(err)
	}

	log.Info("practice frequency updated",
		slog.Int64("court_id", courtID),
		slog.Int64("discipline_id", disciplineID),
		slog.String("frequency", string(frequency)))
	return &rel, nil
}

// Delete implements store.PracticeStore.Delete
// Returns store.ErrAssociationNotFound if the pair is not associated.
func (s *PostgresPracticeStore) Delete(ctx context.Context, courtID, disciplineID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM court_disciplines WHERE court_id = $1 AND discipline_id = $2`,
		courtID,
		disciplineID,
	)
	if err != nil {
		log.Error("failed to delete practice relationship",
			slog.String("error", err.Error()),
			slog.Int64("court_id", courtID),
			slog.Int64("discipline_id", disciplineID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAssociationNotFound); err != nil {
		return err
	}

	log.Info("practice relationship deleted",
		slog.Int64("court_id", courtID),
		slog.Int64("discipline_id", disciplineID))
	return nil
}

// ListByCourt implements store.PracticeStore.ListByCourt
func (s *PostgresPracticeStore) ListByCourt(
	ctx context.Context,
	courtID int64,
) ([]*domain.PracticeListing, error) {
	query := `
		SELECT cd.court_id, c.name, cd.discipline_id, d.name, cd.frequency
		FROM court_disciplines cd
		JOIN courts c ON c.id = cd.court_id
		JOIN disciplines d ON d.id = cd.discipline_id
		WHERE cd.court_id = $1
		ORDER BY d.name
	`
	return s.queryListings(ctx, query, courtID)
}

// ListByDiscipline implements store.PracticeStore.ListByDiscipline
func (s *PostgresPracticeStore) ListByDiscipline(
	ctx context.Context,
	disciplineID int64,
) ([]*domain.PracticeListing, error) {
	query := `
		SELECT cd.court_id, c.name, cd.discipline_id, d.name, cd.frequency
		FROM court_disciplines cd
		JOIN courts c ON c.id = cd.court_id
		JOIN disciplines d ON d.id = cd.discipline_id
		WHERE cd.discipline_id = $1
		ORDER BY c.name
	`
	return s.queryListings(ctx, query, disciplineID)
}

// queryListings runs a listing join and scans its rows.
func (s *PostgresPracticeStore) queryListings(
	ctx context.Context,
	query string,
	arg int64,
) ([]*domain.PracticeListing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Error("failed to query practice listings", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var listings []*domain.PracticeListing
	for rows.Next() {
		var l domain.PracticeListing
		err := rows.Scan(&l.CourtID, &l.CourtName, &l.DisciplineID, &l.DisciplineName, &l.Frequency)
		if err != nil {
			log.Error("failed to scan practice listing row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		listings = append(listings, &l)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if listings == nil {
		listings = []*domain.PracticeListing{}
	}

	return listings, nil
}
