package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/platform/logger"
	"github.com/canchaclub/cancha-api/internal/store"
)

// PostgresCatalogStore provides the read-only lookups on the externally
// owned courts and disciplines tables. It implements both store.CourtStore
// and store.DisciplineStore.
type PostgresCatalogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCatalogStore creates a new PostgreSQL catalog store.
func NewPostgresCatalogStore(db store.DBTX, logger *slog.Logger) *PostgresCatalogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCatalogStore{
		db:     db,
		logger: logger.With(slog.String("component", "catalog_store")),
	}
}

var (
	_ store.CourtStore      = (*PostgresCatalogStore)(nil)
	_ store.DisciplineStore = disciplineView{}
)

// GetByID implements store.CourtStore.GetByID via GetCourt; the interface
// split keeps service dependencies narrow while one type serves both.
func (s *PostgresCatalogStore) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	return s.GetCourt(ctx, id)
}

// GetCourt retrieves a court by its ID.
// Returns store.ErrCourtNotFound if the court does not exist.
func (s *PostgresCatalogStore) GetCourt(ctx context.Context, id int64) (*domain.Court, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var court domain.Court
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, active FROM courts WHERE id = $1`,
		id,
	).Scan(&court.ID, &court.Name, &court.Active)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCourtNotFound
		}
		log.Error("failed to get court by ID",
			slog.String("error", err.Error()),
			slog.Int64("court_id", id))
		return nil, MapError(err)
	}

	return &court, nil
}

// Disciplines returns a store.DisciplineStore view over the same catalog.
func (s *PostgresCatalogStore) Disciplines() store.DisciplineStore {
	return disciplineView{s}
}

// disciplineView adapts the catalog store to store.DisciplineStore so both
// GetByID methods can coexist.
type disciplineView struct {
	catalog *PostgresCatalogStore
}

// GetByID retrieves a discipline by its ID.
// Returns store.ErrDisciplineNotFound if the discipline does not exist.
func (v disciplineView) GetByID(ctx context.Context, id int64) (*domain.Discipline, error) {
	s := v.catalog
	log := logger.FromContextOrDefault(ctx, s.logger)

	var discipline domain.Discipline
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name FROM disciplines WHERE id = $1`,
		id,
	).Scan(&discipline.ID, &discipline.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDisciplineNotFound
		}
		log.Error("failed to get discipline by ID",
			slog.String("error", err.Error()),
			slog.Int64("discipline_id", id))
		return nil, MapError(err)
	}

	return &discipline, nil
}
