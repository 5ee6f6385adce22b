package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/canchaclub/cancha-api/internal/platform/logger"
	"github.com/canchaclub/cancha-api/internal/store"
)

// PostgresEnumStore implements the store.EnumStore interface by reading the
// catalog tables pg_type and pg_enum. Every call is a live schema read:
// a migration that adds or removes enum labels is visible on the next call,
// so validators never drift from the database's source of truth. The
// per-request cost is a single indexed catalog query; deliberately no cache.
type PostgresEnumStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEnumStore creates a new PostgreSQL implementation of the
// EnumStore interface.
func NewPostgresEnumStore(db store.DBTX, logger *slog.Logger) *PostgresEnumStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEnumStore{
		db:     db,
		logger: logger.With(slog.String("component", "enum_store")),
	}
}

// Ensure PostgresEnumStore implements store.EnumStore interface
var _ store.EnumStore = (*PostgresEnumStore)(nil)

// ResolveEnumeration implements store.EnumStore.ResolveEnumeration
// Labels come back in the enum's declared order (enumsortorder).
// Returns store.ErrEnumTypeNotFound if the schema defines no such type.
func (s *PostgresEnumStore) ResolveEnumeration(ctx context.Context, name string) ([]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT e.enumlabel
		FROM pg_type t
		JOIN pg_enum e ON e.enumtypid = t.oid
		WHERE t.typname = $1
		ORDER BY e.enumsortorder
	`

	rows, err := s.db.QueryContext(ctx, query, name)
	if err != nil {
		log.Error("failed to query enumeration labels",
			slog.String("error", err.Error()),
			slog.String("enum_type", name))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var values []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			log.Error("failed to scan enum label", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		values = append(values, label)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Zero labels is ambiguous: the type may be missing, or it may be
	// declared with an empty label set, which Postgres permits. Only a
	// missing type is an error.
	if len(values) == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM pg_type WHERE typname = $1)`
		if err := s.db.QueryRowContext(ctx, checkQuery, name).Scan(&exists); err != nil {
			log.Error("failed to check enumeration type existence",
				slog.String("error", err.Error()),
				slog.String("enum_type", name))
			return nil, MapError(err)
		}
		if !exists {
			log.Error("enumeration type not defined in schema",
				slog.String("enum_type", name))
			return nil, fmt.Errorf("%w: %s", store.ErrEnumTypeNotFound, name)
		}
		return []string{}, nil
	}

	return values, nil
}
