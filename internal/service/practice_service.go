package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/store"
)

// PracticeService maintains the many-to-many association between courts and
// disciplines. Each (court, discipline) pair exists at most once and carries
// a practice frequency.
type PracticeService interface {
	// Associate links a court to a discipline with the given frequency. Both
	// sides must exist and the court must be active. Fails with
	// store.ErrDuplicateAssociation if the pair is already linked.
	Associate(ctx context.Context, courtID, disciplineID int64, frequency domain.PracticeFrequency) (*domain.PracticeRelationship, error)

	// UpdateFrequency changes the frequency of an existing association.
	UpdateFrequency(ctx context.Context, courtID, disciplineID int64, frequency domain.PracticeFrequency) (*domain.PracticeRelationship, error)

	// Dissociate removes the link between a court and a discipline. The
	// court and discipline themselves are untouched.
	Dissociate(ctx context.Context, courtID, disciplineID int64) error

	// ListDisciplinesForCourt returns the disciplines practiced on a court,
	// with frequency. The court must exist; an empty list is a valid answer.
	ListDisciplinesForCourt(ctx context.Context, courtID int64) ([]*domain.PracticeListing, error)

	// ListCourtsForDiscipline returns the courts where a discipline is
	// practiced, with frequency. The discipline must exist; an empty list is
	// a valid answer.
	ListCourtsForDiscipline(ctx context.Context, disciplineID int64) ([]*domain.PracticeListing, error)
}

// PracticeServiceError wraps unexpected errors from the practice service
// with operation context.
type PracticeServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for PracticeServiceError.
func (e *PracticeServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("practice service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("practice service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PracticeServiceError) Unwrap() error {
	return e.Err
}

// practiceServiceImpl implements the PracticeService interface
type practiceServiceImpl struct {
	practices   store.PracticeStore
	courts      store.CourtStore
	disciplines store.DisciplineStore
	logger      *slog.Logger
}

// NewPracticeService creates a new PracticeService.
func NewPracticeService(
	practices store.PracticeStore,
	courts store.CourtStore,
	disciplines store.DisciplineStore,
	logger *slog.Logger,
) (PracticeService, error) {
	if practices == nil {
		return nil, &PracticeServiceError{Operation: "create_service", Message: "practices store cannot be nil"}
	}
	if courts == nil {
		return nil, &PracticeServiceError{Operation: "create_service", Message: "courts store cannot be nil"}
	}
	if disciplines == nil {
		return nil, &PracticeServiceError{Operation: "create_service", Message: "disciplines store cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &practiceServiceImpl{
		practices:   practices,
		courts:      courts,
		disciplines: disciplines,
		logger:      logger.With("component", "practice_service"),
	}, nil
}

// Associate links a court to a discipline with a practice frequency.
func (s *practiceServiceImpl) Associate(
	ctx context.Context,
	courtID, disciplineID int64,
	frequency domain.PracticeFrequency,
) (*domain.PracticeRelationship, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if !court.Active {
		return nil, fmt.Errorf("%w: court %d", ErrCourtInactive, courtID)
	}

	if _, err := s.disciplines.GetByID(ctx, disciplineID); err != nil {
		return nil, err
	}

	rel, err := domain.NewPracticeRelationship(courtID, disciplineID, frequency)
	if err != nil {
		return nil, err
	}

	if err := s.practices.Create(ctx, rel); err != nil {
		if !errors.Is(err, store.ErrDuplicate) {
			s.logger.Error("failed to create association",
				"error", err,
				"court_id", courtID,
				"discipline_id", disciplineID)
		}
		return nil, err
	}

	s.logger.Info("association created",
		"court_id", courtID,
		"discipline_id", disciplineID,
		"frequency", rel.Frequency)
	return rel, nil
}

// UpdateFrequency changes the practice frequency of an existing association.
func (s *practiceServiceImpl) UpdateFrequency(
	ctx context.Context,
	courtID, disciplineID int64,
	frequency domain.PracticeFrequency,
) (*domain.PracticeRelationship, error) {
	if !domain.ValidFrequency(frequency) {
		return nil, fmt.Errorf("%w: %q is not one of %v",
			domain.ErrInvalidFrequency, frequency, domain.Frequencies())
	}

	rel, err := s.practices.UpdateFrequency(ctx, courtID, disciplineID, frequency)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to update association frequency",
				"error", err,
				"court_id", courtID,
				"discipline_id", disciplineID)
		}
		return nil, err
	}

	s.logger.Info("association frequency updated",
		"court_id", courtID,
		"discipline_id", disciplineID,
		"frequency", frequency)
	return rel, nil
}

// Dissociate removes the association between a court and a discipline.
func (s *practiceServiceImpl) Dissociate(ctx context.Context, courtID, disciplineID int64) error {
	if err := s.practices.Delete(ctx, courtID, disciplineID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to delete association",
				"error", err,
				"court_id", courtID,
				"discipline_id", disciplineID)
		}
		return err
	}

	s.logger.Info("association deleted",
		"court_id", courtID,
		"discipline_id", disciplineID)
	return nil
}

// ListDisciplinesForCourt returns the disciplines practiced on a court.
// A court with no associations yields an empty list; only a missing court
// is an error.
func (s *practiceServiceImpl) ListDisciplinesForCourt(
	ctx context.Context,
	courtID int64,
) ([]*domain.PracticeListing, error) {
	if _, err := s.courts.GetByID(ctx, courtID); err != nil {
		return nil, err
	}

	return s.practices.ListByCourt(ctx, courtID)
}

// ListCourtsForDiscipline returns the courts where a discipline is practiced.
func (s *practiceServiceImpl) ListCourtsForDiscipline(
	ctx context.Context,
	disciplineID int64,
) ([]*domain.PracticeListing, error) {
	if _, err := s.disciplines.GetByID(ctx, disciplineID); err != nil {
		return nil, err
	}

	return s.practices.ListByDiscipline(ctx, disciplineID)
}
