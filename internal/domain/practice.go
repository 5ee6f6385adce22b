package domain

import (
	"errors"
	"time"
)

// PracticeFrequency categorizes how often a discipline is practiced on a
// court. Unlike payment method and status, this set is fixed by the domain
// itself and does not come from the schema.
type PracticeFrequency string

// Recognized practice frequencies.
const (
	FrequencyDaily   PracticeFrequency = "Daily"
	FrequencyWeekly  PracticeFrequency = "Weekly"
	FrequencyMonthly PracticeFrequency = "Monthly"
)

// Common validation errors for PracticeRelationship
var (
	ErrEmptyCourtRef      = errors.New("court reference cannot be empty")
	ErrEmptyDisciplineRef = errors.New("discipline reference cannot be empty")
)

// PracticeRelationship links a court to a discipline practiced on it, tagged
// with how often that practice occurs. Its identity is the composite
// (CourtID, DisciplineID) pair; at most one relationship may exist per pair.
type PracticeRelationship struct {
	CourtID      int64             `json:"court_id"`
	DisciplineID int64             `json:"discipline_id"`
	Frequency    PracticeFrequency `json:"frequency"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewPracticeRelationship creates a validated PracticeRelationship.
func NewPracticeRelationship(
	courtID, disciplineID int64,
	frequency PracticeFrequency,
) (*PracticeRelationship, error) {
	rel := &PracticeRelationship{
		CourtID:      courtID,
		DisciplineID: disciplineID,
		Frequency:    frequency,
		CreatedAt:    time.Now().UTC(),
	}

	if err := rel.Validate(); err != nil {
		return nil, err
	}

	return rel, nil
}

// Validate checks if the PracticeRelationship has valid data.
func (p *PracticeRelationship) Validate() error {
	if p.CourtID <= 0 {
		return ErrEmptyCourtRef
	}

	if p.DisciplineID <= 0 {
		return ErrEmptyDisciplineRef
	}

	if !ValidFrequency(p.Frequency) {
		return ErrInvalidFrequency
	}

	return nil
}

// ValidFrequency checks if the given frequency is a recognized category.
func ValidFrequency(f PracticeFrequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// Frequencies returns the closed set of recognized practice frequencies,
// in display order.
func Frequencies() []PracticeFrequency {
	return []PracticeFrequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}
}

// PracticeListing is the read-only join row returned by the relationship
// listings: the relationship plus the names of both referenced entities.
type PracticeListing struct {
	CourtID        int64             `json:"court_id"`
	CourtName      string            `json:"court_name"`
	DisciplineID   int64             `json:"discipline_id"`
	DisciplineName string            `json:"discipline_name"`
	Frequency      PracticeFrequency `json:"frequency"`
}
