package service

import (
	"context"
	"database/sql"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPaymentStore mocks the store.PaymentStore interface
type MockPaymentStore struct {
	mock.Mock
}

func (m *MockPaymentStore) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentStore) List(ctx context.Context) ([]*domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentStore) Update(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentStore) WithTx(tx *sql.Tx) store.PaymentStore {
	return m
}

// MockReservationStore mocks the store.ReservationStore interface
type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationStore) DebitOutstanding(ctx context.Context, id, amountCents int64) error {
	args := m.Called(ctx, id, amountCents)
	return args.Error(0)
}

func (m *MockReservationStore) CreditOutstanding(ctx context.Context, id, amountCents int64) error {
	args := m.Called(ctx, id, amountCents)
	return args.Error(0)
}

func (m *MockReservationStore) WithTx(tx *sql.Tx) store.ReservationStore {
	return m
}

// MockEnumStore mocks the store.EnumStore interface
type MockEnumStore struct {
	mock.Mock
}

func (m *MockEnumStore) ResolveEnumeration(ctx context.Context, name string) ([]string, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockReviewStore mocks the store.ReviewStore interface
type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewStore) FindByReservation(
	ctx context.Context,
	reservationID int64,
) ([]*domain.Review, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewStore) Update(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return m
}

// MockPracticeStore mocks the store.PracticeStore interface
type MockPracticeStore struct {
	mock.Mock
}

func (m *MockPracticeStore) Create(ctx context.Context, rel *domain.PracticeRelationship) error {
	args := m.Called(ctx, rel)
	return args.Error(0)
}

func (m *MockPracticeStore) Get(
	ctx context.Context,
	courtID, disciplineID int64,
) (*domain.PracticeRelationship, error) {
	args := m.Called(ctx, courtID, disciplineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PracticeRelationship), args.Error(1)
}

func (m *MockPracticeStore) UpdateFrequency(
	ctx context.Context,
	courtID, disciplineID int64,
	frequency domain.PracticeFrequency,
) (*domain.PracticeRelationship, error) {
	args := m.Called(ctx, courtID, disciplineID, frequency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PracticeRelationship), args.Error(1)
}

func (m *MockPracticeStore) Delete(ctx context.Context, courtID, disciplineID int64) error {
	args := m.Called(ctx, courtID, disciplineID)
	return args.Error(0)
}

func (m *MockPracticeStore) ListByCourt(
	ctx context.Context,
	courtID int64,
) ([]*domain.PracticeListing, error) {
	args := m.Called(ctx, courtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PracticeListing), args.Error(1)
}

func (m *MockPracticeStore) ListByDiscipline(
	ctx context.Context,
	disciplineID int64,
) ([]*domain.PracticeListing, error) {
	args := m.Called(ctx, disciplineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PracticeListing), args.Error(1)
}

func (m *MockPracticeStore) WithTx(tx *sql.Tx) store.PracticeStore {
	return m
}

// MockCourtStore mocks the store.CourtStore interface
type MockCourtStore struct {
	mock.Mock
}

func (m *MockCourtStore) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

// MockDisciplineStore mocks the store.DisciplineStore interface
type MockDisciplineStore struct {
	mock.Mock
}

func (m *MockDisciplineStore) GetByID(ctx context.Context, id int64) (*domain.Discipline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discipline), args.Error(1)
}
