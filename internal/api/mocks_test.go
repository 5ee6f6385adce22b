package api

import (
	"context"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPaymentService mocks the service.PaymentService interface
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(
	ctx context.Context,
	input service.RecordPaymentInput,
) (*domain.Payment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) AmendPayment(
	ctx context.Context,
	id uuid.UUID,
	input service.AmendPaymentInput,
) (*domain.Payment, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) RemovePayment(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetReservationBalance(
	ctx context.Context,
	reservationID int64,
) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockPaymentService) ListPaymentMethods(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPaymentService) ListPaymentStatuses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockReviewService mocks the service.ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(
	ctx context.Context,
	input service.CreateReviewInput,
) (*domain.Review, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) UpdateReview(
	ctx context.Context,
	id uuid.UUID,
	input service.UpdateReviewInput,
) (*domain.Review, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewService) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) ListReviewsByReservation(
	ctx context.Context,
	reservationID int64,
) ([]*domain.Review, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

// MockPracticeService mocks the service.PracticeService interface
type MockPracticeService struct {
	mock.Mock
}

func (m *MockPracticeService) Associate(
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

func (m *MockPracticeService) UpdateFrequency(
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

func (m *MockPracticeService) Dissociate(ctx context.Context, courtID, disciplineID int64) error {
	args := m.Called(ctx, courtID, disciplineID)
	return args.Error(0)
}

func (m *MockPracticeService) ListDisciplinesForCourt(
	ctx context.Context,
	courtID int64,
) ([]*domain.PracticeListing, error) {
	args := m.Called(ctx, courtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PracticeListing), args.Error(1)
}

func (m *MockPracticeService) ListCourtsForDiscipline(
	ctx context.Context,
	disciplineID int64,
) ([]*domain.PracticeListing, error) {
	args := m.Called(ctx, disciplineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PracticeListing), args.Error(1)
}
