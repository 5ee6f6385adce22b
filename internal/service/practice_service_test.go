package service

import (
	"context"
	"testing"

	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPracticeServiceForTest(
	t *testing.T,
) (PracticeService, *MockPracticeStore, *MockCourtStore, *MockDisciplineStore) {
	t.Helper()

	practices := new(MockPracticeStore)
	courts := new(MockCourtStore)
	disciplines := new(MockDisciplineStore)

	svc, err := NewPracticeService(practices, courts, disciplines, nil)
	require.NoError(t, err)

	return svc, practices, courts, disciplines
}

func activeCourt(id int64) *domain.Court {
	return &domain.Court{ID: id, Name: "Cancha Central", Active: true}
}

func TestAssociate_Success(t *testing.T) {
	svc, practices, courts, disciplines := newPracticeServiceForTest(t)

	courts.On("GetByID", mock.Anything, int64(1)).Return(activeCourt(1), nil)
	disciplines.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Discipline{ID: 2, Name: "Pádel"}, nil)
	practices.On("Create", mock.Anything, mock.AnythingOfType("*domain.PracticeRelationship")).
		Return(nil)

	rel, err := svc.Associate(context.Background(), 1, 2, domain.FrequencyWeekly)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rel.CourtID)
	assert.Equal(t, int64(2), rel.DisciplineID)
	assert.Equal(t, domain.FrequencyWeekly, rel.Frequency)
	practices.AssertExpectations(t)
}

func TestAssociate_DuplicatePair(t *testing.T) {
	svc, practices, courts, disciplines := newPracticeServiceForTest(t)

	courts.On("GetByID", mock.Anything, int64(1)).Return(activeCourt(1), nil)
	disciplines.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Discipline{ID: 2, Name: "Pádel"}, nil)
	practices.On("Create", mock.Anything, mock.AnythingOfType("*domain.PracticeRelationship")).
		Return(store.ErrDuplicateAssociation)

	_, err := svc.Associate(context.Background(), 1, 2, domain.FrequencyDaily)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestAssociate_CourtNotFound(t *testing.T) {
	svc, practices, courts, _ := newPracticeServiceForTest(t)

	courts.On("GetByID", mock.Anything, int64(99)).Return(nil, store.ErrCourtNotFound)

	_, err := svc.Associate(context.Background(), 99, 2, domain.FrequencyDaily)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCourtNotFound)
	practices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssociate_InactiveCourt(t *testing.T) {
	svc, practices, courts, _ := newPracticeServiceForTest(t)

	courts.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Court{ID: 1, Name: "Cancha Vieja", Active: false}, nil)

	_, err := svc.Associate(context.Background(), 1, 2, domain.FrequencyDaily)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCourtInactive)
	practices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssociate_DisciplineNotFound(t *testing.T) {
	svc, practices, courts, disciplines := newPracticeServiceForTest(t)

	courts.On("GetByID", mock.Anything, int64(1)).Return(activeCourt(1), nil)
	disciplines.On("GetByID", mock.Anything, int64(99)).
		Return(nil, store.ErrDisciplineNotFound)

	_, err := svc.Associate(context.Background(), 1, 99, domain.FrequencyDaily)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDisciplineNotFound)
	practices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssociate_InvalidFrequency(t *testing.T) {
	svc, practices, courts, disciplines := newPracticeServiceForTest(t)

	courts.On("GetByID", mock.Anything, int64(1)).Return(activeCourt(1), nil)
	disciplines.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Discipline{ID: 2, Name: "Pádel"}, nil)

	_, err := svc.Associate(context.Background(), 1, 2, domain.PracticeFrequency("hourly"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
	practices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateFrequency_Success(t *testing.T) {
	svc, practices, _, _ := newPracticeServiceForTest(t)

	practices.On("UpdateFrequency", mock.Anything, int64(1), int64(2), domain.FrequencyMonthly).
		Return(&domain.PracticeRelationship{
			CourtID:      1,
			DisciplineID: 2,
			Frequency:    domain.FrequencyMonthly,
		}, nil)

	rel, err := svc.UpdateFrequency(context.Background(), 1, 2, domain.FrequencyMonthly)

	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyMonthly, rel.Frequency)
	// The updated row comes back from the store in one statement; no
	// follow-up read that a concurrent dissociate could invalidate.
	practices.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateFrequency_InvalidValue(t *testing.T) {
	svc, practices, _, _ := newPracticeServiceForTest(t)

	_, err := svc.UpdateFrequency(context.Background(), 1, 2, domain.PracticeFrequency("yearly"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
	practices.AssertNotCalled(t, "UpdateFrequency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateFrequency_AssociationNotFound(t *testing.T) {
	svc, practices, _, _ := newPracticeServiceForTest(t)

	practices.On("UpdateFrequency", mock.Anything, int64(1), int64(2), domain.FrequencyDaily).
		Return(nil, store.ErrAssociationNotFound)

	_, err := svc.UpdateFrequency(context.Background(), 1, 2, domain.FrequencyDaily)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDissociate_Success(t *testing.T) {
	svc, practices, _, _ := newPracticeServiceForTest(t)

	practices.On("Delete", mock.Anything, int64(1), int64(2)).Return(nil)

	require.NoError(t, svc.Dissociate(context.Background(), 1, 2))
	practices.AssertExpectations(t)
}

func TestDissociate_NotFound(t *testing.T) {
	svc, practices, _, _ := newPracticeServiceForTest(t)

	practices.On("Delete", mock.Anything, int64(1), int64(2)).
		Return(store.ErrAssociationNotFound)

	err := svc.Dissociate(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrAssociationNotFound)
}

func TestListDisciplinesForCourt_EmptyIsNotAnError(t *testing.T) {
	svc, practices, courts, _ := newPracticeServiceForTest(t)

	courts.On("GetByID", mock.Anything, int64(1)).Return(activeCourt(1), nil)
	practices.On("ListByCourt", mock.Anything, int64(1)).
		Return([]*domain.PracticeListing{}, nil)

	result, err := svc.ListDisciplinesForCourt(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestListDisciplinesForCourt_CourtNotFound(t *testing.T) {
	svc, practices, courts, _ := newPracticeServiceForTest(t)

	courts.On("GetByID", mock.Anything, int64(99)).Return(nil, store.ErrCourtNotFound)

	_, err := svc.ListDisciplinesForCourt(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCourtNotFound)
	practices.AssertNotCalled(t, "ListByCourt", mock.Anything, mock.Anything)
}

func TestListCourtsForDiscipline(t *testing.T) {
	svc, practices, _, disciplines := newPracticeServiceForTest(t)

	disciplines.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Discipline{ID: 2, Name: "Pádel"}, nil)
	practices.On("ListByDiscipline", mock.Anything, int64(2)).
		Return([]*domain.PracticeListing{
			{CourtID: 1, CourtName: "Cancha Central", DisciplineID: 2, DisciplineName: "Pádel", Frequency: domain.FrequencyWeekly},
		}, nil)

	result, err := svc.ListCourtsForDiscipline(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Cancha Central", result[0].CourtName)
}

func TestListCourtsForDiscipline_NotFound(t *testing.T) {
	svc, practices, _, disciplines := newPracticeServiceForTest(t)

	disciplines.On("GetByID", mock.Anything, int64(99)).
		Return(nil, store.ErrDisciplineNotFound)

	_, err := svc.ListCourtsForDiscipline(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDisciplineNotFound)
	practices.AssertNotCalled(t, "ListByDiscipline", mock.Anything, mock.Anything)
}
