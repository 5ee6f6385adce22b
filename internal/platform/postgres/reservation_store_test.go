package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/canchaclub/cancha-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func reservationRows(id, total, outstanding int64) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(
		[]string{"id", "total_cents", "outstanding_cents", "status", "created_at", "updated_at"},
	).AddRow(id, total, outstanding, "confirmed", now, now)
}

func TestReservationStore_GetByID(t *testing.T) {
	db, mock := newMockStore(t)
	s := NewPostgresReservationStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations")).
		WithArgs(int64(42)).
		WillReturnRows(reservationRows(42, 10000, 2500))

	reservation, err := s.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), reservation.ID)
	assert.Equal(t, int64(10000), reservation.TotalCents)
	assert.Equal(t, int64(2500), reservation.OutstandingCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationStore_GetByID_NotFound(t *testing.T) {
	db, mock := newMockStore(t)
	s := NewPostgresReservationStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrReservationNotFound)
}

func TestReservationStore_DebitOutstanding(t *testing.T) {
	db, mock := newMockStore(t)
	s := NewPostgresReservationStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("outstanding_cents = outstanding_cents - $1")).
		WithArgs(int64(500), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.DebitOutstanding(context.Background(), 42, 500)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationStore_DebitOutstanding_InsufficientBalance(t *testing.T) {
	db, mock := newMockStore(t)
	s := NewPostgresReservationStore(db, nil)

	// The conditional update matches no row, and the follow-up read shows
	// the reservation exists with a balance below the amount.
	mock.ExpectExec(regexp.QuoteMeta("outstanding_cents = outstanding_cents - $1")).
		WithArgs(int64(5000), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations")).
		WithArgs(int64(42)).
		WillReturnRows(reservationRows(42, 10000, 2500))

	err := s.DebitOutstanding(context.Background(), 42, 5000)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "5000")
	assert.Contains(t, err.Error(), "2500")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationStore_DebitOutstanding_ReservationMissing(t *testing.T) {
	db, mock := newMockStore(t)
	s := NewPostgresReservationStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("outstanding_cents = outstanding_cents - $1")).
		WithArgs(int64(500), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	err := s.DebitOutstanding(context.Background(), 99, 500)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrReservationNotFound)
	assert.NotErrorIs(t, err, store.ErrInsufficientBalance)
}

func TestReservationStore_DebitOutstanding_NonPositiveAmount(t *testing.T) {
	db, _ := newMockStore(t)
	s := NewPostgresReservationStore(db, nil)

	for _, amount := range []int64{0, -10} {
		err := s.DebitOutstanding(context.Background(), 42, amount)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	}
}

func TestReservationStore_CreditOutstanding(t *testing.T) {
	db, mock := newMockStore(t)
	s := NewPostgresReservationStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("LEAST(outstanding_cents + $1, total_cents)")).
		WithArgs(int64(500), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.CreditOutstanding(context.Background(), 42, 500)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationStore_CreditOutstanding_NotFound(t *testing.T) {
	db, mock := newMockStore(t)
	s := NewPostgresReservationStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("LEAST(outstanding_cents + $1, total_cents)")).
		WithArgs(int64(500), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.CreditOutstanding(context.Background(), 99, 500)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrReservationNotFound)
}
