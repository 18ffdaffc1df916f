package cashoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	request := &domain.CashoutRequest{
		RiderEmail:  "rider@example.com",
		Amount:      740.5,
		Status:      domain.CashoutPending,
		RequestDate: requestedAt,
	}

	t.Run("Request saved", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cashout_requests")).
			WithArgs("rider@example.com", 740.5, domain.CashoutPending, requestedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))

		result, err := repo.Create(context.Background(), request)
		assert.NoError(t, err)
		assert.Equal(t, 9, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cashout_requests")).
			WithArgs("rider@example.com", 740.5, domain.CashoutPending, requestedAt).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), request)
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Request found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "rider_email", "amount", "status", "request_date", "approved_date"}).
			AddRow(9, "rider@example.com", 740.5, domain.CashoutPending, requestedAt, (*time.Time)(nil))
		mock.ExpectQuery(regexp.QuoteMeta("FROM cashout_requests")).
			WithArgs(9).
			WillReturnRows(rows)

		req, err := repo.FindByID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Equal(t, 740.5, req.Amount)
		assert.Nil(t, req.ApprovedDate)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM cashout_requests")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		req, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, req)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	approvedAt := requestedAt.Add(24 * time.Hour)

	t.Run("Pending first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "rider_email", "amount", "status", "request_date", "approved_date"}).
			AddRow(9, "rider@example.com", 740.5, domain.CashoutPending, requestedAt, (*time.Time)(nil)).
			AddRow(7, "other@example.com", 500.0, domain.CashoutSuccess, requestedAt, &approvedAt)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY (status = 'pending') DESC")).
			WithArgs(10, 0).
			WillReturnRows(rows)

		requests, err := repo.List(context.Background(), 10, 0)
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
		assert.Equal(t, domain.CashoutPending, requests[0].Status)
		assert.NotNil(t, requests[1].ApprovedDate)
	})

	t.Run("Count", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM cashout_requests")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		total, err := repo.Count(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestRepository_Approve(t *testing.T) {
	repo, mock := NewMock(t)
	approvedAt := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Pending request approved", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cashout_requests")).
			WithArgs(approvedAt, 9).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		affected, err := repo.Approve(context.Background(), 9, approvedAt)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("Repeat approval affects nothing", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cashout_requests")).
			WithArgs(approvedAt, 9).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		affected, err := repo.Approve(context.Background(), 9, approvedAt)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}
