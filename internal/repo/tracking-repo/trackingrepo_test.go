package trackingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dakbox/courier/internal/domain"
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

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	eventTime := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	update := &domain.TrackingUpdate{
		TracingID: "123456789012",
		Status:    domain.ParcelInTransit,
		Message:   "Parcel left the sorting hub",
		EventTime: eventTime,
	}

	t.Run("Event appended", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tracking_updates")).
			WithArgs("123456789012", domain.ParcelInTransit, "Parcel left the sorting hub", eventTime).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

		err := repo.Append(context.Background(), update)
		assert.NoError(t, err)
		assert.Equal(t, 5, update.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tracking_updates")).
			WithArgs("123456789012", domain.ParcelInTransit, "Parcel left the sorting hub", eventTime).
			WillReturnError(errors.New("database error"))

		err := repo.Append(context.Background(), update)
		assert.Error(t, err)
	})
}

func TestRepository_FindByTracingID(t *testing.T) {
	repo, mock := NewMock(t)
	eventTime := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Events in order", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "tracing_id", "status", "message", "event_time"}).
			AddRow(1, "123456789012", domain.ParcelPaid, "Payment confirmed", eventTime).
			AddRow(2, "123456789012", domain.ParcelAssigned, "Rider assigned", eventTime.Add(time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("FROM tracking_updates")).
			WithArgs("123456789012").
			WillReturnRows(rows)

		updates, err := repo.FindByTracingID(context.Background(), "123456789012")
		assert.NoError(t, err)
		assert.Len(t, updates, 2)
		assert.Equal(t, domain.ParcelAssigned, updates[1].Status)
	})

	t.Run("No events", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM tracking_updates")).
			WithArgs("999999999999").
			WillReturnRows(pgxmock.NewRows([]string{"id", "tracing_id", "status", "message", "event_time"}))

		updates, err := repo.FindByTracingID(context.Background(), "999999999999")
		assert.NoError(t, err)
		assert.Empty(t, updates)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM tracking_updates")).
			WithArgs("123456789012").
			WillReturnError(errors.New("database error"))

		_, err := repo.FindByTracingID(context.Background(), "123456789012")
		assert.Error(t, err)
	})
}
