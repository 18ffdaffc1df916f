package repo

import (
	"testing"

	cashoutrepo "github.com/dakbox/courier/internal/repo/cashout-repo"
	parcelrepo "github.com/dakbox/courier/internal/repo/parcel-repo"
	paymentrepo "github.com/dakbox/courier/internal/repo/payment-repo"
	reviewrepo "github.com/dakbox/courier/internal/repo/review-repo"
	riderapprepo "github.com/dakbox/courier/internal/repo/riderapp-repo"
	trackingrepo "github.com/dakbox/courier/internal/repo/tracking-repo"
	userrepo "github.com/dakbox/courier/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ParcelRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.TrackingRepo)
	assert.NotNil(t, repo.RiderAppRepo)
	assert.NotNil(t, repo.CashoutRepo)
	assert.NotNil(t, repo.ReviewRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &parcelrepo.Repository{}, repo.ParcelRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &trackingrepo.Repository{}, repo.TrackingRepo)
	assert.IsType(t, &riderapprepo.Repository{}, repo.RiderAppRepo)
	assert.IsType(t, &cashoutrepo.Repository{}, repo.CashoutRepo)
	assert.IsType(t, &reviewrepo.Repository{}, repo.ReviewRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
