package repo

import (
	"github.com/dakbox/courier/internal/pg"
	cashoutrepo "github.com/dakbox/courier/internal/repo/cashout-repo"
	parcelrepo "github.com/dakbox/courier/internal/repo/parcel-repo"
	paymentrepo "github.com/dakbox/courier/internal/repo/payment-repo"
	reviewrepo "github.com/dakbox/courier/internal/repo/review-repo"
	riderapprepo "github.com/dakbox/courier/internal/repo/riderapp-repo"
	trackingrepo "github.com/dakbox/courier/internal/repo/tracking-repo"
	userrepo "github.com/dakbox/courier/internal/repo/user-repo"
)

// Repositories holds the concrete repos. Several services consume the same
// repo through their own narrow interfaces, so the concrete types stay here.
type Repositories struct {
	UserRepo     *userrepo.Repository
	ParcelRepo   *parcelrepo.Repository
	PaymentRepo  *paymentrepo.Repository
	TrackingRepo *trackingrepo.Repository
	RiderAppRepo *riderapprepo.Repository
	CashoutRepo  *cashoutrepo.Repository
	ReviewRepo   *reviewrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		ParcelRepo:   parcelrepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn),
		TrackingRepo: trackingrepo.New(conn),
		RiderAppRepo: riderapprepo.New(conn),
		CashoutRepo:  cashoutrepo.New(conn),
		ReviewRepo:   reviewrepo.New(conn),
	}
}
