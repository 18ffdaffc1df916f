package dashboardservice

import (
	"context"

	"github.com/dakbox/courier/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	bookingDaysLimit = 15
	districtsLimit   = 8
)

type ParcelStats interface {
	CountAll(ctx context.Context) (int, error)
	CountByStatusValue(ctx context.Context, status string) (int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountBookingsByDay(ctx context.Context, limit int) ([]domain.DayCount, error)
	CountByDistrict(ctx context.Context, limit int) ([]domain.DistrictCount, error)
}

type UserStats interface {
	CountAll(ctx context.Context) (int, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

type PaymentStats interface {
	SumAmounts(ctx context.Context) (float64, error)
}

type Service struct {
	parcels  ParcelStats
	users    UserStats
	payments PaymentStats
}

func New(parcels ParcelStats, users UserStats, payments PaymentStats) *Service {
	return &Service{
		parcels:  parcels,
		users:    users,
		payments: payments,
	}
}

// Stats gathers the admin dashboard numbers. The aggregates are independent
// reads, so they run concurrently.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalParcels, err = s.parcels.CountAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalDelivered, err = s.parcels.CountByStatusValue(ctx, domain.ParcelDelivered)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalUsers, err = s.users.CountAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalRiders, err = s.users.CountByRole(ctx, domain.RoleRider)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalRevenue, err = s.payments.SumAmounts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.BookingsByDay, err = s.parcels.CountBookingsByDay(ctx, bookingDaysLimit)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ParcelsByDistrict, err = s.parcels.CountByDistrict(ctx, districtsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		stats.StatusBreakdown, err = s.parcels.CountByStatus(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to gather dashboard stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
