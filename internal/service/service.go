package service

import (
	"github.com/dakbox/courier/internal/handlers/cashouts"
	"github.com/dakbox/courier/internal/handlers/dashboard"
	"github.com/dakbox/courier/internal/handlers/parcels"
	"github.com/dakbox/courier/internal/handlers/payments"
	"github.com/dakbox/courier/internal/handlers/reviews"
	"github.com/dakbox/courier/internal/handlers/riders"
	"github.com/dakbox/courier/internal/handlers/users"

	"github.com/dakbox/courier/internal/pg"
	"github.com/dakbox/courier/internal/repo"
	"github.com/dakbox/courier/internal/service/cashoutservice"
	"github.com/dakbox/courier/internal/service/dashboardservice"
	"github.com/dakbox/courier/internal/service/parcelservice"
	"github.com/dakbox/courier/internal/service/paymentservice"
	"github.com/dakbox/courier/internal/service/reviewservice"
	"github.com/dakbox/courier/internal/service/riderservice"
	"github.com/dakbox/courier/internal/service/userservice"
	"github.com/dakbox/courier/pkg/auth"
)

type Services struct {
	UserService      users.Service
	ParcelService    parcels.Service
	PaymentService   payments.Service
	RiderService     riders.Service
	CashoutService   cashouts.Service
	ReviewService    reviews.Service
	DashboardService dashboard.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, jwtService auth.JWTServiceInterface, gateway paymentservice.Gateway) *Services {
	userService := userservice.New(repo.UserRepo, jwtService)
	parcelService := parcelservice.New(repo.ParcelRepo, repo.TrackingRepo, txManager)
	paymentService := paymentservice.New(gateway, repo.ParcelRepo, repo.PaymentRepo, repo.TrackingRepo, txManager)
	riderService := riderservice.New(repo.RiderAppRepo, repo.UserRepo, txManager)
	cashoutService := cashoutservice.New(repo.CashoutRepo, repo.ParcelRepo, txManager)
	reviewService := reviewservice.New(repo.ReviewRepo, repo.ParcelRepo)
	dashboardService := dashboardservice.New(repo.ParcelRepo, repo.UserRepo, repo.PaymentRepo)

	return &Services{
		UserService:      userService,
		ParcelService:    parcelService,
		PaymentService:   paymentService,
		RiderService:     riderService,
		CashoutService:   cashoutService,
		ReviewService:    reviewService,
		DashboardService: dashboardService,
	}
}
