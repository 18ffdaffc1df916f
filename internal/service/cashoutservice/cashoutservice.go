package cashoutservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"go.uber.org/zap"
)

// MinCashoutAmount is the smallest payout a rider may request.
const MinCashoutAmount = 500.0

type CashoutRepo interface {
	Create(ctx context.Context, request *domain.CashoutRequest) (*domain.CashoutRequest, error)
	FindByID(ctx context.Context, id int) (*domain.CashoutRequest, error)
	FindByRiderEmail(ctx context.Context, email string) ([]domain.CashoutRequest, error)
	List(ctx context.Context, limit, offset int) ([]domain.CashoutRequest, error)
	Count(ctx context.Context) (int, error)
	Approve(ctx context.Context, id int, approvedAt time.Time) (int64, error)
}

type ParcelRepo interface {
	SumUncashedCommission(ctx context.Context, riderEmail string) (float64, error)
	SettleForRider(ctx context.Context, riderEmail string) (int64, error)
}

type Service struct {
	cashoutRepo CashoutRepo
	parcelRepo  ParcelRepo
	txManager   pg.TXManager
}

func New(cashoutRepo CashoutRepo, parcelRepo ParcelRepo, txManager pg.TXManager) *Service {
	return &Service{
		cashoutRepo: cashoutRepo,
		parcelRepo:  parcelRepo,
		txManager:   txManager,
	}
}

var (
	ErrAmountBelowMinimum  = errors.New("cashout amount is below the minimum")
	ErrAmountExceedsEarned = errors.New("cashout amount exceeds uncashed earnings")
	ErrRequestNotFound     = errors.New("cashout request not found")
)

func (s *Service) Request(ctx context.Context, riderEmail string, amount float64) (*domain.CashoutRequest, error) {
	if amount < MinCashoutAmount {
		return nil, ErrAmountBelowMinimum
	}

	riderEmail = strings.ToLower(riderEmail)
	earned, err := s.parcelRepo.SumUncashedCommission(ctx, riderEmail)
	if err != nil {
		return nil, err
	}
	if amount > earned {
		return nil, ErrAmountExceedsEarned
	}

	request := &domain.CashoutRequest{
		RiderEmail:  riderEmail,
		Amount:      amount,
		Status:      domain.CashoutPending,
		RequestDate: time.Now(),
	}
	created, err := s.cashoutRepo.Create(ctx, request)
	if err != nil {
		zap.L().Error("can't create cashout request", zap.Error(err))
		return nil, err
	}

	zap.L().Info("cashout requested", zap.String("rider", riderEmail), zap.Float64("amount", amount))
	return created, nil
}

func (s *Service) MyCashouts(ctx context.Context, riderEmail string) ([]domain.CashoutRequest, error) {
	requests, err := s.cashoutRepo.FindByRiderEmail(ctx, strings.ToLower(riderEmail))
	if err != nil {
		zap.L().Error("failed to fetch cashouts", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.CashoutRequest, int, error) {
	requests, err := s.cashoutRepo.List(ctx, limit, offset)
	if err != nil {
		zap.L().Error("failed to list cashout requests", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.cashoutRepo.Count(ctx)
	if err != nil {
		zap.L().Error("failed to count cashout requests", zap.Error(err))
		return nil, 0, err
	}
	return requests, total, nil
}

// Approve settles the request and flips every delivered, uncashed parcel of
// the rider in one transaction. A repeat approval settles nothing and
// succeeds.
func (s *Service) Approve(ctx context.Context, id int) (int64, error) {
	request, err := s.cashoutRepo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if request == nil {
		return 0, ErrRequestNotFound
	}
	if request.Status != domain.CashoutPending {
		zap.L().Info("cashout already approved", zap.Int("id", id))
		return 0, nil
	}

	var settled int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		approved, err := s.cashoutRepo.Approve(ctx, id, time.Now())
		if err != nil {
			return err
		}
		if approved == 0 {
			// Another admin got there first; nothing left to settle.
			return nil
		}
		settled, err = s.parcelRepo.SettleForRider(ctx, request.RiderEmail)
		return err
	})
	if err != nil {
		zap.L().Error("can't approve cashout", zap.Error(err))
		return 0, err
	}

	zap.L().Info("cashout approved",
		zap.String("rider", request.RiderEmail), zap.Int64("settled_parcels", settled))
	return settled, nil
}
