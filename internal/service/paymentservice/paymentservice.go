package paymentservice

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"go.uber.org/zap"
)

// Intent is the gateway's payment-intent handle. Only the fields the backend
// cares about are mapped.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Gateway is the card-payment collaborator. Amounts are in minor currency
// units.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

type ParcelRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Parcel, error)
	SetPaymentIntent(ctx context.Context, id int, intentID string) (int64, error)
	MarkPaid(ctx context.Context, id int, transactionID string, paidAt time.Time) (int64, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (int64, error)
	FindByUserEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

type TrackingRepo interface {
	Append(ctx context.Context, update *domain.TrackingUpdate) error
}

type Service struct {
	gateway      Gateway
	parcelRepo   ParcelRepo
	paymentRepo  PaymentRepo
	trackingRepo TrackingRepo
	txManager    pg.TXManager
}

func New(gateway Gateway, parcelRepo ParcelRepo, paymentRepo PaymentRepo, trackingRepo TrackingRepo, txManager pg.TXManager) *Service {
	return &Service{
		gateway:      gateway,
		parcelRepo:   parcelRepo,
		paymentRepo:  paymentRepo,
		trackingRepo: trackingRepo,
		txManager:    txManager,
	}
}

const currency = "bdt"

var (
	ErrInvalidPrice     = errors.New("price must be a positive number")
	ErrParcelNotFound   = errors.New("parcel not found")
	ErrAlreadyPaid      = errors.New("parcel is already paid")
	ErrDuplicatePayment = errors.New("payment already recorded")
)

// CreateIntent asks the gateway for a client secret and remembers the intent
// on the parcel so an abandoned checkout can be reconciled later.
func (s *Service) CreateIntent(ctx context.Context, parcelID int, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidPrice
	}

	parcel, err := s.parcelRepo.FindByID(ctx, parcelID)
	if err != nil {
		return "", err
	}
	if parcel == nil {
		return "", ErrParcelNotFound
	}

	amount := int64(math.Round(price * 100))
	intent, err := s.gateway.CreateIntent(ctx, amount, currency)
	if err != nil {
		zap.L().Error("can't create payment intent", zap.Error(err))
		return "", err
	}

	if _, err := s.parcelRepo.SetPaymentIntent(ctx, parcelID, intent.ID); err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}

// RecordSuccess settles a successful charge: ledger row, parcel paid,
// tracking event, all in one transaction.
func (s *Service) RecordSuccess(ctx context.Context, parcelID int, transactionID string) error {
	parcel, err := s.parcelRepo.FindByID(ctx, parcelID)
	if err != nil {
		return err
	}
	if parcel == nil {
		return ErrParcelNotFound
	}

	now := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.paymentRepo.Create(ctx, &domain.Payment{
			ParcelID:      parcelID,
			TransactionID: transactionID,
			UserEmail:     parcel.UserEmail,
			Amount:        parcel.TotalCharge,
			PaymentDate:   now,
		})
		if err != nil {
			return err
		}
		if inserted == 0 {
			return ErrDuplicatePayment
		}

		modified, err := s.parcelRepo.MarkPaid(ctx, parcelID, transactionID, now)
		if err != nil {
			return err
		}
		if modified == 0 {
			return ErrAlreadyPaid
		}

		return s.trackingRepo.Append(ctx, &domain.TrackingUpdate{
			TracingID: parcel.TracingID,
			Status:    domain.ParcelPaid,
			Message:   "Payment Confirmed",
			EventTime: now,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicatePayment) && !errors.Is(err, ErrAlreadyPaid) {
			zap.L().Error("can't record payment", zap.Error(err))
		}
		return err
	}

	zap.L().Info("payment recorded",
		zap.String("tracing_id", parcel.TracingID), zap.String("transaction_id", transactionID))
	return nil
}

func (s *Service) History(ctx context.Context, email string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByUserEmail(ctx, strings.ToLower(email))
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
