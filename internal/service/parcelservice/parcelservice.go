package parcelservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"github.com/dakbox/courier/pkg/validate"
	"go.uber.org/zap"
)

const tracingIDLength = 12

type Repo interface {
	Save(ctx context.Context, parcel *domain.Parcel) error
	FindByID(ctx context.Context, id int) (*domain.Parcel, error)
	FindByTracingID(ctx context.Context, tracingID string) (*domain.Parcel, error)
	FindByUserEmail(ctx context.Context, email string) ([]domain.Parcel, error)
	FindByRiderEmail(ctx context.Context, email string) ([]domain.Parcel, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Parcel, error)
	Count(ctx context.Context, status string) (int, error)
	DeletePending(ctx context.Context, id int) (int64, error)
	AssignRider(ctx context.Context, id int, riderEmail, riderName, eta string) (int64, error)
	UpdateStatus(ctx context.Context, id int, from, to string) (int64, error)
	MarkDelivered(ctx context.Context, id int, from string, riderCommission, adminCommission float64, deliveredAt time.Time) (int64, error)
}

type TrackingRepo interface {
	Append(ctx context.Context, update *domain.TrackingUpdate) error
	FindByTracingID(ctx context.Context, tracingID string) ([]domain.TrackingUpdate, error)
}

type Service struct {
	parcelRepo   Repo
	trackingRepo TrackingRepo
	txManager    pg.TXManager
}

func New(parcelRepo Repo, trackingRepo TrackingRepo, txManager pg.TXManager) *Service {
	return &Service{
		parcelRepo:   parcelRepo,
		trackingRepo: trackingRepo,
		txManager:    txManager,
	}
}

var (
	ErrParcelNotFound    = errors.New("parcel not found")
	ErrCannotCancel      = errors.New("cannot cancel parcel that is not pending")
	ErrNotPaid           = errors.New("parcel is not paid yet")
	ErrNotAssignedRider  = errors.New("parcel is not assigned to this rider")
	ErrInvalidTransition = errors.New("invalid status transition")
)

func (s *Service) Book(ctx context.Context, parcel *domain.Parcel) (*domain.Parcel, error) {
	tracingID, err := validate.NewTracingID(tracingIDLength)
	if err != nil {
		zap.L().Error("can't generate tracing id", zap.Error(err))
		return nil, err
	}

	parcel.UserEmail = strings.ToLower(parcel.UserEmail)
	parcel.TracingID = tracingID
	parcel.Status = domain.ParcelPending
	parcel.CreatedAt = time.Now()

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.parcelRepo.Save(ctx, parcel); err != nil {
			return err
		}
		return s.trackingRepo.Append(ctx, &domain.TrackingUpdate{
			TracingID: tracingID,
			Status:    domain.ParcelPending,
			Message:   "Parcel Booked",
			EventTime: parcel.CreatedAt,
		})
	})
	if err != nil {
		zap.L().Error("can't book parcel", zap.Error(err))
		return nil, err
	}

	zap.L().Info("parcel booked", zap.String("tracing_id", tracingID))
	return parcel, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Parcel, error) {
	parcel, err := s.parcelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrParcelNotFound
	}
	return parcel, nil
}

func (s *Service) GetMine(ctx context.Context, email string) ([]domain.Parcel, error) {
	parcels, err := s.parcelRepo.FindByUserEmail(ctx, strings.ToLower(email))
	if err != nil {
		zap.L().Error("failed to get parcels", zap.Error(err))
		return nil, err
	}
	return parcels, nil
}

// Cancel removes a booking that has not been paid yet. The conditional delete
// is the source of truth: anything past pending refuses to go.
func (s *Service) Cancel(ctx context.Context, id int) error {
	parcel, err := s.parcelRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if parcel == nil {
		return ErrParcelNotFound
	}

	deleted, err := s.parcelRepo.DeletePending(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCannotCancel
	}
	return nil
}

func (s *Service) AssignRider(ctx context.Context, id int, riderEmail, riderName, eta string) error {
	parcel, err := s.parcelRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if parcel == nil {
		return ErrParcelNotFound
	}

	riderEmail = strings.ToLower(riderEmail)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		modified, err := s.parcelRepo.AssignRider(ctx, id, riderEmail, riderName, eta)
		if err != nil {
			return err
		}
		if modified == 0 {
			return ErrNotPaid
		}
		return s.trackingRepo.Append(ctx, &domain.TrackingUpdate{
			TracingID: parcel.TracingID,
			Status:    domain.ParcelAssigned,
			Message:   "Rider Assigned",
			EventTime: time.Now(),
		})
	})
	if err != nil {
		if !errors.Is(err, ErrNotPaid) {
			zap.L().Error("can't assign rider", zap.Error(err))
		}
		return err
	}

	zap.L().Info("rider assigned", zap.String("tracing_id", parcel.TracingID), zap.String("rider", riderEmail))
	return nil
}

// AdvanceStatus moves an assigned parcel forward on behalf of its rider. A
// delivery also fixes the commission split.
func (s *Service) AdvanceStatus(ctx context.Context, id int, riderEmail, status, message string) error {
	parcel, err := s.parcelRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if parcel == nil {
		return ErrParcelNotFound
	}
	if parcel.RiderEmail == "" || parcel.RiderEmail != strings.ToLower(riderEmail) {
		return ErrNotAssignedRider
	}
	if !domain.IsParcelStatus(status) || !domain.CanAdvanceParcel(parcel.Status, status) {
		return ErrInvalidTransition
	}
	// Riders only drive the leg after assignment.
	if status != domain.ParcelInTransit && status != domain.ParcelDelivered {
		return ErrInvalidTransition
	}

	if message == "" {
		message = defaultMessage(status)
	}
	now := time.Now()

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var modified int64
		var err error
		if status == domain.ParcelDelivered {
			riderCommission, adminCommission := domain.SplitCommission(
				parcel.TotalCharge, parcel.SenderDistrict, parcel.ReceiverDistrict)
			modified, err = s.parcelRepo.MarkDelivered(ctx, id, parcel.Status, riderCommission, adminCommission, now)
		} else {
			modified, err = s.parcelRepo.UpdateStatus(ctx, id, parcel.Status, status)
		}
		if err != nil {
			return err
		}
		if modified == 0 {
			return ErrInvalidTransition
		}
		return s.trackingRepo.Append(ctx, &domain.TrackingUpdate{
			TracingID: parcel.TracingID,
			Status:    status,
			Message:   message,
			EventTime: now,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidTransition) {
			zap.L().Error("can't advance parcel status", zap.Error(err))
		}
		return err
	}

	zap.L().Info("parcel status advanced",
		zap.String("tracing_id", parcel.TracingID), zap.String("status", status))
	return nil
}

func (s *Service) ListAll(ctx context.Context, status string, limit, offset int) ([]domain.Parcel, int, error) {
	parcels, err := s.parcelRepo.List(ctx, status, limit, offset)
	if err != nil {
		zap.L().Error("failed to list parcels", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.parcelRepo.Count(ctx, status)
	if err != nil {
		zap.L().Error("failed to count parcels", zap.Error(err))
		return nil, 0, err
	}
	return parcels, total, nil
}

func (s *Service) RiderDeliveries(ctx context.Context, riderEmail string) ([]domain.Parcel, error) {
	parcels, err := s.parcelRepo.FindByRiderEmail(ctx, strings.ToLower(riderEmail))
	if err != nil {
		zap.L().Error("failed to get rider deliveries", zap.Error(err))
		return nil, err
	}
	return parcels, nil
}

func (s *Service) TrackParcel(ctx context.Context, tracingID string) (*domain.Parcel, error) {
	parcel, err := s.parcelRepo.FindByTracingID(ctx, tracingID)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrParcelNotFound
	}
	return parcel, nil
}

func (s *Service) TrackingEvents(ctx context.Context, tracingID string) ([]domain.TrackingUpdate, error) {
	updates, err := s.trackingRepo.FindByTracingID(ctx, tracingID)
	if err != nil {
		zap.L().Error("failed to get tracking updates", zap.Error(err))
		return nil, err
	}
	return updates, nil
}

func defaultMessage(status string) string {
	switch status {
	case domain.ParcelInTransit:
		return "Parcel In Transit"
	case domain.ParcelDelivered:
		return "Parcel Delivered"
	default:
		return "Status Updated"
	}
}
