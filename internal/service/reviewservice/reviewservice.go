package reviewservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByRiderEmail(ctx context.Context, email string) ([]domain.Review, error)
	RatingForRider(ctx context.Context, email string) (float64, int, error)
}

type ParcelRepo interface {
	CountDeliveredForRider(ctx context.Context, riderEmail string) (int, error)
}

type Service struct {
	reviewRepo Repo
	parcelRepo ParcelRepo
}

func New(reviewRepo Repo, parcelRepo ParcelRepo) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		parcelRepo: parcelRepo,
	}
}

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

func (s *Service) Submit(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrInvalidRating
	}

	review.RiderEmail = strings.ToLower(review.RiderEmail)
	review.UserEmail = strings.ToLower(review.UserEmail)
	review.ReviewDate = time.Now()

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		zap.L().Error("can't create review", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListForRider(ctx context.Context, riderEmail string) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.FindByRiderEmail(ctx, strings.ToLower(riderEmail))
	if err != nil {
		zap.L().Error("failed to fetch reviews", zap.Error(err))
		return nil, err
	}
	return reviews, nil
}

func (s *Service) Stats(ctx context.Context, riderEmail string) (*domain.RiderStats, error) {
	riderEmail = strings.ToLower(riderEmail)

	avg, count, err := s.reviewRepo.RatingForRider(ctx, riderEmail)
	if err != nil {
		return nil, err
	}
	delivered, err := s.parcelRepo.CountDeliveredForRider(ctx, riderEmail)
	if err != nil {
		return nil, err
	}

	return &domain.RiderStats{
		AverageRating:  avg,
		ReviewCount:    count,
		DeliveredCount: delivered,
	}, nil
}
