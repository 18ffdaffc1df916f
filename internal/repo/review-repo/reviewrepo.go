package reviewrepo

import (
	"context"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO reviews (rider_email, user_email, rating, comment, review_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		review.RiderEmail, review.UserEmail, review.Rating, review.Comment, review.ReviewDate).Scan(&review.ID)
	if err != nil {
		zap.L().Error("can't save review", zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (r *Repository) FindByRiderEmail(ctx context.Context, email string) ([]domain.Review, error) {
	query := `
        SELECT id, rider_email, user_email, rating, comment, review_date
        FROM reviews
        WHERE rider_email = $1
        ORDER BY review_date DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't get reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		err := rows.Scan(&rv.ID, &rv.RiderEmail, &rv.UserEmail, &rv.Rating, &rv.Comment, &rv.ReviewDate)
		if err != nil {
			zap.L().Error("can't scan review row", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

// RatingForRider returns the mean rating rounded to one decimal place and the
// review count. No reviews yields a zero average.
func (r *Repository) RatingForRider(ctx context.Context, email string) (float64, int, error) {
	query := `
        SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0), COUNT(*)
        FROM reviews
        WHERE rider_email = $1
    `
	var avg float64
	var count int
	if err := r.db.QueryRow(ctx, query, email).Scan(&avg, &count); err != nil {
		zap.L().Error("can't compute rider rating", zap.Error(err))
		return 0, 0, err
	}
	return avg, count, nil
}
