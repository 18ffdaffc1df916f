package cashoutrepo

import (
	"context"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, request *domain.CashoutRequest) (*domain.CashoutRequest, error) {
	query := `
        INSERT INTO cashout_requests (rider_email, amount, status, request_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		request.RiderEmail, request.Amount, request.Status, request.RequestDate).Scan(&request.ID)
	if err != nil {
		zap.L().Error("can't save cashout request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.CashoutRequest, error) {
	query := `
        SELECT id, rider_email, amount, status, request_date, approved_date
        FROM cashout_requests
        WHERE id = $1
    `
	var req domain.CashoutRequest
	err := r.db.QueryRow(ctx, query, id).
		Scan(&req.ID, &req.RiderEmail, &req.Amount, &req.Status, &req.RequestDate, &req.ApprovedDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find cashout request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) FindByRiderEmail(ctx context.Context, email string) ([]domain.CashoutRequest, error) {
	query := `
        SELECT id, rider_email, amount, status, request_date, approved_date
        FROM cashout_requests
        WHERE rider_email = $1
        ORDER BY request_date DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't get cashout requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.CashoutRequest
	for rows.Next() {
		var req domain.CashoutRequest
		err := rows.Scan(&req.ID, &req.RiderEmail, &req.Amount, &req.Status, &req.RequestDate, &req.ApprovedDate)
		if err != nil {
			zap.L().Error("can't scan cashout row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// List returns requests for the admin review queue, pending ones first.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.CashoutRequest, error) {
	query := `
        SELECT id, rider_email, amount, status, request_date, approved_date
        FROM cashout_requests
        ORDER BY (status = 'pending') DESC, request_date DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list cashout requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.CashoutRequest
	for rows.Next() {
		var req domain.CashoutRequest
		err := rows.Scan(&req.ID, &req.RiderEmail, &req.Amount, &req.Status, &req.RequestDate, &req.ApprovedDate)
		if err != nil {
			zap.L().Error("can't scan cashout row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cashout_requests`).Scan(&total); err != nil {
		zap.L().Error("can't count cashout requests", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Approve settles the request. Only a pending request can be approved, so a
// repeat call affects zero rows.
func (r *Repository) Approve(ctx context.Context, id int, approvedAt time.Time) (int64, error) {
	query := `
        UPDATE cashout_requests
        SET status = 'success', approved_date = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, approvedAt, id)
	if err != nil {
		zap.L().Error("can't approve cashout request", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
