package paymentrepo

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

// Create inserts the ledger row. The transaction id is unique, so a client
// retry of the same charge inserts nothing and returns a zero count.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (int64, error) {
	query := `
        INSERT INTO payments (parcel_id, transaction_id, user_email, amount, payment_date)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (transaction_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query,
		payment.ParcelID, payment.TransactionID, payment.UserEmail, payment.Amount, payment.PaymentDate)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) FindByUserEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	query := `
        SELECT id, parcel_id, transaction_id, user_email, amount, payment_date
        FROM payments
        WHERE user_email = $1
        ORDER BY payment_date DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.ParcelID, &p.TransactionID, &p.UserEmail, &p.Amount, &p.PaymentDate)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *Repository) SumAmounts(ctx context.Context) (float64, error) {
	var sum float64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&sum); err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
