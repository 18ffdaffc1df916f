package parcelrepo

import (
	"context"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const parcelColumns = `id, user_email, tracing_id, title, parcel_type, sender_name, sender_district,
       receiver_name, receiver_district, receiver_address, weight, total_charge, status,
       payment_intent_id, transaction_id, payment_date, rider_email, rider_name, delivery_eta,
       rider_commission, admin_commission, delivered_date, is_cashed_out, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanParcel(row pgx.Row) (*domain.Parcel, error) {
	var p domain.Parcel
	err := row.Scan(
		&p.ID, &p.UserEmail, &p.TracingID, &p.Title, &p.ParcelType, &p.SenderName, &p.SenderDistrict,
		&p.ReceiverName, &p.ReceiverDistrict, &p.ReceiverAddress, &p.Weight, &p.TotalCharge, &p.Status,
		&p.PaymentIntentID, &p.TransactionID, &p.PaymentDate, &p.RiderEmail, &p.RiderName, &p.DeliveryETA,
		&p.RiderCommission, &p.AdminCommission, &p.DeliveredDate, &p.IsCashedOut, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Parcel, error) {
	defer rows.Close()

	var parcels []domain.Parcel
	for rows.Next() {
		p, err := scanParcel(rows)
		if err != nil {
			zap.L().Error("can't scan parcel row", zap.Error(err))
			return nil, err
		}
		parcels = append(parcels, *p)
	}
	return parcels, nil
}

func (r *Repository) Save(ctx context.Context, parcel *domain.Parcel) error {
	query := `
        INSERT INTO parcels (user_email, tracing_id, title, parcel_type, sender_name, sender_district,
                             receiver_name, receiver_district, receiver_address, weight, total_charge,
                             status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		parcel.UserEmail, parcel.TracingID, parcel.Title, parcel.ParcelType, parcel.SenderName,
		parcel.SenderDistrict, parcel.ReceiverName, parcel.ReceiverDistrict, parcel.ReceiverAddress,
		parcel.Weight, parcel.TotalCharge, parcel.Status, parcel.CreatedAt,
	).Scan(&parcel.ID)
	if err != nil {
		zap.L().Error("can't save parcel", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1`
	parcel, err := scanParcel(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find parcel", zap.Error(err))
		return nil, err
	}
	return parcel, nil
}

func (r *Repository) FindByTracingID(ctx context.Context, tracingID string) (*domain.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE tracing_id = $1`
	parcel, err := scanParcel(r.db.QueryRow(ctx, query, tracingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find parcel by tracing id", zap.Error(err))
		return nil, err
	}
	return parcel, nil
}

func (r *Repository) FindByUserEmail(ctx context.Context, email string) ([]domain.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE user_email = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't get parcels", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) FindByRiderEmail(ctx context.Context, email string) ([]domain.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE rider_email = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't get rider parcels", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]domain.Parcel, error) {
	query := `
        SELECT ` + parcelColumns + `
        FROM parcels
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		zap.L().Error("can't list parcels", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) Count(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM parcels WHERE ($1 = '' OR status = $1)`
	var total int
	if err := r.db.QueryRow(ctx, query, status).Scan(&total); err != nil {
		zap.L().Error("can't count parcels", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// DeletePending removes the parcel only while it is still pending. A zero
// count means the booking already moved on.
func (r *Repository) DeletePending(ctx context.Context, id int) (int64, error) {
	query := `DELETE FROM parcels WHERE id = $1 AND status = 'pending'`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete parcel", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) AssignRider(ctx context.Context, id int, riderEmail, riderName, eta string) (int64, error) {
	query := `
        UPDATE parcels
        SET status = 'assigned', rider_email = $1, rider_name = $2, delivery_eta = $3
        WHERE id = $4 AND status = 'paid'
    `
	tag, err := r.db.Exec(ctx, query, riderEmail, riderName, eta, id)
	if err != nil {
		zap.L().Error("can't assign rider", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to string) (int64, error) {
	query := `
        UPDATE parcels
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update parcel status", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) MarkDelivered(ctx context.Context, id int, from string, riderCommission, adminCommission float64, deliveredAt time.Time) (int64, error) {
	query := `
        UPDATE parcels
        SET status = 'delivered', rider_commission = $1, admin_commission = $2,
            delivered_date = $3, is_cashed_out = FALSE
        WHERE id = $4 AND status = $5
    `
	tag, err := r.db.Exec(ctx, query, riderCommission, adminCommission, deliveredAt, id, from)
	if err != nil {
		zap.L().Error("can't mark parcel delivered", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) SetPaymentIntent(ctx context.Context, id int, intentID string) (int64, error) {
	query := `
        UPDATE parcels
        SET payment_intent_id = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, intentID, id)
	if err != nil {
		zap.L().Error("can't store payment intent", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) MarkPaid(ctx context.Context, id int, transactionID string, paidAt time.Time) (int64, error) {
	query := `
        UPDATE parcels
        SET status = 'paid', transaction_id = $1, payment_date = $2
        WHERE id = $3 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, transactionID, paidAt, id)
	if err != nil {
		zap.L().Error("can't mark parcel paid", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FindPendingWithIntent returns pending bookings that already started a card
// payment, oldest first. The reconciler checks these against the gateway.
func (r *Repository) FindPendingWithIntent(ctx context.Context, limit uint32) ([]domain.Parcel, error) {
	query := `
        SELECT ` + parcelColumns + `
        FROM parcels
        WHERE status = 'pending' AND payment_intent_id <> ''
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get parcels for reconciliation", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// SettleForRider flips every delivered, not yet cashed out parcel of the rider.
func (r *Repository) SettleForRider(ctx context.Context, riderEmail string) (int64, error) {
	query := `
        UPDATE parcels
        SET is_cashed_out = TRUE
        WHERE rider_email = $1 AND status = 'delivered' AND is_cashed_out = FALSE
    `
	tag, err := r.db.Exec(ctx, query, riderEmail)
	if err != nil {
		zap.L().Error("can't settle rider parcels", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) SumUncashedCommission(ctx context.Context, riderEmail string) (float64, error) {
	query := `
        SELECT COALESCE(SUM(rider_commission), 0)
        FROM parcels
        WHERE rider_email = $1 AND status = 'delivered' AND is_cashed_out = FALSE
    `
	var sum float64
	if err := r.db.QueryRow(ctx, query, riderEmail).Scan(&sum); err != nil {
		zap.L().Error("can't sum uncashed commission", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM parcels`).Scan(&total); err != nil {
		zap.L().Error("can't count parcels", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM parcels GROUP BY status`)
	if err != nil {
		zap.L().Error("can't count parcels by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Error("can't scan status count row", zap.Error(err))
			return nil, err
		}
		counts[status] = count
	}
	return counts, nil
}

func (r *Repository) CountBookingsByDay(ctx context.Context, limit int) ([]domain.DayCount, error) {
	query := `
        SELECT created_at::date AS day, COUNT(*)
        FROM parcels
        GROUP BY day
        ORDER BY day DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't count bookings by day", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var counts []domain.DayCount
	for rows.Next() {
		var dc domain.DayCount
		var day time.Time
		if err := rows.Scan(&day, &dc.Count); err != nil {
			zap.L().Error("can't scan day count row", zap.Error(err))
			return nil, err
		}
		dc.Day = day.Format("2006-01-02")
		counts = append(counts, dc)
	}
	return counts, nil
}

func (r *Repository) CountByDistrict(ctx context.Context, limit int) ([]domain.DistrictCount, error) {
	query := `
        SELECT sender_district, COUNT(*) AS cnt
        FROM parcels
        GROUP BY sender_district
        ORDER BY cnt DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't count parcels by district", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var counts []domain.DistrictCount
	for rows.Next() {
		var dc domain.DistrictCount
		if err := rows.Scan(&dc.District, &dc.Count); err != nil {
			zap.L().Error("can't scan district count row", zap.Error(err))
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, nil
}

func (r *Repository) CountByStatusValue(ctx context.Context, status string) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM parcels WHERE status = $1`, status).Scan(&total); err != nil {
		zap.L().Error("can't count parcels by status", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountDeliveredForRider(ctx context.Context, riderEmail string) (int, error) {
	query := `SELECT COUNT(*) FROM parcels WHERE rider_email = $1 AND status = 'delivered'`
	var total int
	if err := r.db.QueryRow(ctx, query, riderEmail).Scan(&total); err != nil {
		zap.L().Error("can't count rider deliveries", zap.Error(err))
		return 0, err
	}
	return total, nil
}
