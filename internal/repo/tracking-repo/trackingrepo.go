package trackingrepo

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

// Append adds an immutable tracking event. Rows are never updated or deleted.
func (r *Repository) Append(ctx context.Context, update *domain.TrackingUpdate) error {
	query := `
        INSERT INTO tracking_updates (tracing_id, status, message, event_time)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		update.TracingID, update.Status, update.Message, update.EventTime).Scan(&update.ID)
	if err != nil {
		zap.L().Error("can't save tracking update", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByTracingID(ctx context.Context, tracingID string) ([]domain.TrackingUpdate, error) {
	query := `
        SELECT id, tracing_id, status, message, event_time
        FROM tracking_updates
        WHERE tracing_id = $1
        ORDER BY event_time ASC
    `
	rows, err := r.db.Query(ctx, query, tracingID)
	if err != nil {
		zap.L().Error("can't get tracking updates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var updates []domain.TrackingUpdate
	for rows.Next() {
		var u domain.TrackingUpdate
		if err := rows.Scan(&u.ID, &u.TracingID, &u.Status, &u.Message, &u.EventTime); err != nil {
			zap.L().Error("can't scan tracking row", zap.Error(err))
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, nil
}
