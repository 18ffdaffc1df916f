package riderapprepo

import (
	"context"
	"strings"

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

func (r *Repository) Create(ctx context.Context, app *domain.RiderApplication) (*domain.RiderApplication, error) {
	query := `
        INSERT INTO rider_applications (email, name, district, phone, status, applied_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		app.Email, app.Name, app.District, app.Phone, app.Status, app.AppliedAt).Scan(&app.ID)
	if err != nil {
		zap.L().Error("can't save rider application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.RiderApplication, error) {
	query := `
        SELECT id, email, name, district, phone, status, applied_at
        FROM rider_applications
        WHERE id = $1
    `
	var app domain.RiderApplication
	err := r.db.QueryRow(ctx, query, id).
		Scan(&app.ID, &app.Email, &app.Name, &app.District, &app.Phone, &app.Status, &app.AppliedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find rider application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.RiderApplication, error) {
	query := `
        SELECT id, email, name, district, phone, status, applied_at
        FROM rider_applications
        WHERE email = $1
    `
	var app domain.RiderApplication
	err := r.db.QueryRow(ctx, query, strings.ToLower(email)).
		Scan(&app.ID, &app.Email, &app.Name, &app.District, &app.Phone, &app.Status, &app.AppliedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find rider application by email", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]domain.RiderApplication, error) {
	query := `
        SELECT id, email, name, district, phone, status, applied_at
        FROM rider_applications
        WHERE ($1 = '' OR status = $1)
        ORDER BY applied_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		zap.L().Error("can't list rider applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.RiderApplication
	for rows.Next() {
		var app domain.RiderApplication
		err := rows.Scan(&app.ID, &app.Email, &app.Name, &app.District, &app.Phone, &app.Status, &app.AppliedAt)
		if err != nil {
			zap.L().Error("can't scan rider application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (r *Repository) Count(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM rider_applications WHERE ($1 = '' OR status = $1)`
	var total int
	if err := r.db.QueryRow(ctx, query, status).Scan(&total); err != nil {
		zap.L().Error("can't count rider applications", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// UpdateStatus moves the application from one status to another. The guard on
// the current status keeps concurrent admins from double-applying a change.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to string) (int64, error) {
	query := `
        UPDATE rider_applications
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update rider application status", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id int) (int64, error) {
	query := `DELETE FROM rider_applications WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete rider application", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
