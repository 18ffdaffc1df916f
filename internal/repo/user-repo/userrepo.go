package userrepo

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

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, name, role, created_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, strings.ToLower(email)).
		Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (email, name, role, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, user.Email, user.Name, user.Role, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) List(ctx context.Context, search string, limit, offset int) ([]domain.User, error) {
	query := `
        SELECT id, email, name, role, created_at
        FROM users
        WHERE ($1 = '' OR email LIKE '%' || $1 || '%')
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, strings.ToLower(search), limit, offset)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *Repository) Count(ctx context.Context, search string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM users
        WHERE ($1 = '' OR email LIKE '%' || $1 || '%')
    `
	var total int
	if err := r.db.QueryRow(ctx, query, strings.ToLower(search)).Scan(&total); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	query := `
        SELECT id, email, name, role, created_at
        FROM users
        WHERE role = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		zap.L().Error("can't list users by role", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *Repository) UpdateRoleByID(ctx context.Context, id int, role string) (int64, error) {
	query := `
        UPDATE users
        SET role = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, role, id)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) UpdateRoleByEmail(ctx context.Context, email, role string) (int64, error) {
	query := `
        UPDATE users
        SET role = $1
        WHERE email = $2
    `
	tag, err := r.db.Exec(ctx, query, role, strings.ToLower(email))
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountByRole(ctx context.Context, role string) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&total); err != nil {
		zap.L().Error("can't count users by role", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// UpdateRoleFrom changes the role only when the current role matches,
// e.g. demoting a withdrawn rider without touching admins.
func (r *Repository) UpdateRoleFrom(ctx context.Context, email, from, to string) (int64, error) {
	query := `
        UPDATE users
        SET role = $1
        WHERE email = $2 AND role = $3
    `
	tag, err := r.db.Exec(ctx, query, to, strings.ToLower(email), from)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
