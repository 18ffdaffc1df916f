package riderservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"go.uber.org/zap"
)

type AppRepo interface {
	Create(ctx context.Context, app *domain.RiderApplication) (*domain.RiderApplication, error)
	FindByID(ctx context.Context, id int) (*domain.RiderApplication, error)
	FindByEmail(ctx context.Context, email string) (*domain.RiderApplication, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.RiderApplication, error)
	Count(ctx context.Context, status string) (int, error)
	UpdateStatus(ctx context.Context, id int, from, to string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type UserRepo interface {
	UpdateRoleByEmail(ctx context.Context, email, role string) (int64, error)
	UpdateRoleFrom(ctx context.Context, email, from, to string) (int64, error)
}

type Service struct {
	appRepo   AppRepo
	userRepo  UserRepo
	txManager pg.TXManager
}

func New(appRepo AppRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		appRepo:   appRepo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

var (
	ErrApplicationExists   = errors.New("rider application already exists")
	ErrApplicationNotFound = errors.New("rider application not found")
	ErrApplicationPending  = errors.New("rider application is still pending")
)

func (s *Service) Apply(ctx context.Context, app *domain.RiderApplication) (*domain.RiderApplication, error) {
	app.Email = strings.ToLower(app.Email)

	existing, err := s.appRepo.FindByEmail(ctx, app.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("rider application already exists", zap.String("email", app.Email))
		return nil, ErrApplicationExists
	}

	app.Status = domain.ApplicationPending
	app.AppliedAt = time.Now()

	created, err := s.appRepo.Create(ctx, app)
	if err != nil {
		zap.L().Error("can't create rider application", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]domain.RiderApplication, int, error) {
	apps, err := s.appRepo.List(ctx, status, limit, offset)
	if err != nil {
		zap.L().Error("failed to list rider applications", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.appRepo.Count(ctx, status)
	if err != nil {
		zap.L().Error("failed to count rider applications", zap.Error(err))
		return nil, 0, err
	}
	return apps, total, nil
}

// Approve activates the application and promotes the user in one transaction.
// Approving an already active application changes nothing and succeeds; the
// caller gets the number of application rows that actually moved.
func (s *Service) Approve(ctx context.Context, id int) (int64, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if app == nil {
		return 0, ErrApplicationNotFound
	}

	var modified int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		modified, err = s.appRepo.UpdateStatus(ctx, id, domain.ApplicationPending, domain.ApplicationActive)
		if err != nil {
			return err
		}
		if _, err := s.userRepo.UpdateRoleByEmail(ctx, app.Email, domain.RoleRider); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't approve rider", zap.Error(err))
		return 0, err
	}

	zap.L().Info("rider approved", zap.String("email", app.Email))
	return modified, nil
}

// ToggleStatus swaps an onboarded rider between active and penalty. The role
// stays rider either way.
func (s *Service) ToggleStatus(ctx context.Context, id int) (string, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if app == nil {
		return "", ErrApplicationNotFound
	}
	if app.Status == domain.ApplicationPending {
		return "", ErrApplicationPending
	}

	newStatus := domain.ApplicationActive
	if app.Status == domain.ApplicationActive {
		newStatus = domain.ApplicationPenalty
	}

	modified, err := s.appRepo.UpdateStatus(ctx, id, app.Status, newStatus)
	if err != nil {
		zap.L().Error("can't toggle rider status", zap.Error(err))
		return "", err
	}
	if modified == 0 {
		// Lost a race with another admin; report the stored truth.
		return "", ErrApplicationNotFound
	}

	zap.L().Info("rider status toggled", zap.String("email", app.Email), zap.String("status", newStatus))
	return newStatus, nil
}

// Withdraw removes the application and demotes the rider back to a plain
// user. Admins keep their role.
func (s *Service) Withdraw(ctx context.Context, id int) error {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if app == nil {
		return ErrApplicationNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		deleted, err := s.appRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrApplicationNotFound
		}
		if _, err := s.userRepo.UpdateRoleFrom(ctx, app.Email, domain.RoleRider, domain.RoleUser); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrApplicationNotFound) {
			zap.L().Error("can't withdraw rider application", zap.Error(err))
		}
		return err
	}

	zap.L().Info("rider application withdrawn", zap.String("email", app.Email))
	return nil
}
