package userservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, search string, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context, search string) (int, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	UpdateRoleByID(ctx context.Context, id int, role string) (int64, error)
}

type Service struct {
	userRepo   Repo
	jwtService auth.JWTServiceInterface
}

func New(repo Repo, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:   repo,
		jwtService: jwtService,
	}
}

var (
	ErrUserNotFound = errors.New("user not found")
)

// MintToken signs a long-lived bearer token for the given identity. The
// identity itself is asserted upstream by the external identity provider.
func (s *Service) MintToken(email string) (string, error) {
	token, err := s.jwtService.GenerateJWT(strings.ToLower(email), time.Now().Add(auth.TokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureUser stores the user on first sight. A repeat registration for the
// same email is reported, not treated as an error.
func (s *Service) EnsureUser(ctx context.Context, email, name string) (bool, error) {
	email = strings.ToLower(email)
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return false, err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return false, nil
	}

	user := &domain.User{
		Email:     email,
		Name:      name,
		Role:      domain.RoleUser,
		CreatedAt: time.Now(),
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return false, err
	}

	zap.L().Info("user registered", zap.String("email", email))
	return true, nil
}

// GetRole resolves the stored role for an email. It also backs the role guard
// middleware.
func (s *Service) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	return user.Role, nil
}

func (s *Service) ListUsers(ctx context.Context, search string, limit, offset int) ([]domain.User, int, error) {
	users, err := s.userRepo.List(ctx, search, limit, offset)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, search)
	if err != nil {
		zap.L().Error("failed to count users", zap.Error(err))
		return nil, 0, err
	}
	return users, total, nil
}

func (s *Service) ListRiders(ctx context.Context) ([]domain.User, error) {
	riders, err := s.userRepo.ListByRole(ctx, domain.RoleRider)
	if err != nil {
		zap.L().Error("failed to list riders", zap.Error(err))
		return nil, err
	}
	return riders, nil
}

func (s *Service) MakeAdmin(ctx context.Context, id int) error {
	modified, err := s.userRepo.UpdateRoleByID(ctx, id, domain.RoleAdmin)
	if err != nil {
		zap.L().Error("failed to promote user", zap.Error(err))
		return err
	}
	if modified == 0 {
		return ErrUserNotFound
	}
	return nil
}
