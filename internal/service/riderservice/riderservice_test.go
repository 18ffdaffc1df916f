package riderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockAppRepo, *MockUserRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	appRepo := NewMockAppRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(appRepo, userRepo, txManager)
	defer ctrl.Finish()
	return service, appRepo, userRepo, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestApply(t *testing.T) {
	service, appRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		app           *domain.RiderApplication
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Application created",
			app:  &domain.RiderApplication{Email: "New@Dakbox.App", District: "Dhaka"},
			prepareMock: func() {
				appRepo.EXPECT().FindByEmail(gomock.Any(), "new@dakbox.app").Return(nil, nil)
				appRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, app *domain.RiderApplication) (*domain.RiderApplication, error) {
						return app, nil
					})
			},
		},
		{
			name: "Duplicate application rejected",
			app:  &domain.RiderApplication{Email: "dup@dakbox.app", District: "Dhaka"},
			prepareMock: func() {
				appRepo.EXPECT().FindByEmail(gomock.Any(), "dup@dakbox.app").Return(&domain.RiderApplication{ID: 1}, nil)
			},
			expectedError: ErrApplicationExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			created, err := service.Apply(context.Background(), tt.app)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.ApplicationPending, created.Status)
			assert.Equal(t, "new@dakbox.app", created.Email)
		})
	}
}

func TestApprove(t *testing.T) {
	service, appRepo, userRepo, txManager := NewMock(t)

	app := &domain.RiderApplication{ID: 1, Email: "rider@dakbox.app", Status: domain.ApplicationPending}

	tests := []struct {
		name             string
		prepareMock      func()
		expectedModified int64
		expectedError    error
	}{
		{
			name: "Application approved and user promoted",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(app, nil)
				passThroughTx(txManager)
				appRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ApplicationPending, domain.ApplicationActive).Return(int64(1), nil)
				userRepo.EXPECT().UpdateRoleByEmail(gomock.Any(), "rider@dakbox.app", domain.RoleRider).Return(int64(1), nil)
			},
			expectedModified: 1,
		},
		{
			name: "Second approval moves nothing and still succeeds",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.RiderApplication{
					ID: 1, Email: "rider@dakbox.app", Status: domain.ApplicationActive,
				}, nil)
				passThroughTx(txManager)
				appRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ApplicationPending, domain.ApplicationActive).Return(int64(0), nil)
				userRepo.EXPECT().UpdateRoleByEmail(gomock.Any(), "rider@dakbox.app", domain.RoleRider).Return(int64(0), nil)
			},
			expectedModified: 0,
		},
		{
			name: "Application not found",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrApplicationNotFound,
		},
		{
			name: "Promotion fails inside the transaction",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(app, nil)
				passThroughTx(txManager)
				appRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ApplicationPending, domain.ApplicationActive).Return(int64(1), nil)
				userRepo.EXPECT().UpdateRoleByEmail(gomock.Any(), "rider@dakbox.app", domain.RoleRider).Return(int64(0), errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			modified, err := service.Approve(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedModified, modified)
			}
		})
	}
}

func TestToggleStatus(t *testing.T) {
	service, appRepo, _, _ := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus string
		expectedError  error
	}{
		{
			name: "Active rider goes to penalty",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.RiderApplication{
					ID: 1, Status: domain.ApplicationActive,
				}, nil)
				appRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ApplicationActive, domain.ApplicationPenalty).Return(int64(1), nil)
			},
			expectedStatus: domain.ApplicationPenalty,
		},
		{
			name: "Penalty rider goes back to active",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.RiderApplication{
					ID: 1, Status: domain.ApplicationPenalty,
				}, nil)
				appRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ApplicationPenalty, domain.ApplicationActive).Return(int64(1), nil)
			},
			expectedStatus: domain.ApplicationActive,
		},
		{
			name: "Pending application cannot be toggled",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.RiderApplication{
					ID: 1, Status: domain.ApplicationPending,
				}, nil)
			},
			expectedError: ErrApplicationPending,
		},
		{
			name: "Lost race reports not found",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.RiderApplication{
					ID: 1, Status: domain.ApplicationActive,
				}, nil)
				appRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ApplicationActive, domain.ApplicationPenalty).Return(int64(0), nil)
			},
			expectedError: ErrApplicationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			status, err := service.ToggleStatus(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, status)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	service, appRepo, userRepo, txManager := NewMock(t)

	app := &domain.RiderApplication{ID: 1, Email: "rider@dakbox.app", Status: domain.ApplicationActive}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Application removed and role dropped",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(app, nil)
				passThroughTx(txManager)
				appRepo.EXPECT().Delete(gomock.Any(), 1).Return(int64(1), nil)
				userRepo.EXPECT().UpdateRoleFrom(gomock.Any(), "rider@dakbox.app", domain.RoleRider, domain.RoleUser).Return(int64(1), nil)
			},
		},
		{
			name: "Application not found",
			prepareMock: func() {
				appRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrApplicationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Withdraw(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
