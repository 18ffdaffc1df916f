package parcelservice

import (
	"context"
	"errors"
	"testing"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTrackingRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	tracking := NewMockTrackingRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, tracking, txManager)
	defer ctrl.Finish()
	return service, repo, tracking, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestBook(t *testing.T) {
	service, repo, tracking, txManager := NewMock(t)

	tests := []struct {
		name          string
		parcel        *domain.Parcel
		prepareMock   func()
		expectedError bool
	}{
		{
			name: "Successful booking",
			parcel: &domain.Parcel{
				UserEmail:        "Sender@Dakbox.App",
				SenderDistrict:   "Dhaka",
				ReceiverDistrict: "Chattogram",
				TotalCharge:      1000,
			},
			prepareMock: func() {
				passThroughTx(txManager)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				tracking.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Save fails",
			parcel: &domain.Parcel{UserEmail: "sender@dakbox.app", TotalCharge: 500},
			prepareMock: func() {
				passThroughTx(txManager)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			booked, err := service.Book(context.Background(), tt.parcel)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.ParcelPending, booked.Status)
			assert.Equal(t, "sender@dakbox.app", booked.UserEmail)
			assert.Len(t, booked.TracingID, 12)
		})
	}
}

func TestCancel(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		id            int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Pending parcel cancelled",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Parcel{ID: 1, Status: domain.ParcelPending}, nil)
				repo.EXPECT().DeletePending(gomock.Any(), 1).Return(int64(1), nil)
			},
		},
		{
			name: "Parcel not found",
			id:   2,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrParcelNotFound,
		},
		{
			name: "Parcel already paid",
			id:   3,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Parcel{ID: 3, Status: domain.ParcelPaid}, nil)
				repo.EXPECT().DeletePending(gomock.Any(), 3).Return(int64(0), nil)
			},
			expectedError: ErrCannotCancel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Cancel(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssignRider(t *testing.T) {
	service, repo, tracking, txManager := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Rider assigned to paid parcel",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Parcel{
					ID: 1, TracingID: "123456789012", Status: domain.ParcelPaid,
				}, nil)
				passThroughTx(txManager)
				repo.EXPECT().AssignRider(gomock.Any(), 1, "rider@dakbox.app", "Rider", "2 days").Return(int64(1), nil)
				tracking.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Parcel not paid yet",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Parcel{
					ID: 1, Status: domain.ParcelPending,
				}, nil)
				passThroughTx(txManager)
				repo.EXPECT().AssignRider(gomock.Any(), 1, "rider@dakbox.app", "Rider", "2 days").Return(int64(0), nil)
			},
			expectedError: ErrNotPaid,
		},
		{
			name: "Parcel not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrParcelNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.AssignRider(context.Background(), 1, "Rider@Dakbox.App", "Rider", "2 days")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdvanceStatus(t *testing.T) {
	service, repo, tracking, txManager := NewMock(t)

	assigned := &domain.Parcel{
		ID:               1,
		TracingID:        "123456789012",
		Status:           domain.ParcelAssigned,
		RiderEmail:       "rider@dakbox.app",
		SenderDistrict:   "Dhaka",
		ReceiverDistrict: "Chattogram",
		TotalCharge:      1000,
	}

	tests := []struct {
		name          string
		rider         string
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Move to in transit",
			rider:  "rider@dakbox.app",
			status: domain.ParcelInTransit,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(assigned, nil)
				passThroughTx(txManager)
				repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ParcelAssigned, domain.ParcelInTransit).Return(int64(1), nil)
				tracking.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Delivery fixes the commission split",
			rider:  "rider@dakbox.app",
			status: domain.ParcelDelivered,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(assigned, nil)
				passThroughTx(txManager)
				repo.EXPECT().MarkDelivered(gomock.Any(), 1, domain.ParcelAssigned, 200.0, 800.0, gomock.Any()).Return(int64(1), nil)
				tracking.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Someone else's parcel",
			rider:  "other@dakbox.app",
			status: domain.ParcelInTransit,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(assigned, nil)
			},
			expectedError: ErrNotAssignedRider,
		},
		{
			name:   "Backward transition rejected",
			rider:  "rider@dakbox.app",
			status: domain.ParcelPaid,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(assigned, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:   "Unknown status rejected",
			rider:  "rider@dakbox.app",
			status: "teleported",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(assigned, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:   "Concurrent update loses the race",
			rider:  "rider@dakbox.app",
			status: domain.ParcelInTransit,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(assigned, nil)
				passThroughTx(txManager)
				repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ParcelAssigned, domain.ParcelInTransit).Return(int64(0), nil)
			},
			expectedError: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.AdvanceStatus(context.Background(), 1, tt.rider, tt.status, "")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTrackParcel(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	parcel := &domain.Parcel{ID: 1, TracingID: "123456789012"}
	repo.EXPECT().FindByTracingID(gomock.Any(), "123456789012").Return(parcel, nil)

	got, err := service.TrackParcel(context.Background(), "123456789012")
	assert.NoError(t, err)
	assert.Equal(t, parcel, got)

	repo.EXPECT().FindByTracingID(gomock.Any(), "000000000000").Return(nil, nil)
	_, err = service.TrackParcel(context.Background(), "000000000000")
	assert.ErrorIs(t, err, ErrParcelNotFound)
}

func TestListAll(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	parcels := []domain.Parcel{{ID: 1}, {ID: 2}}
	repo.EXPECT().List(gomock.Any(), domain.ParcelPending, 10, 0).Return(parcels, nil)
	repo.EXPECT().Count(gomock.Any(), domain.ParcelPending).Return(2, nil)

	got, total, err := service.ListAll(context.Background(), domain.ParcelPending, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, parcels, got)
	assert.Equal(t, 2, total)
}
