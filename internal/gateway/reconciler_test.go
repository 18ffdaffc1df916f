package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/service/paymentservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func newReconcilerMock(t *testing.T) (*Reconciler, *paymentservice.MockGateway, *MockParcelRepo, *MockSettler, *MockWorkerPoolI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := paymentservice.NewMockGateway(ctrl)
	parcelRepo := NewMockParcelRepo(ctrl)
	settler := NewMockSettler(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	rec := &Reconciler{
		gateway:        gw,
		parcelRepo:     parcelRepo,
		settler:        settler,
		limit:          100,
		workerPool:     workerPool,
		updateInterval: 10 * time.Millisecond,
	}
	return rec, gw, parcelRepo, settler, workerPool
}

func TestReconciler_Start(t *testing.T) {
	rec, _, parcelRepo, _, _ := newReconcilerMock(t)

	parcelRepo.EXPECT().
		FindPendingWithIntent(gomock.Any(), uint32(100)).
		Return(nil, nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go rec.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
}

func TestReconciler_Sweep(t *testing.T) {
	t.Run("Schedules each parcel once", func(t *testing.T) {
		rec, gw, parcelRepo, _, workerPool := newReconcilerMock(t)

		parcels := []domain.Parcel{
			{ID: 1, TracingID: "100000000001", PaymentIntentID: "pi_1"},
			{ID: 2, TracingID: "100000000002", PaymentIntentID: "pi_2"},
		}
		parcelRepo.EXPECT().
			FindPendingWithIntent(gomock.Any(), uint32(100)).
			Return(parcels, nil)
		workerPool.EXPECT().
			AddTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task Task) error {
				return task()
			}).
			Times(2)

		gw.EXPECT().GetIntent(gomock.Any(), "pi_1").Return(&paymentservice.Intent{ID: "pi_1", Status: "requires_payment_method"}, nil)
		gw.EXPECT().GetIntent(gomock.Any(), "pi_2").Return(&paymentservice.Intent{ID: "pi_2", Status: "requires_payment_method"}, nil)

		rec.sweep(context.Background())
	})

	t.Run("Fetch failure skips the sweep", func(t *testing.T) {
		rec, _, parcelRepo, _, _ := newReconcilerMock(t)

		parcelRepo.EXPECT().
			FindPendingWithIntent(gomock.Any(), uint32(100)).
			Return(nil, errors.New("database error"))

		rec.sweep(context.Background())
	})

	t.Run("Parcel already being reconciled is skipped", func(t *testing.T) {
		rec, _, parcelRepo, _, _ := newReconcilerMock(t)

		reconcilingParcels.Store("100000000099", struct{}{})
		defer reconcilingParcels.Delete("100000000099")

		parcelRepo.EXPECT().
			FindPendingWithIntent(gomock.Any(), uint32(100)).
			Return([]domain.Parcel{{ID: 9, TracingID: "100000000099", PaymentIntentID: "pi_9"}}, nil)

		rec.sweep(context.Background())
	})
}

func TestReconciler_Reconcile(t *testing.T) {
	parcel := domain.Parcel{ID: 1, TracingID: "100000000001", PaymentIntentID: "pi_1"}

	tests := []struct {
		name        string
		prepareMock func(gw *paymentservice.MockGateway, settler *MockSettler)
		expectErr   bool
	}{
		{
			name: "Succeeded intent settles the parcel",
			prepareMock: func(gw *paymentservice.MockGateway, settler *MockSettler) {
				gw.EXPECT().GetIntent(gomock.Any(), "pi_1").
					Return(&paymentservice.Intent{ID: "pi_1", Status: IntentStatusSucceeded}, nil)
				settler.EXPECT().RecordSuccess(gomock.Any(), 1, "pi_1").Return(nil)
			},
		},
		{
			name: "Unpaid intent leaves the parcel alone",
			prepareMock: func(gw *paymentservice.MockGateway, settler *MockSettler) {
				gw.EXPECT().GetIntent(gomock.Any(), "pi_1").
					Return(&paymentservice.Intent{ID: "pi_1", Status: "requires_payment_method"}, nil)
			},
		},
		{
			name: "Client already reported the payment",
			prepareMock: func(gw *paymentservice.MockGateway, settler *MockSettler) {
				gw.EXPECT().GetIntent(gomock.Any(), "pi_1").
					Return(&paymentservice.Intent{ID: "pi_1", Status: IntentStatusSucceeded}, nil)
				settler.EXPECT().RecordSuccess(gomock.Any(), 1, "pi_1").
					Return(paymentservice.ErrDuplicatePayment)
			},
		},
		{
			name: "Parcel moved on before settlement",
			prepareMock: func(gw *paymentservice.MockGateway, settler *MockSettler) {
				gw.EXPECT().GetIntent(gomock.Any(), "pi_1").
					Return(&paymentservice.Intent{ID: "pi_1", Status: IntentStatusSucceeded}, nil)
				settler.EXPECT().RecordSuccess(gomock.Any(), 1, "pi_1").
					Return(paymentservice.ErrAlreadyPaid)
			},
		},
		{
			name: "Gateway lookup fails",
			prepareMock: func(gw *paymentservice.MockGateway, settler *MockSettler) {
				gw.EXPECT().GetIntent(gomock.Any(), "pi_1").
					Return(nil, errors.New("gateway returned status 500"))
			},
			expectErr: true,
		},
		{
			name: "Settlement fails",
			prepareMock: func(gw *paymentservice.MockGateway, settler *MockSettler) {
				gw.EXPECT().GetIntent(gomock.Any(), "pi_1").
					Return(&paymentservice.Intent{ID: "pi_1", Status: IntentStatusSucceeded}, nil)
				settler.EXPECT().RecordSuccess(gomock.Any(), 1, "pi_1").
					Return(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, gw, _, settler, _ := newReconcilerMock(t)
			tt.prepareMock(gw, settler)

			err := rec.reconcile(context.Background(), parcel)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
