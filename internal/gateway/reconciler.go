package gateway

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/service/paymentservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var reconcilingParcels sync.Map

type ParcelRepo interface {
	FindPendingWithIntent(ctx context.Context, limit uint32) ([]domain.Parcel, error)
}

// Settler applies a confirmed charge to a parcel. The payment service
// implements it, so a reconciled payment and a client-reported one take the
// exact same path.
type Settler interface {
	RecordSuccess(ctx context.Context, parcelID int, transactionID string) error
}

// Reconciler sweeps pending parcels that started a card payment and asks the
// gateway whether the charge actually went through. It recovers bookings
// whose clients paid and then disappeared before reporting success.
type Reconciler struct {
	gateway        paymentservice.Gateway
	parcelRepo     ParcelRepo
	settler        Settler
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func NewReconciler(gw paymentservice.Gateway, parcelRepo ParcelRepo, settler Settler) *Reconciler {
	return &Reconciler{
		gateway:        gw,
		parcelRepo:     parcelRepo,
		settler:        settler,
		limit:          100,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Minute,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	zap.L().Info("Payment reconciler started")
	ticker := time.NewTicker(r.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	parcels, err := r.parcelRepo.FindPendingWithIntent(ctx, atomic.LoadUint32(&r.limit))
	if err != nil {
		zap.L().Error("Failed to fetch parcels for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, parcel := range parcels {
		parcel := parcel

		if _, loaded := reconcilingParcels.LoadOrStore(parcel.TracingID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := r.workerPool.AddTask(ctx, func() error {
				defer reconcilingParcels.Delete(parcel.TracingID)
				return r.reconcile(ctx, parcel)
			})
			if err != nil {
				reconcilingParcels.Delete(parcel.TracingID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling parcels", zap.Error(err))
	}
}

func (r *Reconciler) reconcile(ctx context.Context, parcel domain.Parcel) error {
	intent, err := r.gateway.GetIntent(ctx, parcel.PaymentIntentID)
	if err != nil {
		return err
	}
	if intent.Status != IntentStatusSucceeded {
		return nil
	}

	zap.L().Info("Recovered unreported payment",
		zap.String("tracing_id", parcel.TracingID), zap.String("intent_id", intent.ID))

	err = r.settler.RecordSuccess(ctx, parcel.ID, intent.ID)
	if errors.Is(err, paymentservice.ErrDuplicatePayment) || errors.Is(err, paymentservice.ErrAlreadyPaid) {
		// The client reported success between the sweep and now.
		return nil
	}
	return err
}
