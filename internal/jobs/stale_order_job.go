package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob cancels PENDING orders that outlived their confirmation
// window. Runs every minute; cancellations go through the regular
// update-status command under a system principal, so transition rules,
// optimistic locking and audit events all apply unchanged.
type StaleOrderJob struct {
	orders      ports.OrderRepository
	handler     commands.UpdateOrderStatusCommandHandler
	ttl         time.Duration
	systemActor actor.Actor
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewStaleOrderJob creates a job cancelling pending orders older than ttl.
func NewStaleOrderJob(
	orders ports.OrderRepository,
	handler commands.UpdateOrderStatusCommandHandler,
	ttl time.Duration,
	systemActor actor.Actor,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		orders:      orders,
		handler:     handler,
		ttl:         ttl,
		systemActor: systemActor,
		cron:        cron.New(),
		logger:      logger.With("component", "stale_order_job"),
	}
}

// Start schedules the cleanup to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.cancelStaleOrders(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

func (j *StaleOrderJob) cancelStaleOrders(ctx context.Context) {
	cutoff := time.Now().Add(-j.ttl)

	staleOrders, err := j.orders.GetAllPendingBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list stale pending orders", "error", err)
		return
	}

	for _, staleOrder := range staleOrders {
		cmd, cmdErr := commands.NewCancelOrderCommand(staleOrder.ID(), j.systemActor)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build cancel command",
				"orderId", staleOrder.ID().String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An order confirmed or canceled between the read and the write
			// is not an error worth alerting on
			if errors.Is(handleErr, errs.ErrInvalidTransition) ||
				errors.Is(handleErr, errs.ErrVersionConflict) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to cancel stale order",
				"orderId", staleOrder.ID().String(), "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Canceled stale pending order",
			"orderId", staleOrder.ID().String())
	}
}
