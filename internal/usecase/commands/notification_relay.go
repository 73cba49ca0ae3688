package commands

import (
	"context"
	"log/slog"
	"time"

	"coshare-scheduler/internal/pkg/clock"
	"coshare-scheduler/internal/usecase/shared"
)

const (
	relayBatchSize  = 50
	relayBackoffCap = 5
	relayRetryBase  = 30 * time.Second
)

type NotificationCommands interface {
	// Relay delivers queued notifications once. Failed deliveries are rescheduled and never
	// affect the transitions that queued them.
	Relay(ctx context.Context) (sent int, err error)
}

type notificationUseCaseImpl struct {
	uow       shared.UnitOfWork
	deliverer shared.Deliverer
	clock     clock.Clock
}

func NewNotificationUseCase(uow shared.UnitOfWork, deliverer shared.Deliverer, clk clock.Clock) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow, deliverer: deliverer, clock: clk}
}

func (uc *notificationUseCaseImpl) Relay(ctx context.Context) (int, error) {
	sent := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := uc.clock.Now()
		jobs, err := tx.Notifications().ClaimPending(ctx, now, relayBatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if derr := uc.deliverer.Deliver(ctx, job); derr != nil {
				retryAt := now.Add(relayRetryBase * time.Duration(1<<min(job.Attempts, relayBackoffCap)))
				slog.WarnContext(ctx, "notification delivery failed",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"error", derr.Error())
				if err := tx.Notifications().MarkFailed(ctx, job.ID, derr.Error(), retryAt); err != nil {
					return err
				}
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}
