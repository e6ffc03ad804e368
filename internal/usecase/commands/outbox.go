package commands

import (
	"context"
	"log/slog"
	"time"

	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"
)

const maxRetryDelay = 5 * time.Minute

type OutboxRelay interface {
	// RelayBatch publishes one batch of due jobs and reports how many were sent.
	RelayBatch(ctx context.Context) (int, error)
}

type outboxRelayImpl struct {
	uow         shared.UnitOfWork
	publisher   shared.EventPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, batchSize, maxAttempts int32) OutboxRelay {
	return &outboxRelayImpl{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

func (o *outboxRelayImpl) RelayBatch(ctx context.Context) (int, error) {
	sent := 0
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := tx.Notifications().ClaimBatch(ctx, tx.DB(), o.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if pubErr := o.publisher.Publish(ctx, job.Topic, job.Payload); pubErr != nil {
				if err := o.fail(ctx, tx, job, pubErr); err != nil {
					return err
				}
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStorageFailure)
	}
	return sent, nil
}

func (o *outboxRelayImpl) fail(ctx context.Context, tx shared.Tx, job shared.NotificationJob, pubErr error) error {
	attempts := job.Attempts + 1
	status := shared.NotificationStatusQueued
	if attempts >= o.maxAttempts {
		status = shared.NotificationStatusFailed
	}

	slog.WarnContext(ctx, "notification publish failed",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempt", attempts,
		"status", status,
		"error", pubErr.Error())

	next := o.clock.Now().Add(retryDelay(attempts))
	return tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, status, pubErr.Error(), next)
}

// retryDelay doubles from one second and is capped.
func retryDelay(attempts int32) time.Duration {
	if attempts > 16 {
		return maxRetryDelay
	}
	d := time.Second << attempts
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
