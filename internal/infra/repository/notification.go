package repository

import (
	"context"
	"time"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, topic string, aggregateID uuid.UUID, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Topic:       topic,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      shared.NotificationStatusQueued,
		RunAt:       pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimBatch must run inside a transaction; claimed rows stay locked until it ends.
func (r *NotificationRepository) ClaimBatch(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimNotificationJobs(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:          row.ID,
			Topic:       row.Topic,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			Attempts:    row.Attempts,
			RunAt:       pgconv.TimeFromPgtype(row.RunAt),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status, lastError string, nextRunAt time.Time) error {
	params := sqlc.MarkNotificationJobFailedParams{
		ID:        jobID,
		Status:    status,
		LastError: pgtype.Text{String: lastError, Valid: lastError != ""},
		RunAt:     pgconv.TimeToPgtype(nextRunAt),
	}

	if err := r.queries.MarkNotificationJobFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
