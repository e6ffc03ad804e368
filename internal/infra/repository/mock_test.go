//go:build unit

package repository

import (
	"context"

	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

// MockQueries stands in for both the generated queries and the DBTX they run on.
type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *MockQueries) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (m *MockQueries) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func (m *MockQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.CreateUserRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.CreateUserRow), args.Error(1)
}

func (m *MockQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockQueries) UpdateUserPasswordHash(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPasswordHashParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (pgtype.Timestamptz, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pgtype.Timestamptz), args.Error(1)
}

func (m *MockQueries) GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationForUpdateParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockQueries) MarkReservationPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationPaidParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.CreateListingRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.CreateListingRow), args.Error(1)
}

func (m *MockQueries) GetListingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Listings), args.Error(1)
}

func (m *MockQueries) UpdateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) DeleteListing(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) ClaimNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error) {
	args := m.Called(ctx, db, limit)
	return args.Get(0).([]sqlc.NotificationJobs), args.Error(1)
}

func (m *MockQueries) MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockQueries) MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}
