//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationByIDParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Reservations, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.Reservations), args.Error(1)
}

func TestReservationReadStore_FindByID(t *testing.T) {
	paidAt := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	b := builder.NewReservationBuilder().AsPaid(paidAt)

	t.Run("maps the row to a view", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservationByID", mock.Anything, mock.Anything,
			sqlc.GetReservationByIDParams{ID: b.ID, UserID: b.UserID}).Return(b.BuildInfra(), nil)

		got, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), b.UserID, b.ID)

		require.NoError(t, err)
		want := b.BuildView()
		if diff := cmp.Diff(want.TotalPrice.StringFixed(2), got.TotalPrice.StringFixed(2)); diff != "" {
			t.Errorf("total price mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, got.Nights)
		assert.Equal(t, want.ListingID, got.ListingID)
		assert.True(t, got.Paid)
		require.NotNil(t, got.PaidAt)
		assert.True(t, paidAt.Equal(*got.PaidAt))
	})

	t.Run("someone else's reservation is not found", func(t *testing.T) {
		other := uuid.New()
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservationByID", mock.Anything, mock.Anything,
			sqlc.GetReservationByIDParams{ID: b.ID, UserID: other}).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		got, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), other, b.ID)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationReadStore_ListByUser(t *testing.T) {
	userID := uuid.New()

	t.Run("empty list", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListReservationsByUser", mock.Anything, mock.Anything, userID).Return([]sqlc.Reservations{}, nil)

		got, err := NewReservationReadStore(mockQueries, nil).ListByUser(context.Background(), userID)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("deleted listing keeps snapshot", func(t *testing.T) {
		row := builder.NewReservationBuilder().WithUserID(userID).BuildInfra()
		row.ListingID = pgtype.UUID{}
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListReservationsByUser", mock.Anything, mock.Anything, userID).Return([]sqlc.Reservations{row}, nil)

		got, err := NewReservationReadStore(mockQueries, nil).ListByUser(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].ListingID)
		assert.Equal(t, "L1", got[0].ListingName)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListReservationsByUser", mock.Anything, mock.Anything, userID).Return([]sqlc.Reservations(nil), assert.AnError)

		_, err := NewReservationReadStore(mockQueries, nil).ListByUser(context.Background(), userID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
