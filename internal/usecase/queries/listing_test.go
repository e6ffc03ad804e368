//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListingQueries_GetByID(t *testing.T) {
	view := builder.NewListingBuilder().BuildView()

	setup := func(t *testing.T) (*queriesmock.MockListingReadStore, *queriesmock.MockListingCache, queries.ListingQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		cache := queriesmock.NewMockListingCache(ctrl)
		return store, cache, queries.NewListingQueries(store, cache)
	}

	t.Run("cache hit skips the store", func(t *testing.T) {
		_, cache, q := setup(t)
		cache.EXPECT().Get(gomock.Any(), view.ID).Return(view, true, nil)

		got, err := q.GetByID(context.Background(), view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("miss reads through and fills the cache", func(t *testing.T) {
		store, cache, q := setup(t)
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any(), view.ID).Return(nil, false, nil),
			store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil),
			cache.EXPECT().Set(gomock.Any(), view).Return(nil),
		)

		got, err := q.GetByID(context.Background(), view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		store, cache, q := setup(t)
		cache.EXPECT().Get(gomock.Any(), view.ID).Return(nil, false, assert.AnError)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		cache.EXPECT().Set(gomock.Any(), view).Return(assert.AnError)

		_, err := q.GetByID(context.Background(), view.ID)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		store, cache, q := setup(t)
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), uuid.New())

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestListingQueries_List(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	page := make([]*queries.ListingView, 0, 3)
	for i := range 3 {
		page = append(page, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
		}).BuildView())
	}

	t.Run("first page returns a cursor when more rows exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewListingQueries(store, queries.NopListingCache{})
		store.EXPECT().ListFirstPage(gomock.Any(), int32(3)).Return(page, nil)

		rows, next, err := q.List(context.Background(), nil, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, page[1].ID, id)
		assert.Equal(t, page[1].CreatedAt, at)
	})

	t.Run("keyset page without more rows has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewListingQueries(store, queries.NopListingCache{})
		after := queries.EncodeAfterCursor(page[1].CreatedAt, page[1].ID)
		store.EXPECT().ListKeyset(gomock.Any(), page[1].CreatedAt, page[1].ID, int32(3)).Return(page[2:], nil)

		rows, next, err := q.List(context.Background(), &queries.Cursor{After: after}, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
	})

	t.Run("broken cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewListingQueries(queriesmock.NewMockListingReadStore(ctrl), queries.NopListingCache{})

		_, _, err := q.List(context.Background(), &queries.Cursor{After: "garbage"}, 2)

		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})
}

func TestReservationQueries(t *testing.T) {
	userID := uuid.New()

	t.Run("empty list is not nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)

		got, err := queries.NewReservationQueries(store).ListByUser(context.Background(), userID)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("foreign reservation is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), userID, gomock.Any()).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := queries.NewReservationQueries(store).GetByID(context.Background(), userID, uuid.New())

		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, assert.AnError)

		_, err := queries.NewReservationQueries(store).ListByUser(context.Background(), userID)

		assert.True(t, errs.Is(err, errs.ErrStorageFailure))
	})
}
