//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/favourite"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"
	sharedmock "stayhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFavouriteCommands(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	snap := builder.NewListingBuilder().BuildSnapshot()

	setup := func(t *testing.T) (*sharedmock.MockCommandReads, *sharedmock.MockFavouriteRepository, commands.FavouriteCommands) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		reads := sharedmock.NewMockCommandReads(ctrl)
		favourites := sharedmock.NewMockFavouriteRepository(ctrl)
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			}).AnyTimes()
		tx.EXPECT().DB().Return(nil).AnyTimes()
		tx.EXPECT().Reads().Return(reads).AnyTimes()
		tx.EXPECT().Favourites().Return(favourites).AnyTimes()
		return reads, favourites, commands.NewFavouriteUseCase(uow, clock.NewMockClock(now))
	}

	t.Run("add", func(t *testing.T) {
		reads, favourites, uc := setup(t)
		reads.EXPECT().ListingByID(gomock.Any(), snap.ID).Return(snap, nil)
		favourites.EXPECT().Add(gomock.Any(), gomock.Any(), favourite.NewFavourite(userID, snap.ID, now)).Return(nil)

		assert.NoError(t, uc.AddFavourite(context.Background(), userID, snap.ID))
	})

	t.Run("add unknown listing", func(t *testing.T) {
		reads, _, uc := setup(t)
		reads.EXPECT().ListingByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))

		err := uc.AddFavourite(context.Background(), userID, uuid.New())

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("listing deleted concurrently", func(t *testing.T) {
		reads, favourites, uc := setup(t)
		reads.EXPECT().ListingByID(gomock.Any(), snap.ID).Return(snap, nil)
		favourites.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to add favourite", nil, infra.KindForeignKeyViolated))

		err := uc.AddFavourite(context.Background(), userID, snap.ID)

		assert.ErrorIs(t, err, commands.ErrListingNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		_, favourites, uc := setup(t)
		favourites.EXPECT().Remove(gomock.Any(), gomock.Any(), userID, snap.ID).Return(nil)

		assert.NoError(t, uc.RemoveFavourite(context.Background(), userID, snap.ID))
	})

	t.Run("missing identity", func(t *testing.T) {
		_, _, uc := setup(t)

		assert.True(t, errs.Is(uc.AddFavourite(context.Background(), uuid.Nil, snap.ID), errs.ErrUnauthenticated))
		assert.True(t, errs.Is(uc.RemoveFavourite(context.Background(), uuid.Nil, snap.ID), errs.ErrUnauthenticated))
	})
}
