package commands

import (
	"context"

	"stayhub/internal/domain/favourite"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type FavouriteCommands interface {
	AddFavourite(ctx context.Context, userID, listingID uuid.UUID) error
	RemoveFavourite(ctx context.Context, userID, listingID uuid.UUID) error
}

type favouriteUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFavouriteUseCase(uow shared.UnitOfWork, clk clock.Clock) FavouriteCommands {
	return &favouriteUseCaseImpl{uow: uow, clock: clk}
}

// AddFavourite is idempotent; the listing must exist.
func (uc *favouriteUseCaseImpl) AddFavourite(ctx context.Context, userID, listingID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrMissingIdentity
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ListingByID(ctx, listingID); err != nil {
			return err
		}
		return tx.Favourites().Add(ctx, tx.DB(), favourite.NewFavourite(userID, listingID, uc.clock.Now()))
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrListingNotFound
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

// RemoveFavourite succeeds whether or not the listing was saved.
func (uc *favouriteUseCaseImpl) RemoveFavourite(ctx context.Context, userID, listingID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrMissingIdentity
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Favourites().Remove(ctx, tx.DB(), userID, listingID)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}
