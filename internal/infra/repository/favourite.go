package repository

import (
	"context"

	"stayhub/internal/domain/favourite"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FavouriteWriteQueries interface {
	AddFavourite(ctx context.Context, db sqlc.DBTX, arg sqlc.AddFavouriteParams) error
	RemoveFavourite(ctx context.Context, db sqlc.DBTX, arg sqlc.RemoveFavouriteParams) error
}

type FavouriteRepository struct {
	queries FavouriteWriteQueries
}

func NewFavouriteRepository(queries FavouriteWriteQueries) *FavouriteRepository {
	return &FavouriteRepository{
		queries: queries,
	}
}

// Add is idempotent: saving the same listing twice keeps the first timestamp.
func (r *FavouriteRepository) Add(ctx context.Context, tx sqlc.DBTX, fav *favourite.Favourite) error {
	err := r.queries.AddFavourite(ctx, tx, sqlc.AddFavouriteParams{
		UserID:    fav.UserID(),
		ListingID: fav.ListingID(),
		CreatedAt: pgconv.TimeToPgtype(fav.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to add favourite", err)
	}
	return nil
}

func (r *FavouriteRepository) Remove(ctx context.Context, tx sqlc.DBTX, userID, listingID uuid.UUID) error {
	err := r.queries.RemoveFavourite(ctx, tx, sqlc.RemoveFavouriteParams{UserID: userID, ListingID: listingID})
	if err != nil {
		return infra.WrapRepoErr("failed to remove favourite", err)
	}
	return nil
}
