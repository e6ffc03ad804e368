package readstore

import (
	"context"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavouriteReadQueries interface {
	ListFavouriteListings(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListFavouriteListingsRow, error)
}

type FavouriteReadStore struct {
	queries FavouriteReadQueries
	db      sqlc.DBTX
}

func NewFavouriteReadStore(queries FavouriteReadQueries, db sqlc.DBTX) *FavouriteReadStore {
	return &FavouriteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FavouriteReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.FavouriteListingView, error) {
	rows, err := r.queries.ListFavouriteListings(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favourites", err)
	}

	views := make([]*queries.FavouriteListingView, 0, len(rows))
	for _, row := range rows {
		lv, err := toListingView(sqlc.Listings{
			ID:          row.ID,
			HostID:      row.HostID,
			Name:        row.Name,
			Price:       row.Price,
			Location:    row.Location,
			Rating:      row.Rating,
			ImageUrl:    row.ImageUrl,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode favourite listing", err)
		}
		views = append(views, &queries.FavouriteListingView{
			ListingView:  *lv,
			FavouritedAt: pgconv.TimeFromPgtype(row.FavouritedAt),
		})
	}
	return views, nil
}
