package queries

import (
	"context"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type FavouriteReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*FavouriteListingView, error)
}

type FavouriteQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*FavouriteListingView, error)
}

type favouriteQueriesImpl struct {
	store FavouriteReadStore
}

func NewFavouriteQueries(store FavouriteReadStore) FavouriteQueries {
	return &favouriteQueriesImpl{store: store}
}

func (q *favouriteQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*FavouriteListingView, error) {
	rows, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if rows == nil {
		rows = []*FavouriteListingView{}
	}
	return rows, nil
}
