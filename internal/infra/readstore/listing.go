package readstore

import (
	"context"
	"time"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingReadQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	ListListingsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Listings, error)
	ListListingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingsKeysetParams) ([]sqlc.Listings, error)
	ListListingsByHost(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) ([]sqlc.Listings, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}
	view, err := toListingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listing", err)
	}
	return view, nil
}

func (r *ListingReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListingsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings first page", err)
	}
	views, err := toListingViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listings", err)
	}
	return views, nil
}

func (r *ListingReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ListingView, error) {
	params := sqlc.ListListingsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	}
	rows, err := r.queries.ListListingsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings keyset", err)
	}
	views, err := toListingViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listings", err)
	}
	return views, nil
}

func (r *ListingReadStore) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListingsByHost(ctx, r.db, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings by host", err)
	}
	views, err := toListingViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listings", err)
	}
	return views, nil
}
