package queries

import (
	"context"
	"log/slog"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.MarkAll(errs.New("listing not found"), errs.ErrNotFound)

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*ListingView, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ListingView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*ListingView, error)
}

// ListingCache holds single listing reads. Misses and cache errors fall through to the store.
type ListingCache interface {
	Get(ctx context.Context, id uuid.UUID) (*ListingView, bool, error)
	Set(ctx context.Context, view *ListingView) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
	cache ListingCache
}

func NewListingQueries(store ListingReadStore, cache ListingCache) ListingQueries {
	return &listingQueriesImpl{store: store, cache: cache}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	if view, ok, err := q.cache.Get(ctx, id); err != nil {
		slog.WarnContext(ctx, "listing cache read failed", "listing_id", id, "error", err.Error())
	} else if ok {
		return view, nil
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if err := q.cache.Set(ctx, view); err != nil {
		slog.WarnContext(ctx, "listing cache write failed", "listing_id", id, "error", err.Error())
	}
	return view, nil
}

func (q *listingQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ListingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.ListKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *listingQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*ListingView, error) {
	rows, err := q.store.ListByHost(ctx, hostID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return rows, nil
}

// NopListingCache is used when Redis is not configured.
type NopListingCache struct{}

func (NopListingCache) Get(context.Context, uuid.UUID) (*ListingView, bool, error) { return nil, false, nil }
func (NopListingCache) Set(context.Context, *ListingView) error                    { return nil }
func (NopListingCache) Invalidate(context.Context, uuid.UUID) error                { return nil }
