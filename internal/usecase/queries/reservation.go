package queries

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.MarkAll(errs.New("reservation not found"), errs.ErrNotFound)

type ReservationReadStore interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID only ever returns the caller's own reservation.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return view, nil
}

// ListByUser returns newest first and an empty slice when there is nothing.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if views == nil {
		views = []*ReservationView{}
	}
	return views, nil
}
