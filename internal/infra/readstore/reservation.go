package readstore

import (
	"context"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationByIDParams) (sqlc.Reservations, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, userID, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, sqlc.GetReservationByIDParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	view, err := toReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err)
	}
	return view, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		v, err := toReservationView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation", err)
		}
		views = append(views, v)
	}
	return views, nil
}
