package repository

import (
	"context"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (pgtype.Timestamptz, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationForUpdateParams) (sqlc.Reservations, error)
	MarkReservationPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationPaidParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

// Create relies on the domain bounds (MaxGuestCount, MaxStayNights) for the int32 columns.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	listingID := res.ListingID()
	params := sqlc.CreateReservationParams{
		ID:          res.ID(),
		UserID:      res.UserID(),
		ListingID:   pgconv.UUIDPtrToPgtype(&listingID),
		ListingName: res.ListingName(),
		UnitPrice:   pgconv.NumericFromDecimal(res.UnitPrice().Amount()),
		CheckIn:     pgconv.TimeToPgtype(res.Period().CheckIn()),
		CheckOut:    pgconv.TimeToPgtype(res.Period().CheckOut()),
		GuestCount:  int32(res.Guests().Value()),
		PaymentMode: res.PaymentMode().String(),
		Nights:      int32(res.Nights()),
		TotalPrice:  pgconv.NumericFromDecimal(res.TotalPrice().Amount()),
		Paid:        res.IsPaid(),
		PaidAt:      pgconv.TimePtrToPgtype(res.PaidAt()),
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
	}

	if _, err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, sqlc.GetReservationForUpdateParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := toReservationDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct reservation", err)
	}
	return res, nil
}

// MarkPaid reports whether this call performed the unpaid to paid transition.
func (r *ReservationRepository) MarkPaid(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (bool, error) {
	n, err := r.queries.MarkReservationPaid(ctx, tx, sqlc.MarkReservationPaidParams{
		ID:     res.ID(),
		UserID: res.UserID(),
		PaidAt: pgconv.TimePtrToPgtype(res.PaidAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark reservation paid", err)
	}
	return n == 1, nil
}

func toReservationDomain(row sqlc.Reservations) (*reservation.Reservation, error) {
	unitDec, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}
	totalDec, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	unitPrice, err := reservation.NewMoney(unitDec)
	if err != nil {
		return nil, err
	}
	totalPrice, err := reservation.NewMoney(totalDec)
	if err != nil {
		return nil, err
	}
	period, err := reservation.NewStayPeriod(pgconv.TimeFromPgtype(row.CheckIn), pgconv.TimeFromPgtype(row.CheckOut))
	if err != nil {
		return nil, err
	}
	mode, err := reservation.ParsePaymentMode(row.PaymentMode)
	if err != nil {
		return nil, err
	}

	var listingID uuid.UUID
	if id := pgconv.UUIDPtrFromPgtype(row.ListingID); id != nil {
		listingID = *id
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		listingID,
		row.ListingName,
		unitPrice,
		period,
		reservation.NewGuestCount(int(row.GuestCount)),
		mode,
		totalPrice,
		row.Paid,
		pgconv.TimePtrFromPgtype(row.PaidAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
