//go:build unit || e2e

package builder

import (
	"encoding/json"
	"strconv"
	"time"

	"stayhub/internal/domain/reservation"
	reqdto "stayhub/internal/handler/dto/request"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ListingID   uuid.UUID
	ListingName string
	UnitPrice   decimal.Decimal
	CheckIn     time.Time
	CheckOut    time.Time
	GuestCount  int
	PaymentMode string
	Paid        bool
	PaidAt      *time.Time
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ListingID:   uuid.New(),
		ListingName: "L1",
		UnitPrice:   decimal.NewFromInt(100),
		CheckIn:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		GuestCount:  2,
		PaymentMode: "pay_on_arrival",
		CreatedAt:   time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) nights() int {
	p, err := reservation.NewStayPeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		return 1
	}
	return p.Nights()
}

func (r *ReservationBuilder) totalPrice() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.nights()))).Round(2)
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		return nil, err
	}
	unit, err := reservation.NewMoney(r.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := reservation.NewMoney(r.totalPrice())
	if err != nil {
		return nil, err
	}
	mode, err := reservation.ParsePaymentMode(r.PaymentMode)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		r.ID, r.UserID, r.ListingID, r.ListingName, unit, period,
		reservation.NewGuestCount(r.GuestCount), mode, total, r.Paid, r.PaidAt, r.CreatedAt,
	), nil
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:          r.ID,
		UserID:      r.UserID,
		ListingID:   pgconv.UUIDPtrToPgtype(&r.ListingID),
		ListingName: r.ListingName,
		UnitPrice:   pgconv.NumericFromDecimal(r.UnitPrice),
		CheckIn:     pgtype.Timestamptz{Time: r.CheckIn, Valid: true},
		CheckOut:    pgtype.Timestamptz{Time: r.CheckOut, Valid: true},
		GuestCount:  int32(r.GuestCount),
		PaymentMode: r.PaymentMode,
		Nights:      int32(r.nights()),
		TotalPrice:  pgconv.NumericFromDecimal(r.totalPrice()),
		Paid:        r.Paid,
		PaidAt:      pgconv.TimePtrToPgtype(r.PaidAt),
		CreatedAt:   pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	listingID := r.ListingID
	return &queries.ReservationView{
		ID:          r.ID,
		UserID:      r.UserID,
		ListingID:   &listingID,
		ListingName: r.ListingName,
		UnitPrice:   r.UnitPrice,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		GuestCount:  r.GuestCount,
		PaymentMode: r.PaymentMode,
		Nights:      r.nights(),
		TotalPrice:  r.totalPrice(),
		Paid:        r.Paid,
		PaidAt:      r.PaidAt,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CheckIn:     r.CheckIn.Format("2006-01-02"),
		CheckOut:    r.CheckOut.Format("2006-01-02"),
		GuestCount:  json.RawMessage(strconv.Itoa(r.GuestCount)),
		PaymentMode: r.PaymentMode,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithListingID(listingID uuid.UUID) *ReservationBuilder {
	r.ListingID = listingID
	return r
}

func (r *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	r.CheckIn = checkIn
	r.CheckOut = checkOut
	return r
}

func (r *ReservationBuilder) AsPaid(at time.Time) *ReservationBuilder {
	r.Paid = true
	r.PaidAt = &at
	return r
}
