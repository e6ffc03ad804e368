package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingIdentity     = errs.MarkAll(errs.New("caller identity is required"), errs.ErrUnauthenticated)
	ErrListingNotFound     = errs.MarkAll(errs.New("listing not found"), errs.ErrNotFound)
	ErrReservationNotFound = errs.MarkAll(errs.New("reservation not found"), errs.ErrNotFound)
)

const payLockPrefix = "lock:reservation:pay:"

// CreateReservationInput carries the raw booking fields. Client supplied
// nights and totals are never accepted here.
type CreateReservationInput struct {
	ListingID   uuid.UUID
	CheckIn     string
	CheckOut    string
	GuestCount  *int
	PaymentMode string
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, in CreateReservationInput) (*queries.ReservationView, error)
	MarkPaid(ctx context.Context, userID, reservationID uuid.UUID) (*queries.ReservationView, error)
}

type ReservationEvent struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	UserID        uuid.UUID  `json:"user_id"`
	ListingID     uuid.UUID  `json:"listing_id"`
	ListingName   string     `json:"listing_name"`
	Nights        int        `json:"nights"`
	TotalPrice    string     `json:"total_price"`
	PaymentMode   string     `json:"payment_mode"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	locker             shared.Locker
	clock              clock.Clock
	priceCalculator    reservation.PriceCalculator
	payLockTTL         time.Duration
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	locker shared.Locker,
	clk clock.Clock,
	priceCalculator reservation.PriceCalculator,
	payLockTTL time.Duration,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		locker:             locker,
		clock:              clk,
		priceCalculator:    priceCalculator,
		payLockTTL:         payLockTTL,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(ctx context.Context, userID uuid.UUID, in CreateReservationInput) (*queries.ReservationView, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingIdentity
	}

	period, mode, guests, err := parseBookingFields(in)
	if err != nil {
		return nil, err
	}

	snapshot, err := r.listingSnapshot(ctx, in.ListingID)
	if err != nil {
		return nil, err
	}

	services := &reservation.Services{
		Clock:           r.clock,
		PriceCalculator: r.priceCalculator,
	}
	res, err := reservation.NewReservation(services, userID, snapshot, period, guests, mode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		return r.enqueue(ctx, tx, shared.TopicReservationCreated, res)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			// listing removed between the snapshot read and the insert
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	slog.InfoContext(ctx, "reservation created",
		"reservation_id", res.ID(),
		"listing_id", res.ListingID(),
		"nights", res.Nights(),
		"total_price", res.TotalPrice().String())

	// Read-after-write: return the stored record
	return r.reservationQueries.GetByID(ctx, userID, res.ID())
}

// MarkPaid is idempotent: a second call returns the record with its original paidAt.
func (r *reservationUseCaseImpl) MarkPaid(ctx context.Context, userID, reservationID uuid.UUID) (*queries.ReservationView, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingIdentity
	}

	release, err := r.locker.Acquire(ctx, payLockPrefix+reservationID.String(), r.payLockTTL)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	defer release()

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID, userID)
		if err != nil {
			return err
		}

		if !res.MarkPaid(r.clock.Now()) {
			return nil
		}

		changed, err := tx.Reservations().MarkPaid(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return r.enqueue(ctx, tx, shared.TopicReservationPaid, res)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	return r.reservationQueries.GetByID(ctx, userID, reservationID)
}

func (r *reservationUseCaseImpl) listingSnapshot(ctx context.Context, listingID uuid.UUID) (reservation.ListingSnapshot, error) {
	snap, err := r.uow.CommandReads().ListingByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.ListingSnapshot{}, ErrListingNotFound
		}
		return reservation.ListingSnapshot{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	price, err := reservation.NewMoney(snap.Price)
	if err != nil {
		return reservation.ListingSnapshot{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	return reservation.ListingSnapshot{
		ID:    snap.ID,
		Name:  snap.Name,
		Price: price,
	}, nil
}

func (r *reservationUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation) error {
	payload, err := json.Marshal(ReservationEvent{
		ReservationID: res.ID(),
		UserID:        res.UserID(),
		ListingID:     res.ListingID(),
		ListingName:   res.ListingName(),
		Nights:        res.Nights(),
		TotalPrice:    res.TotalPrice().String(),
		PaymentMode:   res.PaymentMode().String(),
		PaidAt:        res.PaidAt(),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), topic, res.ID(), payload, r.clock.Now())
}

func parseBookingFields(in CreateReservationInput) (reservation.StayPeriod, reservation.PaymentMode, reservation.GuestCount, error) {
	period, err := reservation.ParseStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return reservation.StayPeriod{}, "", reservation.GuestCount{}, errs.Mark(err, errs.ErrInvalidInput)
	}

	mode, err := reservation.ParsePaymentMode(in.PaymentMode)
	if err != nil {
		return reservation.StayPeriod{}, "", reservation.GuestCount{}, errs.Mark(err, errs.ErrInvalidInput)
	}

	guests := 1
	if in.GuestCount != nil {
		guests = *in.GuestCount
	}

	return period, mode, reservation.NewGuestCount(guests), nil
}
