package reservation

import (
	"time"

	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

// ListingSnapshot is the part of a listing copied onto a reservation at booking time.
type ListingSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price Money
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Reservation struct {
	id          uuid.UUID
	userID      uuid.UUID
	listingID   uuid.UUID
	listingName string
	unitPrice   Money
	period      StayPeriod
	guests      GuestCount
	paymentMode PaymentMode
	totalPrice  Money
	paid        bool
	paidAt      *time.Time
	createdAt   time.Time
}

func NewReservation(
	services *Services,
	userID uuid.UUID,
	listing ListingSnapshot,
	period StayPeriod,
	guests GuestCount,
	mode PaymentMode,
) (*Reservation, error) {
	if !mode.IsValid() {
		return nil, ErrInvalidPaymentMode
	}
	total := services.PriceCalculator.TotalPrice(listing.Price, period)
	if total.Amount().IsNegative() {
		return nil, ErrNegativePrice
	}
	if total.Amount().GreaterThanOrEqual(maxTotal) {
		return nil, ErrTotalTooLarge
	}

	return &Reservation{
		id:          uuid.New(),
		userID:      userID,
		listingID:   listing.ID,
		listingName: listing.Name,
		unitPrice:   listing.Price,
		period:      period,
		guests:      guests,
		paymentMode: mode,
		totalPrice:  total,
		createdAt:   services.Clock.Now(),
	}, nil
}

func ReconstructReservation(
	id, userID, listingID uuid.UUID,
	listingName string,
	unitPrice Money,
	period StayPeriod,
	guests GuestCount,
	mode PaymentMode,
	totalPrice Money,
	paid bool,
	paidAt *time.Time,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		userID:      userID,
		listingID:   listingID,
		listingName: listingName,
		unitPrice:   unitPrice,
		period:      period,
		guests:      guests,
		paymentMode: mode,
		totalPrice:  totalPrice,
		paid:        paid,
		paidAt:      paidAt,
		createdAt:   createdAt,
	}
}

// MarkPaid reports false when the reservation was already paid; paidAt is kept.
func (r *Reservation) MarkPaid(now time.Time) bool {
	if r.paid {
		return false
	}
	r.paid = true
	r.paidAt = &now
	return true
}

func (r *Reservation) BelongsTo(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) Nights() int { return r.period.Nights() }

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) UserID() uuid.UUID        { return r.userID }
func (r *Reservation) ListingID() uuid.UUID     { return r.listingID }
func (r *Reservation) ListingName() string      { return r.listingName }
func (r *Reservation) UnitPrice() Money         { return r.unitPrice }
func (r *Reservation) Period() StayPeriod       { return r.period }
func (r *Reservation) Guests() GuestCount       { return r.guests }
func (r *Reservation) PaymentMode() PaymentMode { return r.paymentMode }
func (r *Reservation) TotalPrice() Money        { return r.totalPrice }
func (r *Reservation) IsPaid() bool             { return r.paid }
func (r *Reservation) PaidAt() *time.Time       { return r.paidAt }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
