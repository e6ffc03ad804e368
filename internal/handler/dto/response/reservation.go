package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	ListingID   *uuid.UUID `json:"listingId"`
	ListingName string     `json:"listingName"`
	UnitPrice   string     `json:"unitPrice"`
	CheckIn     time.Time  `json:"checkIn"`
	CheckOut    time.Time  `json:"checkOut"`
	GuestCount  int        `json:"guests"`
	PaymentMode string     `json:"paymentMode"`
	Nights      int        `json:"nights"`
	TotalPrice  string     `json:"totalPrice"`
	Paid        bool       `json:"paid"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// BookedResponse keeps the flat fields older clients read next to the full record.
type BookedResponse struct {
	Message     string               `json:"message"`
	Nights      int                  `json:"nights"`
	TotalPrice  string               `json:"totalPrice"`
	BookingID   uuid.UUID            `json:"bookingId"`
	Reservation *ReservationResponse `json:"reservation"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		r, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func NewBookedResponse(v *queries.ReservationView) (*BookedResponse, error) {
	r, err := FromReservationView(v)
	if err != nil {
		return nil, err
	}
	return &BookedResponse{
		Message:     "Booked",
		Nights:      r.Nights,
		TotalPrice:  r.TotalPrice,
		BookingID:   r.ID,
		Reservation: r,
	}, nil
}
