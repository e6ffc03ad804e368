package request

import (
	"encoding/json"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateReservationRequest has no nights or total fields: both are always computed server side.
type CreateReservationRequest struct {
	CheckIn     string          `json:"checkIn" binding:"required"`
	CheckOut    string          `json:"checkOut" binding:"required"`
	GuestCount  json.RawMessage `json:"guests,omitempty" swaggertype:"integer"`
	PaymentMode string          `json:"paymentMode"`
}

func (r *CreateReservationRequest) ToInput(listingID uuid.UUID) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ListingID:   listingID,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		GuestCount:  parseGuests(r.GuestCount),
		PaymentMode: r.PaymentMode,
	}
}

// parseGuests returns nil unless guests is a whole JSON number in range.
// Strings, fractions and out of range values book a single guest.
func parseGuests(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	if n < 1 || n > reservation.MaxGuestCount {
		return nil
	}
	return &n
}
