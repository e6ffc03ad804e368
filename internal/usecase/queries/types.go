package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationView is a ledger record with its derived night count.
type ReservationView struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	ListingID   *uuid.UUID      `json:"listing_id,omitempty"`
	ListingName string          `json:"listing_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CheckIn     time.Time       `json:"check_in"`
	CheckOut    time.Time       `json:"check_out"`
	GuestCount  int             `json:"guest_count"`
	PaymentMode string          `json:"payment_mode"`
	Nights      int             `json:"nights"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Paid        bool            `json:"paid"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ListingView struct {
	ID          uuid.UUID       `json:"id"`
	HostID      uuid.UUID       `json:"host_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Location    string          `json:"location"`
	Rating      decimal.Decimal `json:"rating"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type FavouriteListingView struct {
	ListingView
	FavouritedAt time.Time `json:"favourited_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

const (
	RoleGuest = "guest"
	RoleHost  = "host"
)
