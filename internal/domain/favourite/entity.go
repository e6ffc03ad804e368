package favourite

import (
	"time"

	"github.com/google/uuid"
)

type Favourite struct {
	userID    uuid.UUID
	listingID uuid.UUID
	createdAt time.Time
}

func NewFavourite(userID, listingID uuid.UUID, now time.Time) *Favourite {
	return &Favourite{
		userID:    userID,
		listingID: listingID,
		createdAt: now,
	}
}

func (f *Favourite) UserID() uuid.UUID    { return f.userID }
func (f *Favourite) ListingID() uuid.UUID { return f.listingID }
func (f *Favourite) CreatedAt() time.Time { return f.createdAt }
