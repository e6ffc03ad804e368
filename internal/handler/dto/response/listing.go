package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingResponse struct {
	ID          uuid.UUID `json:"id"`
	HostID      uuid.UUID `json:"hostId"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Location    string    `json:"location"`
	Rating      float64   `json:"rating"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListingPageResponse struct {
	Items      []*ListingResponse `json:"items"`
	NextCursor string             `json:"nextCursor,omitempty"`
}

type FavouriteResponse struct {
	ListingResponse
	FavouritedAt time.Time `json:"favouritedAt"`
}

func FromListingView(v *queries.ListingView) (*ListingResponse, error) {
	var out ListingResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromListingViews(views []*queries.ListingView) ([]*ListingResponse, error) {
	out := make([]*ListingResponse, 0, len(views))
	for _, v := range views {
		r, err := FromListingView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func FromFavouriteViews(views []*queries.FavouriteListingView) ([]*FavouriteResponse, error) {
	out := make([]*FavouriteResponse, 0, len(views))
	for _, v := range views {
		l, err := FromListingView(&v.ListingView)
		if err != nil {
			return nil, err
		}
		out = append(out, &FavouriteResponse{ListingResponse: *l, FavouritedAt: v.FavouritedAt})
	}
	return out, nil
}
