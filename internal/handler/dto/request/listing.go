package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateListingRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Price       decimal.Decimal `json:"price"`
	Location    string          `json:"location" binding:"required"`
	Rating      decimal.Decimal `json:"rating"`
	ImageURL    *string         `json:"imageUrl"`
	Description string          `json:"description" binding:"max=2000"`
}

func (r *CreateListingRequest) ToInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Name:        r.Name,
		Price:       r.Price,
		Location:    r.Location,
		Rating:      r.Rating,
		ImageURL:    r.ImageURL,
		Description: r.Description,
	}
}

// UpdateListingRequest is a partial update; send imageUrl "" to remove the image.
type UpdateListingRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	Price       *decimal.Decimal `json:"price"`
	Location    *string          `json:"location"`
	Rating      *decimal.Decimal `json:"rating"`
	ImageURL    *string          `json:"imageUrl"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
}

func (r *UpdateListingRequest) ToInput() commands.UpdateListingInput {
	return commands.UpdateListingInput{
		Name:        r.Name,
		Price:       r.Price,
		Location:    r.Location,
		Rating:      r.Rating,
		ImageURL:    r.ImageURL,
		Description: r.Description,
	}
}
