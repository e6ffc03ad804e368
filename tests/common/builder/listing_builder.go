//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/listing"
	reqdto "stayhub/internal/handler/dto/request"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ListingBuilder struct {
	ID          uuid.UUID
	HostID      uuid.UUID
	Name        string
	Price       decimal.Decimal
	Location    string
	Rating      decimal.Decimal
	ImageURL    *string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now().UTC()
	return &ListingBuilder{
		ID:          uuid.New(),
		HostID:      uuid.New(),
		Name:        "L1",
		Price:       decimal.NewFromInt(100),
		Location:    "Lisbon",
		Rating:      decimal.RequireFromString("4.5"),
		Description: "Sunny flat near the river",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

// Build methods
func (l *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	name, err := listing.NewName(l.Name)
	if err != nil {
		return nil, err
	}
	price, err := listing.NewPrice(l.Price)
	if err != nil {
		return nil, err
	}
	location, err := listing.NewLocation(l.Location)
	if err != nil {
		return nil, err
	}
	rating, err := listing.NewRating(l.Rating)
	if err != nil {
		return nil, err
	}
	imageURL, err := listing.NewImageURL(l.ImageURL)
	if err != nil {
		return nil, err
	}
	description, err := listing.NewDescription(l.Description)
	if err != nil {
		return nil, err
	}

	return listing.ReconstructListing(l.ID, l.HostID, name, price, location, rating, imageURL, description, l.CreatedAt, l.UpdatedAt), nil
}

func (l *ListingBuilder) BuildInfra() sqlc.Listings {
	return sqlc.Listings{
		ID:          l.ID,
		HostID:      l.HostID,
		Name:        l.Name,
		Price:       pgconv.NumericFromDecimal(l.Price),
		Location:    l.Location,
		Rating:      pgconv.NumericFromDecimal(l.Rating),
		ImageUrl:    pgconv.StringPtrToPgtype(l.ImageURL),
		Description: l.Description,
		CreatedAt:   pgtype.Timestamptz{Time: l.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: l.UpdatedAt, Valid: true},
	}
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:          l.ID,
		HostID:      l.HostID,
		Name:        l.Name,
		Price:       l.Price,
		Location:    l.Location,
		Rating:      l.Rating,
		ImageURL:    l.ImageURL,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (l *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:     l.ID,
		HostID: l.HostID,
		Name:   l.Name,
		Price:  l.Price,
	}
}

func (l *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Name:        l.Name,
		Price:       l.Price,
		Location:    l.Location,
		Rating:      l.Rating,
		ImageURL:    l.ImageURL,
		Description: l.Description,
	}
}

// Fluent builder methods
func (l *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	l.ID = id
	return l
}

func (l *ListingBuilder) WithHostID(hostID uuid.UUID) *ListingBuilder {
	l.HostID = hostID
	return l
}

func (l *ListingBuilder) WithName(name string) *ListingBuilder {
	l.Name = name
	return l
}

func (l *ListingBuilder) WithPrice(price string) *ListingBuilder {
	l.Price = decimal.RequireFromString(price)
	return l
}

func (l *ListingBuilder) WithImageURL(url string) *ListingBuilder {
	l.ImageURL = &url
	return l
}
