package listing

import (
	"time"

	"stayhub/internal/pkg/patch"

	"github.com/google/uuid"
)

type Listing struct {
	id          uuid.UUID
	hostID      uuid.UUID
	name        Name
	price       Price
	location    Location
	rating      Rating
	imageURL    *ImageURL
	description Description
	createdAt   time.Time
	updatedAt   time.Time
}

func NewListing(
	hostID uuid.UUID,
	name Name,
	price Price,
	location Location,
	rating Rating,
	imageURL *ImageURL,
	description Description,
) *Listing {
	return &Listing{
		id:          uuid.New(),
		hostID:      hostID,
		name:        name,
		price:       price,
		location:    location,
		rating:      rating,
		imageURL:    imageURL,
		description: description,
	}
}

func ReconstructListing(
	id, hostID uuid.UUID,
	name Name,
	price Price,
	location Location,
	rating Rating,
	imageURL *ImageURL,
	description Description,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:          id,
		hostID:      hostID,
		name:        name,
		price:       price,
		location:    location,
		rating:      rating,
		imageURL:    imageURL,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Changes carries a partial update; nil fields are left as they are.
type Changes struct {
	Name        *Name
	Price       *Price
	Location    *Location
	Rating      *Rating
	ImageURL    *ImageURL
	ClearImage  bool
	Description *Description
}

func (l *Listing) Apply(actorID uuid.UUID, c Changes) error {
	if err := l.EnsureOwnedBy(actorID); err != nil {
		return err
	}
	l.name = patch.Coalesce(c.Name, l.name)
	l.price = patch.Coalesce(c.Price, l.price)
	l.location = patch.Coalesce(c.Location, l.location)
	l.rating = patch.Coalesce(c.Rating, l.rating)
	if c.ClearImage {
		l.imageURL = nil
	} else if c.ImageURL != nil {
		l.imageURL = c.ImageURL
	}
	l.description = patch.Coalesce(c.Description, l.description)
	return nil
}

func (l *Listing) EnsureOwnedBy(hostID uuid.UUID) error {
	if l.hostID != hostID {
		return ErrNotOwner
	}
	return nil
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) HostID() uuid.UUID        { return l.hostID }
func (l *Listing) Name() Name               { return l.name }
func (l *Listing) Price() Price             { return l.price }
func (l *Listing) Location() Location       { return l.location }
func (l *Listing) Rating() Rating           { return l.rating }
func (l *Listing) ImageURL() *ImageURL      { return l.imageURL }
func (l *Listing) Description() Description { return l.description }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time     { return l.updatedAt }
