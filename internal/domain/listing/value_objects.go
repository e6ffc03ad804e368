package listing

import (
	"errors"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNameTooLong        = errors.New("name is too long (max 255 characters)")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrEmptyLocation      = errors.New("location cannot be empty")
	ErrInvalidRating      = errors.New("rating must be between 0 and 5")
	ErrInvalidImageURL    = errors.New("imageUrl must be an absolute http(s) URL")
	ErrDescriptionTooLong = errors.New("description is too long (max 2000 characters)")
	ErrNotOwner           = errors.New("listing is owned by another host")
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
)

var maxRating = decimal.NewFromInt(5)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Price struct {
	amount decimal.Decimal
}

func NewPrice(d decimal.Decimal) (Price, error) {
	if !d.IsPositive() {
		return Price{}, ErrInvalidPrice
	}
	return Price{amount: d.Round(2)}, nil
}

func (p Price) Amount() decimal.Decimal { return p.amount }

type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, ErrEmptyLocation
	}
	return Location{value: s}, nil
}

func (l Location) String() string { return l.value }

type Rating struct {
	value decimal.Decimal
}

func NewRating(d decimal.Decimal) (Rating, error) {
	if d.IsNegative() || d.GreaterThan(maxRating) {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: d.Round(1)}, nil
}

func (r Rating) Value() decimal.Decimal { return r.value }

type ImageURL struct {
	value string
}

// NewImageURL accepts nil or blank as "no image".
func NewImageURL(s *string) (*ImageURL, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	raw := strings.TrimSpace(*s)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidImageURL
	}
	return &ImageURL{value: raw}, nil
}

func (i *ImageURL) String() string { return i.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: s}, nil
}

func (d Description) String() string { return d.value }
