//go:build unit

package listing_test

import (
	"strings"
	"testing"

	"stayhub/internal/domain/listing"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "L1", actual.Name().String())
		assert.Equal(t, "100.00", actual.Price().Amount().StringFixed(2))
		assert.Equal(t, "4.5", actual.Rating().Value().String())
		assert.Nil(t, actual.ImageURL())
	})

	runCases(t, []testCase{
		{name: "blank name", mutate: func(b *builder.ListingBuilder) { b.Name = "   " }, errIs: listing.ErrEmptyName},
		{name: "long name", mutate: func(b *builder.ListingBuilder) { b.Name = strings.Repeat("a", 256) }, errIs: listing.ErrNameTooLong},
		{name: "zero price", mutate: func(b *builder.ListingBuilder) { b.WithPrice("0") }, errIs: listing.ErrInvalidPrice},
		{name: "negative price", mutate: func(b *builder.ListingBuilder) { b.WithPrice("-5") }, errIs: listing.ErrInvalidPrice},
		{name: "blank location", mutate: func(b *builder.ListingBuilder) { b.Location = "" }, errIs: listing.ErrEmptyLocation},
		{name: "rating 0", mutate: func(b *builder.ListingBuilder) { b.Rating = decimal.Zero }},
		{name: "rating 5", mutate: func(b *builder.ListingBuilder) { b.Rating = decimal.NewFromInt(5) }},
		{name: "rating 5.1", mutate: func(b *builder.ListingBuilder) { b.Rating = decimal.RequireFromString("5.1") }, errIs: listing.ErrInvalidRating},
		{name: "https image", mutate: func(b *builder.ListingBuilder) { b.WithImageURL("https://cdn.example.com/a.jpg") }},
		{name: "ftp image", mutate: func(b *builder.ListingBuilder) { b.WithImageURL("ftp://cdn.example.com/a.jpg") }, errIs: listing.ErrInvalidImageURL},
		{name: "relative image", mutate: func(b *builder.ListingBuilder) { b.WithImageURL("a.jpg") }, errIs: listing.ErrInvalidImageURL},
		{name: "blank image means none", mutate: func(b *builder.ListingBuilder) { b.WithImageURL("  ") }},
		{name: "long description", mutate: func(b *builder.ListingBuilder) { b.Description = strings.Repeat("d", 2001) }, errIs: listing.ErrDescriptionTooLong},
	})
}

func TestListing_Apply(t *testing.T) {
	hostID := uuid.New()
	l, err := builder.NewListingBuilder().WithHostID(hostID).WithImageURL("https://cdn.example.com/a.jpg").BuildDomain()
	require.NoError(t, err)

	t.Run("other host", func(t *testing.T) {
		name, _ := listing.NewName("Stolen")
		err := l.Apply(uuid.New(), listing.Changes{Name: &name})
		assert.ErrorIs(t, err, listing.ErrNotOwner)
		assert.Equal(t, "L1", l.Name().String())
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		price, _ := listing.NewPrice(decimal.NewFromInt(150))
		require.NoError(t, l.Apply(hostID, listing.Changes{Price: &price}))
		assert.Equal(t, "150", l.Price().Amount().String())
		assert.Equal(t, "L1", l.Name().String())
		require.NotNil(t, l.ImageURL())
	})

	t.Run("clear image", func(t *testing.T) {
		require.NoError(t, l.Apply(hostID, listing.Changes{ClearImage: true}))
		assert.Nil(t, l.ImageURL())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
