package repository

import (
	"context"

	"stayhub/internal/domain/listing"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.CreateListingRow, error)
	GetListingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	UpdateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingParams) error
	DeleteListing(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
}

func NewListingRepository(queries ListingWriteQueries) *ListingRepository {
	return &ListingRepository{
		queries: queries,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	params := sqlc.CreateListingParams{
		ID:          l.ID(),
		HostID:      l.HostID(),
		Name:        l.Name().String(),
		Price:       pgconv.NumericFromDecimal(l.Price().Amount()),
		Location:    l.Location().String(),
		Rating:      pgconv.NumericFromDecimal(l.Rating().Value()),
		ImageUrl:    imageURLToPgtype(l.ImageURL()),
		Description: l.Description().String(),
	}

	if _, err := r.queries.CreateListing(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.GetListingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}

	l, err := toListingDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct listing", err)
	}
	return l, nil
}

func (r *ListingRepository) Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	params := sqlc.UpdateListingParams{
		ID:          l.ID(),
		Name:        l.Name().String(),
		Price:       pgconv.NumericFromDecimal(l.Price().Amount()),
		Location:    l.Location().String(),
		Rating:      pgconv.NumericFromDecimal(l.Rating().Value()),
		ImageUrl:    imageURLToPgtype(l.ImageURL()),
		Description: l.Description().String(),
	}

	if err := r.queries.UpdateListing(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteListing(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func imageURLToPgtype(u *listing.ImageURL) pgtype.Text {
	if u == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: u.String(), Valid: true}
}

func toListingDomain(row sqlc.Listings) (*listing.Listing, error) {
	priceDec, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	ratingDec, err := pgconv.DecimalFromNumeric(row.Rating)
	if err != nil {
		return nil, err
	}

	name, err := listing.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	price, err := listing.NewPrice(priceDec)
	if err != nil {
		return nil, err
	}
	location, err := listing.NewLocation(row.Location)
	if err != nil {
		return nil, err
	}
	rating, err := listing.NewRating(ratingDec)
	if err != nil {
		return nil, err
	}
	imageURL, err := listing.NewImageURL(pgconv.StringPtrFromPgtype(row.ImageUrl))
	if err != nil {
		return nil, err
	}
	description, err := listing.NewDescription(row.Description)
	if err != nil {
		return nil, err
	}

	return listing.ReconstructListing(
		row.ID,
		row.HostID,
		name,
		price,
		location,
		rating,
		imageURL,
		description,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
