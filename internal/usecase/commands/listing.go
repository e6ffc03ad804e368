package commands

import (
	"context"
	"log/slog"

	"stayhub/internal/domain/listing"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrHostRequired = errs.MarkAll(errs.New("only hosts can manage listings"), errs.ErrForbidden)
	ErrNotOwner     = errs.MarkAll(errs.New("listing is owned by another host"), errs.ErrForbidden)
)

type CreateListingInput struct {
	Name        string
	Price       decimal.Decimal
	Location    string
	Rating      decimal.Decimal
	ImageURL    *string
	Description string
}

// UpdateListingInput is a partial update. An empty ImageURL removes the image.
type UpdateListingInput struct {
	Name        *string
	Price       *decimal.Decimal
	Location    *string
	Rating      *decimal.Decimal
	ImageURL    *string
	Description *string
}

type ListingCommands interface {
	CreateListing(ctx context.Context, hostID uuid.UUID, role user.Role, in CreateListingInput) (*queries.ListingView, error)
	UpdateListing(ctx context.Context, hostID uuid.UUID, role user.Role, listingID uuid.UUID, in UpdateListingInput) (*queries.ListingView, error)
	DeleteListing(ctx context.Context, hostID uuid.UUID, role user.Role, listingID uuid.UUID) error
}

type listingUseCaseImpl struct {
	uow            shared.UnitOfWork
	listingQueries queries.ListingQueries
	cache          queries.ListingCache
}

func NewListingUseCase(uow shared.UnitOfWork, listingQueries queries.ListingQueries, cache queries.ListingCache) ListingCommands {
	return &listingUseCaseImpl{
		uow:            uow,
		listingQueries: listingQueries,
		cache:          cache,
	}
}

func (uc *listingUseCaseImpl) CreateListing(ctx context.Context, hostID uuid.UUID, role user.Role, in CreateListingInput) (*queries.ListingView, error) {
	if role != user.RoleHost {
		return nil, ErrHostRequired
	}

	l, err := newListing(hostID, in)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Listings().Create(ctx, tx.DB(), l)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	slog.InfoContext(ctx, "listing created", "listing_id", l.ID(), "host_id", hostID)
	return uc.listingQueries.GetByID(ctx, l.ID())
}

func (uc *listingUseCaseImpl) UpdateListing(ctx context.Context, hostID uuid.UUID, role user.Role, listingID uuid.UUID, in UpdateListingInput) (*queries.ListingView, error) {
	if role != user.RoleHost {
		return nil, ErrHostRequired
	}

	changes, err := toChanges(in)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Listings().FindForUpdate(ctx, tx.DB(), listingID)
		if err != nil {
			return err
		}
		if err := l.Apply(hostID, changes); err != nil {
			return err
		}
		return tx.Listings().Update(ctx, tx.DB(), l)
	})
	if err != nil {
		return nil, mapListingWriteErr(err)
	}

	uc.invalidate(ctx, listingID)
	return uc.listingQueries.GetByID(ctx, listingID)
}

func (uc *listingUseCaseImpl) DeleteListing(ctx context.Context, hostID uuid.UUID, role user.Role, listingID uuid.UUID) error {
	if role != user.RoleHost {
		return ErrHostRequired
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Listings().FindForUpdate(ctx, tx.DB(), listingID)
		if err != nil {
			return err
		}
		if err := l.EnsureOwnedBy(hostID); err != nil {
			return err
		}
		return tx.Listings().Delete(ctx, tx.DB(), listingID)
	})
	if err != nil {
		return mapListingWriteErr(err)
	}

	uc.invalidate(ctx, listingID)
	slog.InfoContext(ctx, "listing deleted", "listing_id", listingID, "host_id", hostID)
	return nil
}

func (uc *listingUseCaseImpl) invalidate(ctx context.Context, listingID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, listingID); err != nil {
		slog.WarnContext(ctx, "listing cache invalidation failed", "listing_id", listingID, "error", err.Error())
	}
}

func mapListingWriteErr(err error) error {
	switch {
	case errs.Is(err, listing.ErrNotOwner):
		return ErrNotOwner
	case infra.IsKind(err, infra.KindNotFound):
		return ErrListingNotFound
	default:
		return errs.Mark(err, errs.ErrStorageFailure)
	}
}

func newListing(hostID uuid.UUID, in CreateListingInput) (*listing.Listing, error) {
	name, err := listing.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	price, err := listing.NewPrice(in.Price)
	if err != nil {
		return nil, err
	}
	location, err := listing.NewLocation(in.Location)
	if err != nil {
		return nil, err
	}
	rating, err := listing.NewRating(in.Rating)
	if err != nil {
		return nil, err
	}
	imageURL, err := listing.NewImageURL(in.ImageURL)
	if err != nil {
		return nil, err
	}
	description, err := listing.NewDescription(in.Description)
	if err != nil {
		return nil, err
	}
	return listing.NewListing(hostID, name, price, location, rating, imageURL, description), nil
}

func toChanges(in UpdateListingInput) (listing.Changes, error) {
	var c listing.Changes
	if in.Name != nil {
		v, err := listing.NewName(*in.Name)
		if err != nil {
			return c, err
		}
		c.Name = &v
	}
	if in.Price != nil {
		v, err := listing.NewPrice(*in.Price)
		if err != nil {
			return c, err
		}
		c.Price = &v
	}
	if in.Location != nil {
		v, err := listing.NewLocation(*in.Location)
		if err != nil {
			return c, err
		}
		c.Location = &v
	}
	if in.Rating != nil {
		v, err := listing.NewRating(*in.Rating)
		if err != nil {
			return c, err
		}
		c.Rating = &v
	}
	if in.ImageURL != nil {
		v, err := listing.NewImageURL(in.ImageURL)
		if err != nil {
			return c, err
		}
		c.ImageURL = v
		c.ClearImage = v == nil
	}
	if in.Description != nil {
		v, err := listing.NewDescription(*in.Description)
		if err != nil {
			return c, err
		}
		c.Description = &v
	}
	return c, nil
}
