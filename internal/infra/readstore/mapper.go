package readstore

import (
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"
)

func toListingView(row sqlc.Listings) (*queries.ListingView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	rating, err := pgconv.DecimalFromNumeric(row.Rating)
	if err != nil {
		return nil, err
	}
	return &queries.ListingView{
		ID:          row.ID,
		HostID:      row.HostID,
		Name:        row.Name,
		Price:       price,
		Location:    row.Location,
		Rating:      rating,
		ImageURL:    pgconv.StringPtrFromPgtype(row.ImageUrl),
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toListingViews(rows []sqlc.Listings) ([]*queries.ListingView, error) {
	views := make([]*queries.ListingView, 0, len(rows))
	for _, row := range rows {
		v, err := toListingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toReservationView(row sqlc.Reservations) (*queries.ReservationView, error) {
	unitPrice, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	return &queries.ReservationView{
		ID:          row.ID,
		UserID:      row.UserID,
		ListingID:   pgconv.UUIDPtrFromPgtype(row.ListingID),
		ListingName: row.ListingName,
		UnitPrice:   unitPrice,
		CheckIn:     pgconv.TimeFromPgtype(row.CheckIn),
		CheckOut:    pgconv.TimeFromPgtype(row.CheckOut),
		GuestCount:  int(row.GuestCount),
		PaymentMode: row.PaymentMode,
		Nights:      int(row.Nights),
		TotalPrice:  total,
		Paid:        row.Paid,
		PaidAt:      pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
