package shared

import (
	"context"
	"time"

	"stayhub/internal/domain/favourite"
	"stayhub/internal/domain/listing"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/user"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Listings() ListingRepository
	Favourites() FavouriteRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	// FindForUpdate locks the row; a reservation owned by someone else is NOT_FOUND.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) (*reservation.Reservation, error)
	MarkPaid(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (bool, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error)
	Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type FavouriteRepository interface {
	Add(ctx context.Context, tx sqlc.DBTX, fav *favourite.Favourite) error
	Remove(ctx context.Context, tx sqlc.DBTX, userID, listingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, topic string, aggregateID uuid.UUID, payload []byte, runAt time.Time) error
	ClaimBatch(ctx context.Context, tx sqlc.DBTX, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status, lastError string, nextRunAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdatePasswordHash(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, hash string) error
}
