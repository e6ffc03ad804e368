package components

import (
	"stayhub/internal/infra/cache"
	"stayhub/internal/infra/lock"
	"stayhub/internal/infra/readstore"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/infra/uow"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
	redisBackedModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Listing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ListingReadQueries)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Favourite
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FavouriteReadQueries)),
		),
		fx.Annotate(
			readstore.NewFavouriteReadStore,
			fx.As(new(queries.FavouriteReadStore)),
		),
	),
)

// Repositories are created per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var redisBackedModule = fx.Module("persistence/redis",
	fx.Provide(
		NewListingCache,
		lock.NewRedisLocker,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewListingCache(rdb *redis.Client, cfg config.Config) queries.ListingCache {
	return cache.NewListingCache(rdb, cfg.Redis.ListingCacheTTL)
}
