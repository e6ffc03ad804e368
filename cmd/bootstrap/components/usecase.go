package components

import (
	"stayhub/internal/domain/reservation"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewNightlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewListingUseCase,
		commands.NewFavouriteUseCase,
		NewReservationCommands,
		NewOutboxRelay,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewReservationQueries,
		queries.NewFavouriteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewReservationCommands(
	uow shared.UnitOfWork,
	q queries.ReservationQueries,
	locker shared.Locker,
	clk clock.Clock,
	calc reservation.PriceCalculator,
	cfg config.Config,
) commands.ReservationCommands {
	return commands.NewReservationUseCase(uow, q, locker, clk, calc, cfg.Redis.PayLockTTL)
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, cfg config.Config) commands.OutboxRelay {
	return commands.NewOutboxRelay(uow, publisher, clk, cfg.Outbox.BatchSize, cfg.Outbox.MaxAttempts)
}
