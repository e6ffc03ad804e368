package bootstrap

import (
	"context"

	"stayhub/internal/infra/broker"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	publisher, cleanup, err := broker.NewPublisher(cfg.Broker)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
