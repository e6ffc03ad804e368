package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartOutboxWorker),
)

// StartOutboxWorker polls the notification outbox until the app stops.
func StartOutboxWorker(lc fx.Lifecycle, relay commands.OutboxRelay, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				runOutbox(ctx, relay, cfg.Outbox.PollInterval, logger)
			}()
			logger.Info("outbox worker started", "interval", cfg.Outbox.PollInterval.String())
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				logger.Info("outbox worker stopped")
			case <-stopCtx.Done():
				logger.Warn("outbox worker did not stop in time")
			}
			return nil
		},
	})
}

func runOutbox(ctx context.Context, relay commands.OutboxRelay, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent, err := relay.RelayBatch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Error("outbox relay failed", "error", err.Error())
				continue
			}
			if sent > 0 {
				logger.Debug("outbox relayed", "sent", sent)
			}
		}
	}
}
