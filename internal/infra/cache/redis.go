package cache

import (
	"context"
	"log/slog"
	"time"

	"stayhub/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when Redis is disabled or cannot be reached at
// startup. Every consumer treats a nil client as "feature off".
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		slog.Info("redis disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, continuing without it", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	slog.Info("connected to redis", "addr", cfg.Addr, "db", cfg.DB)
	return client
}
