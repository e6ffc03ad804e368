package lock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	retryInterval = 50 * time.Millisecond
	retryLimit    = 20
)

// RedisLocker is a best-effort cross-instance guard. The row lock taken in
// the database stays the source of truth, so a lock that cannot be obtained
// is logged and the caller proceeds.
type RedisLocker struct {
	client *redislock.Client
}

func NewRedisLocker(client *redis.Client) shared.Locker {
	if client == nil {
		return NopLocker{}
	}
	return &RedisLocker{client: redislock.New(client)}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	opts := &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(retryInterval), retryLimit),
	}

	lk, err := l.client.Obtain(ctx, key, ttl, opts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return noop, errs.Wrap(ctxErr, "acquire lock")
		}
		if errors.Is(err, redislock.ErrNotObtained) {
			slog.WarnContext(ctx, "lock not obtained, relying on row lock", "key", key)
		} else {
			slog.WarnContext(ctx, "lock backend failed, relying on row lock", "key", key, "error", err.Error())
		}
		return noop, nil
	}

	return func() {
		// release with a fresh context so a cancelled request still frees the key
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := lk.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			slog.Warn("lock release failed", "key", key, "error", err.Error())
		}
	}, nil
}

type NopLocker struct{}

func (NopLocker) Acquire(context.Context, string, time.Duration) (func(), error) {
	return noop, nil
}

func noop() {}
