package shared

import (
	"context"
	"time"
)

// Locker guards a key across instances. Release is safe to call when nothing was obtained.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
