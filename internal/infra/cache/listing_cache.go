package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const listingKeyPrefix = "listing:"

type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache falls back to a no-op cache when client is nil.
func NewListingCache(client *redis.Client, ttl time.Duration) queries.ListingCache {
	if client == nil {
		return queries.NopListingCache{}
	}
	return &ListingCache{client: client, ttl: ttl}
}

func listingKey(id uuid.UUID) string {
	return listingKeyPrefix + id.String()
}

func (c *ListingCache) Get(ctx context.Context, id uuid.UUID) (*queries.ListingView, bool, error) {
	raw, err := c.client.Get(ctx, listingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "listing cache get")
	}

	var view queries.ListingView
	if err := json.Unmarshal(raw, &view); err != nil {
		// a corrupt entry is dropped and treated as a miss
		_ = c.client.Del(ctx, listingKey(id)).Err()
		return nil, false, nil
	}
	return &view, true, nil
}

func (c *ListingCache) Set(ctx context.Context, view *queries.ListingView) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "listing cache encode")
	}
	if err := c.client.Set(ctx, listingKey(view.ID), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "listing cache set")
	}
	return nil
}

func (c *ListingCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, listingKey(id)).Err(); err != nil {
		return errs.Wrap(err, "listing cache invalidate")
	}
	return nil
}
