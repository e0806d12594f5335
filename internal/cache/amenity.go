package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	keyPrefix  = "amenity:"
	DefaultTTL = 5 * time.Minute
)

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type amenityLoader interface {
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
}

// AmenityCache is a read-through cache of amenity definitions. Redis errors
// never fail a lookup; they are logged and the loader is used directly.
// A nil client turns the cache into a passthrough.
type AmenityCache struct {
	client redisClient
	source amenityLoader
	ttl    time.Duration
	logger logger.Logger
}

func NewAmenityCache(client redisClient, source amenityLoader, ttl time.Duration, logger logger.Logger) *AmenityCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &AmenityCache{client: client, source: source, ttl: ttl, logger: logger}
}

func (c *AmenityCache) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	if c.client == nil {
		return c.source.GetByID(ctx, id)
	}

	if a, ok := c.lookup(ctx, id); ok {
		return a, nil
	}

	a, err := c.source.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, a)
	return a, nil
}

func (c *AmenityCache) Invalidate(ctx context.Context, id string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		c.warn(ctx, "amenity cache invalidate failed", id, err)
	}
}

func (c *AmenityCache) lookup(ctx context.Context, id string) (*domain.Amenity, bool) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.warn(ctx, "amenity cache read failed", id, err)
		return nil, false
	}

	var a domain.Amenity
	if err = json.Unmarshal(raw, &a); err != nil {
		c.warn(ctx, "amenity cache entry unreadable", id, err)
		return nil, false
	}
	return &a, true
}

func (c *AmenityCache) store(ctx context.Context, a *domain.Amenity) {
	raw, err := json.Marshal(a)
	if err != nil {
		c.warn(ctx, "amenity cache encode failed", a.ID, err)
		return
	}
	if err = c.client.Set(ctx, key(a.ID), raw, c.ttl).Err(); err != nil {
		c.warn(ctx, "amenity cache write failed", a.ID, err)
	}
}

func (c *AmenityCache) warn(ctx context.Context, msg, id string, err error) {
	c.logger.LogAttrs(ctx, logger.WarnLevel, msg,
		logger.String("amenity_id", id),
		logger.String("error", err.Error()),
	)
}

func key(id string) string {
	return keyPrefix + id
}
