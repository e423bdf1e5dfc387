// Package cache is a read-through redis cache for upstream list responses.
// Only the lookup collections behind the inventory join are cached; balances
// and movements are always fetched fresh.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	logger "github.com/omniful/go_commons/log"
)

// Key prefixes, one per cached collection. Full keys are prefix + companyID.
const (
	KeyVariantsPrefix   = "cache:product_variants:"
	KeyFamiliesPrefix   = "cache:product_families:"
	KeyWarehousesPrefix = "cache:warehouses:"
)

const defaultTTL = 60 * time.Second

// Cache wraps a redis client. A nil *Cache is valid and never hits.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetList reads a cached collection. A miss, an unreachable redis, or a
// corrupt entry all report !ok; the caller falls through to the upstream.
func GetList[T any](ctx context.Context, c *Cache, key string) (items []T, ok bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		c.rdb.Del(ctx, key)
		return nil, false
	}
	return items, true
}

// PutList stores a collection with the configured TTL. Failures are logged
// and swallowed; caching is best effort.
func PutList[T any](ctx context.Context, c *Cache, key string, items []T) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Error("failed to cache " + key + ": " + err.Error())
	}
}

// Invalidate drops cache entries after a write so the next read refetches.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Error("failed to invalidate cache: " + err.Error())
	}
}
