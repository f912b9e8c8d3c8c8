package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/cache"
)

// RefListCache keeps slow-moving reference lists (categories, catalogues,
// units, warehouse types) in Redis. Duplicate checks never read from it;
// the workflow always fetches live data for the conflict gate.
type RefListCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *MetricsService
	logger  *zap.Logger
}

// NewRefListCache constructs the cache. A nil redis client disables it.
func NewRefListCache(client *redis.Client, ttl time.Duration, metrics *MetricsService, logger *zap.Logger) *RefListCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RefListCache{client: client, ttl: ttl, metrics: metrics, logger: logger}
}

func (c *RefListCache) key(entity string) string { return cache.Key("reflist", entity) }

// Get returns the cached payload for an entity list, or (nil, false).
func (c *RefListCache) Get(ctx context.Context, entity string) (json.RawMessage, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	start := time.Now()
	raw, err := c.client.Get(ctx, c.key(entity)).Bytes()
	hit := err == nil
	c.metrics.RecordCacheOperation(hit, time.Since(start))
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("reference list cache read failed", zap.String("entity", entity), zap.Error(err))
		}
		return nil, false
	}
	return raw, true
}

// Set stores one entity list; failures are logged and ignored.
func (c *RefListCache) Set(ctx context.Context, entity string, data interface{}) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(entity), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("reference list cache write failed", zap.String("entity", entity), zap.Error(err))
	}
}

// Invalidate drops one entity's cached list after a successful mutation.
func (c *RefListCache) Invalidate(ctx context.Context, entity string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.key(entity)).Err(); err != nil {
		c.logger.Warn("reference list cache invalidation failed", zap.String("entity", entity), zap.Error(err))
	}
}
