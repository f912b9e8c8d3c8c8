package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/config"
)

// Namespace prefixes every gateway key; the Redis database may be shared
// with other SGI services.
const Namespace = "sgi:gateway"

// Key builds a namespaced cache key from its segments.
func Key(parts ...string) string {
	return Namespace + ":" + strings.Join(parts, ":")
}

// NewRedis returns a configured Redis client.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
