package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCacheConfig configures the suggestion cache connection and key TTL.
type RedisCacheConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	// Prefix namespaces cache keys. Default: "keywords:suggest".
	Prefix string
	// TTL bounds how long a seed's suggestions stay cached. Default: 24h.
	TTL time.Duration
}

// RedisCache caches upstream suggestion responses so repeated runs against
// the same seeds do not hammer the suggest endpoint. Cache misses and Redis
// errors both read as misses; the adapter falls through to the network.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies connectivity with a ping.
func NewRedisCache(cfg RedisCacheConfig) (*RedisCache, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "keywords:suggest"
	}
	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisCache{client: client, prefix: cfg.Prefix, ttl: cfg.TTL}, nil
}

// Get returns the cached suggestion list for a seed, if present.
func (c *RedisCache) Get(ctx context.Context, seed string) ([]string, bool) {
	raw, err := c.client.Get(ctx, c.key(seed)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Warning: suggestion cache read failed: %v", err)
		return nil, false
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		log.Printf("Warning: discarding corrupt cache entry for %q: %v", seed, err)
		return nil, false
	}
	return suggestions, true
}

// Set stores a seed's suggestion list with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, seed string, suggestions []string) {
	raw, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(seed), raw, c.ttl).Err(); err != nil {
		log.Printf("Warning: suggestion cache write failed: %v", err)
	}
}

// Close closes the underlying Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(seed string) string {
	return c.prefix + ":" + seed
}
