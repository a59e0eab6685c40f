package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rpatodia/tickettriage/internal/config"
)

// RedisCache implements Cache on go-redis/v9 for deployments that want
// classifications shared across replicas. Entry bounding is delegated to the
// Redis maxmemory policy (allkeys-lru recommended); TTL keeps stale
// classifications from living forever. In-flight deduplication is
// per-process only.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration

	mu       sync.Mutex
	inflight map[string]*call
}

// NewRedisCache creates a RedisCache from configuration.
func NewRedisCache(cfg config.CacheConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	ttl := time.Duration(cfg.TTLSecs) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{
		client:   redis.NewClient(opts),
		ttl:      ttl,
		inflight: make(map[string]*call),
	}, nil
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, classificationKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, classificationKey(key), value, c.ttl).Err()
}

func (c *RedisCache) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) ([]byte, error) {
	if val, ok, err := c.Get(ctx, key); err == nil && ok {
		return val, nil
	}

	c.mu.Lock()
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-cl.done:
			return cl.value, cl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	cl := &call{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.value, cl.err = compute(ctx)
	if cl.err == nil {
		// Best effort: a failed write only costs a recompute later.
		_ = c.Set(ctx, key, cl.value)
	}

	c.mu.Lock()
	delete(c.inflight, key)
	c.mu.Unlock()
	close(cl.done)

	return cl.value, cl.err
}

func classificationKey(fingerprint string) string {
	return "triage:classification:" + fingerprint
}

var _ Cache = (*RedisCache)(nil)
