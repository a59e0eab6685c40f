// Package cache provides the bounded classification cache. Entries are
// opaque byte payloads keyed by a normalized-text fingerprint, so the cache
// carries no dependency on the classifier's types.
package cache

import (
	"context"
	"fmt"

	"github.com/rpatodia/tickettriage/internal/config"
)

// ComputeFunc produces the value for a key on a cache miss.
type ComputeFunc func(ctx context.Context) ([]byte, error)

// Cache is the classification cache interface. Implementations must be safe
// for concurrent use and must keep their entry count bounded.
type Cache interface {
	// Get returns the cached value for key, if present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value, evicting per the implementation's policy when full.
	Set(ctx context.Context, key string, value []byte) error
	// GetOrCompute returns the cached value for key, or runs compute exactly
	// once per in-flight key and caches the result. Compute errors are
	// returned without caching.
	GetOrCompute(ctx context.Context, key string, compute ComputeFunc) ([]byte, error)
}

// New builds a Cache from configuration.
func New(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case config.CacheMemory:
		return NewMemoryCache(cfg.Size), nil
	case config.CacheRedis:
		return NewRedisCache(cfg)
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}
