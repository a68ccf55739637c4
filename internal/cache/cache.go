// Package cache keeps raw TVMaze response bodies so repeated searches and
// episode lookups are answered without going back to the network.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Supported backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

const defaultGroup = "default"

// Cache stores response bodies by key. Entries expire after the configured TTL.
type Cache interface {
	// Get returns the stored body and true, or nil and false on a miss or a backend error.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key, overwriting any previous entry.
	// Backend errors are logged, never returned.
	Set(ctx context.Context, key string, value []byte)

	// Len returns the number of live entries.
	Len() int

	Close() error
}

// RedisOptions locates the Redis/Valkey server backing a redis cache
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

// Options configures a cache instance
type Options struct {
	// Size bounds the number of entries; the oldest are evicted first.
	Size int
	TTL  time.Duration

	// Group labels the metrics of this instance and namespaces its Redis keys.
	Group string

	Logger zerolog.Logger

	// Registerer receives the entries gauge of this instance. Nil skips it.
	Registerer prometheus.Registerer

	Redis RedisOptions
}

// New creates a cache on the named backend, instrumented with hit, miss and eviction metrics
func New(backend string, opts Options) (Cache, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("cache: size must be positive, got %d", opts.Size)
	}
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("cache: ttl must be positive, got %s", opts.TTL)
	}
	if opts.Group == "" {
		opts.Group = defaultGroup
	}

	var (
		inner Cache
		err   error
	)
	switch backend {
	case BackendMemory:
		inner = newMemoryCache(opts)
	case BackendRedis:
		inner, err = newRedisCache(opts)
	default:
		return nil, fmt.Errorf("cache: unknown backend %q (want %q or %q)", backend, BackendMemory, BackendRedis)
	}
	if err != nil {
		return nil, err
	}

	return newInstrumentedCache(inner, opts), nil
}
