package cache

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Belphemur/ShowBrowser/internal/metrics"
)

// memoryCache is an in-process LRU with per-entry expiry
type memoryCache struct {
	lru       *expirable.LRU[string, []byte]
	evictions prometheus.Counter
}

func newMemoryCache(opts Options) *memoryCache {
	return &memoryCache{
		lru:       expirable.NewLRU[string, []byte](opts.Size, nil, opts.TTL),
		evictions: metrics.CacheEvictionsTotal.WithLabelValues(opts.Group),
	}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	return m.lru.Get(key)
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte) {
	if m.lru.Add(key, value) {
		m.evictions.Inc()
	}
}

func (m *memoryCache) Len() int {
	return m.lru.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
