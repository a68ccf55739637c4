package cache

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Belphemur/ShowBrowser/internal/metrics"
)

// instrumentedCache counts hits and misses of the wrapped cache and exposes
// its size as a gauge read at scrape time
type instrumentedCache struct {
	inner      Cache
	hits       prometheus.Counter
	misses     prometheus.Counter
	entries    prometheus.Collector
	registerer prometheus.Registerer
}

func newInstrumentedCache(inner Cache, opts Options) *instrumentedCache {
	c := &instrumentedCache{
		inner:  inner,
		hits:   metrics.CacheLookupsTotal.WithLabelValues(opts.Group, "hit"),
		misses: metrics.CacheLookupsTotal.WithLabelValues(opts.Group, "miss"),
	}

	if opts.Registerer != nil {
		entries := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "response_cache_entries",
			Help:        "Current number of entries in the response cache.",
			ConstLabels: prometheus.Labels{"cache": opts.Group},
		}, func() float64 { return float64(inner.Len()) })

		if err := opts.Registerer.Register(entries); err != nil {
			opts.Logger.Warn().Err(err).Str("cache", opts.Group).Msg("Failed to register cache entries gauge")
		} else {
			c.entries = entries
			c.registerer = opts.Registerer
		}
	}
	return c
}

func (c *instrumentedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, ok := c.inner.Get(ctx, key)
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return value, ok
}

func (c *instrumentedCache) Set(ctx context.Context, key string, value []byte) {
	c.inner.Set(ctx, key, value)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

func (c *instrumentedCache) Close() error {
	if c.entries != nil {
		c.registerer.Unregister(c.entries)
	}
	return c.inner.Close()
}
