package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Belphemur/ShowBrowser/internal/cache"
	"github.com/Belphemur/ShowBrowser/internal/config"
)

// responseCacheGroup labels the cache metrics and namespaces Redis keys.
const responseCacheGroup = "tvmaze"

const (
	defaultCacheSize = 500
	defaultCacheTTL  = time.Hour
)

// newResponseCache builds the cache for raw directory responses.
// It returns nil when caching is disabled or the backend cannot be reached.
func newResponseCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.Type == "" {
		return nil
	}
	logger := config.GetLogger()

	ttl := defaultCacheTTL
	if cfg.Cache.TTL != "" {
		if parsed, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			logger.Warn().Err(err).Str("ttl", cfg.Cache.TTL).Msg("Invalid cache TTL, using default 1h")
		} else {
			ttl = parsed
		}
	}

	size := cfg.Cache.Size
	if size <= 0 {
		size = defaultCacheSize
	}

	c, err := cache.New(cfg.Cache.Type, cache.Options{
		Size:       size,
		TTL:        ttl,
		Group:      responseCacheGroup,
		Logger:     logger.With().Str("component", "cache").Logger(),
		Registerer: prometheus.DefaultRegisterer,
		Redis: cache.RedisOptions{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		},
	})
	if err != nil {
		logger.Warn().Err(err).Str("type", cfg.Cache.Type).Msg("Failed to create response cache, continuing without cache")
		return nil
	}

	logger.Info().Str("type", cfg.Cache.Type).Int("size", size).Dur("ttl", ttl).Msg("Response cache enabled")
	return c
}
