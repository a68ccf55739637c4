package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowBrowser/internal/metrics"
)

const (
	keyPrefix        = "showbrowser:"
	redisOpTimeout   = 2 * time.Second
	redisDialTimeout = 5 * time.Second
)

// redisCache shares responses between instances through Redis/Valkey.
//
// Each entry is a plain string key written with SET PX, so Redis expires it on
// its own. A sorted set indexes the entries by write time (milliseconds); it
// drives the size bound, which drops the oldest writes first, and lets Len
// ignore entries older than the TTL.
type redisCache struct {
	client    *redis.Client
	ttl       time.Duration
	maxSize   int
	prefix    string // e.g. "showbrowser:tvmaze:"
	indexKey  string
	logger    zerolog.Logger
	evictions prometheus.Counter
}

func newRedisCache(opts Options) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Redis.Address,
		Password: opts.Redis.Password,
		DB:       opts.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: redis ping %s: %w", opts.Redis.Address, err)
	}

	prefix := keyPrefix + opts.Group + ":"
	return &redisCache{
		client:    client,
		ttl:       opts.TTL,
		maxSize:   opts.Size,
		prefix:    prefix,
		indexKey:  prefix + "index",
		logger:    opts.Logger,
		evictions: metrics.CacheEvictionsTotal.WithLabelValues(opts.Group),
	}, nil
}

func (r *redisCache) entryKey(key string) string {
	return r.prefix + "entry:" + key
}

// cutoff is the index score below which an entry has expired
func (r *redisCache) cutoff(now time.Time) string {
	return strconv.FormatInt(now.Add(-r.ttl).UnixMilli(), 10)
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	value, err := r.client.Get(ctx, r.entryKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error().Err(err).Str("key", key).Msg("Redis cache get failed")
		}
		return nil, false
	}
	return value, true
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	now := time.Now()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.entryKey(key), value, r.ttl)
		pipe.ZAdd(ctx, r.indexKey, redis.Z{Score: float64(now.UnixMilli()), Member: key})
		pipe.ZRemRangeByScore(ctx, r.indexKey, "-inf", "("+r.cutoff(now))
		return nil
	})
	if err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("Redis cache set failed")
		return
	}

	r.trim(ctx)
}

// trim evicts the oldest entries until the index fits maxSize.
// Concurrent writers may both trim, which can drop a few more entries than needed.
func (r *redisCache) trim(ctx context.Context) {
	size, err := r.client.ZCard(ctx, r.indexKey).Result()
	if err != nil {
		r.logger.Error().Err(err).Msg("Redis cache size check failed")
		return
	}
	overflow := size - int64(r.maxSize)
	if overflow <= 0 {
		return
	}

	oldest, err := r.client.ZPopMin(ctx, r.indexKey, overflow).Result()
	if err != nil {
		r.logger.Error().Err(err).Msg("Redis cache eviction failed")
		return
	}
	if len(oldest) == 0 {
		return
	}

	keys := make([]string, 0, len(oldest))
	for _, z := range oldest {
		if member, ok := z.Member.(string); ok {
			keys = append(keys, r.entryKey(member))
		}
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error().Err(err).Msg("Redis cache eviction failed")
		return
	}
	r.evictions.Add(float64(len(keys)))
}

func (r *redisCache) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	n, err := r.client.ZCount(ctx, r.indexKey, r.cutoff(time.Now()), "+inf").Result()
	if err != nil {
		r.logger.Error().Err(err).Msg("Redis cache length failed")
		return 0
	}
	return int(n)
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
