package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aqt_view_cache_hits_total",
		Help: "View cache hits by view name",
	}, []string{"view"})
	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aqt_view_cache_misses_total",
		Help: "View cache misses by view name",
	}, []string{"view"})
)

// viewCache caches rendered view models in Redis as JSON. Concurrent
// misses for the same key share a single upstream rebuild through
// singleflight, so a cold popular page costs one backend round trip.
type viewCache struct {
	redis  RedisClient
	logger *zap.SugaredLogger
	ttl    time.Duration
	group  singleflight.Group
}

func newViewCache(redis RedisClient, logger *zap.SugaredLogger, ttl time.Duration) *viewCache {
	return &viewCache{redis: redis, logger: logger, ttl: ttl}
}

// viewKey builds a cache key like "view:standings:12". Parts are
// formatted with %v so callers pass ids and enum strings directly.
func viewKey(view string, parts ...any) string {
	key := "view:" + view
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

// fetch returns the cached value for key, or builds it with fn and
// stores the result. Redis being down degrades to calling fn directly;
// cache errors are logged, never returned.
func fetch[T any](ctx context.Context, c *viewCache, view, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if c.redis != nil {
		raw, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			var out T
			if err := json.Unmarshal(raw, &out); err == nil {
				cacheHits.WithLabelValues(view).Inc()
				return out, nil
			}
			c.logger.Warnw("discarding undecodable cache entry", "key", key)
		}
	}
	cacheMisses.WithLabelValues(view).Inc()

	v, err, _ := c.group.Do(key, func() (any, error) {
		out, err := fn(ctx)
		if err != nil {
			return zero, err
		}
		if c.redis != nil {
			if raw, err := json.Marshal(out); err == nil {
				if err := c.redis.Set(ctx, key, raw, c.ttl).Err(); err != nil {
					c.logger.Warnw("cache write failed", "key", key, "error", err)
				}
			}
		}
		return out, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// invalidate drops keys from the cache. Used after shift edits so the
// next analytics read sees the new values.
func (c *viewCache) invalidate(ctx context.Context, keys ...string) {
	if c.redis == nil || len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warnw("cache invalidation failed", "keys", keys, "error", err)
	}
}
