package geo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CacheKeyPrefix = "geo:ip:"
	cacheTTL       = 24 * time.Hour
)

func GetCacheKey(ip string) string {
	return CacheKeyPrefix + ip
}

type cachedResolver struct {
	next   Resolver
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewCachedResolver keeps successful lookups in redis. Redis failures fall
// through to next; failed lookups are never cached.
func NewCachedResolver(next Resolver, rdb *redis.Client, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("geo.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("geo.cache")
	}
	return &cachedResolver{
		next:   next,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (c *cachedResolver) Resolve(ctx context.Context, ip string) (Location, error) {
	key := GetCacheKey(publicIP(ip))

	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
			var loc Location
			if json.Unmarshal([]byte(cached), &loc) == nil {
				return loc, nil
			}
		} else if err != redis.Nil {
			c.logger.Warn("geo cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		loc, err := c.next.Resolve(ctx, ip)
		if err != nil {
			return nil, err
		}
		if c.rdb != nil {
			if data, err := json.Marshal(loc); err == nil {
				if err := c.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
					c.logger.Warn("geo cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return loc, nil
	})
	if err != nil {
		return Location{}, err
	}
	return v.(Location), nil
}
