package cachestore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation with a local TinyLFU tier in front, so repeated
// reads of the same entry usually never leave the process.
type RedisCacheStore struct {
	backend *cache.Cache
	ttl     time.Duration
}

var _ CacheStore = (*RedisCacheStore)(nil)

const localCacheSize = 10_000

func NewRedisCacheStore(redisURL string, ttl time.Duration) (*RedisCacheStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &RedisCacheStore{
		backend: cache.New(&cache.Options{
			Redis:      rdb,
			LocalCache: cache.NewTinyLFU(localCacheSize, ttl),
		}),
		ttl: ttl,
	}, nil
}

// A miss returns the empty string with no error.
func (s *RedisCacheStore) Get(ctx context.Context, name, key string) (string, error) {
	var val string
	switch err := s.backend.Get(ctx, "cache/"+cacheKey(name, key), &val); err {
	case nil:
		return val, nil
	case cache.ErrCacheMiss:
		return "", nil
	default:
		return "", err
	}
}

func (s *RedisCacheStore) Set(ctx context.Context, name, key string, val string) error {
	return s.backend.Set(&cache.Item{
		Ctx:   ctx,
		Key:   "cache/" + cacheKey(name, key),
		Value: val,
		TTL:   s.ttl,
	})
}

func (s *RedisCacheStore) Purge(ctx context.Context, name, key string) error {
	if err := s.backend.Delete(ctx, "cache/"+cacheKey(name, key)); err != nil && err != cache.ErrCacheMiss {
		return err
	}
	return nil
}
