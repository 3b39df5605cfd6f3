package cachestore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// In-process implementation backed by an expiring LRU. Entries are evicted on
// capacity pressure as well as on TTL, so a Get after eviction is just a miss.
type MemCacheStore struct {
	entries *expirable.LRU[string, string]
}

var _ CacheStore = (*MemCacheStore)(nil)

func NewMemCacheStore(capacity int, ttl time.Duration) *MemCacheStore {
	return &MemCacheStore{
		entries: expirable.NewLRU[string, string](capacity, nil, ttl),
	}
}

// A miss returns the empty string with no error.
func (s *MemCacheStore) Get(ctx context.Context, name, key string) (string, error) {
	val, _ := s.entries.Get(cacheKey(name, key))
	return val, nil
}

func (s *MemCacheStore) Set(ctx context.Context, name, key string, val string) error {
	s.entries.Add(cacheKey(name, key), val)
	return nil
}

func (s *MemCacheStore) Purge(ctx context.Context, name, key string) error {
	s.entries.Remove(cacheKey(name, key))
	return nil
}
