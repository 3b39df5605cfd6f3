// Package cachestore is a small namespaced KV cache with TTL, used by the
// engine to avoid re-reading hot state (eg, trust scores) on every event.
package cachestore

import (
	"context"
)

type CacheStore interface {
	Get(ctx context.Context, name, key string) (string, error)
	Set(ctx context.Context, name, key string, val string) error
	Purge(ctx context.Context, name, key string) error
}

// Keys are namespaced so callers can purge one logical cache (eg, "trust")
// without touching the others.
func cacheKey(name, key string) string {
	return name + "/" + key
}
