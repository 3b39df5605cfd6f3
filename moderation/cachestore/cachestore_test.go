package cachestore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCacheStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCacheStore(10, time.Hour)

	v, err := cs.Get(ctx, "trust", "user-1")
	assert.NoError(err)
	assert.Equal("", v)

	assert.NoError(cs.Set(ctx, "trust", "user-1", "50"))
	v, err = cs.Get(ctx, "trust", "user-1")
	assert.NoError(err)
	assert.Equal("50", v)

	// namespaces don't collide
	v, err = cs.Get(ctx, "other", "user-1")
	assert.NoError(err)
	assert.Equal("", v)

	assert.NoError(cs.Purge(ctx, "trust", "user-1"))
	v, err = cs.Get(ctx, "trust", "user-1")
	assert.NoError(err)
	assert.Equal("", v)
}
