package flagstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemFlagStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	fs := NewMemFlagStore()

	l, err := fs.Get(ctx, "content/abc")
	assert.NoError(err)
	assert.Empty(l)

	assert.NoError(fs.Add(ctx, "content/abc", []string{"spam", "duplicate"}))
	assert.NoError(fs.Add(ctx, "content/abc", []string{"spam", "hidden"}))
	l, err = fs.Get(ctx, "content/abc")
	assert.NoError(err)
	assert.Equal([]string{"spam", "duplicate", "hidden"}, l)

	assert.NoError(fs.Remove(ctx, "content/abc", []string{"spam", "hidden", "never-set"}))
	l, err = fs.Get(ctx, "content/abc")
	assert.NoError(err)
	assert.Equal([]string{"duplicate"}, l)
}

func TestRedisFlagStoreBasics(t *testing.T) {
	t.Skip("live test, need redis running locally")
	assert := assert.New(t)
	ctx := context.Background()

	fs, err := NewRedisFlagStore("redis://localhost:6379/0")
	if err != nil {
		t.Fail()
	}

	l, err := fs.Get(ctx, "content/abc")
	assert.NoError(err)
	assert.Empty(l)

	assert.NoError(fs.Add(ctx, "content/abc", []string{"spam", "duplicate"}))
	assert.NoError(fs.Add(ctx, "content/abc", []string{"spam", "hidden"}))
	l, err = fs.Get(ctx, "content/abc")
	assert.NoError(err)
	assert.Equal(3, len(l))

	assert.NoError(fs.Remove(ctx, "content/abc", []string{"spam", "duplicate", "hidden"}))
}
