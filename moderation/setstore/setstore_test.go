package setstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemSetStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemSetStore()
	s.AddToSet("forbidden-words", []string{"scam", "fraud"})

	ok, err := s.InSet(ctx, "forbidden-words", "scam")
	assert.NoError(err)
	assert.True(ok)

	ok, err = s.InSet(ctx, "forbidden-words", "legit")
	assert.NoError(err)
	assert.False(ok)

	// unknown set is empty, not an error
	ok, err = s.InSet(ctx, "no-such-set", "anything")
	assert.NoError(err)
	assert.False(ok)

	vals, err := s.Values(ctx, "forbidden-words")
	assert.NoError(err)
	assert.Equal([]string{"fraud", "scam"}, vals)

	vals, err = s.Values(ctx, "no-such-set")
	assert.NoError(err)
	assert.Empty(vals)
}

func TestMemSetStoreLoadFromFileJSON(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	raw, err := json.Marshal(map[string][]string{
		"spam-phrases":    {"make money fast", "get rich quick"},
		"link-shorteners": {"bit.ly", "tinyurl.com"},
	})
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "sets.json")
	require.NoError(t, os.WriteFile(p, raw, 0644))

	s := NewMemSetStore()
	require.NoError(t, s.LoadFromFileJSON(p))

	ok, err := s.InSet(ctx, "link-shorteners", "bit.ly")
	assert.NoError(err)
	assert.True(ok)

	vals, err := s.Values(ctx, "spam-phrases")
	assert.NoError(err)
	assert.Equal([]string{"get rich quick", "make money fast"}, vals)
}
