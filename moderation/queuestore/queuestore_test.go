package queuestore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingEntry(id, priority string) Entry {
	return Entry{
		ID:          id,
		Kind:        KindReport,
		ContentID:   "content-" + id,
		ContentType: "job_posting",
		Priority:    priority,
		Status:      StatusPending,
		AddedAt:     time.Now().UTC(),
	}
}

func TestMemQueueStoreOrdering(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	qs := NewMemQueueStore()

	require.NoError(t, qs.Add(ctx, pendingEntry("a", PriorityLow)))
	require.NoError(t, qs.Add(ctx, pendingEntry("b", PriorityHigh)))
	require.NoError(t, qs.Add(ctx, pendingEntry("c", PriorityMedium)))
	require.NoError(t, qs.Add(ctx, pendingEntry("d", PriorityHigh)))

	pending, err := qs.Pending(ctx)
	assert.NoError(err)
	require.Len(t, pending, 4)

	// descending priority, FIFO within a priority
	assert.Equal([]string{"b", "d", "c", "a"}, []string{pending[0].ID, pending[1].ID, pending[2].ID, pending[3].ID})
	for i := 0; i < len(pending)-1; i++ {
		assert.GreaterOrEqual(PriorityRank(pending[i].Priority), PriorityRank(pending[i+1].Priority))
	}
}

func TestMemQueueStoreProcessing(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	qs := NewMemQueueStore()
	require.NoError(t, qs.Add(ctx, pendingEntry("a", PriorityMedium)))

	// unknown entry
	ok, err := qs.MarkProcessed(ctx, "nope", "mod-1", "approve", "")
	assert.NoError(err)
	assert.False(ok)

	ok, err = qs.MarkProcessed(ctx, "a", "mod-1", "reject", "obvious spam")
	assert.NoError(err)
	assert.True(ok)

	e, err := qs.Get(ctx, "a")
	assert.NoError(err)
	require.NotNil(t, e)
	assert.Equal(StatusProcessed, e.Status)
	assert.Equal("mod-1", e.ModeratorID)
	assert.Equal("reject", e.Action)
	assert.NotNil(e.ProcessedAt)

	// processed is terminal
	ok, err = qs.MarkProcessed(ctx, "a", "mod-2", "approve", "")
	assert.NoError(err)
	assert.False(ok)

	pending, err := qs.Pending(ctx)
	assert.NoError(err)
	assert.Empty(pending)
}

func TestMemQueueStoreRecentWindow(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	qs := NewMemQueueStore()

	for i := 0; i < RecentWindow+5; i++ {
		require.NoError(t, qs.PushRecent(ctx, "job_posting", fmt.Sprintf("posting number %d", i)))
	}
	recent, err := qs.Recent(ctx, "job_posting")
	assert.NoError(err)
	assert.Len(recent, RecentWindow)
	// newest first
	assert.Equal(fmt.Sprintf("posting number %d", RecentWindow+4), recent[0])

	// types are independent
	recent, err = qs.Recent(ctx, "message")
	assert.NoError(err)
	assert.Empty(recent)
}
