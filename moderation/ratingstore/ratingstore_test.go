package ratingstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemRatingStoreMean(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	rs := NewMemRatingStore()

	r, err := rs.Get(ctx, "employer-1")
	assert.NoError(err)
	assert.Nil(r)

	r, err = rs.AddReview(ctx, "employer-1", Review{ID: "rev-1", AuthorID: "user-1", Rating: 5, CreatedAt: time.Now().UTC()})
	assert.NoError(err)
	assert.Equal(5.0, r.Rating)

	r, err = rs.AddReview(ctx, "employer-1", Review{ID: "rev-2", AuthorID: "user-2", Rating: 2, CreatedAt: time.Now().UTC()})
	assert.NoError(err)
	assert.InDelta(3.5, r.Rating, 0.001)
	assert.Len(r.Reviews, 2)

	r, err = rs.AddReview(ctx, "employer-1", Review{ID: "rev-3", AuthorID: "user-3", Rating: 2, CreatedAt: time.Now().UTC()})
	assert.NoError(err)
	assert.InDelta(3.0, r.Rating, 0.001)
}

func TestMemRatingStoreVerified(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	rs := NewMemRatingStore()
	require.NoError(t, rs.SetVerified(ctx, "employer-1", true))

	r, err := rs.Get(ctx, "employer-1")
	assert.NoError(err)
	require.NotNil(t, r)
	assert.True(r.Verified)
	assert.Equal(0.0, r.Rating)
}
