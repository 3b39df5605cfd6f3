package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workincz/moderator/moderation/queuestore"
)

func TestEngineBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()

	clean := ContentRecord{
		ContentType: ContentTypeJobPosting,
		AuthorID:    "employer-1",
		Fields: map[string]string{
			"title":       "Warehouse Operator",
			"description": "Full time warehouse work in Brno, morning shifts.",
		},
	}
	res := eng.ProcessContent(ctx, clean)
	assert.True(res.Approved())
	assert.False(res.ReviewRequired)
	assert.Empty(res.Flags)
	assert.Equal(0, res.Score)

	hist, err := eng.ContentHistory(ctx, res.ContentID)
	assert.NoError(err)
	assert.Len(hist, 1)

	pending, err := eng.PendingQueue(ctx)
	assert.NoError(err)
	assert.Empty(pending)
}

func TestEngineReviewPath(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()

	rec := ContentRecord{
		ContentType: ContentTypeJobPosting,
		AuthorID:    "employer-2",
		Fields: map[string]string{
			"title":       "Easy work",
			"description": "definitely not a scam",
		},
	}
	res := eng.ProcessContent(ctx, rec)
	assert.True(res.Approved())
	assert.True(res.ReviewRequired)
	assert.Equal([]string{"forbidden_word"}, res.Flags)
	assert.Equal(25, res.Score)

	flags, err := eng.ContentFlags(ctx, res.ContentID)
	assert.NoError(err)
	assert.Equal([]string{"forbidden_word"}, flags)

	pending, err := eng.PendingQueue(ctx)
	assert.NoError(err)
	if assert.Len(pending, 1) {
		assert.Equal(queuestore.KindAuto, pending[0].Kind)
		assert.Equal(queuestore.PriorityMedium, pending[0].Priority)
		assert.Equal(res.ContentID, pending[0].ContentID)
	}

	// the queued text feeds the recent window for duplicate detection
	recent, err := eng.Queue.Recent(ctx, ContentTypeJobPosting)
	assert.NoError(err)
	assert.Len(recent, 1)
}

func TestEngineResubmissionQueuesSeparately(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()

	rec := ContentRecord{
		ID:          "job-77",
		ContentType: ContentTypeJobPosting,
		AuthorID:    "employer-9",
		Fields: map[string]string{
			"title":       "Easy work",
			"description": "definitely not a scam",
		},
	}
	first := eng.ProcessContent(ctx, rec)
	second := eng.ProcessContent(ctx, rec)
	assert.True(first.ReviewRequired)
	assert.True(second.ReviewRequired)

	// each submission gets its own pending entry, even within the same instant
	pending, err := eng.PendingQueue(ctx)
	assert.NoError(err)
	if assert.Len(pending, 2) {
		assert.NotEqual(pending[0].ID, pending[1].ID)
		assert.Equal("job-77", pending[0].ContentID)
		assert.Equal("job-77", pending[1].ContentID)
	}
}

func TestEngineScoreThresholdReject(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()
	eng.Rules = RuleSet{
		ContentRules: []ContentRuleFunc{
			func(c *ContentContext) error {
				c.AddFlag("test_penalty")
				c.AddScore(80)
				return nil
			},
		},
	}

	res := eng.ProcessContent(ctx, ContentRecord{
		ContentType: ContentTypeMessage,
		AuthorID:    "user-1",
		Fields:      map[string]string{"message": "whatever"},
	})
	assert.True(res.Rejected)
	assert.False(res.Approved())
	assert.Equal(RejectReasonLowQuality, res.RejectReason)
}

func TestEngineRulePanicRecovered(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()
	eng.Rules = RuleSet{
		ContentRules: []ContentRuleFunc{
			func(c *ContentContext) error {
				panic("rule blew up")
			},
		},
	}

	var res *ModerationResult
	assert.NotPanics(func() {
		res = eng.ProcessContent(ctx, ContentRecord{
			ContentType: ContentTypeMessage,
			AuthorID:    "user-1",
			Fields:      map[string]string{"message": "hello"},
		})
	})
	// callers get a conservative result, never nil
	if assert.NotNil(res) {
		assert.True(res.ReviewRequired)
		assert.False(res.Rejected)
		assert.Contains(res.Flags, "rule_error")
	}

	// downstream paths that dereference the result survive too
	assert.NotPanics(func() {
		agg, res2 := eng.AddEmployerReview(ctx, "employer-1", "user-2", 4, "fine place")
		assert.NotNil(res2)
		assert.NotNil(agg)
	})
}

func TestEngineLowTrustReview(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()

	_, err := eng.Trust.Adjust(ctx, "shady-1", ActionDelete, -30)
	assert.NoError(err)

	res := eng.ProcessContent(ctx, ContentRecord{
		ContentType: ContentTypeMessage,
		AuthorID:    "shady-1",
		Fields:      map[string]string{"message": "perfectly normal message"},
	})
	assert.True(res.Approved())
	assert.True(res.ReviewRequired)
	assert.Contains(res.Flags, "low_trust_score")
}

func TestGetUserTrustScore(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()

	// unknown users read as the neutral default, repeatedly
	assert.Equal(50, eng.GetUserTrustScore(ctx, "nobody"))
	assert.Equal(50, eng.GetUserTrustScore(ctx, "nobody"))

	ts, err := eng.Trust.Get(ctx, "nobody")
	assert.NoError(err)
	assert.Empty(ts.History)
}
