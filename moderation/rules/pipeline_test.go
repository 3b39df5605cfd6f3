package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workincz/moderator/moderation"
)

// end-to-end over the default rule set
func TestDefaultRulesPipeline(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := moderation.EngineTestFixture()
	eng.Rules = DefaultRules()
	eng.Sets = DefaultSets()

	spam := moderation.ContentRecord{
		ContentType: moderation.ContentTypeJobPosting,
		AuthorID:    "employer-1",
		Fields: map[string]string{
			"title":       "MAKE MONEY FAST",
			"description": "Work from home!!! Earn $$$ instantly, no experience needed.",
			"location":    "anywhere",
			"salary":      "unlimited",
		},
	}
	res := eng.ProcessContent(ctx, spam)
	assert.True(res.Rejected)
	assert.Equal(moderation.RejectReasonSpam, res.RejectReason)
	assert.Contains(res.Flags, "spam")

	clean := moderation.ContentRecord{
		ContentType: moderation.ContentTypeJobPosting,
		AuthorID:    "employer-2",
		Fields: map[string]string{
			"title":       "Frontend Developer",
			"description": "We build internal tooling for logistics companies. You would join a team of four, working mostly in React and TypeScript. Hybrid setup, office in Karlin.",
			"location":    "Prague",
			"salary":      "80000-100000 CZK",
		},
	}
	res = eng.ProcessContent(ctx, clean)
	assert.True(res.Approved())
	assert.False(res.ReviewRequired)
	assert.Empty(res.Flags)
	assert.Equal(0, res.Score)
}

func TestDefaultRulesDuplicateSubmission(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := moderation.EngineTestFixture()
	eng.Rules = DefaultRules()
	eng.Sets = DefaultSets()

	desc := "Night shift security guard needed for an office building near Andel, weekends included, uniform provided by us."
	first := moderation.ContentRecord{
		ContentType: moderation.ContentTypeJobPosting,
		AuthorID:    "employer-1",
		Fields: map[string]string{
			"title":       "Security Guard",
			"description": desc,
			// salary missing, so the first submission lands in review
			"location": "Prague",
		},
	}
	res := eng.ProcessContent(ctx, first)
	assert.True(res.ReviewRequired)
	assert.Contains(res.Flags, "missing_required_field:salary")

	second := moderation.ContentRecord{
		ContentType: moderation.ContentTypeJobPosting,
		AuthorID:    "employer-9",
		Fields: map[string]string{
			"title":       "Security Guard",
			"description": desc,
			"location":    "Prague",
			"salary":      "30000 CZK",
		},
	}
	res = eng.ProcessContent(ctx, second)
	assert.Contains(res.Flags, "duplicate")
	assert.True(res.ReviewRequired)
}
