package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workincz/moderator/moderation"
)

func TestContentLimitsRuleJobPosting(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := moderation.EngineTestFixture()
	eng.Sets = DefaultSets()

	complete := moderation.ContentRecord{
		ContentType: moderation.ContentTypeJobPosting,
		AuthorID:    "employer-1",
		Fields: map[string]string{
			"title":       "Senior Backend Engineer",
			"description": "Design and operate payment services in a small product team. Hybrid, Prague office.",
			"location":    "Prague",
			"salary":      "90000-120000 CZK",
		},
	}
	c1 := moderation.NewContentContext(ctx, &eng, complete)
	assert.NoError(ContentLimitsRule(&c1))
	eff1 := moderation.ExtractEffects(&c1)
	assert.Empty(eff1.Flags)
	assert.False(eff1.ReviewRequired)

	incomplete := moderation.ContentRecord{
		ContentType: moderation.ContentTypeJobPosting,
		AuthorID:    "employer-2",
		Fields: map[string]string{
			"title":       "Dev",
			"description": "short",
		},
	}
	c2 := moderation.NewContentContext(ctx, &eng, incomplete)
	assert.NoError(ContentLimitsRule(&c2))
	eff2 := moderation.ExtractEffects(&c2)
	assert.Contains(eff2.Flags, "missing_required_field:location")
	assert.Contains(eff2.Flags, "missing_required_field:salary")
	assert.Contains(eff2.Flags, "title_too_short")
	assert.Contains(eff2.Flags, "description_too_short")
	assert.True(eff2.ReviewRequired)
	assert.Equal(2*20+2*10, eff2.Score)
}

func TestContentLimitsRuleForbiddenWordsAndBudgets(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := moderation.EngineTestFixture()
	eng.Sets = DefaultSets()

	rec := moderation.ContentRecord{
		ContentType: moderation.ContentTypeMessage,
		AuthorID:    "user-1",
		Fields: map[string]string{
			"message": "this is not a scam, see https://a.example/1 https://b.example/2 https://c.example/3",
		},
	}
	c := moderation.NewContentContext(ctx, &eng, rec)
	assert.NoError(ContentLimitsRule(&c))
	eff := moderation.ExtractEffects(&c)
	assert.Contains(eff.Flags, "forbidden_word")
	assert.Contains(eff.Flags, "too_many_links")
	assert.True(eff.ReviewRequired)

	long := moderation.ContentRecord{
		ContentType: moderation.ContentTypeMessage,
		AuthorID:    "user-2",
		Fields: map[string]string{
			"description": strings.Repeat("words and more words ", 150),
		},
	}
	c2 := moderation.NewContentContext(ctx, &eng, long)
	assert.NoError(ContentLimitsRule(&c2))
	assert.Contains(moderation.ExtractEffects(&c2).Flags, "description_too_long")
}

func TestContentLimitsRuleImages(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := moderation.EngineTestFixture()
	eng.Sets = DefaultSets()

	rec := moderation.ContentRecord{
		ContentType: moderation.ContentTypeUserProfile,
		AuthorID:    "user-3",
		Fields: map[string]string{
			"name":   "Jana Novakova",
			"images": "https://img.example/a.png, https://img.example/b.png",
		},
	}
	c := moderation.NewContentContext(ctx, &eng, rec)
	assert.NoError(ContentLimitsRule(&c))
	assert.Contains(moderation.ExtractEffects(&c).Flags, "too_many_images")
}

func TestContentLimitsRuleUnknownType(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := moderation.EngineTestFixture()

	rec := moderation.ContentRecord{
		ContentType: "banner_ad",
		AuthorID:    "user-4",
		Fields:      map[string]string{"title": "x"},
	}
	c := moderation.NewContentContext(ctx, &eng, rec)
	assert.NoError(ContentLimitsRule(&c))
	assert.Empty(moderation.ExtractEffects(&c).Flags)
}
