package rules

import (
	"github.com/workincz/moderator/moderation"
	"github.com/workincz/moderator/moderation/keyword"
)

// similarity above this is treated as a duplicate submission
const duplicateSimilarityThreshold = 0.8

var _ moderation.ContentRuleFunc = DuplicateContentRule

// Compares the submission's word set against recently queued content of the
// same type. Near-identical text is a strong re-posting signal on a job
// board (same posting under many accounts, or one account flooding).
func DuplicateContentRule(c *moderation.ContentContext) error {
	text := c.Record.CombinedText()
	if text == "" {
		return nil
	}
	for _, prev := range c.RecentTexts() {
		if keyword.JaccardSimilarity(text, prev) > duplicateSimilarityThreshold {
			c.AddFlag("duplicate")
			c.AddScore(30)
			c.RequireReview()
			c.Increment("duplicate-detected", c.Record.ContentType)
			break
		}
	}
	return nil
}
