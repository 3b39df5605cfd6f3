package rules

import (
	"fmt"
	"strings"

	"github.com/workincz/moderator/moderation"
	"github.com/workincz/moderator/moderation/keyword"
	"github.com/workincz/moderator/moderation/util"
)

// Per-type content limits. Types missing from the table (including unknown
// ones) get no limit checks at all.
type contentLimits struct {
	MinTitleLen       int
	MaxTitleLen       int
	MinDescriptionLen int
	MaxDescriptionLen int
	RequiredFields    []string
	MaxLinks          int
	MaxImages         int
}

var limitsByType = map[string]contentLimits{
	moderation.ContentTypeJobPosting: {
		MinTitleLen:       5,
		MaxTitleLen:       100,
		MinDescriptionLen: 30,
		MaxDescriptionLen: 5000,
		RequiredFields:    []string{"title", "description", "location", "salary"},
		MaxLinks:          3,
		MaxImages:         5,
	},
	moderation.ContentTypeUserProfile: {
		MaxDescriptionLen: 2000,
		RequiredFields:    []string{"name"},
		MaxLinks:          2,
		MaxImages:         1,
	},
	moderation.ContentTypeMessage: {
		MaxDescriptionLen: 2000,
		MaxLinks:          2,
	},
	moderation.ContentTypeReview: {
		MinDescriptionLen: 0,
		MaxDescriptionLen: 2000,
		RequiredFields:    []string{"comment"},
		MaxLinks:          1,
	},
}

// penalty points per violation kind
const (
	penaltyLength        = 10
	penaltyTooManyImages = 10
	penaltyTooManyLinks  = 15
	penaltyMissingField  = 20
	penaltyForbiddenWord = 25
)

var _ moderation.ContentRuleFunc = ContentLimitsRule

// Structural limit checks from the per-type rule table: field presence,
// length bounds, forbidden words, and link/image budgets. Violations are
// flagged and penalized but never reject outright; they route to review.
func ContentLimitsRule(c *moderation.ContentContext) error {
	limits, ok := limitsByType[c.Record.ContentType]
	if !ok {
		return nil
	}
	violation := func(flag string, penalty int) {
		c.AddFlag(flag)
		c.AddScore(penalty)
		c.RequireReview()
	}

	for _, f := range limits.RequiredFields {
		if c.Record.Field(f) == "" {
			violation(fmt.Sprintf("missing_required_field:%s", f), penaltyMissingField)
		}
	}

	if title := c.Record.Title(); title != "" {
		if limits.MinTitleLen > 0 && len(title) < limits.MinTitleLen {
			violation("title_too_short", penaltyLength)
		}
		if limits.MaxTitleLen > 0 && len(title) > limits.MaxTitleLen {
			violation("title_too_long", penaltyLength)
		}
	}
	if desc := c.Record.Description(); desc != "" {
		if limits.MinDescriptionLen > 0 && len(desc) < limits.MinDescriptionLen {
			violation("description_too_short", penaltyLength)
		}
		if limits.MaxDescriptionLen > 0 && len(desc) > limits.MaxDescriptionLen {
			violation("description_too_long", penaltyLength)
		}
	}

	text := c.Record.CombinedText()
	for _, tok := range keyword.TokenizeText(text) {
		// de-pluralize
		tok = strings.TrimSuffix(tok, "s")
		if tok != "" && c.InSet("forbidden-words", tok) {
			violation("forbidden_word", penaltyForbiddenWord)
			break
		}
	}

	if limits.MaxLinks > 0 && len(util.ExtractTextURLs(text)) > limits.MaxLinks {
		violation("too_many_links", penaltyTooManyLinks)
	}
	if limits.MaxImages > 0 && imageCount(c.Record.Field("images")) > limits.MaxImages {
		violation("too_many_images", penaltyTooManyImages)
	}
	return nil
}

// the images field carries a comma-separated list of attachment URLs
func imageCount(field string) int {
	if strings.TrimSpace(field) == "" {
		return 0
	}
	n := 0
	for _, part := range strings.Split(field, ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}
