package engine

import (
	"log/slog"
	"strings"
	"time"

	"github.com/workincz/moderator/moderation/cachestore"
	"github.com/workincz/moderator/moderation/countstore"
	"github.com/workincz/moderator/moderation/flagstore"
	"github.com/workincz/moderator/moderation/historystore"
	"github.com/workincz/moderator/moderation/queuestore"
	"github.com/workincz/moderator/moderation/ratingstore"
	"github.com/workincz/moderator/moderation/reportstore"
	"github.com/workincz/moderator/moderation/setstore"
	"github.com/workincz/moderator/moderation/truststore"
)

var _ ContentRuleFunc = simpleForbiddenWordRule

func simpleForbiddenWordRule(c *ContentContext) error {
	for _, tok := range strings.Fields(strings.ToLower(c.Record.CombinedText())) {
		if c.InSet("forbidden-words", tok) {
			c.AddFlag("forbidden_word")
			c.AddScore(25)
			c.RequireReview()
			break
		}
	}
	return nil
}

// Engine with all in-memory stores and one trivial rule, for tests.
// Intentionally exported, for use in other packages.
func EngineTestFixture() Engine {
	rules := RuleSet{
		ContentRules: []ContentRuleFunc{
			simpleForbiddenWordRule,
		},
	}
	sets := setstore.NewMemSetStore()
	sets.AddToSet("forbidden-words", []string{"scam"})
	return Engine{
		Logger:   slog.Default(),
		Rules:    rules,
		Sets:     sets,
		Counters: countstore.NewMemCountStore(),
		Cache:    cachestore.NewMemCacheStore(100, time.Hour),
		Flags:    flagstore.NewMemFlagStore(),
		Trust:    truststore.NewMemTrustStore(),
		Queue:    queuestore.NewMemQueueStore(),
		Reports:  reportstore.NewMemReportStore(),
		Ratings:  ratingstore.NewMemRatingStore(),
		History:  historystore.NewMemHistoryStore(),
		Config:   DefaultEngineConfig(),
	}
}

// Helper to access the private effects field from a context. Intended for use in test code, *not* from rules.
func ExtractEffects(c *ContentContext) Effects {
	return *c.effects
}
