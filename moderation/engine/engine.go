package engine

import (
	"context"
	"log/slog"
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
	"github.com/workincz/moderator/moderation/util"
)

// runtime for executing rules, managing state, and recording moderation actions.
//
// TODO: careful when initializing: several fields should not be null or zero, even though they are pointer type.
type Engine struct {
	Logger   *slog.Logger
	Rules    RuleSet
	Sets     setstore.SetStore
	Counters countstore.CountStore
	Cache    cachestore.CacheStore
	Flags    flagstore.FlagStore
	Trust    truststore.TrustStore
	Queue    queuestore.QueueStore
	Reports  reportstore.ReportStore
	Ratings  ratingstore.RatingStore
	History  historystore.HistoryStore
	// used to push action notifications to an ops channel (optional)
	Notifier Notifier
	Config   EngineConfig
}

type EngineConfig struct {
	// authors below this trust score always go to manual review
	LowTrustThreshold int
	// max review-queue insertions per day from user reports (circuit breaker)
	QuotaQueueAddsDay int
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LowTrustThreshold: 30,
		QuotaQueueAddsDay: 500,
	}
}

// Runs the full auto-moderation pipeline over one piece of content and
// returns the decision. Never fails outward: panics in rule execution are
// recovered, and store errors are logged and folded into a conservative
// result rather than surfaced to the caller.
func (eng *Engine) ProcessContent(ctx context.Context, rec ContentRecord) (result *ModerationResult) {
	// similar to an HTTP server, we want to recover any panics from rule execution.
	// callers never see a nil result; a panic yields a conservative one routed
	// to manual review
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("moderation rule execution exception", "err", r, "contentId", rec.ContentID(), "contentType", rec.ContentType)
			result = &ModerationResult{
				ContentID:      rec.ContentID(),
				ContentType:    rec.ContentType,
				AuthorID:       rec.AuthorID,
				Flags:          []string{"rule_error"},
				ReviewRequired: true,
				CreatedAt:      time.Now().UTC(),
			}
		}
	}()
	start := time.Now()

	c := NewContentContext(ctx, eng, rec)
	eng.Logger.Debug("processing content", "contentId", rec.ContentID(), "contentType", rec.ContentType)
	if err := eng.Rules.CallContentRules(&c); err != nil {
		// a failing rule doesn't fail the event; flag it for a human instead
		c.Logger.Error("rule execution failed", "err", err)
		c.effects.AddFlag("rule_error")
		c.effects.RequireReview()
	}

	result = eng.finalizeResult(&c)
	c.CanonicalLogLine()

	if err := eng.persistModActions(&c, result); err != nil {
		c.Logger.Error("persisting moderation actions", "err", err)
	}
	if err := eng.persistCounters(ctx, c.effects); err != nil {
		c.Logger.Error("persisting counters", "err", err)
	}
	if c.Err != nil {
		c.Logger.Error("processing content", "err", c.Err)
	}

	contentProcessDuration.WithLabelValues(rec.ContentType).Observe(time.Since(start).Seconds())
	contentProcessCount.WithLabelValues(rec.ContentType).Inc()
	if result.Rejected {
		contentRejectCount.WithLabelValues(rec.ContentType, result.RejectReason).Inc()
	}
	return result
}

// Folds accumulated effects into an immutable result, applying the
// score-threshold rejection and the low-trust review override.
func (eng *Engine) finalizeResult(c *ContentContext) *ModerationResult {
	eff := c.effects

	if eff.Score > RejectScoreThreshold && !eff.Rejected {
		eff.Reject(RejectReasonLowQuality)
	}

	// low-trust authors get a human decision regardless of other outcomes
	threshold := eng.Config.LowTrustThreshold
	if threshold == 0 {
		threshold = DefaultEngineConfig().LowTrustThreshold
	}
	if c.Record.AuthorID != "" && c.AuthorTrustScore() < threshold {
		eff.AddFlag("low_trust_score")
		eff.RequireReview()
	}

	return &ModerationResult{
		ContentID:      c.Record.ContentID(),
		ContentType:    c.Record.ContentType,
		AuthorID:       c.Record.AuthorID,
		Flags:          util.DedupeStrings(eff.Flags),
		Score:          eff.Score,
		Rejected:       eff.Rejected,
		RejectReason:   eff.RejectReason,
		ReviewRequired: eff.ReviewRequired,
		CreatedAt:      time.Now().UTC(),
	}
}

// The user's current trust score; unknown users get the neutral default.
func (eng *Engine) GetUserTrustScore(ctx context.Context, userID string) int {
	score, err := eng.getTrustScoreCached(ctx, userID)
	if err != nil {
		eng.Logger.Error("reading trust score", "err", err, "userId", userID)
		return defaultTrustOnError
	}
	return score
}

// read-side accessors over engine state ======

func (eng *Engine) PendingQueue(ctx context.Context) ([]queuestore.Entry, error) {
	return eng.Queue.Pending(ctx)
}

func (eng *Engine) ContentFlags(ctx context.Context, contentID string) ([]string, error) {
	return eng.Flags.Get(ctx, "content/"+contentID)
}

func (eng *Engine) ContentHistory(ctx context.Context, contentID string) ([]historystore.Record, error) {
	return eng.History.List(ctx, contentID)
}

func (eng *Engine) ContentReports(ctx context.Context, contentID string) ([]reportstore.Report, error) {
	return eng.Reports.ListByContent(ctx, contentID)
}
