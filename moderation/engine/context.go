package engine

import (
	"context"
	"log/slog"
	"strconv"
)

// The primary interface exposed to rules.
type ContentContext struct {
	// Actual golang "context.Context", if needed for timeouts etc
	Ctx context.Context
	// Any errors encountered while processing methods on this struct get rolled up in this nullable field
	Err error
	// slog logger handle, with event-specific structured fields pre-populated. Pointer, but expected to never be nil.
	Logger *slog.Logger

	Record ContentRecord

	engine  *Engine // NOTE: pointer, but expected never to be nil
	effects *Effects
}

func NewContentContext(ctx context.Context, eng *Engine, rec ContentRecord) ContentContext {
	return ContentContext{
		Ctx:     ctx,
		Logger:  eng.Logger.With("contentId", rec.ContentID(), "contentType", rec.ContentType, "authorId", rec.AuthorID),
		Record:  rec,
		engine:  eng,
		effects: &Effects{},
	}
}

// request external state via engine (indirect) ======

func (c *ContentContext) InSet(name, val string) bool {
	out, err := c.engine.Sets.InSet(c.Ctx, name, val)
	if err != nil {
		if nil == c.Err {
			c.Err = err
		}
		return false
	}
	return out
}

func (c *ContentContext) SetValues(name string) []string {
	out, err := c.engine.Sets.Values(c.Ctx, name)
	if err != nil {
		if nil == c.Err {
			c.Err = err
		}
		return []string{}
	}
	return out
}

func (c *ContentContext) GetCount(name, val, period string) int {
	out, err := c.engine.Counters.GetCount(c.Ctx, name, val, period)
	if err != nil {
		if nil == c.Err {
			c.Err = err
		}
		return 0
	}
	return out
}

// The author's current trust score, via the engine's cache when warm.
func (c *ContentContext) AuthorTrustScore() int {
	out, err := c.engine.getTrustScoreCached(c.Ctx, c.Record.AuthorID)
	if err != nil {
		if nil == c.Err {
			c.Err = err
		}
		return defaultTrustOnError
	}
	return out
}

// Recently queued content texts of the same type, newest first.
func (c *ContentContext) RecentTexts() []string {
	out, err := c.engine.Queue.Recent(c.Ctx, c.Record.ContentType)
	if err != nil {
		if nil == c.Err {
			c.Err = err
		}
		return []string{}
	}
	return out
}

// update effects (indirect) ======

func (c *ContentContext) AddFlag(val string) {
	c.effects.AddFlag(val)
}

func (c *ContentContext) AddScore(points int) {
	c.effects.AddScore(points)
}

func (c *ContentContext) Reject(reason string) {
	c.effects.Reject(reason)
}

func (c *ContentContext) RequireReview() {
	c.effects.RequireReview()
}

func (c *ContentContext) Increment(name, val string) {
	c.effects.Increment(name, val)
}

func (c *ContentContext) IncrementPeriod(name, val string, period string) {
	c.effects.IncrementPeriod(name, val, period)
}

func (c *ContentContext) Notify(srv string) {
	c.effects.Notify(srv)
}

// when the trust store is unreachable we assume the neutral default rather
// than forcing everything into manual review
const defaultTrustOnError = 50

func (eng *Engine) getTrustScoreCached(ctx context.Context, userID string) (int, error) {
	if cached, err := eng.Cache.Get(ctx, "trust", userID); err == nil && cached != "" {
		if v, perr := strconv.Atoi(cached); perr == nil {
			return v, nil
		}
	}
	ts, err := eng.Trust.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := eng.Cache.Set(ctx, "trust", userID, strconv.Itoa(ts.Score)); err != nil {
		eng.Logger.Warn("caching trust score", "err", err, "userId", userID)
	}
	return ts.Score, nil
}

// Writes a single summary log line for the processed event, in the style of
// a canonical log line.
func (c *ContentContext) CanonicalLogLine() {
	c.Logger.Info("canonical-event-results",
		"flags", c.effects.Flags,
		"score", c.effects.Score,
		"rejected", c.effects.Rejected,
		"rejectReason", c.effects.RejectReason,
		"reviewRequired", c.effects.ReviewRequired,
	)
}
