package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/workincz/moderator/moderation/countstore"
	"github.com/workincz/moderator/moderation/historystore"
	"github.com/workincz/moderator/moderation/queuestore"
	"github.com/workincz/moderator/moderation/util"
)

// process-local sequence so two entries for the same content in the same
// instant still get distinct IDs
var queueEntrySeq atomic.Uint64

func autoQueueEntryID(contentID string, unixNano int64) string {
	return contentID + "/" + util.HashOfString(fmt.Sprintf("%d.%d", unixNano, queueEntrySeq.Add(1)))
}

// Persists the outcome of one processed event: history record, content
// flags, review-queue entry, recent-item window, and notifications.
//
// Note that this method expects to run *before* counters are persisted (it
// enqueues additional counter increments).
func (eng *Engine) persistModActions(c *ContentContext, result *ModerationResult) error {
	ctx := c.Ctx

	if err := eng.History.Append(ctx, historystore.Record{
		ContentID:      result.ContentID,
		ContentType:    result.ContentType,
		AuthorID:       result.AuthorID,
		Flags:          result.Flags,
		Score:          result.Score,
		Rejected:       result.Rejected,
		RejectReason:   result.RejectReason,
		ReviewRequired: result.ReviewRequired,
		CreatedAt:      result.CreatedAt,
	}); err != nil {
		return fmt.Errorf("appending moderation history: %w", err)
	}

	if len(result.Flags) > 0 {
		if err := eng.Flags.Add(ctx, "content/"+result.ContentID, result.Flags); err != nil {
			return fmt.Errorf("recording content flags: %w", err)
		}
	}

	if result.ReviewRequired {
		entry := queuestore.Entry{
			ID:          autoQueueEntryID(result.ContentID, result.CreatedAt.UnixNano()),
			Kind:        queuestore.KindAuto,
			ContentID:   result.ContentID,
			ContentType: result.ContentType,
			AuthorID:    result.AuthorID,
			Priority:    result.QueuePriority(),
			Status:      queuestore.StatusPending,
			Reason:      result.RejectReason,
			Flags:       result.Flags,
			Score:       result.Score,
			AddedAt:     result.CreatedAt,
		}
		if err := eng.Queue.Add(ctx, entry); err != nil {
			return fmt.Errorf("enqueueing for review: %w", err)
		}
		queueAddCount.WithLabelValues(queuestore.KindAuto, entry.Priority).Inc()
		// remember the queued text for duplicate detection on later submissions
		if text := c.Record.CombinedText(); text != "" {
			if err := eng.Queue.PushRecent(ctx, result.ContentType, text); err != nil {
				return fmt.Errorf("recording recent content: %w", err)
			}
		}
	}

	if eng.Notifier != nil && (result.Rejected || result.ReviewRequired) {
		for _, srv := range c.effects.NotifyServices {
			if err := eng.Notifier.SendResult(ctx, srv, result); err != nil {
				c.Logger.Error("sending notification", "err", err, "service", srv)
			}
		}
	}
	return nil
}

func (eng *Engine) persistCounters(ctx context.Context, eff *Effects) error {
	for _, ref := range eff.CounterIncrements {
		if ref.Period != nil {
			if err := eng.Counters.IncrementPeriod(ctx, ref.Name, ref.Val, *ref.Period); err != nil {
				return err
			}
		} else {
			if err := eng.Counters.Increment(ctx, ref.Name, ref.Val); err != nil {
				return err
			}
		}
	}
	return nil
}

// Checks the daily quota for review-queue insertions driven by user
// reports. Returns false when the breaker is open.
func (eng *Engine) circuitBreakQueueAdd(ctx context.Context) bool {
	quota := eng.Config.QuotaQueueAddsDay
	if quota == 0 {
		quota = DefaultEngineConfig().QuotaQueueAddsDay
	}
	c, err := eng.Counters.GetCount(ctx, "mod-quota", "queue-add", countstore.PeriodDay)
	if err != nil {
		eng.Logger.Error("reading queue quota counter", "err", err)
		return true
	}
	if c >= quota {
		eng.Logger.Warn("CIRCUIT BREAKER: report queue insertions")
		return false
	}
	if err := eng.Counters.Increment(ctx, "mod-quota", "queue-add"); err != nil {
		eng.Logger.Error("incrementing queue quota counter", "err", err)
	}
	return true
}
