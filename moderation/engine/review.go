package engine

import (
	"context"

	"github.com/workincz/moderator/moderation/queuestore"
	"github.com/workincz/moderator/moderation/reportstore"
)

// Moderator actions on a queue item.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionFlag    = "flag"
	ActionDelete  = "delete"
)

// Trust-score deltas applied to the content author per moderator action.
var trustDeltas = map[string]int{
	ActionApprove: 5,
	ActionReject:  -10,
	ActionFlag:    -5,
	ActionDelete:  -20,
}

// Applies a moderator's decision to a pending queue item. Returns false when
// the item is unknown, already processed, or the action isn't recognized;
// never panics or errors outward.
//
// Processing is terminal: the entry moves to processed, the backing report
// (if any) resolves, and the content author's trust score shifts by the
// action's delta.
func (eng *Engine) ProcessQueueItem(ctx context.Context, itemID, moderatorID, action, note string) bool {
	logger := eng.Logger.With("itemId", itemID, "moderatorId", moderatorID, "action", action)

	delta, ok := trustDeltas[action]
	if !ok {
		logger.Warn("unknown moderation action")
		return false
	}

	entry, err := eng.Queue.Get(ctx, itemID)
	if err != nil {
		logger.Error("looking up queue item", "err", err)
		return false
	}
	if entry == nil {
		return false
	}

	done, err := eng.Queue.MarkProcessed(ctx, itemID, moderatorID, action, note)
	if err != nil {
		logger.Error("marking queue item processed", "err", err)
		return false
	}
	if !done {
		return false
	}

	switch action {
	case ActionReject, ActionDelete:
		if err := eng.Flags.Add(ctx, "content/"+entry.ContentID, []string{"removed"}); err != nil {
			logger.Error("flagging removed content", "err", err)
		}
	case ActionFlag:
		if err := eng.Flags.Add(ctx, "content/"+entry.ContentID, []string{"flagged"}); err != nil {
			logger.Error("flagging content", "err", err)
		}
	}

	// trust moves for the content author, not the reporter and not the
	// content ID
	if entry.AuthorID != "" {
		if _, err := eng.Trust.Adjust(ctx, entry.AuthorID, action, delta); err != nil {
			logger.Error("adjusting author trust score", "err", err)
		}
		if err := eng.Cache.Purge(ctx, "trust", entry.AuthorID); err != nil {
			logger.Error("purging trust cache", "err", err)
		}
	}

	if entry.Kind == queuestore.KindReport {
		status := reportstore.StatusResolved
		if action == ActionApprove {
			// approving the content means the report didn't stand
			status = reportstore.StatusRejected
		}
		if _, err := eng.Reports.Resolve(ctx, entry.ID, status, moderatorID, note); err != nil {
			logger.Error("resolving report", "err", err)
		}
	}

	queueProcessCount.WithLabelValues(action).Inc()
	logger.Info("queue item processed")
	return true
}
