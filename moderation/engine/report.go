package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/workincz/moderator/moderation/countstore"
	"github.com/workincz/moderator/moderation/queuestore"
	"github.com/workincz/moderator/moderation/reportstore"
)

// Report reasons accepted from users.
const (
	ReportReasonSpam          = "spam"
	ReportReasonScam          = "scam"
	ReportReasonInappropriate = "inappropriate"
	ReportReasonDuplicate     = "duplicate"
	ReportReasonIncomplete    = "incomplete"
	ReportReasonOther         = "other"
)

// Queue priority per report reason; unknown reasons default to medium.
func ReportPriority(reason string) string {
	switch reason {
	case ReportReasonSpam, ReportReasonScam:
		return queuestore.PriorityHigh
	case ReportReasonInappropriate, ReportReasonOther:
		return queuestore.PriorityMedium
	case ReportReasonDuplicate, ReportReasonIncomplete:
		return queuestore.PriorityLow
	default:
		return queuestore.PriorityMedium
	}
}

// The author of previously moderated content, from its decision history.
// Empty when the content never passed through auto-moderation.
func (eng *Engine) contentAuthor(ctx context.Context, contentID string) string {
	recs, err := eng.History.List(ctx, contentID)
	if err != nil {
		eng.Logger.Error("reading content history", "err", err, "contentId", contentID)
		return ""
	}
	if len(recs) == 0 {
		return ""
	}
	return recs[len(recs)-1].AuthorID
}

// Files a user report against a piece of content. The report is always
// recorded; duplicate and incomplete reports auto-resolve immediately with a
// content-side effect, everything else lands in the review queue at the
// reason's priority. Never fails outward; storage problems are logged and
// the in-memory report is still returned.
func (eng *Engine) ReportContent(ctx context.Context, contentID, contentType, reporterID, reason, description string) *reportstore.Report {
	now := time.Now().UTC()
	report := reportstore.Report{
		ID:          "rep-" + fmt.Sprintf("%d", now.UnixNano()),
		ContentID:   contentID,
		ContentType: contentType,
		ReporterID:  reporterID,
		Reason:      reason,
		Description: description,
		Priority:    ReportPriority(reason),
		Status:      reportstore.StatusPending,
		CreatedAt:   now,
	}

	logger := eng.Logger.With("contentId", contentID, "reporterId", reporterID, "reason", reason)

	switch reason {
	case ReportReasonDuplicate:
		report.Status = reportstore.StatusResolved
		report.Resolution = "auto: content hidden as duplicate"
		report.ResolvedAt = &now
		if err := eng.Flags.Add(ctx, "content/"+contentID, []string{"hidden", "duplicate"}); err != nil {
			logger.Error("hiding duplicate content", "err", err)
		}
	case ReportReasonIncomplete:
		report.Status = reportstore.StatusResolved
		report.Resolution = "auto: flagged for completion"
		report.ResolvedAt = &now
		if err := eng.Flags.Add(ctx, "content/"+contentID, []string{"needs_completion"}); err != nil {
			logger.Error("flagging incomplete content", "err", err)
		}
	}

	if err := eng.Reports.Add(ctx, report); err != nil {
		logger.Error("recording report", "err", err)
	}
	reportCount.WithLabelValues(reason).Inc()

	if report.Status != reportstore.StatusPending {
		logger.Info("report auto-resolved")
		return &report
	}

	// don't queue the same content+reason from the same reporter twice in a day
	dupeKey := contentID + "/" + reporterID
	counterName := "report-dupe-" + reason
	if existing, err := eng.Counters.GetCount(ctx, counterName, dupeKey, countstore.PeriodDay); err != nil {
		logger.Error("reading report dedupe counter", "err", err)
	} else if existing > 0 {
		logger.Debug("skipping queue insertion for duplicate report", "existing", existing)
		return &report
	}
	if err := eng.Counters.Increment(ctx, counterName, dupeKey); err != nil {
		logger.Error("incrementing report dedupe counter", "err", err)
	}

	if !eng.circuitBreakQueueAdd(ctx) {
		return &report
	}

	entry := queuestore.Entry{
		ID:          report.ID,
		Kind:        queuestore.KindReport,
		ContentID:   contentID,
		ContentType: contentType,
		// so moderator decisions on the report can adjust the author's trust
		AuthorID: eng.contentAuthor(ctx, contentID),
		Priority: report.Priority,
		Status:   queuestore.StatusPending,
		Reason:   reason,
		AddedAt:  now,
	}
	if err := eng.Queue.Add(ctx, entry); err != nil {
		logger.Error("enqueueing report for review", "err", err)
		return &report
	}
	queueAddCount.WithLabelValues(queuestore.KindReport, entry.Priority).Inc()

	if eng.Notifier != nil && report.Priority == queuestore.PriorityHigh {
		if err := eng.Notifier.SendReport(ctx, "webhook", &report); err != nil {
			logger.Error("sending report notification", "err", err)
		}
	}
	return &report
}
