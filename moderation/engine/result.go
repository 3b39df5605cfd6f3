package engine

import (
	"time"

	"github.com/workincz/moderator/moderation/queuestore"
)

// Outcome of one auto-moderation pass over a piece of content. Immutable
// once returned; a copy is appended to the content's history.
type ModerationResult struct {
	ContentID      string    `json:"contentId"`
	ContentType    string    `json:"contentType"`
	AuthorID       string    `json:"authorId"`
	Flags          []string  `json:"flags"`
	Score          int       `json:"score"`
	Rejected       bool      `json:"rejected"`
	RejectReason   string    `json:"rejectReason,omitempty"`
	ReviewRequired bool      `json:"reviewRequired"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Approved means "not rejected by auto-moderation". When ReviewRequired is
// set the decision is not final: callers must wait for the moderator action
// before treating the content as cleared for publication.
func (r *ModerationResult) Approved() bool {
	return !r.Rejected
}

// Queue priority for a result that needs manual review, derived from the
// accumulated score.
func (r *ModerationResult) QueuePriority() string {
	switch {
	case r.Score >= HighPriorityScoreThreshold:
		return queuestore.PriorityHigh
	case r.Score >= MediumPriorityScoreThreshold:
		return queuestore.PriorityMedium
	default:
		return queuestore.PriorityLow
	}
}
