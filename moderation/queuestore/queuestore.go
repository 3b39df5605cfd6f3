// Package queuestore holds the manual-review queue: content that
// auto-moderation could not settle, and user reports awaiting a moderator.
// The pending queue is always ordered by descending priority, FIFO within a
// priority. It also keeps a short window of recently queued content text per
// content type, which the duplicate-detection rule compares against.
package queuestore

import (
	"context"
	"time"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	StatusPending   = "pending"
	StatusProcessed = "processed"

	// entry kinds
	KindAuto   = "auto"
	KindReport = "report"

	// how many recently queued texts are kept per content type
	RecentWindow = 10
)

// Numeric rank for sorting; unknown priorities sort below low.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type Entry struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	ContentID   string     `json:"contentId"`
	ContentType string     `json:"contentType"`
	AuthorID    string     `json:"authorId"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Reason      string     `json:"reason"`
	Flags       []string   `json:"flags,omitempty"`
	Score       int        `json:"score,omitempty"`
	AddedAt     time.Time  `json:"addedAt"`
	ModeratorID string     `json:"moderatorId,omitempty"`
	Action      string     `json:"action,omitempty"`
	ActionNote  string     `json:"actionNote,omitempty"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
}

type QueueStore interface {
	Add(ctx context.Context, entry Entry) error
	// returns nil (no error) when the entry is unknown
	Get(ctx context.Context, id string) (*Entry, error)
	// pending entries sorted by descending priority, FIFO within a priority
	Pending(ctx context.Context) ([]Entry, error)
	// marks the entry processed (terminal); returns false when the entry is
	// unknown or already processed
	MarkProcessed(ctx context.Context, id, moderatorID, action, note string) (bool, error)
	// records content text into the per-type recent window
	PushRecent(ctx context.Context, contentType, text string) error
	// recently queued texts for the type, newest first, at most RecentWindow
	Recent(ctx context.Context, contentType string) ([]string, error)
}
