// Package historystore is an append-only log of moderation decisions per
// piece of content. Records are immutable once appended.
package historystore

import (
	"context"
	"time"
)

type Record struct {
	ContentID      string    `json:"contentId"`
	ContentType    string    `json:"contentType"`
	AuthorID       string    `json:"authorId"`
	Flags          []string  `json:"flags,omitempty"`
	Score          int       `json:"score"`
	Rejected       bool      `json:"rejected"`
	RejectReason   string    `json:"rejectReason,omitempty"`
	ReviewRequired bool      `json:"reviewRequired"`
	CreatedAt      time.Time `json:"createdAt"`
}

type HistoryStore interface {
	Append(ctx context.Context, rec Record) error
	// decisions for the content, oldest first; empty slice when unknown
	List(ctx context.Context, contentID string) ([]Record, error)
}
