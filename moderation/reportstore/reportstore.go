// Package reportstore persists user reports against content. A piece of
// content can accumulate any number of reports; each report resolves
// independently.
package reportstore

import (
	"context"
	"time"
)

const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
	StatusRejected = "rejected"
)

type Report struct {
	ID          string     `json:"id"`
	ContentID   string     `json:"contentId"`
	ContentType string     `json:"contentType"`
	ReporterID  string     `json:"reporterId"`
	Reason      string     `json:"reason"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ModeratorID string     `json:"moderatorId,omitempty"`
	Resolution  string     `json:"resolution,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

type ReportStore interface {
	Add(ctx context.Context, report Report) error
	// returns nil (no error) when the report is unknown
	Get(ctx context.Context, id string) (*Report, error)
	// all reports filed against the content, oldest first
	ListByContent(ctx context.Context, contentID string) ([]Report, error)
	// moves a pending report to a terminal status; returns false when the
	// report is unknown or already settled
	Resolve(ctx context.Context, id, status, moderatorID, resolution string) (bool, error)
}
