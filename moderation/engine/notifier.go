package engine

import (
	"context"

	"github.com/workincz/moderator/moderation/reportstore"
)

// Interface for a type that can handle sending notifications
type Notifier interface {
	SendResult(ctx context.Context, service string, result *ModerationResult) error
	SendReport(ctx context.Context, service string, report *reportstore.Report) error
}
