// Package flagstore records moderation flags against a subject (a content
// ID or a user ID). Flags are internal markers, not user-visible labels.
package flagstore

import (
	"context"
)

type FlagStore interface {
	Get(ctx context.Context, key string) ([]string, error)
	Add(ctx context.Context, key string, flags []string) error
	Remove(ctx context.Context, key string, flags []string) error
}
