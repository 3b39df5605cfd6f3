// Package truststore tracks per-user reputation scores. Scores start at a
// neutral default and move with moderator decisions on the user's content;
// low-trust users get routed to manual review.
package truststore

import (
	"context"
	"time"
)

const (
	// score assigned to users the store has never seen
	DefaultScore = 50
	MinScore     = 0
	MaxScore     = 100
)

type TrustEvent struct {
	Action    string    `json:"action"`
	Points    int       `json:"points"`
	Timestamp time.Time `json:"timestamp"`
}

type TrustScore struct {
	UserID      string       `json:"userId"`
	Score       int          `json:"score"`
	History     []TrustEvent `json:"history"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

type TrustStore interface {
	// returns the user's current trust score. Unknown users get the neutral
	// default; reading never creates or mutates state.
	Get(ctx context.Context, userID string) (*TrustScore, error)
	// applies a delta to the user's score, clamped to [MinScore, MaxScore],
	// and appends the action to the user's history. Creates the record with
	// the default score first if the user is unknown.
	Adjust(ctx context.Context, userID, action string, points int) (*TrustScore, error)
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func defaultTrustScore(userID string) *TrustScore {
	return &TrustScore{
		UserID: userID,
		Score:  DefaultScore,
	}
}

func applyAdjustment(ts *TrustScore, action string, points int, now time.Time) {
	ts.Score = clampScore(ts.Score + points)
	ts.History = append(ts.History, TrustEvent{
		Action:    action,
		Points:    points,
		Timestamp: now,
	})
	ts.LastUpdated = now
}
