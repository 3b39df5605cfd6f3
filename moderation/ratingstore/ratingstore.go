// Package ratingstore keeps aggregate employer ratings built from
// individual reviews. The aggregate is the arithmetic mean of all review
// ratings, recomputed on every insert.
package ratingstore

import (
	"context"
	"time"
)

type Review struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type EmployerRating struct {
	EmployerID string    `json:"employerId"`
	Rating     float64   `json:"rating"`
	Reviews    []Review  `json:"reviews"`
	Verified   bool      `json:"verified"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type RatingStore interface {
	// returns nil (no error) for employers with no reviews
	Get(ctx context.Context, employerID string) (*EmployerRating, error)
	// appends the review and recomputes the mean rating
	AddReview(ctx context.Context, employerID string, review Review) (*EmployerRating, error)
	SetVerified(ctx context.Context, employerID string, verified bool) error
}
