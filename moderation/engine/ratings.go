package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/workincz/moderator/moderation/ratingstore"
)

// Runs an employer review through moderation and, if it clears, folds it
// into the employer's aggregate rating. Rejected reviews are recorded in
// moderation history but never affect the rating.
func (eng *Engine) AddEmployerReview(ctx context.Context, employerID, authorID string, rating float64, comment string) (*ratingstore.EmployerRating, *ModerationResult) {
	rec := ContentRecord{
		ContentType: ContentTypeReview,
		AuthorID:    authorID,
		Fields: map[string]string{
			"comment":  comment,
			"employer": employerID,
		},
	}
	result := eng.ProcessContent(ctx, rec)
	if result.Rejected {
		return nil, result
	}

	now := time.Now().UTC()
	review := ratingstore.Review{
		ID:        "rev-" + fmt.Sprintf("%d", now.UnixNano()),
		AuthorID:  authorID,
		Rating:    clampRating(rating),
		Comment:   comment,
		CreatedAt: now,
	}
	agg, err := eng.Ratings.AddReview(ctx, employerID, review)
	if err != nil {
		eng.Logger.Error("recording employer review", "err", err, "employerId", employerID)
		return nil, result
	}
	return agg, result
}

func (eng *Engine) GetEmployerRating(ctx context.Context, employerID string) (*ratingstore.EmployerRating, error) {
	return eng.Ratings.Get(ctx, employerID)
}

func (eng *Engine) VerifyEmployer(ctx context.Context, employerID string, verified bool) error {
	return eng.Ratings.SetVerified(ctx, employerID, verified)
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
