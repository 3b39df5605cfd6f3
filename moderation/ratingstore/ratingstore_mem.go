package ratingstore

import (
	"context"
	"sync"
	"time"
)

type MemRatingStore struct {
	lk      sync.Mutex
	ratings map[string]*EmployerRating
}

func NewMemRatingStore() *MemRatingStore {
	return &MemRatingStore{
		ratings: make(map[string]*EmployerRating),
	}
}

func (s *MemRatingStore) Get(ctx context.Context, employerID string) (*EmployerRating, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	r, ok := s.ratings[employerID]
	if !ok {
		return nil, nil
	}
	out := *r
	out.Reviews = append([]Review{}, r.Reviews...)
	return &out, nil
}

func (s *MemRatingStore) AddReview(ctx context.Context, employerID string, review Review) (*EmployerRating, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	r, ok := s.ratings[employerID]
	if !ok {
		r = &EmployerRating{EmployerID: employerID}
		s.ratings[employerID] = r
	}
	r.Reviews = append(r.Reviews, review)
	var sum float64
	for _, rev := range r.Reviews {
		sum += rev.Rating
	}
	r.Rating = sum / float64(len(r.Reviews))
	r.UpdatedAt = time.Now().UTC()
	out := *r
	out.Reviews = append([]Review{}, r.Reviews...)
	return &out, nil
}

func (s *MemRatingStore) SetVerified(ctx context.Context, employerID string, verified bool) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	r, ok := s.ratings[employerID]
	if !ok {
		r = &EmployerRating{EmployerID: employerID}
		s.ratings[employerID] = r
	}
	r.Verified = verified
	r.UpdatedAt = time.Now().UTC()
	return nil
}
