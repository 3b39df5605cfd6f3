package truststore

import (
	"context"
	"sync"
	"time"
)

type MemTrustStore struct {
	lk     sync.Mutex
	scores map[string]*TrustScore
}

func NewMemTrustStore() *MemTrustStore {
	return &MemTrustStore{
		scores: make(map[string]*TrustScore),
	}
}

func (s *MemTrustStore) Get(ctx context.Context, userID string) (*TrustScore, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	ts, ok := s.scores[userID]
	if !ok {
		return defaultTrustScore(userID), nil
	}
	out := *ts
	out.History = append([]TrustEvent{}, ts.History...)
	return &out, nil
}

func (s *MemTrustStore) Adjust(ctx context.Context, userID, action string, points int) (*TrustScore, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	ts, ok := s.scores[userID]
	if !ok {
		ts = defaultTrustScore(userID)
		s.scores[userID] = ts
	}
	applyAdjustment(ts, action, points, time.Now().UTC())
	out := *ts
	out.History = append([]TrustEvent{}, ts.History...)
	return &out, nil
}
