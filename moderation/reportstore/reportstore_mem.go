package reportstore

import (
	"context"
	"sync"
	"time"
)

type MemReportStore struct {
	lk        sync.Mutex
	reports   map[string]*Report
	byContent map[string][]string
}

func NewMemReportStore() *MemReportStore {
	return &MemReportStore{
		reports:   make(map[string]*Report),
		byContent: make(map[string][]string),
	}
}

func (s *MemReportStore) Add(ctx context.Context, report Report) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	r := report
	s.reports[r.ID] = &r
	s.byContent[r.ContentID] = append(s.byContent[r.ContentID], r.ID)
	return nil
}

func (s *MemReportStore) Get(ctx context.Context, id string) (*Report, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, nil
	}
	out := *r
	return &out, nil
}

func (s *MemReportStore) ListByContent(ctx context.Context, contentID string) ([]Report, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	ids := s.byContent[contentID]
	out := make([]Report, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.reports[id])
	}
	return out, nil
}

func (s *MemReportStore) Resolve(ctx context.Context, id, status, moderatorID, resolution string) (bool, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	r, ok := s.reports[id]
	if !ok || r.Status != StatusPending {
		return false, nil
	}
	now := time.Now().UTC()
	r.Status = status
	r.ModeratorID = moderatorID
	r.Resolution = resolution
	r.ResolvedAt = &now
	return true, nil
}
