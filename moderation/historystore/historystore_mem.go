package historystore

import (
	"context"
	"sync"
)

type MemHistoryStore struct {
	lk      sync.Mutex
	records map[string][]Record
}

func NewMemHistoryStore() *MemHistoryStore {
	return &MemHistoryStore{
		records: make(map[string][]Record),
	}
}

func (s *MemHistoryStore) Append(ctx context.Context, rec Record) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.records[rec.ContentID] = append(s.records[rec.ContentID], rec)
	return nil
}

func (s *MemHistoryStore) List(ctx context.Context, contentID string) ([]Record, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	out := make([]Record, len(s.records[contentID]))
	copy(out, s.records[contentID])
	return out, nil
}
