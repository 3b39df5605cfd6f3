package queuestore

import (
	"context"
	"sync"
	"time"
)

type MemQueueStore struct {
	lk      sync.Mutex
	entries map[string]*Entry
	// IDs of pending entries, kept sorted by descending priority rank
	pending []string
	recent  map[string][]string
}

func NewMemQueueStore() *MemQueueStore {
	return &MemQueueStore{
		entries: make(map[string]*Entry),
		recent:  make(map[string][]string),
	}
}

func (s *MemQueueStore) Add(ctx context.Context, entry Entry) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	e := entry
	s.entries[e.ID] = &e

	// insert before the first lower-ranked entry, keeping FIFO order within
	// a priority
	rank := PriorityRank(e.Priority)
	pos := len(s.pending)
	for i, id := range s.pending {
		if PriorityRank(s.entries[id].Priority) < rank {
			pos = i
			break
		}
	}
	s.pending = append(s.pending, "")
	copy(s.pending[pos+1:], s.pending[pos:])
	s.pending[pos] = e.ID
	return nil
}

func (s *MemQueueStore) Get(ctx context.Context, id string) (*Entry, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	out := *e
	return &out, nil
}

func (s *MemQueueStore) Pending(ctx context.Context) ([]Entry, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	out := make([]Entry, 0, len(s.pending))
	for _, id := range s.pending {
		out = append(out, *s.entries[id])
	}
	return out, nil
}

func (s *MemQueueStore) MarkProcessed(ctx context.Context, id, moderatorID, action, note string) (bool, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	e, ok := s.entries[id]
	if !ok || e.Status != StatusPending {
		return false, nil
	}
	now := time.Now().UTC()
	e.Status = StatusProcessed
	e.ModeratorID = moderatorID
	e.Action = action
	e.ActionNote = note
	e.ProcessedAt = &now
	for i, pid := range s.pending {
		if pid == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *MemQueueStore) PushRecent(ctx context.Context, contentType, text string) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	l := append([]string{text}, s.recent[contentType]...)
	if len(l) > RecentWindow {
		l = l[:RecentWindow]
	}
	s.recent[contentType] = l
	return nil
}

func (s *MemQueueStore) Recent(ctx context.Context, contentType string) ([]string, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	out := make([]string, len(s.recent[contentType]))
	copy(out, s.recent[contentType])
	return out, nil
}
