package countstore

import (
	"context"
	"sync"
)

type MemCountStore struct {
	lk             sync.Mutex
	counts         map[string]int
	distinctCounts map[string]map[string]bool
}

func NewMemCountStore() *MemCountStore {
	return &MemCountStore{
		counts:         make(map[string]int),
		distinctCounts: make(map[string]map[string]bool),
	}
}

func (s *MemCountStore) GetCount(ctx context.Context, name, val, period string) (int, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.counts[periodBucket(name, val, period)], nil
}

func (s *MemCountStore) Increment(ctx context.Context, name, val string) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	for _, p := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		s.counts[periodBucket(name, val, p)]++
	}
	return nil
}

func (s *MemCountStore) IncrementPeriod(ctx context.Context, name, val, period string) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.counts[periodBucket(name, val, period)]++
	return nil
}

func (s *MemCountStore) GetCountDistinct(ctx context.Context, name, bucket, period string) (int, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	return len(s.distinctCounts[periodBucket(name, bucket, period)]), nil
}

func (s *MemCountStore) IncrementDistinct(ctx context.Context, name, bucket, val string) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	for _, p := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		k := periodBucket(name, bucket, p)
		m, ok := s.distinctCounts[k]
		if !ok {
			m = make(map[string]bool)
			s.distinctCounts[k] = m
		}
		m[val] = true
	}
	return nil
}
