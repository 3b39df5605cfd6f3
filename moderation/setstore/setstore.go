// Package setstore holds named sets of strings used by moderation rules:
// spam phrases, forbidden words, link-shortener domains, and similar
// rule configuration that operators tune without a redeploy.
package setstore

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sort"
	"sync"
)

type SetStore interface {
	// checks if `val` is an element of set `name`
	InSet(ctx context.Context, name, val string) (bool, error)
	// returns all elements of set `name`, sorted; empty slice if the set is unknown
	Values(ctx context.Context, name string) ([]string, error)
}

type MemSetStore struct {
	lk   sync.RWMutex
	sets map[string]map[string]bool
}

func NewMemSetStore() *MemSetStore {
	return &MemSetStore{
		sets: make(map[string]map[string]bool),
	}
}

func (s *MemSetStore) InSet(ctx context.Context, name, val string) (bool, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	set, ok := s.sets[name]
	if !ok {
		// NOTE: currently returns false when entire set isn't found
		return false, nil
	}
	_, ok = set[val]
	return ok, nil
}

func (s *MemSetStore) Values(ctx context.Context, name string) ([]string, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	set, ok := s.sets[name]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, 0, len(set))
	for val := range set {
		out = append(out, val)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemSetStore) AddToSet(name string, vals []string) {
	s.lk.Lock()
	defer s.lk.Unlock()
	set, ok := s.sets[name]
	if !ok {
		set = make(map[string]bool, len(vals))
		s.sets[name] = set
	}
	for _, val := range vals {
		set[val] = true
	}
}

func (s *MemSetStore) LoadFromFileJSON(p string) error {

	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	var sets map[string][]string
	if err := json.Unmarshal(raw, &sets); err != nil {
		return err
	}

	for name, l := range sets {
		s.AddToSet(name, l)
	}
	return nil
}
