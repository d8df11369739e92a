package endpoint

import (
	"sort"
	"sync"
	"sync/atomic"
)

// State is the process-wide context shared by every endpoint. It is created
// once before the server starts and handed out by pointer, so writes made by
// one handler are visible to later calls.
type State struct {
	Something string

	mu     sync.RWMutex
	values map[string]string
	hits   atomic.Int64
}

// NewState builds a State seeded with the given values (may be nil).
func NewState(something string, values map[string]string) *State {
	s := &State{
		Something: something,
		values:    make(map[string]string, len(values)),
	}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

func (s *State) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *State) Set(key, value string) {
	s.mu.Lock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	s.mu.Unlock()
}

// Keys returns the stored keys in sorted order.
func (s *State) Keys() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	s.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Hit records one dispatched request and returns the new total.
func (s *State) Hit() int64 { return s.hits.Add(1) }

func (s *State) Hits() int64 { return s.hits.Load() }
