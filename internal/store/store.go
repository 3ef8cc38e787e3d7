// Package store is the process-wide global data store that build-time
// plugins publish into and render-time code reads from.
//
// A key may be written once per content-load cycle. BeginCycle starts a new
// cycle and drops everything published during the previous one.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyPublished is returned when a key is written twice in one cycle.
var ErrAlreadyPublished = errors.New("store: key already published in this cycle")

// Store holds published values keyed by name.
type Store struct {
	mu    sync.RWMutex
	cycle uint64
	data  map[string]any
}

// New returns an empty store positioned on its first cycle.
func New() *Store {
	return &Store{cycle: 1, data: make(map[string]any)}
}

// BeginCycle discards all published values and advances the cycle counter.
func (s *Store) BeginCycle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycle++
	s.data = make(map[string]any)
}

// Publish stores v under key for the current cycle.
func (s *Store) Publish(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = make(map[string]any)
	}
	if _, exists := s.data[key]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyPublished, key)
	}
	s.data[key] = v
	return nil
}

// Get returns the value published under key in the current cycle.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *Store) Cycle() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycle
}
