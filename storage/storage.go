// Package storage holds the durable per-node election state.
package storage

import (
	"errors"
	"sync"
)

// ErrCorrupted marks persisted state that failed validation. A node must not
// keep running on top of it.
var ErrCorrupted = errors.New("persisted state corrupted")

type HardState struct {
	CurrentTerm uint64
	VotedFor    string
}

// StableStore persists the current term and vote. Save must be durable when
// it returns.
type StableStore interface {
	Load() (HardState, error)
	Save(state HardState) error
}

type MemoryStore struct {
	mu    sync.Mutex
	state HardState
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (HardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, nil
}

func (s *MemoryStore) Save(state HardState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.saves++
	return nil
}

// Saves reports how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
