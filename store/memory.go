package store

import (
	"context"
	"errors"
	"sync"
)

var errEmpty = errors.New("no token record saved")

// MemoryStore holds the record in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	record  TokenRecord
	saved   bool
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, record TokenRecord) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record
	s.saved = true
	return nil
}

func (s *MemoryStore) Load(_ context.Context) LoadResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return LoadResult{Err: errEmpty}
	}
	return LoadResult{Record: s.record}
}
