package handlers

import (
	"sync"

	"github.com/reviewlens/backend/internal/pipeline"
)

// Store holds the latest completed pipeline run for the read handlers.
// There is no persistence: a restart serves nothing until the next run.
type Store struct {
	mu     sync.RWMutex
	latest *pipeline.Result
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(result *pipeline.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = result
}

// Latest returns the most recent run, or nil when none has completed.
func (s *Store) Latest() *pipeline.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
