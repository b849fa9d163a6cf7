package panchangcache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/panchang-api/internal/domain/tithi"
)

type entry struct {
	payload   tithi.Response
	expiresAt time.Time
}

// MemoryStore is an in-process implementation of the tithi cache used when no
// external cache is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get implements tithi.Store.
func (s *MemoryStore) Get(_ context.Context, key string) (tithi.Response, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return tithi.Response{}, false
	}
	if !e.expiresAt.IsZero() && e.expiresAt.Before(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return tithi.Response{}, false
	}
	return e.payload, true
}

// Set implements tithi.Store.
func (s *MemoryStore) Set(_ context.Context, key string, value tithi.Response) {
	exp := time.Time{}
	if s.ttl > 0 {
		exp = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[key] = entry{payload: value, expiresAt: exp}
	s.mu.Unlock()
}

var _ tithi.Store = (*MemoryStore)(nil)
