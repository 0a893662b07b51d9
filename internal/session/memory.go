// internal/session/memory.go
package session

import (
	"context"
	"sync"
	"time"

	"brand-intake/internal/common/errors"
	"brand-intake/internal/intake"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store for development and tests. States are
// kept encoded, so every Load returns a fresh copy.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (intake.State, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	now := s.now()
	switch {
	case !ok:
		s.mu.Unlock()
		return nil, errors.NewSessionNotFoundError(id)
	case s.ttl > 0 && now.After(entry.expiresAt):
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, errors.NewSessionNotFoundError(id)
	}
	entry.expiresAt = now.Add(s.ttl)
	s.entries[id] = entry
	s.mu.Unlock()

	state, err := intake.UnmarshalState(entry.data)
	if err != nil {
		return nil, errors.NewSessionStoreFailedError("decode", err)
	}
	return state, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, state intake.State) error {
	data, err := intake.MarshalState(state)
	if err != nil {
		return errors.NewSessionStoreFailedError("encode", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
