package session

import (
	"context"
	"sync"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/shared"
)

// MemoryStore keeps sessions in-process. Entries past their TTL load as an
// empty session; a background sweep is not needed because the store is
// capped by the number of live conversations.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	session   shared.FrontDeskSession
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*shared.FrontDeskSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return &shared.FrontDeskSession{}, nil
	}
	copied := entry.session
	return &copied, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, session *shared.FrontDeskSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		session:   *session,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}
