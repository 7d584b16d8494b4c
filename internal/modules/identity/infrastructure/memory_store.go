package infrastructure

import (
	"context"
	"sync"
	"time"

	"mesaYaApi/internal/modules/identity/application/port"
	"mesaYaApi/internal/modules/identity/domain"
)

type tokenEntry struct {
	userID    string
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory. Used when no Redis
// address is configured and in tests.
type MemorySessionStore struct {
	mu     sync.RWMutex
	tokens map[string]tokenEntry
	users  map[string]domain.User
	now    func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		tokens: make(map[string]tokenEntry),
		users:  make(map[string]domain.User),
		now:    time.Now,
	}
}

func (s *MemorySessionStore) SaveToken(_ context.Context, sessionID, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sessionID] = tokenEntry{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) LookupToken(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	entry, ok := s.tokens[sessionID]
	s.mu.RUnlock()
	if !ok || !entry.expiresAt.After(s.now()) {
		return "", port.ErrNoSession
	}
	return entry.userID, nil
}

func (s *MemorySessionStore) DeleteToken(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sessionID)
	return nil
}

func (s *MemorySessionStore) SaveUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}

func (s *MemorySessionStore) LoadUser(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, port.ErrUserNotFound
	}
	return &user, nil
}
