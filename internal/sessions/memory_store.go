package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is the single-process fallback used when no redis address is
// configured. Expired entries are dropped lazily on Get.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	user      SessionUser
	expiresAt time.Time
}

func NewMemoryStore(ttlSeconds int) *MemoryStore {
	return &MemoryStore{
		ttl:      time.Duration(ttlSeconds) * time.Second,
		sessions: make(map[string]memorySession),
	}
}

func (m *MemoryStore) Create(ctx context.Context, user SessionUser) (string, error) {
	token := uuid.NewString()

	m.mu.Lock()
	m.sessions[token] = memorySession{
		user:      user,
		expiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	return token, nil
}

func (m *MemoryStore) Get(ctx context.Context, token string) (*SessionUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(s.expiresAt) {
		delete(m.sessions, token)
		return nil, ErrSessionNotFound
	}

	user := s.user
	return &user, nil
}

func (m *MemoryStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}
