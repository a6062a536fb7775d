package session

import (
	"fmt"
	"strings"
	"sync"

	"workwise/internal/apperr"
)

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.Mutex
	session Session
	token   string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" || !m.session.Complete() {
		return Session{}, false
	}
	return m.session, true
}

func (m *MemoryStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemoryStore) Save(s Session, token string) error {
	if !s.Complete() || strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: incomplete session", apperr.ErrInvalidInput)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session, m.token = s, token
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session, m.token = Session{}, ""
	return nil
}
