package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"workwise/internal/apperr"
)

type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (s *MemoryStore) FindActiveUserByUsername(ctx context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) && u.Status == UserStatusActive {
			return u, nil
		}
	}
	return User{}, apperr.ErrNotFound
}

func (s *MemoryStore) GetUser(ctx context.Context, userID string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.users {
		if strings.EqualFold(existing.Username, user.Username) {
			existing.DisplayName = user.DisplayName
			s.users[id] = existing
			return id, nil
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Status == "" {
		user.Status = UserStatusActive
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	s.users[user.ID] = user
	return user.ID, nil
}

func (s *MemoryStore) UpdateMFASecret(ctx context.Context, userID string, secretEnc []byte) error {
	return s.update(userID, func(u *User) {
		u.MFASecretEnc = secretEnc
		u.MFAEnabled = false
	})
}

func (s *MemoryStore) SetMFAEnabled(ctx context.Context, userID string, enabled bool) error {
	return s.update(userID, func(u *User) { u.MFAEnabled = enabled })
}

func (s *MemoryStore) UpdateLastLogin(ctx context.Context, userID string) error {
	return s.update(userID, func(*User) {})
}

func (s *MemoryStore) update(userID string, fn func(*User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return apperr.ErrNotFound
	}
	fn(&u)
	s.users[userID] = u
	return nil
}
