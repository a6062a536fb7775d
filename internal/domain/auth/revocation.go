package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type memoryRevocations struct {
	mu    sync.Mutex
	items map[string]time.Time
}

func NewMemoryRevocations() RevocationStore {
	return &memoryRevocations{items: make(map[string]time.Time)}
}

func (s *memoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if strings.TrimSpace(tokenID) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[tokenID] = time.Now().UTC().Add(ttl)
	return nil
}

func (s *memoryRevocations) Revoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.items[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().UTC().After(exp) {
		delete(s.items, tokenID)
		return false, nil
	}
	return true, nil
}

// Sweeper is implemented by revocation stores that hold expired entries until
// swept. Redis expires keys itself.
type Sweeper interface {
	Sweep(now time.Time) int
}

// Sweep drops revocations whose token would have expired by now.
func (s *memoryRevocations) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, exp := range s.items {
		if now.After(exp) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

// RedisKV is the subset of the redis client used for revocations.
type RedisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisRevocations struct {
	client  RedisKV
	prefix  string
	timeout time.Duration
}

func NewRedisRevocations(client RedisKV) RevocationStore {
	if client == nil {
		return nil
	}
	return &redisRevocations{client: client, prefix: "auth:revoked:", timeout: 500 * time.Millisecond}
}

func (s *redisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if strings.TrimSpace(tokenID) == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Set(ctx, s.prefix+tokenID, "1", ttl).Err()
}

func (s *redisRevocations) Revoked(ctx context.Context, tokenID string) (bool, error) {
	if strings.TrimSpace(tokenID) == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	n, err := s.client.Exists(ctx, s.prefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
