package auth

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	keys map[string]time.Duration
}

func (f *fakeRedis) Set(_ context.Context, key string, _ interface{}, expiration time.Duration) *redis.StatusCmd {
	f.keys[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisRevocations(t *testing.T) {
	fake := &fakeRedis{keys: map[string]time.Duration{}}
	store := NewRedisRevocations(fake)
	ctx := context.Background()

	if err := store.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if ttl, ok := fake.keys["auth:revoked:jti-1"]; !ok || ttl != time.Minute {
		t.Fatalf("expected prefixed key with ttl, got %v", fake.keys)
	}
	revoked, err := store.Revoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("expected revoked, got %v %v", revoked, err)
	}
	revoked, _ = store.Revoked(ctx, "jti-2")
	if revoked {
		t.Fatal("unknown token must not be revoked")
	}
	if err := store.Revoke(ctx, "jti-3", 0); err != nil || len(fake.keys) != 1 {
		t.Fatalf("zero ttl should be a no-op, keys=%v err=%v", fake.keys, err)
	}
}

func TestMemoryRevocationsExpire(t *testing.T) {
	store := NewMemoryRevocations()
	ctx := context.Background()
	_ = store.Revoke(ctx, "a", time.Hour)
	_ = store.Revoke(ctx, "b", -time.Second)
	if ok, _ := store.Revoked(ctx, "a"); !ok {
		t.Fatal("expected a revoked")
	}
	if ok, _ := store.Revoked(ctx, "b"); ok {
		t.Fatal("expected b expired")
	}
	if ok, _ := store.Revoked(ctx, ""); ok {
		t.Fatal("blank id is never revoked")
	}
}

func TestMemoryRevocationsSweep(t *testing.T) {
	store := NewMemoryRevocations()
	ctx := context.Background()
	_ = store.Revoke(ctx, "a", time.Hour)
	_ = store.Revoke(ctx, "b", time.Minute)

	sweeper, ok := store.(Sweeper)
	if !ok {
		t.Fatal("memory revocations should be sweepable")
	}
	if n := sweeper.Sweep(time.Now().UTC().Add(2 * time.Minute)); n != 1 {
		t.Fatalf("expected 1 swept, got %d", n)
	}
	if ok, _ := store.Revoked(ctx, "a"); !ok {
		t.Fatal("unexpired revocation was swept")
	}
}
