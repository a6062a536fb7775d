package auth

import (
	"context"
	"time"
)

type StoreAPI interface {
	FindActiveUserByUsername(ctx context.Context, username string) (User, error)
	GetUser(ctx context.Context, userID string) (User, error)
	CreateUser(ctx context.Context, user User) (string, error)
	UpdateMFASecret(ctx context.Context, userID string, secretEnc []byte) error
	SetMFAEnabled(ctx context.Context, userID string, enabled bool) error
	UpdateLastLogin(ctx context.Context, userID string) error
}

// RevocationStore remembers access tokens revoked before their expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	Revoked(ctx context.Context, tokenID string) (bool, error)
}
