package auth

import (
	"context"
	"time"
)

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName"`
	Role         Role      `json:"role"`
	EmployeeID   string    `json:"employeeId,omitempty"`
	PasswordHash string    `json:"-"`
	MFAEnabled   bool      `json:"mfaEnabled"`
	MFASecretEnc []byte    `json:"-"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is what the identity service hands back for verified credentials.
type Identity struct {
	SubjectID   string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"name"`
	Role        Role   `json:"role"`
	EmployeeID  string `json:"employeeId,omitempty"`
}

// UserContext is the authenticated caller attached to a request.
type UserContext struct {
	UserID      string
	Username    string
	DisplayName string
	Role        Role
	TokenID     string
	ExpiresAt   time.Time
}

type ctxKey struct{}

func WithUser(ctx context.Context, user UserContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

func UserFrom(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(ctxKey{}).(UserContext)
	return user, ok
}
