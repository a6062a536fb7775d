// Package session persists the authenticated user of the console client.
package session

import (
	"strings"

	"workwise/internal/domain/auth"
)

// Session is the cached identity of the logged-in user.
type Session struct {
	SubjectID   string    `json:"id"`
	DisplayName string    `json:"name"`
	Username    string    `json:"username"`
	Role        auth.Role `json:"role"`
}

// Complete reports whether every field needed by the guard is populated.
func (s Session) Complete() bool {
	return strings.TrimSpace(s.SubjectID) != "" &&
		strings.TrimSpace(s.Username) != "" &&
		s.Role.Valid()
}

func FromIdentity(id auth.Identity) Session {
	return Session{
		SubjectID:   id.SubjectID,
		DisplayName: id.DisplayName,
		Username:    id.Username,
		Role:        id.Role,
	}
}

// Store holds at most one session plus its access token.
//
// Load never fails: anything missing, unreadable or partial is reported as
// no session. Save replaces the prior value. Clear is idempotent.
type Store interface {
	Load() (Session, bool)
	Token() string
	Save(s Session, token string) error
	Clear() error
}
