// Package guard decides whether a navigation target may render for the
// current session.
package guard

import (
	"workwise/internal/client/session"
	"workwise/internal/domain/auth"
)

type (
	Outcome  = auth.Outcome
	Decision = auth.Decision
)

const (
	Render            = auth.Render
	RedirectLogin     = auth.RedirectLogin
	RedirectForbidden = auth.RedirectForbidden
)

// Loader is the read side of the session store.
type Loader interface {
	Load() (session.Session, bool)
}

// Check evaluates the current session against allowed.
func Check(store Loader, allowed []auth.Role) Decision {
	s, ok := store.Load()
	return auth.Decide(s.Role, ok, allowed)
}
