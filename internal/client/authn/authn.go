// Package authn turns credentials into a stored session and tears it down
// again on logout or when the backend rejects the token.
package authn

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/client/notify"
	"workwise/internal/client/session"
	"workwise/internal/domain/auth"
)

const (
	MsgLoginSuccess   = "Login successful"
	MsgLoginFailed    = "Login failed"
	MsgLoggedOut      = "Logged out successfully"
	MsgAuthError      = "Authentication error"
	MsgSessionExpired = "Your session has expired. Please log in again."
)

type Credential struct {
	Username string
	Password string
	OTP      string
}

// Verifier is the identity service: it checks a credential and hands back the
// identity plus an access token.
type Verifier interface {
	Verify(ctx context.Context, cred Credential) (auth.Identity, string, error)
}

// Revoker invalidates a token server side.
type Revoker interface {
	Revoke(ctx context.Context, token string) error
}

// Navigator moves the interface to another path.
type Navigator interface {
	Go(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Go(path string) { f(path) }

type Authenticator struct {
	Store    session.Store
	Verifier Verifier
	Revoker  Revoker
	Notifier notify.Notifier
	Nav      Navigator
	Log      zerolog.Logger
}

func New(store session.Store, verifier Verifier, notifier notify.Notifier, nav Navigator) *Authenticator {
	a := &Authenticator{Store: store, Verifier: verifier, Notifier: notifier, Nav: nav, Log: zerolog.Nop()}
	if r, ok := verifier.(Revoker); ok {
		a.Revoker = r
	}
	return a
}

type LoginOption func(*Credential)

// WithOTP supplies the one-time code of an account with MFA enabled.
func WithOTP(code string) LoginOption {
	return func(c *Credential) {
		c.OTP = strings.TrimSpace(code)
	}
}

// Login verifies the credential and, on success, replaces any stored session
// and navigates to the role's landing page. On failure the stored session is
// left as it was.
func (a *Authenticator) Login(ctx context.Context, username, password string, opts ...LoginOption) (session.Session, error) {
	cred := Credential{Username: strings.TrimSpace(username), Password: password}
	for _, opt := range opts {
		opt(&cred)
	}
	if cred.Username == "" || cred.Password == "" {
		a.notify(notify.Error, MsgLoginFailed, "Username and password are required")
		return session.Session{}, apperr.ErrInvalidInput
	}

	identity, token, err := a.Verifier.Verify(ctx, cred)
	if err != nil {
		err = classify(err)
		a.Log.Warn().Err(err).Str("username", cred.Username).Msg("login failed")
		a.notify(notify.Error, MsgLoginFailed, reason(err))
		return session.Session{}, err
	}

	s := session.FromIdentity(identity)
	if err := a.Store.Save(s, token); err != nil {
		a.Log.Error().Err(err).Msg("session save failed")
		a.notify(notify.Error, MsgLoginFailed, "Could not store the session")
		return session.Session{}, err
	}
	a.notify(notify.Success, MsgLoginSuccess, "Welcome back, "+s.DisplayName+"!")
	a.navigate(auth.LandingPage(s.Role))
	return s, nil
}

// Logout always ends the local session. Server side revocation is best effort.
func (a *Authenticator) Logout(ctx context.Context) {
	if token := a.Store.Token(); token != "" && a.Revoker != nil {
		if err := a.Revoker.Revoke(ctx, token); err != nil {
			a.Log.Warn().Err(err).Msg("token revocation failed")
		}
	}
	if err := a.Store.Clear(); err != nil {
		a.Log.Error().Err(err).Msg("session clear failed")
	}
	a.notify(notify.Success, MsgLoggedOut, "")
	a.navigate(auth.EntryPage)
}

// Invalidate is the teardown for a rejected token: clear the session and go
// to the entry page. The notice is only shown when a session was actually
// present, so a burst of 401s reports once.
func (a *Authenticator) Invalidate() {
	_, had := a.Store.Load()
	if err := a.Store.Clear(); err != nil {
		a.Log.Error().Err(err).Msg("session clear failed")
	}
	if had {
		a.Log.Info().Msg("session invalidated by server")
		a.notify(notify.Error, MsgAuthError, MsgSessionExpired)
	}
	a.navigate(auth.EntryPage)
}

// Current returns the stored session.
func (a *Authenticator) Current() (session.Session, bool) {
	return a.Store.Load()
}

func (a *Authenticator) notify(level notify.Level, title, message string) {
	if a.Notifier != nil {
		a.Notifier.Notify(notify.Notice{Level: level, Title: title, Message: message})
	}
}

func (a *Authenticator) navigate(path string) {
	if a.Nav != nil {
		a.Nav.Go(path)
	}
}

// classify folds verifier errors into the login outcomes.
func classify(err error) error {
	switch {
	case errors.Is(err, apperr.ErrMFARequired),
		errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrServiceUnavailable),
		errors.Is(err, apperr.ErrInvalidInput):
		return err
	case errors.Is(err, apperr.ErrUnauthorized):
		return apperr.ErrInvalidCredentials
	}
	return errors.Join(apperr.ErrServiceUnavailable, err)
}

func reason(err error) string {
	switch {
	case errors.Is(err, apperr.ErrMFARequired):
		return "A one-time code is required for this account"
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, apperr.ErrInvalidInput):
		return "Username and password are required"
	}
	return "Unable to reach the server. Please try again later."
}
