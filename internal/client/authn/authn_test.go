package authn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"workwise/internal/apperr"
	"workwise/internal/client/apiclient"
	"workwise/internal/client/guard"
	"workwise/internal/client/notify"
	"workwise/internal/client/session"
	"workwise/internal/domain/auth"
	"workwise/internal/listing"
	"workwise/internal/transport/http/api"
)

type fakeVerifier struct {
	calls   int
	revoked []string
	err     error
}

var accounts = map[string]auth.Identity{
	"admin":    {SubjectID: "u-admin", Username: "admin", DisplayName: "Administrator", Role: auth.RoleAdmin},
	"employee": {SubjectID: "u-emp", Username: "employee", DisplayName: "John Doe", Role: auth.RoleEmployee},
}

func (f *fakeVerifier) Verify(_ context.Context, cred Credential) (auth.Identity, string, error) {
	f.calls++
	if f.err != nil {
		return auth.Identity{}, "", f.err
	}
	id, ok := accounts[cred.Username]
	if !ok || cred.Password != cred.Username {
		return auth.Identity{}, "", apperr.ErrInvalidCredentials
	}
	return id, "token-" + cred.Username, nil
}

func (f *fakeVerifier) Revoke(_ context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

// countingStore records every access to the wrapped store.
type countingStore struct {
	session.Store
	reads, writes int
}

func (c *countingStore) Load() (session.Session, bool) {
	c.reads++
	return c.Store.Load()
}

func (c *countingStore) Token() string {
	c.reads++
	return c.Store.Token()
}

func (c *countingStore) Save(s session.Session, token string) error {
	c.writes++
	return c.Store.Save(s, token)
}

func (c *countingStore) Clear() error {
	c.writes++
	return c.Store.Clear()
}

type fixture struct {
	auth     *Authenticator
	store    *countingStore
	verifier *fakeVerifier
	notices  *notify.Recorder
	paths    []string
}

func newFixture() *fixture {
	f := &fixture{
		store:    &countingStore{Store: session.NewMemoryStore()},
		verifier: &fakeVerifier{},
		notices:  &notify.Recorder{},
	}
	f.auth = New(f.store, f.verifier, f.notices, NavigatorFunc(func(p string) { f.paths = append(f.paths, p) }))
	return f
}

func (f *fixture) lastPath() string {
	if len(f.paths) == 0 {
		return ""
	}
	return f.paths[len(f.paths)-1]
}

func TestLoginEmptyInput(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"both empty", "", ""},
		{"empty username", "", "admin"},
		{"blank username", "   ", "admin"},
		{"empty password", "admin", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.auth.Login(context.Background(), tc.username, tc.password)
			if !errors.Is(err, apperr.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if f.verifier.calls != 0 {
				t.Fatalf("expected no verifier call, got %d", f.verifier.calls)
			}
			if f.store.reads != 0 || f.store.writes != 0 {
				t.Fatalf("expected no store access, got %d reads %d writes", f.store.reads, f.store.writes)
			}
			if n, ok := f.notices.Last(); !ok || n.Level != notify.Error {
				t.Fatalf("expected error notice, got %+v", n)
			}
			if len(f.paths) != 0 {
				t.Fatalf("expected no navigation, got %v", f.paths)
			}
		})
	}
}

func TestLoginByRole(t *testing.T) {
	tests := []struct {
		username string
		role     auth.Role
		landing  string
		allowed  auth.Role
		denied   auth.Role
	}{
		{"admin", auth.RoleAdmin, auth.AdminLandingPage, auth.RoleAdmin, auth.RoleEmployee},
		{"employee", auth.RoleEmployee, auth.EmployeeLandingPage, auth.RoleEmployee, auth.RoleAdmin},
	}
	for _, tc := range tests {
		t.Run(tc.username, func(t *testing.T) {
			f := newFixture()
			s, err := f.auth.Login(context.Background(), tc.username, tc.username)
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if s.Role != tc.role {
				t.Fatalf("expected role %s, got %s", tc.role, s.Role)
			}
			stored, ok := f.store.Load()
			if !ok || stored.Role != tc.role || f.store.Token() != "token-"+tc.username {
				t.Fatalf("unexpected stored session %+v", stored)
			}
			if f.lastPath() != tc.landing {
				t.Fatalf("expected redirect to %s, got %q", tc.landing, f.lastPath())
			}
			if n, _ := f.notices.Last(); n.Level != notify.Success || n.Title != MsgLoginSuccess {
				t.Fatalf("unexpected notice %+v", n)
			}

			if d := guard.Check(f.store, []auth.Role{tc.allowed}); d.Outcome != guard.Render {
				t.Fatalf("expected render for %s, got %s", tc.allowed, d.Outcome)
			}
			d := guard.Check(f.store, []auth.Role{tc.denied})
			if d.Outcome != guard.RedirectForbidden || d.Target != tc.landing {
				t.Fatalf("expected forbidden redirect to %s, got %+v", tc.landing, d)
			}
		})
	}
}

func TestLoginWrongCredentialsKeepsSession(t *testing.T) {
	f := newFixture()
	if _, err := f.auth.Login(context.Background(), "admin", "admin"); err != nil {
		t.Fatalf("login: %v", err)
	}
	before, _ := f.store.Load()
	navigations := len(f.paths)

	_, err := f.auth.Login(context.Background(), "x", "wrong")
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	after, ok := f.store.Load()
	if !ok || after != before || f.store.Token() != "token-admin" {
		t.Fatalf("expected prior session untouched, got %+v", after)
	}
	if len(f.paths) != navigations {
		t.Fatal("expected no redirect on failure")
	}
	if n, _ := f.notices.Last(); n.Title != MsgLoginFailed || n.Message != "Invalid credentials" {
		t.Fatalf("unexpected notice %+v", n)
	}
}

func TestLoginWrongCredentialsNoSession(t *testing.T) {
	f := newFixture()
	if _, err := f.auth.Login(context.Background(), "admin", "nope"); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, ok := f.store.Load(); ok {
		t.Fatal("expected no session")
	}
}

func TestLoginServiceUnavailable(t *testing.T) {
	f := newFixture()
	f.verifier.err = errors.New("dial tcp: connection refused")
	_, err := f.auth.Login(context.Background(), "admin", "admin")
	if !errors.Is(err, apperr.ErrServiceUnavailable) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
	if _, ok := f.store.Load(); ok {
		t.Fatal("expected no session")
	}
}

func TestReloginOverwrites(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if _, err := f.auth.Login(ctx, "admin", "admin"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := f.auth.Login(ctx, "employee", "employee"); err != nil {
		t.Fatalf("relogin: %v", err)
	}
	s, _ := f.auth.Current()
	if s.Role != auth.RoleEmployee || f.store.Token() != "token-employee" {
		t.Fatalf("expected employee session, got %+v", s)
	}
}

func TestLogout(t *testing.T) {
	f := newFixture()
	if _, err := f.auth.Login(context.Background(), "admin", "admin"); err != nil {
		t.Fatalf("login: %v", err)
	}
	f.auth.Logout(context.Background())

	if _, ok := f.store.Load(); ok {
		t.Fatal("expected no session after logout")
	}
	if len(f.verifier.revoked) != 1 || f.verifier.revoked[0] != "token-admin" {
		t.Fatalf("expected token revoked, got %v", f.verifier.revoked)
	}
	if f.lastPath() != auth.EntryPage {
		t.Fatalf("expected redirect to entry page, got %q", f.lastPath())
	}
	for _, role := range []auth.Role{auth.RoleAdmin, auth.RoleEmployee} {
		if d := guard.Check(f.store, []auth.Role{role}); d.Outcome != guard.RedirectLogin {
			t.Fatalf("expected login redirect for %s, got %s", role, d.Outcome)
		}
	}

	// Logging out again only redirects.
	f.auth.Logout(context.Background())
	if len(f.verifier.revoked) != 1 {
		t.Fatal("expected no revoke without a token")
	}
	if f.lastPath() != auth.EntryPage {
		t.Fatalf("expected redirect to entry page, got %q", f.lastPath())
	}
}

func TestInvalidateNotifiesOnce(t *testing.T) {
	f := newFixture()
	if _, err := f.auth.Login(context.Background(), "employee", "employee"); err != nil {
		t.Fatalf("login: %v", err)
	}
	before := len(f.notices.Notices())

	f.auth.Invalidate()
	f.auth.Invalidate()

	if _, ok := f.store.Load(); ok {
		t.Fatal("expected session cleared")
	}
	notices := f.notices.Notices()[before:]
	if len(notices) != 1 || notices[0].Title != MsgAuthError {
		t.Fatalf("expected one auth error notice, got %+v", notices)
	}
	if f.lastPath() != auth.EntryPage {
		t.Fatalf("expected redirect to entry page, got %v", f.paths)
	}
}

func TestInvalidateWithoutSessionStillRedirects(t *testing.T) {
	f := newFixture()
	f.auth.Invalidate()

	if len(f.notices.Notices()) != 0 {
		t.Fatalf("expected no notice, got %+v", f.notices.Notices())
	}
	if f.lastPath() != auth.EntryPage {
		t.Fatalf("expected redirect to entry page, got %v", f.paths)
	}
}

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			api.Success(w, map[string]any{"token": "tok-1", "user": accounts["admin"]}, "")
		case "/employees":
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "token revoked", "")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	notices := &notify.Recorder{}
	var paths []string
	a := New(store, HTTPVerifier{Client: apiclient.New(srv.URL, 0, nil)}, notices, NavigatorFunc(func(p string) { paths = append(paths, p) }))

	client := apiclient.New(srv.URL, 0, store)
	client.Notifier = notices
	client.OnUnauthorized = a.Invalidate
	resources := apiclient.NewAPI(client)

	ctx := context.Background()
	if _, err := a.Login(ctx, "admin", "admin"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := resources.Employees.List(ctx, listing.Query{}); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Fatal("expected session cleared by 401")
	}
	if paths[len(paths)-1] != auth.EntryPage {
		t.Fatalf("expected redirect to entry page, got %v", paths)
	}
	if d := guard.Check(store, []auth.Role{auth.RoleAdmin}); d.Outcome != guard.RedirectLogin {
		t.Fatalf("expected guard to redirect, got %s", d.Outcome)
	}
}

func TestHTTPVerifierInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", "")
	}))
	defer srv.Close()

	v := HTTPVerifier{Client: apiclient.New(srv.URL, 0, nil)}
	_, _, err := v.Verify(context.Background(), Credential{Username: "x", Password: "wrong"})
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}
