package middleware

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/domain/auth"
	"workwise/internal/platform/metrics"
	"workwise/internal/requestctx"
)

type fakeAuthenticator map[string]auth.UserContext

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (auth.UserContext, error) {
	user, ok := f[token]
	if !ok {
		return auth.UserContext{}, apperr.ErrUnauthorized
	}
	return user, nil
}

var tokens = fakeAuthenticator{
	"admin-token":    {UserID: "u1", Role: auth.RoleAdmin},
	"employee-token": {UserID: "u2", Role: auth.RoleEmployee},
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAuthMiddlewareSetsUser(t *testing.T) {
	handler := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			t.Fatal("expected user in context")
		}
		if user.UserID != "u1" || user.Role != auth.RoleAdmin {
			t.Fatalf("unexpected user: %+v", user)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestAuthMiddlewareIgnoresBadToken(t *testing.T) {
	handler := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("did not expect user in context")
		}
	}))
	for _, header := range []string{"", "Bearer nope", "Basic admin-token"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func TestRequireRole(t *testing.T) {
	chain := func(allowed ...auth.Role) http.Handler {
		return Auth(tokens)(RequireRole(allowed...)(http.HandlerFunc(noContent)))
	}
	tests := []struct {
		name    string
		token   string
		allowed []auth.Role
		want    int
	}{
		{name: "anonymous", allowed: []auth.Role{auth.RoleAdmin}, want: http.StatusUnauthorized},
		{name: "wrong role", token: "employee-token", allowed: []auth.Role{auth.RoleAdmin}, want: http.StatusForbidden},
		{name: "allowed", token: "admin-token", allowed: []auth.Role{auth.RoleAdmin}, want: http.StatusNoContent},
		{name: "any authenticated", token: "employee-token", want: http.StatusNoContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			chain(tc.allowed...).ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

type unavailableAuthenticator struct{}

func (unavailableAuthenticator) Authenticate(context.Context, string) (auth.UserContext, error) {
	return auth.UserContext{}, fmt.Errorf("%w: revocation lookup: connection refused", apperr.ErrServiceUnavailable)
}

func TestAuthBackendDownIsNotUnauthorized(t *testing.T) {
	reached := false
	handler := Auth(unavailableAuthenticator{})(RequireRole(auth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if reached {
		t.Fatal("request must not reach the handler")
	}
	if !strings.Contains(rec.Body.String(), `"service_unavailable"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestRateLimitByClientIP(t *testing.T) {
	rejected := 0
	limited := RequestID(RateLimit(1, time.Minute, OnReject(func(*http.Request) { rejected++ }))(http.HandlerFunc(noContent)))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{}`))
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}
	if code := send("203.0.113.10:4444"); code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := send("203.0.113.10:5555"); code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", code)
	}
	if code := send("203.0.113.11:5555"); code != http.StatusNoContent {
		t.Fatalf("expected another ip to pass, got %d", code)
	}
	if rejected != 1 {
		t.Fatalf("expected one rejection, got %d", rejected)
	}
}

func TestRateLimitWindowReset(t *testing.T) {
	limited := RequestID(RateLimit(1, 40*time.Millisecond)(http.HandlerFunc(noContent)))
	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "192.0.2.20:1111"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}
	if code := send(); code != http.StatusNoContent {
		t.Fatalf("expected pass, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected throttle, got %d", code)
	}
	time.Sleep(60 * time.Millisecond)
	if code := send(); code != http.StatusNoContent {
		t.Fatalf("expected pass after window, got %d", code)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestctx.GetRequestID(r.Context()) != "req-42" {
			t.Fatalf("unexpected request id %q", requestctx.GetRequestID(r.Context()))
		}
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") != "req-42" {
		t.Fatal("expected request id echoed")
	}
}

func TestRecovererAndLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := RequestID(Logger(zerolog.New(&buf))(Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crash", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, "panic recovered") || !strings.Contains(out, `"status":500`) {
		t.Fatalf("unexpected log output %s", out)
	}
}

func TestBodyLimit(t *testing.T) {
	handler := BodyLimit(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err == nil {
			t.Fatal("expected body limit error")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	router := chi.NewRouter()
	router.Use(Metrics(metrics.New(reg)))
	router.Get("/employees/{id}", noContent)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/employees/abc", nil))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() != "workwise_http_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "route" && l.GetValue() == "/employees/{id}" {
					return
				}
			}
		}
	}
	t.Fatal("expected route pattern label")
}
