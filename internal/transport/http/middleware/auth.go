package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/domain/auth"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
)

// Authenticator resolves a bearer token into the calling user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.UserContext, error)
}

// BearerToken returns the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Auth attaches the authenticated user when a valid bearer token is present.
// Requests without one pass through anonymous; RequireRole rejects them. A
// token that cannot be checked is a 503, never an anonymous request.
func Auth(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			user, err := authn.Authenticate(r.Context(), token)
			if errors.Is(err, apperr.ErrServiceUnavailable) {
				zerolog.Ctx(r.Context()).Error().Err(err).Msg("token check failed")
				api.Fail(w, http.StatusServiceUnavailable, "service_unavailable", "authentication backend unavailable", requestctx.GetRequestID(r.Context()))
				return
			}
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := auth.WithUser(r.Context(), user)
			log := zerolog.Ctx(ctx).With().Str("user_id", user.UserID).Logger()
			next.ServeHTTP(w, r.WithContext(log.WithContext(ctx)))
		})
	}
}

func GetUser(ctx context.Context) (auth.UserContext, bool) {
	return auth.UserFrom(ctx)
}

// RequireRole runs the route guard decision for API calls: no user is a 401,
// a user outside allowed is a 403. An empty allowed set admits any user.
func RequireRole(allowed ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			requestID := requestctx.GetRequestID(r.Context())
			switch auth.Decide(user.Role, ok, allowed).Outcome {
			case auth.RedirectLogin:
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
				return
			case auth.RedirectForbidden:
				api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
