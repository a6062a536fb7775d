package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"workwise/internal/requestctx"
	"workwise/internal/transport/http/shared"
)

// RequestID tags the request with X-Request-ID (generated when absent) and
// records the client address.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" || len(reqID) > 128 {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := requestctx.WithRequestID(r.Context(), reqID)
		ctx = requestctx.WithClientIP(ctx, shared.ClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
