package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workwise/internal/platform/metrics"
)

// Metrics records request counts and latency by chi route pattern, which
// keeps path parameters out of the label set.
func Metrics(c *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			c.Record(r.Method, route, recorder.status, time.Since(start))
		})
	}
}
