// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workwise"

// Login outcomes.
const (
	LoginSuccess     = "success"
	LoginInvalid     = "invalid_credentials"
	LoginMFARequired = "mfa_required"
	LoginRateLimited = "rate_limited"
	LoginError       = "error"
)

type Collector struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	loginAttempts   *prometheus.CounterVec
	sessionsRevoked prometheus.Counter
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		loginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		sessionsRevoked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_revoked_total",
			Help:      "Access tokens revoked through logout.",
		}),
	}
}

func (c *Collector) Record(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (c *Collector) LoginAttempt(outcome string) {
	if c == nil {
		return
	}
	c.loginAttempts.WithLabelValues(outcome).Inc()
}

func (c *Collector) SessionRevoked() {
	if c == nil {
		return
	}
	c.sessionsRevoked.Inc()
}
