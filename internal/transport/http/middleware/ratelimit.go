package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
)

type RateLimitKeyFunc func(r *http.Request) string

type RateLimitOption func(*rateLimiter)

type rateBucket struct {
	count int
	reset time.Time
}

type rateLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	keyFn    RateLimitKeyFunc
	onReject func(r *http.Request)
	now      func() time.Time
	clients  map[string]*rateBucket
}

func WithKeyFunc(fn RateLimitKeyFunc) RateLimitOption {
	return func(rl *rateLimiter) {
		if fn != nil {
			rl.keyFn = fn
		}
	}
}

// OnReject runs for every throttled request.
func OnReject(fn func(r *http.Request)) RateLimitOption {
	return func(rl *rateLimiter) {
		rl.onReject = fn
	}
}

// RateLimit allows limit requests per window and key; the key defaults to the
// client IP.
func RateLimit(limit int, window time.Duration, opts ...RateLimitOption) func(http.Handler) http.Handler {
	rl := &rateLimiter{
		limit:   limit,
		window:  window,
		keyFn:   clientIPKey,
		now:     time.Now,
		clients: map[string]*rateBucket{},
	}
	for _, opt := range opts {
		opt(rl)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.enforce(w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIPKey(r *http.Request) string {
	return requestctx.GetClientIP(r.Context())
}

func (rl *rateLimiter) enforce(w http.ResponseWriter, r *http.Request) bool {
	if rl.limit <= 0 {
		return true
	}
	key := rl.keyFn(r)
	if key == "" {
		key = r.RemoteAddr
	}
	now := rl.now()

	rl.mu.Lock()
	for k, b := range rl.clients {
		if now.After(b.reset) {
			delete(rl.clients, k)
		}
	}
	bucket, ok := rl.clients[key]
	if !ok {
		bucket = &rateBucket{reset: now.Add(rl.window)}
		rl.clients[key] = bucket
	}
	bucket.count++
	remaining := rl.limit - bucket.count
	resetIn := durationSeconds(bucket.reset.Sub(now))
	overLimit := bucket.count > rl.limit
	rl.mu.Unlock()

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(remaining, 0)))
	w.Header().Set("X-RateLimit-Reset", strconv.Itoa(resetIn))

	if overLimit {
		w.Header().Set("Retry-After", strconv.Itoa(max(resetIn, 1)))
		zerolog.Ctx(r.Context()).Warn().
			Str("key", key).
			Str("path", r.URL.Path).
			Int("limit", rl.limit).
			Msg("rate limit exceeded")
		if rl.onReject != nil {
			rl.onReject(r)
		}
		api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", requestctx.GetRequestID(r.Context()))
		return false
	}
	return true
}

func durationSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return max(int(d.Seconds()), 1)
}

// BodyLimit caps request bodies of mutating methods at maxBytes.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if maxBytes > 0 {
					r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
