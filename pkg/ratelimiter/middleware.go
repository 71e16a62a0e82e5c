package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// KeyFunc picks the bucket key of a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

type middlewareConfig struct {
	now     func() time.Time
	onLimit func(w http.ResponseWriter, r *http.Request, res Result)
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareOption func(*middlewareConfig)

// WithLimitHandler renders the response of a denied request. Rate limit
// headers are already set when it runs.
func WithLimitHandler(fn func(w http.ResponseWriter, r *http.Request, res Result)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onLimit = fn
		}
	}
}

// WithErrorHandler renders the response when the store fails.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// WithMiddlewareClock replaces time.Now in Retry-After computation.
func WithMiddlewareClock(now func() time.Time) MiddlewareOption {
	return func(c *middlewareConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// Middleware takes one token per request and sets the X-RateLimit-* headers.
// Denied requests get Retry-After and a 429 response.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		now: time.Now,
		onLimit: func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				wait := res.RetryAfter(cfg.now())
				h.Set("Retry-After", strconv.Itoa(max(1, int(math.Ceil(wait.Seconds())))))
				cfg.onLimit(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
