package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/carelink/pkg/ratelimiter"
)

func byRemoteAddr(r *http.Request) string { return r.RemoteAddr }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	clock := newClock()
	b, _ := newBucket(t, clock)
	h := ratelimiter.Middleware(b, byRemoteAddr, ratelimiter.WithMiddlewareClock(clock.Now))(okHandler())

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/validate/phone", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := range testConfig.Capacity {
		rec := send("192.0.2.1:1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(testConfig.Capacity-i-1), rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	}

	rec := send("192.0.2.1:1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, send("192.0.2.2:1").Code)
}

func TestMiddleware_EmptyKeySkips(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newClock())
	h := ratelimiter.Middleware(b, func(*http.Request) string { return "" })(okHandler())

	for range testConfig.Capacity + 2 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestMiddleware_CustomHandlers(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newClock())

	var limited ratelimiter.Result
	h := ratelimiter.Middleware(b, byRemoteAddr,
		ratelimiter.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request, res ratelimiter.Result) {
			limited = res
			w.WriteHeader(http.StatusTeapot)
		}),
	)(okHandler())

	var rec *httptest.ResponseRecorder
	for range testConfig.Capacity + 1 {
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.False(t, limited.Allowed())

	t.Run("store errors", func(t *testing.T) {
		failing, err := ratelimiter.NewBucket(failingStore{}, testConfig)
		require.NoError(t, err)

		var got error
		h := ratelimiter.Middleware(failing, byRemoteAddr,
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
				got = err
				w.WriteHeader(http.StatusServiceUnavailable)
			}),
		)(okHandler())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.ErrorIs(t, got, errStoreDown)
	})
}

var errStoreDown = errors.New("store down")

type failingStore struct{}

func (failingStore) Take(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errStoreDown
}

func (failingStore) Reset(context.Context, string) error { return nil }
