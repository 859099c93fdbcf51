package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestRateLimiter_AllowAndRefill(t *testing.T) {
	clock := &fakeNow{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(2, 1, time.Hour, clock.Now)
	defer rl.Stop()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"), "buckets are per key")

	clock.Advance(time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiter_SweepDropsIdleBuckets(t *testing.T) {
	clock := &fakeNow{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(1, 1, time.Hour, clock.Now)
	defer rl.Stop()

	rl.Allow("a")
	clock.Advance(5 * time.Minute)
	rl.Allow("b")
	require.Equal(t, 2, rl.size())

	clock.Advance(6 * time.Minute)
	rl.sweep()
	assert.Equal(t, 1, rl.size())
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Stop()
	rl.Stop()
}

func TestRateLimiter_Middleware(t *testing.T) {
	clock := &fakeNow{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(1, 1, time.Hour, clock.Now)
	defer rl.Stop()

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/reports", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, do().Code)
	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"Too many requests, please try again later"}`, rec.Body.String())
}
