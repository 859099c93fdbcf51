package middleware

import (
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics holds request and domain counters for the /metrics endpoint.
type Metrics struct {
	requestsTotal      atomic.Uint64
	requestsInProgress atomic.Int64
	requestsSuccess    atomic.Uint64
	requestsFailed     atomic.Uint64

	reportsCreated     atomic.Uint64
	reportsIncremented atomic.Uint64
	reportsVerified    atomic.Uint64
	disputesCreated    atomic.Uint64
	lookups            atomic.Uint64

	startTime time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

func (m *Metrics) IncReportsCreated() { m.reportsCreated.Add(1) }
func (m *Metrics) IncReportsIncremented() { m.reportsIncremented.Add(1) }
func (m *Metrics) IncReportsVerified() { m.reportsVerified.Add(1) }
func (m *Metrics) IncDisputesCreated() { m.disputesCreated.Add(1) }
func (m *Metrics) IncLookups() { m.lookups.Add(1) }

// Snapshot returns current metrics
func (m *Metrics) Snapshot() map[string]any {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return map[string]any{
		"requests_total":       m.requestsTotal.Load(),
		"requests_in_progress": m.requestsInProgress.Load(),
		"requests_success":     m.requestsSuccess.Load(),
		"requests_failed":      m.requestsFailed.Load(),
		"reports_created":      m.reportsCreated.Load(),
		"reports_incremented":  m.reportsIncremented.Load(),
		"reports_verified":     m.reportsVerified.Load(),
		"disputes_created":     m.disputesCreated.Load(),
		"lookups":              m.lookups.Load(),
		"uptime_seconds":       time.Since(m.startTime).Seconds(),
		"memory": map[string]any{
			"alloc_bytes":       mem.Alloc,
			"total_alloc_bytes": mem.TotalAlloc,
			"sys_bytes":         mem.Sys,
			"num_gc":            mem.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}
}

// Middleware tracks request metrics
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestsTotal.Add(1)
		m.requestsInProgress.Add(1)
		defer m.requestsInProgress.Add(-1)

		wrapped := wrapWriter(w)
		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode >= 200 && wrapped.statusCode < 400 {
			m.requestsSuccess.Add(1)
		} else {
			m.requestsFailed.Add(1)
		}
	})
}

func (m *Metrics) Handler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, m.Snapshot())
}
