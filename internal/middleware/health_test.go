package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	ok := CheckerFunc(func(context.Context) error { return nil })
	down := CheckerFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("healthy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthHandler(map[string]HealthChecker{"storage": ok})(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, CheckStatus{Status: "healthy"}, body.Checks["storage"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthHandler(map[string]HealthChecker{"storage": ok, "db": down})(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "connection refused", body.Checks["db"].Message)
	})
}

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetrics_Counts(t *testing.T) {
	m := NewMetrics()
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	m.IncReportsCreated()
	m.IncReportsIncremented()
	m.IncReportsIncremented()

	snap := m.Snapshot()
	assert.EqualValues(t, 2, snap["requests_total"])
	assert.EqualValues(t, 1, snap["requests_success"])
	assert.EqualValues(t, 1, snap["requests_failed"])
	assert.EqualValues(t, 0, snap["requests_in_progress"])
	assert.EqualValues(t, 1, snap["reports_created"])
	assert.EqualValues(t, 2, snap["reports_incremented"])
}
