package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func echoKeyName() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(APIKeyNameFromContext(r.Context())))
	})
}

func TestAPIKeyAuth_DisabledWithoutKeys(t *testing.T) {
	h := APIKeyAuth(nil)(echoKeyName())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/reports/x/verify", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAPIKeyAuth(t *testing.T) {
	h := APIKeyAuth(map[string]string{"moderator": "s3cret"})(echoKeyName())

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, `{"message":"Missing Authorization header"}`},
		{"blank bearer", "Bearer   ", http.StatusUnauthorized, `{"message":"Invalid Authorization header"}`},
		{"wrong key", "Bearer nope", http.StatusUnauthorized, `{"message":"Invalid API key"}`},
		{"bearer", "Bearer s3cret", http.StatusOK, "moderator"},
		{"raw", "s3cret", http.StatusOK, "moderator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/reports/x/verify", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.body, rec.Body.String())
			}
		})
	}
}
