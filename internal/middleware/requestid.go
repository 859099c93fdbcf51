package middleware

import (
	"context"
	"net/http"

	"github.com/lucsky/cuid"
)

const HeaderRequestID = "X-Request-ID"

type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	apiKeyNameKey contextKey = "api_key_name"
)

// RequestID reuses the caller's X-Request-ID or mints a cuid, stores it
// in the request context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = cuid.New()
		}
		w.Header().Set(HeaderRequestID, id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
