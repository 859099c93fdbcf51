package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

// APIKeyAuth validates the key from the Authorization header against
// validKeys (name -> key). With no keys configured it lets every request
// through, so moderation stays open in local setups.
func APIKeyAuth(validKeys map[string]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(validKeys) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeMessage(w, http.StatusUnauthorized, "Missing Authorization header")
				return
			}

			// Support both "Bearer <key>" and "<key>" formats
			apiKey := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if apiKey == "" {
				writeMessage(w, http.StatusUnauthorized, "Invalid Authorization header")
				return
			}

			var name string
			for n, key := range validKeys {
				if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					name = n
					break
				}
			}
			if name == "" {
				writeMessage(w, http.StatusUnauthorized, "Invalid API key")
				return
			}

			ctx := context.WithValue(r.Context(), apiKeyNameKey, name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIKeyNameFromContext returns the name of the key that authenticated
// the request, or "" when auth is disabled.
func APIKeyNameFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(apiKeyNameKey).(string); ok {
		return name
	}
	return ""
}
