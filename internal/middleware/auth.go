package middleware

import (
	"net/http"
	"strings"
)

// bearerPrefix is the credential scheme expected in the Authorization header.
const bearerPrefix = "Bearer "

// RequireBearer rejects requests that do not carry a bearer-style credential
// with HTTP 401, before the downstream handler (and anything it would call)
// runs. Only the scheme and the presence of a non-empty token are checked
// here; the token itself is opaque to this service.
func RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
