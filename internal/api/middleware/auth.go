package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/flowgate/flowgate/internal/api/response"
)

// HeaderAPIKey is the header all authenticated routes require.
const HeaderAPIKey = "x-api-key"

// APIKey is middleware that gates requests on a static shared secret.
// A missing header is 401, a mismatched one 403. The comparison is
// constant-time to avoid leaking the secret through response timing.
func APIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderAPIKey)
			if key == "" {
				response.Fail(w, response.KindUnauthorized, "API key is required in x-api-key header")
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				response.Fail(w, response.KindForbidden, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
