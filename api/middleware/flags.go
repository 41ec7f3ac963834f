package middleware

import (
	"net/http"

	"sports-news-api/pkg/featureflags"
)

// FeatureFlagsMiddleware makes the flag manager available to handlers via the request context
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager != nil {
				r = r.WithContext(featureflags.WithManager(r.Context(), manager))
			}
			next.ServeHTTP(w, r)
		})
	}
}
