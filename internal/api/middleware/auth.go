package middleware

import (
	"net/http"
	"strings"

	"github.com/ymurata/motivation-tracker/internal/auth"
	"github.com/ymurata/motivation-tracker/pkg/problem"
)

// Auth verifies the bearer token and stores the authenticated user id on the
// request context. Requests without a valid token never reach the handlers.
func Auth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				problem.Unauthorized("Missing Authorization header").Write(w)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				problem.Unauthorized("Authorization header must be a bearer token").Write(w)
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				problem.Unauthorized("Invalid or expired token").Write(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
