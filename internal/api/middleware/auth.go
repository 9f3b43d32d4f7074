package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/BlakeDanielson/celeb-draft/internal/service"
)

type contextKey string

const sessionKey contextKey = "session"

// Session validates the Bearer token issued at join time and stores the
// team identity in the request context.
func Session(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := sessions.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Invalid session token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (*service.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionKey).(*service.SessionClaims)
	return claims, ok
}
