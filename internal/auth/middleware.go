package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey struct{}

var claimsKey contextKey

// Middleware extracts a Bearer token from the Authorization header and, when
// it validates, stores the claims in the request context. Requests without a
// token pass through as anonymous; only a present-but-invalid token is
// rejected.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			http.Error(w, "malformed Authorization header", http.StatusUnauthorized)
			return
		}

		claims, err := m.ValidateToken(tokenString)
		if err != nil {
			slog.Warn("rejected token", "error", err)
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// FromContext returns the authenticated claims, or nil for anonymous requests.
func FromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// UserID returns the authenticated user's ID, or 0 for anonymous requests.
func UserID(ctx context.Context) int64 {
	if claims := FromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}
