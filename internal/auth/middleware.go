package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const adminNameKey contextKey = "admin_name"

// Middleware returns an HTTP middleware that validates admin JWT
// tokens. Extracts the token from the Authorization header (Bearer
// scheme) and stores the operator name in the request context.
func Middleware(mgr *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				http.Error(w, `{"error":"invalid authorization format"}`, http.StatusUnauthorized)
				return
			}

			claims, err := mgr.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminNameKey, claims.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext extracts the authenticated operator name from the
// request context.
func AdminFromContext(ctx context.Context) string {
	name, _ := ctx.Value(adminNameKey).(string)
	return name
}
