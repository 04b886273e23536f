package http

import (
	"context"
	"net/http"
	"strings"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFromContext returns the authenticated caller's claims, or nil
// for an unauthenticated request.
func ClaimsFromContext(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey).(*security.UserClaims)
	return claims
}

// Authenticate validates the Bearer token and attaches the claims to
// the request context.
func Authenticate(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeMessage(w, http.StatusUnauthorized, "authorization token is required")
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers without the ADMIN role. It must run
// after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != string(domain.UserRoleAdmin) {
			writeMessage(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}
