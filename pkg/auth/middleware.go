package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dakbox/courier/pkg/utils"
)

type ContextKey string

// EmailKey holds the verified, lower-cased email of the caller.
const EmailKey ContextKey = "email"

// Middleware verifies the bearer token and attaches the caller's email to the
// request context. The JWT service is injected so that no package-level secret
// exists.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, strings.ToLower(claims.Email))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerEmail extracts the authenticated email placed by Middleware.
func CallerEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}
