package auth

import (
	"context"
	"net/http"

	"github.com/dakbox/courier/pkg/utils"
)

// RoleChecker resolves the stored role for a verified email.
type RoleChecker interface {
	GetRole(ctx context.Context, email string) (string, error)
}

// RequireRole guards a route group behind one of the allowed roles. It must be
// composed after Middleware, which provides the caller email.
func RequireRole(checker RoleChecker, allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := CallerEmail(r.Context())
			if email == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			role, err := checker.GetRole(r.Context(), email)
			if err != nil {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden access")
				return
			}
			for _, want := range allowed {
				if role == want {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden access")
		})
	}
}
