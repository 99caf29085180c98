package middleware

import (
	"net/http"
	"slices"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/pkg/ctxutil"
)

// RequireRole rejects callers whose role is not in roles.
// When enabled is false every request passes; this is the open deployment
// mode used when no signing secret is configured.
func RequireRole(enabled bool, roles ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ctxutil.ActorFromCtx(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !slices.Contains(roles, domain.Role(actor.Role)) {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
