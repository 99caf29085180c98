package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/auth"
	"github.com/heartmarshall/docflow-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Auth resolves the bearer token into an actor. Requests without a token
// pass through anonymously; RequireRole decides whether that is allowed.
// A nil validator disables token checks entirely.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" || validator == nil {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := ctxutil.WithActor(r.Context(), ctxutil.Actor{
				TelegramUserID: claims.TelegramUserID,
				Role:           string(claims.Role),
			})
			noteActor(ctx, claims.TelegramUserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
