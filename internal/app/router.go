package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/docflow-backend/internal/auth"
	"github.com/heartmarshall/docflow-backend/internal/config"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/docflow-backend/internal/transport/rest"
)

type routes interface {
	Routes(mux *http.ServeMux, g rest.Guards)
}

// handlers groups everything the HTTP server exposes.
type handlers struct {
	health *rest.HealthHandler
	api    []routes
}

// newRouter assembles the mux and the global middleware chain. With auth
// disabled every route is open; the webhook and probes are always open.
func newRouter(cfg *config.Config, logger *slog.Logger, h handlers, jwt *auth.JWTManager, limiter *middleware.RateLimiter) http.Handler {
	enabled := cfg.Auth.Enabled() && jwt != nil

	guards := rest.Guards{
		Staff: middleware.RequireRole(enabled, domain.RoleAdmin, domain.RoleManager),
		Admin: middleware.RequireRole(enabled, domain.RoleAdmin),
		Limit: limiter.Limit(cfg.Server.RateLimit),
	}

	mux := http.NewServeMux()
	h.health.Routes(mux)
	for _, r := range h.api {
		r.Routes(mux, guards)
	}

	var authMW middleware.Middleware
	if enabled {
		authMW = middleware.Auth(jwt)
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		authMW,
	)(mux)
}
