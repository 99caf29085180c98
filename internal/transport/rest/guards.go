package rest

import (
	"net/http"

	"github.com/heartmarshall/docflow-backend/internal/transport/middleware"
)

// Guards are the per-route middleware handlers attach when registering.
type Guards struct {
	// Staff admits admins and managers.
	Staff middleware.Middleware
	// Admin admits admins only.
	Admin middleware.Middleware
	// Limit throttles endpoints that spend upstream quota.
	Limit middleware.Middleware
}

// OpenGuards lets every request through. Used when auth is disabled and in tests.
func OpenGuards() Guards {
	pass := func(next http.Handler) http.Handler { return next }
	return Guards{Staff: pass, Admin: pass, Limit: pass}
}

func handle(mux *http.ServeMux, pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
	mux.Handle(pattern, middleware.Chain(mws...)(h))
}
