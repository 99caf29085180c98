package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /live, /ready and /api/health. The probes bypass auth.
type HealthHandler struct {
	db          dbPinger
	version     string
	environment string
	adapters    map[string]bool
	now         func() time.Time
}

// NewHealthHandler reports adapters (telegram, email, ai) as configured or
// disabled. A disabled adapter never fails the check: the service degrades.
func NewHealthHandler(db dbPinger, version, environment string, adapters map[string]bool) *HealthHandler {
	return &HealthHandler{
		db:          db,
		version:     version,
		environment: environment,
		adapters:    adapters,
		now:         time.Now,
	}
}

func (h *HealthHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /api/health", h.Health)
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status      string                `json:"status"`
	Version     string                `json:"version,omitempty"`
	Environment string                `json:"environment,omitempty"`
	Components  map[string]CompStatus `json:"components,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready fails with 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{Status: db.Status, Timestamp: h.now()})
}

// Health is the detailed report used by the admin console.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())

	components := map[string]CompStatus{"database": db}
	for name, configured := range h.adapters {
		state := "disabled"
		if configured {
			state = "configured"
		}
		components[name] = CompStatus{Status: state}
	}

	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:      db.Status,
		Version:     h.version,
		Environment: h.environment,
		Components:  components,
		Timestamp:   h.now(),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(state string) int {
	if state == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
