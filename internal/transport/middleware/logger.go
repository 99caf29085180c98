package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/docflow-backend/pkg/ctxutil"
)

// Logger writes one http.request record per request. Client errors are
// logged at warn, server errors at error, and the orchestrator probes at
// debug so they do not drown the access log.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(withActorSink(r.Context(), sw)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if sw.actor != "" {
				attrs = append(attrs, slog.String("actor", sw.actor))
			}
			logger.LogAttrs(r.Context(), accessLevel(r.URL.Path, sw.status), "http.request", attrs...)
		})
	}
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case path == "/live" || path == "/ready":
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	actor       string
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

type sinkKey struct{}

// withActorSink lets inner middleware report the resolved actor back to the
// access log, whose context is already fixed when Auth runs.
func withActorSink(ctx context.Context, sw *statusWriter) context.Context {
	return context.WithValue(ctx, sinkKey{}, sw)
}

func noteActor(ctx context.Context, id string) {
	if sw, ok := ctx.Value(sinkKey{}).(*statusWriter); ok {
		sw.actor = id
	}
}
