package middleware

import (
	"log/slog"
	"net/http"

	"github.com/fitlog/fittrack-api/internal/api/shared"
)

// TraceMiddleware attaches a trace ID to every request context. It
// belongs early in the chain so everything downstream logs and responds
// with the same ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
