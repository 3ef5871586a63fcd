package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
)

// withLogging logs one summary line per request: uri, method, status,
// duration and response size, through the trace-scoped logger installed
// by withTraceID.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
