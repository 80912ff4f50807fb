package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pedigraph/pedigraph/pkg/observability"
)

// RequestLogger logs incoming requests and feeds the server hooks.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

			sw := &statusWriter{ResponseWriter: w, status: 200}
			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, duration)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", duration)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
