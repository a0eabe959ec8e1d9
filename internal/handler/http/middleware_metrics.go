package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withMetrics records every request under its chi route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.metrics.RequestStarted()

		mw := &responseWriter{ResponseWriter: w}
		defer func() {
			status := mw.status
			if status == 0 {
				status = http.StatusOK
			}
			h.metrics.RequestFinished(r.Method, routePattern(r), status, time.Since(start))
		}()

		next.ServeHTTP(mw, r)
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return unmatchedRoute
}
