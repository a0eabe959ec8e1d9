package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
)

const healthCheckTimeout = 2 * time.Second

const (
	msgHealthy     = "ok"
	msgUnavailable = "unavailable"
)

// health answers 200 when the database responds to a ping and 503
// otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	w.Header().Set("Content-Type", "text/plain")

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check: database ping failed")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(msgUnavailable))
		return
	}

	w.Write([]byte(msgHealthy))
}
