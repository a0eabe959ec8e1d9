package http

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.buildInfo); err != nil {
		h.logger.Err(err).Msg("error encoding build info")
	}
}
