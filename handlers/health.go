package handlers

import (
	"net/http"

	"github.com/chibuzordev/posterio/types"
)

// Health is a no-argument liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{
		Message: "Posterio API is live. Try POST /chat",
	})
}
