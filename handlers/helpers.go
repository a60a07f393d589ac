package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chibuzordev/posterio/types"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, types.ChatResponse{
		Error: message,
		Meta:  types.Meta{TokensUsed: 0, Model: h.model},
	})
}
