package routes

import (
	"net/http"

	"github.com/chibuzordev/posterio/handlers"
)

// RegisterChatRoutes registers all chat-related routes
func RegisterChatRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("POST /chat", h.Chat)
}

// RegisterSystemRoutes registers the liveness probe
func RegisterSystemRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /{$}", h.Health)
}
