package routes

import (
	"net/http"

	"github.com/chibuzordev/posterio/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, h *handlers.Handler) {
	RegisterChatRoutes(mux, h)
	RegisterSystemRoutes(mux, h)
}
