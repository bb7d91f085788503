package routes

import (
	"net/http"

	"github.com/clinicore/doctor-chatbot/internal/api/handlers"
	"github.com/clinicore/doctor-chatbot/internal/api/middleware"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux         *http.ServeMux
	chatHandler *handlers.ChatHandler
	metrics     *observability.Metrics
}

// NewRouter creates a new router. metrics may be nil when observability is
// disabled.
func NewRouter(chatHandler *handlers.ChatHandler, metrics *observability.Metrics) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		chatHandler: chatHandler,
		metrics:     metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	r.mux.HandleFunc("POST /api/chat", r.chatHandler.Chat)

	var handler http.Handler = r.mux
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
