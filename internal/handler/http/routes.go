package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/relay/version", h.getRelayVersion)

	router.Group(func(r chi.Router) {
		if h.authEnabled() {
			r.Use(h.auth)
		}
		r.Post("/relay/decrypt", h.decrypt)
		r.Post("/relay/sanitize", h.sanitize)
		r.Get("/relay/status", h.status)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) authEnabled() bool {
	return h.services.Token != nil && h.services.Token.Enabled()
}
