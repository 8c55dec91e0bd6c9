package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSecurityHeaders)

	// public routes
	router.Group(func(r chi.Router) {
		r.With(h.withRateLimit).Post("/api/membership/submit", h.submit)
		r.Get("/api/membership/plans", h.plans)
		r.Get("/api/version", h.getServerVersion)
	})

	// staff routes behind JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/admin/applications/{applicationID}", h.getApplication)
	})

	return router
}
