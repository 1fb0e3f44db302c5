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
	router.Use(h.withCORS)

	router.Get("/health", h.health)

	router.Route("/api/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)

		// routes requiring a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/profile", h.profile)
			r.Get("/verify", h.verify)
		})
	})

	return router
}
