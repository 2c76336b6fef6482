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

	// every user route sits behind token verification
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	return router
}
