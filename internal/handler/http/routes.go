package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Paths are matched case-insensitively, so
// /api/Auth/login and /api/auth/login reach the same handler.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		withLowercasePath,
		withGZip,
		middleware.Timeout(h.requestTimeout),
	)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/version", h.getServerVersion)
			r.Get("/health", h.checkHealth)

			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/expenses", h.listExpenses)
			r.Post("/expenses", h.createExpense)
			r.Get("/expenses/{id}", h.getExpense)
			r.Put("/expenses/{id}", h.updateExpense)
			r.Delete("/expenses/{id}", h.deleteExpense)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
