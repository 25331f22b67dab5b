package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes mounts every endpoint under /api. Routes needing a
// caller identity sit behind the mandatory gate; public reads go
// through the optional gate so a signed-in reader is still known.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.optionalAuthenticate)

			r.Post("/auth/register", handlers.authHandler.register())
			r.Post("/auth/login", handlers.authHandler.login())

			r.Get("/thoughts", handlers.thoughtHandler.listThoughts())
			r.Get("/thoughts/by-id/{id}", handlers.thoughtHandler.getThoughtByID())
			r.Get("/thoughts/{slug}", handlers.thoughtHandler.getThoughtBySlug())

			r.Get("/tags", handlers.tagHandler.listTags())
			r.Get("/tags/{slug}", handlers.tagHandler.getTagBySlug())

			r.Get("/stats", handlers.statsHandler.getStats())
		})

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Patch("/profile", handlers.profileHandler.updateProfile())

			r.Get("/thoughts/my", handlers.thoughtHandler.listMyThoughts())
			r.Post("/thoughts", handlers.thoughtHandler.createThought())
			r.Patch("/thoughts/{id}", handlers.thoughtHandler.updateThought())
			r.Delete("/thoughts/{id}", handlers.thoughtHandler.deleteThought())

			r.Get("/stats/my", handlers.statsHandler.getMyStats())
		})
	})
}
