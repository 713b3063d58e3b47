package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes wires up the public site endpoints and the session-protected
// admin endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers, session sessionMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/badges", handlers.badgeHandler.listBadges())
		r.Get("/badges/{badgeID}", handlers.badgeHandler.getBadge())

		r.Get("/technologies", handlers.technologyHandler.listTechnologies())
		r.Get("/technologies/{technologyID}", handlers.technologyHandler.getTechnology())

		r.Get("/settings/button", handlers.settingsHandler.getButtonSettings())

		r.Post("/contact", handlers.contactHandler.submitMessage())

		r.Get("/health", handlers.healthHandler.health())
	})

	// Admin routes: every endpoint here requires a valid session cookie
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(session.authenticate)

		r.Get("/auth/me", handlers.authHandler.me())
		r.Put("/auth/change-password", handlers.authHandler.changePassword())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/badges", handlers.badgeHandler.createBadge())
		r.Put("/badges/{badgeID}", handlers.badgeHandler.updateBadge())
		r.Delete("/badges/{badgeID}", handlers.badgeHandler.deleteBadge())

		r.Post("/technologies", handlers.technologyHandler.createTechnology())
		r.Put("/technologies/{technologyID}", handlers.technologyHandler.updateTechnology())
		r.Delete("/technologies/{technologyID}", handlers.technologyHandler.deleteTechnology())

		r.Get("/contact", handlers.contactHandler.listMessages())
		r.Get("/contact/{messageID}", handlers.contactHandler.getMessage())
		r.Delete("/contact/{messageID}", handlers.contactHandler.deleteMessage())

		r.Put("/settings/button", handlers.settingsHandler.updateButtonSettings())
	})

	r.Handle("/metrics", promhttp.Handler())
}
