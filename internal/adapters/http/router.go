// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. requestTimeout bounds
// every route except the event stream; zero disables it.
func NewRouter(
	draftHandler *handlers.DraftHandler,
	healthHandler *handlers.HealthHandler,
	requestTimeout time.Duration,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1/drafts", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if requestTimeout > 0 {
				r.Use(middleware.Timeout(requestTimeout))
			}

			r.Post("/todos", draftHandler.OpenTodo)
			r.Post("/projects", draftHandler.OpenProject)
			r.Get("/{id}", draftHandler.GetDraft)
			r.Patch("/{id}", draftHandler.UpdateDraft)
			r.Delete("/{id}", draftHandler.DiscardDraft)
			r.Get("/{id}/errors", draftHandler.GetErrors)
			r.Post("/{id}/commit", draftHandler.CommitDraft)
		})

		// Long-lived stream; ends when the draft closes or the client leaves.
		r.Get("/{id}/events", draftHandler.Events)
	})

	return r
}
