package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"deskcalc/internal/handlers"
	"deskcalc/internal/observability"
	"deskcalc/internal/session"
)

// NewRouter assembles the HTTP surface: observability middleware, the
// liveness and metrics endpoints, and the calculator session routes.
func NewRouter(m *session.Manager) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	m.RegisterRoutes(r)

	return r
}
