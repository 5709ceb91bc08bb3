package session

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func (m *Manager) RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/sessions", m.handleCreateSession)
		r.Post("/replay", m.handleReplay)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", m.handleGetSession)
			r.Delete("/", m.handleCloseSession)
			r.Post("/events", m.handleEvent)
			r.Get("/history", m.handleHistory)
		})
	})
}
