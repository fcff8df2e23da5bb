package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/decks", s.handleListDecks)
		r.Post("/decks", s.handleCreateDeck)
		r.Post("/decks/import", s.handleImportDeck)
		r.Get("/decks/{id}", s.handleGetDeck)
		r.Get("/decks/{id}/cards", s.handleDeckCards)
		r.Delete("/decks/{id}", s.handleDeleteDeck)

		r.Post("/learn/sessions", s.handleStartLearnSession)
		r.Get("/learn/sessions/{id}", s.handleGetLearnSession)
		r.Get("/learn/sessions/{id}/question", s.handleLearnQuestion)
		r.Post("/learn/sessions/{id}/answer", s.handleLearnAnswer)
		r.Delete("/learn/sessions/{id}", s.handleAbandonLearnSession)

		r.Post("/tests", s.handleCreateTest)
		r.Post("/tests/{id}/submit", s.handleSubmitTest)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)

		r.Get("/stats", s.handleStats)
	})

	return r
}
