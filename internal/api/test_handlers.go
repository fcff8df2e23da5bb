package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hvpham/lexiflash/internal/services"
)

func (s *Server) handleCreateTest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeckID int64 `json:"deck_id"`
		services.TestOptions
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.TestService.Create(r.Context(), req.DeckID, req.TestOptions)
	if err != nil {
		handleError(w, r, err)
		return
	}

	questions := make([]*questionPayload, len(view.Questions))
	for i, q := range view.Questions {
		questions[i] = toQuestionPayload(q)
	}
	writeJSON(w, r, http.StatusCreated, map[string]any{
		"id":        view.ID,
		"deck_id":   view.DeckID,
		"questions": questions,
	})
}

func (s *Server) handleSubmitTest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers []services.TestAnswer `json:"answers"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	summary, err := s.TestService.Submit(r.Context(), chi.URLParam(r, "id"), req.Answers)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}
