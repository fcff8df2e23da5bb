package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hvpham/lexiflash/internal/services"
)

func (s *Server) handleStartLearnSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeckID int64 `json:"deck_id"`
		services.LearnOptions
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.LearnService.Start(r.Context(), req.DeckID, req.LearnOptions)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toLearnSessionPayload(view))
}

func (s *Server) handleGetLearnSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.LearnService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toLearnSessionPayload(view))
}

func (s *Server) handleLearnQuestion(w http.ResponseWriter, r *http.Request) {
	view, err := s.LearnService.Question(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toLearnSessionPayload(view))
}

func (s *Server) handleLearnAnswer(w http.ResponseWriter, r *http.Request) {
	var req services.AnswerSubmission
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	outcome, err := s.LearnService.Answer(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	payload := struct {
		Correct bool `json:"correct"`
		learnSessionPayload
	}{
		Correct:             outcome.Correct,
		learnSessionPayload: toLearnSessionPayload(&outcome.SessionView),
	}
	writeJSON(w, r, http.StatusOK, payload)
}

func (s *Server) handleAbandonLearnSession(w http.ResponseWriter, r *http.Request) {
	if err := s.LearnService.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
