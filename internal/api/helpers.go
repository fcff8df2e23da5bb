package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/question"
	"github.com/hvpham/lexiflash/internal/services"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError("invalid id: " + raw)
	}
	return id, nil
}

// questionPayload is a question as served to clients. Correct answers
// never leave the server while a question is live.
type questionPayload struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Options []string `json:"options,omitempty"`
	Shown   string   `json:"shown,omitempty"`
}

func toQuestionPayload(q question.Question) *questionPayload {
	switch q := q.(type) {
	case question.MultipleChoice:
		return &questionPayload{Type: "multiple_choice", Title: q.Title, Options: q.Options}
	case question.Written:
		return &questionPayload{Type: "written", Title: q.Title}
	case question.TrueFalse:
		return &questionPayload{Type: "true_false", Title: q.Title, Shown: q.Shown}
	default:
		return nil
	}
}

type learnSessionPayload struct {
	ID          string           `json:"id"`
	DeckID      int64            `json:"deck_id"`
	Progress    int              `json:"progress"`
	MaxProgress int              `json:"max_progress"`
	Finished    bool             `json:"finished"`
	Question    *questionPayload `json:"question,omitempty"`
}

func toLearnSessionPayload(v *services.SessionView) learnSessionPayload {
	p := learnSessionPayload{
		ID:          v.ID,
		DeckID:      v.DeckID,
		Progress:    v.Progress,
		MaxProgress: v.MaxProgress,
		Finished:    v.Finished,
	}
	if v.Question != nil {
		p.Question = toQuestionPayload(v.Question)
	}
	return p
}
