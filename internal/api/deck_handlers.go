package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/importer"
	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/services"
)

const maxUploadBytes = 16 << 20 // 16 MiB

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	filter := models.DeckFilter{
		Name: r.URL.Query().Get("name"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	decks, err := s.DeckService.ListDecks(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"decks": decks})
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string             `json:"name"`
		Cards []services.NewCard `json:"cards"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	deck, err := s.DeckService.CreateDeck(r.Context(), req.Name, req.Cards)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, deck)
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	deck, err := s.DeckService.GetDeck(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, deck)
}

func (s *Server) handleDeckCards(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	cards, err := s.DeckService.DeckCards(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"cards": cards})
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.DeckService.DeleteDeck(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleImportDeck accepts an xlsx or csv upload, stores it to a temp
// file, and queues a background import job. It responds 202 before the
// deck exists.
func (s *Server) handleImportDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("missing file upload: "+err.Error()))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".csv" {
		handleError(w, r, errors.NewValidationError("file", "only .xlsx and .csv files are supported"))
		return
	}

	uploadDir := s.UploadDir
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	path := filepath.Join(uploadDir, fmt.Sprintf("deck-upload-%s%s", uuid.NewString(), ext))
	dst, err := os.Create(path)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		_ = os.Remove(path)
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	deckName := strings.TrimSpace(r.FormValue("name"))
	if deckName == "" {
		deckName = importer.DeckName(header.Filename)
	}

	if err := s.DeckService.EnqueueImport(r.Context(), path, deckName); err != nil {
		_ = os.Remove(path)
		handleError(w, r, err)
		return
	}

	log.Info("deck upload accepted: %q (%d bytes)", deckName, header.Size)
	writeJSON(w, r, http.StatusAccepted, map[string]any{
		"status":    "queued",
		"deck_name": deckName,
	})
}
