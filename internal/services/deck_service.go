package services

import (
	"context"
	"strings"

	"github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/jobs"
	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/repository"
)

// NewCard is a word/definition pair supplied when creating a deck directly.
type NewCard struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// DeckService handles deck management business logic
type DeckService interface {
	CreateDeck(ctx context.Context, name string, cards []NewCard) (*models.Deck, error)
	GetDeck(ctx context.Context, id int64) (*models.Deck, error)
	ListDecks(ctx context.Context, filter models.DeckFilter) ([]models.Deck, error)
	DeckCards(ctx context.Context, id int64) ([]models.Card, error)
	DeleteDeck(ctx context.Context, id int64) error
	EnqueueImport(ctx context.Context, path, deckName string) error
}

type deckService struct {
	decks repository.DeckRepository
	queue jobs.JobQueue
}

// NewDeckService creates a new DeckService
func NewDeckService(decks repository.DeckRepository, queue jobs.JobQueue) DeckService {
	return &deckService{decks: decks, queue: queue}
}

func (s *deckService) CreateDeck(ctx context.Context, name string, cards []NewCard) (*models.Deck, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if len(cards) == 0 {
		return nil, errors.NewValidationError("cards", "deck needs at least one card")
	}

	rows := make([]models.Card, 0, len(cards))
	for i, c := range cards {
		word := strings.TrimSpace(c.Word)
		definition := strings.TrimSpace(c.Definition)
		if word == "" || definition == "" {
			return nil, errors.NewValidationError("cards", "card word and definition cannot be empty")
		}
		rows = append(rows, models.Card{Word: word, Definition: definition, Position: i})
	}

	id, err := s.decks.Insert(ctx, name)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if err := s.decks.InsertCards(ctx, id, rows); err != nil {
		return nil, errors.NewInternalError(err)
	}
	log.Info("created deck %q: id=%d, cards=%d", name, id, len(rows))

	return s.GetDeck(ctx, id)
}

func (s *deckService) GetDeck(ctx context.Context, id int64) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", id)
	}
	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context, filter models.DeckFilter) ([]models.Deck, error) {
	decks, err := s.decks.List(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return decks, nil
}

func (s *deckService) DeckCards(ctx context.Context, id int64) ([]models.Card, error) {
	if _, err := s.GetDeck(ctx, id); err != nil {
		return nil, err
	}
	cards, err := s.decks.Cards(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, id int64) error {
	if _, err := s.GetDeck(ctx, id); err != nil {
		return err
	}
	if err := s.decks.Delete(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *deckService) EnqueueImport(ctx context.Context, path, deckName string) error {
	log := logger.FromContext(ctx)
	if err := s.queue.EnqueueDeckImport(path, deckName); err != nil {
		log.Error("failed to enqueue deck import: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("queued deck import: %q", deckName)
	return nil
}
