package repository

import (
	"context"

	"github.com/hvpham/lexiflash/internal/models"
)

// DeckRepository handles deck and card data access
type DeckRepository interface {
	Insert(ctx context.Context, name string) (int64, error)
	InsertCards(ctx context.Context, deckID int64, cards []models.Card) error
	Get(ctx context.Context, id int64) (*models.Deck, error)
	List(ctx context.Context, filter models.DeckFilter) ([]models.Deck, error)
	Cards(ctx context.Context, deckID int64) ([]models.Card, error)
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository handles the single-row user settings record
type SettingsRepository interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, s models.Settings) error
}

// StatsRepository handles aggregate learning counters and session results
type StatsRepository interface {
	AddLearnedCards(ctx context.Context, n int) error
	AddLearnedCardSets(ctx context.Context, n int) error
	Totals(ctx context.Context) (models.StatsTotals, error)
	InsertLearnResult(ctx context.Context, r models.LearnResult) (int64, error)
	InsertTestResult(ctx context.Context, r models.TestResult) (int64, error)
	RecentLearnResults(ctx context.Context, limit int) ([]models.LearnResult, error)
	RecentTestResults(ctx context.Context, limit int) ([]models.TestResult, error)
}
