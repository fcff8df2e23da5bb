package jobs

import (
	"context"
	"fmt"
	"os"

	"github.com/hvpham/lexiflash/internal/importer"
	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/repository"
	"github.com/hvpham/lexiflash/internal/worker"
)

// ImportDeckJob parses an uploaded deck file and persists it as a new
// deck. The file at Path is removed when the job finishes, success or not.
type ImportDeckJob struct {
	Path     string
	DeckName string
	Decks    repository.DeckRepository
}

func (j *ImportDeckJob) Name() string {
	return "deck-import:" + j.DeckName
}

func (j *ImportDeckJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	defer func() {
		if err := os.Remove(j.Path); err != nil && !os.IsNotExist(err) {
			log.Warn("failed to remove upload %s: %v", j.Path, err)
		}
	}()

	result, err := importer.ParseFile(j.Path)
	if err != nil {
		return fmt.Errorf("parse deck file: %w", err)
	}
	if len(result.Cards) == 0 {
		return fmt.Errorf("deck file %q contains no usable rows (%d skipped)", j.DeckName, result.Skipped)
	}
	if result.Skipped > 0 {
		log.Warn("skipped %d malformed rows in %q", result.Skipped, j.DeckName)
	}

	deckID, err := j.Decks.Insert(ctx, j.DeckName)
	if err != nil {
		return fmt.Errorf("insert deck: %w", err)
	}
	if err := j.Decks.InsertCards(ctx, deckID, result.Cards); err != nil {
		return fmt.Errorf("insert cards: %w", err)
	}

	log.Info("imported deck %q: id=%d, cards=%d", j.DeckName, deckID, len(result.Cards))
	return nil
}

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool  *worker.Pool
	decks repository.DeckRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, decks repository.DeckRepository) JobQueue {
	return &WorkerQueue{pool: pool, decks: decks}
}

func (q *WorkerQueue) EnqueueDeckImport(path, deckName string) error {
	return q.pool.Submit(&ImportDeckJob{
		Path:     path,
		DeckName: deckName,
		Decks:    q.decks,
	})
}
