package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) AddLearnedCards(ctx context.Context, n int) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("adding learned cards: n=%d", n)

	_, err := r.db.ExecContext(ctx, `UPDATE stats SET learned_cards = learned_cards + ? WHERE id = 1`, n)
	if err != nil {
		log.Error("failed to add learned cards: %v", err)
	}
	return err
}

func (r *statsRepository) AddLearnedCardSets(ctx context.Context, n int) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("adding learned card sets: n=%d", n)

	_, err := r.db.ExecContext(ctx, `UPDATE stats SET learned_card_sets = learned_card_sets + ? WHERE id = 1`, n)
	if err != nil {
		log.Error("failed to add learned card sets: %v", err)
	}
	return err
}

func (r *statsRepository) Totals(ctx context.Context) (models.StatsTotals, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")

	query, args, err := sqlBuilder.
		Select("learned_cards", "learned_card_sets").
		From("stats").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.StatsTotals{}, err
	}

	var t models.StatsTotals
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.LearnedCards, &t.LearnedCardSets); err != nil {
		log.Error("failed to get stats totals: %v", err)
		return models.StatsTotals{}, err
	}
	return t, nil
}

func (r *statsRepository) InsertLearnResult(ctx context.Context, res models.LearnResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("inserting learn result: deck_id=%d, cards_learned=%d", res.DeckID, res.CardsLearned)

	query, args, err := sqlBuilder.
		Insert("learn_results").
		Columns("deck_id", "cards_learned").
		Values(res.DeckID, res.CardsLearned).
		ToSql()
	if err != nil {
		return 0, err
	}
	out, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert learn result: %v", err)
		return 0, err
	}
	return out.LastInsertId()
}

func (r *statsRepository) InsertTestResult(ctx context.Context, res models.TestResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("inserting test result: deck_id=%d, correct=%d/%d", res.DeckID, res.CorrectAnswers, res.TotalQuestions)

	query, args, err := sqlBuilder.
		Insert("test_results").
		Columns("deck_id", "total_questions", "correct_answers", "score").
		Values(res.DeckID, res.TotalQuestions, res.CorrectAnswers, res.Score).
		ToSql()
	if err != nil {
		return 0, err
	}
	out, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert test result: %v", err)
		return 0, err
	}
	return out.LastInsertId()
}

func (r *statsRepository) RecentLearnResults(ctx context.Context, limit int) ([]models.LearnResult, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	if limit <= 0 {
		limit = 20
	}

	query, args, err := sqlBuilder.
		Select("id", "deck_id", "cards_learned", "finished_at").
		From("learn_results").
		OrderBy("finished_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query learn results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.LearnResult
	for rows.Next() {
		var lr models.LearnResult
		if err := rows.Scan(&lr.ID, &lr.DeckID, &lr.CardsLearned, &lr.FinishedAt); err != nil {
			log.Error("failed to scan learn result: %v", err)
			return nil, err
		}
		results = append(results, lr)
	}
	return results, rows.Err()
}

func (r *statsRepository) RecentTestResults(ctx context.Context, limit int) ([]models.TestResult, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	if limit <= 0 {
		limit = 20
	}

	query, args, err := sqlBuilder.
		Select("id", "deck_id", "total_questions", "correct_answers", "score", "taken_at").
		From("test_results").
		OrderBy("taken_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query test results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.TestResult
	for rows.Next() {
		var tr models.TestResult
		if err := rows.Scan(&tr.ID, &tr.DeckID, &tr.TotalQuestions, &tr.CorrectAnswers, &tr.Score, &tr.TakenAt); err != nil {
			log.Error("failed to scan test result: %v", err)
			return nil, err
		}
		results = append(results, tr)
	}
	return results, rows.Err()
}
