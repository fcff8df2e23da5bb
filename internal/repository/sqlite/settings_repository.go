package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository implementation
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")

	query, args, err := sqlBuilder.
		Select("answer_type", "daily_goal").
		From("settings").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.Settings{}, err
	}

	var s models.Settings
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.AnswerType, &s.DailyGoal)
	if errors.Is(err, sql.ErrNoRows) {
		// Settings row is seeded by the init migration; treat a missing
		// row as defaults rather than an error.
		log.Warn("settings row missing, using defaults")
		return models.DefaultSettings(), nil
	}
	if err != nil {
		log.Error("failed to get settings: %v", err)
		return models.Settings{}, err
	}
	return s, nil
}

func (r *settingsRepository) Update(ctx context.Context, s models.Settings) error {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("updating settings: answer_type=%s, daily_goal=%d", s.AnswerType, s.DailyGoal)

	query, args, err := sqlBuilder.
		Update("settings").
		Set("answer_type", string(s.AnswerType)).
		Set("daily_goal", s.DailyGoal).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to update settings: %v", err)
		return err
	}
	return nil
}
