package services

import (
	"context"

	"github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/repository"
)

// SettingsService handles user preference business logic
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, s models.Settings) (models.Settings, error)
}

type settingsService struct {
	settings repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settings repository.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	prefs, err := s.settings.Get(ctx)
	if err != nil {
		return models.Settings{}, errors.NewInternalError(err)
	}
	return prefs, nil
}

func (s *settingsService) Update(ctx context.Context, prefs models.Settings) (models.Settings, error) {
	if !prefs.AnswerType.Valid() {
		return models.Settings{}, errors.NewValidationError("answer_type", "must be \"word\" or \"definition\"")
	}
	if prefs.DailyGoal <= 0 {
		return models.Settings{}, errors.NewValidationError("daily_goal", "must be positive")
	}
	if err := s.settings.Update(ctx, prefs); err != nil {
		return models.Settings{}, errors.NewInternalError(err)
	}
	return prefs, nil
}
