package services

import (
	"context"

	"github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/repository"
)

// StatsOverview bundles the aggregate counters with recent session
// results for the stats screen.
type StatsOverview struct {
	Totals       models.StatsTotals   `json:"totals"`
	LearnResults []models.LearnResult `json:"learn_results"`
	TestResults  []models.TestResult  `json:"test_results"`
}

// StatsService handles statistics business logic
type StatsService interface {
	Overview(ctx context.Context) (*StatsOverview, error)
}

type statsService struct {
	stats repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) Overview(ctx context.Context) (*StatsOverview, error) {
	totals, err := s.stats.Totals(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	learns, err := s.stats.RecentLearnResults(ctx, 20)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	tests, err := s.stats.RecentTestResults(ctx, 20)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return &StatsOverview{Totals: totals, LearnResults: learns, TestResults: tests}, nil
}
