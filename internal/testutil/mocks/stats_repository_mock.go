package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hvpham/lexiflash/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) AddLearnedCards(ctx context.Context, n int) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockStatsRepository) AddLearnedCardSets(ctx context.Context, n int) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockStatsRepository) Totals(ctx context.Context) (models.StatsTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.StatsTotals), args.Error(1)
}

func (m *MockStatsRepository) InsertLearnResult(ctx context.Context, r models.LearnResult) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) InsertTestResult(ctx context.Context, r models.TestResult) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) RecentLearnResults(ctx context.Context, limit int) ([]models.LearnResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LearnResult), args.Error(1)
}

func (m *MockStatsRepository) RecentTestResults(ctx context.Context, limit int) ([]models.TestResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TestResult), args.Error(1)
}
