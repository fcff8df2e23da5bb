package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/repository"
	"github.com/hvpham/lexiflash/internal/repository/sqlite"
	"github.com/hvpham/lexiflash/internal/testutil"
)

type StatsRepositorySuite struct {
	suite.Suite
	db     *sql.DB
	repo   repository.StatsRepository
	deckID int64
}

func (s *StatsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewStatsRepository(s.db)

	res, err := s.db.Exec(`INSERT INTO decks (name) VALUES (?)`, "fruits")
	s.Require().NoError(err)
	s.deckID, err = res.LastInsertId()
	s.Require().NoError(err)
}

func (s *StatsRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *StatsRepositorySuite) TestCountersAccumulate() {
	ctx := context.Background()

	totals, err := s.repo.Totals(ctx)
	s.Require().NoError(err)
	s.Equal(0, totals.LearnedCards)
	s.Equal(0, totals.LearnedCardSets)

	s.Require().NoError(s.repo.AddLearnedCards(ctx, 7))
	s.Require().NoError(s.repo.AddLearnedCards(ctx, 3))
	s.Require().NoError(s.repo.AddLearnedCardSets(ctx, 1))

	totals, err = s.repo.Totals(ctx)
	s.Require().NoError(err)
	s.Equal(10, totals.LearnedCards)
	s.Equal(1, totals.LearnedCardSets)
}

func (s *StatsRepositorySuite) TestLearnResults() {
	ctx := context.Background()

	id, err := s.repo.InsertLearnResult(ctx, models.LearnResult{DeckID: s.deckID, CardsLearned: 5})
	s.Require().NoError(err)
	s.Positive(id)

	results, err := s.repo.RecentLearnResults(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(s.deckID, results[0].DeckID)
	s.Equal(5, results[0].CardsLearned)
	s.False(results[0].FinishedAt.IsZero())
}

func (s *StatsRepositorySuite) TestTestResults() {
	ctx := context.Background()

	_, err := s.repo.InsertTestResult(ctx, models.TestResult{
		DeckID:         s.deckID,
		TotalQuestions: 10,
		CorrectAnswers: 8,
		Score:          0.8,
	})
	s.Require().NoError(err)

	results, err := s.repo.RecentTestResults(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(10, results[0].TotalQuestions)
	s.Equal(8, results[0].CorrectAnswers)
	s.InDelta(0.8, results[0].Score, 1e-9)
}

func (s *StatsRepositorySuite) TestRecentLimitDefaultsWhenNonPositive() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := s.repo.InsertLearnResult(ctx, models.LearnResult{DeckID: s.deckID, CardsLearned: i})
		s.Require().NoError(err)
	}

	results, err := s.repo.RecentLearnResults(ctx, 0)
	s.Require().NoError(err)
	s.Len(results, 3)
}

func TestStatsRepositorySuite(t *testing.T) {
	suite.Run(t, new(StatsRepositorySuite))
}
