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

type DeckRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.DeckRepository
}

func (s *DeckRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewDeckRepository(s.db)
}

func (s *DeckRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DeckRepositorySuite) insertDeckWithCards(name string, cards []models.Card) int64 {
	ctx := context.Background()
	id, err := s.repo.Insert(ctx, name)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.InsertCards(ctx, id, cards))
	return id
}

func (s *DeckRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	id := s.insertDeckWithCards("fruits", []models.Card{
		{Word: "apple", Definition: "a round fruit"},
		{Word: "berry", Definition: "a small fruit"},
	})

	deck, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(deck)
	s.Equal("fruits", deck.Name)
	s.Equal(2, deck.CardCount)
	s.False(deck.CreatedAt.IsZero())
}

func (s *DeckRepositorySuite) TestGetMissingReturnsNil() {
	deck, err := s.repo.Get(context.Background(), 999)
	s.Require().NoError(err)
	s.Nil(deck)
}

func (s *DeckRepositorySuite) TestCardsPreserveOrder() {
	ctx := context.Background()
	id := s.insertDeckWithCards("fruits", []models.Card{
		{Word: "cherry", Definition: "a stone fruit"},
		{Word: "apple", Definition: "a round fruit"},
		{Word: "berry", Definition: "a small fruit"},
	})

	cards, err := s.repo.Cards(ctx, id)
	s.Require().NoError(err)
	s.Require().Len(cards, 3)
	s.Equal("cherry", cards[0].Word)
	s.Equal("apple", cards[1].Word)
	s.Equal("berry", cards[2].Word)
	for i, c := range cards {
		s.Equal(i, c.Position)
		s.Equal(id, c.DeckID)
	}
}

func (s *DeckRepositorySuite) TestListWithNameFilter() {
	ctx := context.Background()
	s.insertDeckWithCards("spanish basics", nil)
	s.insertDeckWithCards("spanish verbs", nil)
	s.insertDeckWithCards("french basics", nil)

	all, err := s.repo.List(ctx, models.DeckFilter{})
	s.Require().NoError(err)
	s.Len(all, 3)

	spanish, err := s.repo.List(ctx, models.DeckFilter{Name: "spanish"})
	s.Require().NoError(err)
	s.Len(spanish, 2)

	limited, err := s.repo.List(ctx, models.DeckFilter{Limit: 1})
	s.Require().NoError(err)
	s.Len(limited, 1)
}

func (s *DeckRepositorySuite) TestDeleteCascadesToCards() {
	ctx := context.Background()
	id := s.insertDeckWithCards("fruits", []models.Card{
		{Word: "apple", Definition: "a round fruit"},
	})

	s.Require().NoError(s.repo.Delete(ctx, id))

	deck, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Nil(deck)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE deck_id = ?`, id).Scan(&count)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func TestDeckRepositorySuite(t *testing.T) {
	suite.Run(t, new(DeckRepositorySuite))
}
