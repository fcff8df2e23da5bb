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

type deckRepository struct {
	db *sql.DB
}

// NewDeckRepository creates a new DeckRepository implementation
func NewDeckRepository(db *sql.DB) repository.DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) Insert(ctx context.Context, name string) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("inserting deck: name=%s", name)

	query, args, err := sqlBuilder.Insert("decks").Columns("name").Values(name).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert deck: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get deck id: %v", err)
		return 0, err
	}
	log.Debug("deck inserted: id=%d", id)
	return id, nil
}

func (r *deckRepository) InsertCards(ctx context.Context, deckID int64, cards []models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("inserting %d cards: deck_id=%d", len(cards), deckID)

	return tx(ctx, r.db, func(t *sql.Tx) error {
		stmt, err := t.PrepareContext(ctx, `
INSERT INTO cards (deck_id, word, definition, position)
VALUES (?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, c := range cards {
			if _, err := stmt.ExecContext(ctx, deckID, c.Word, c.Definition, i); err != nil {
				log.Error("failed to insert card %d: %v", i, err)
				return err
			}
		}
		return nil
	})
}

func (r *deckRepository) Get(ctx context.Context, id int64) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("fetching deck: id=%d", id)

	query, args, err := sqlBuilder.
		Select("d.id", "d.name", "d.created_at", "COUNT(c.id) AS card_count").
		From("decks d").
		LeftJoin("cards c ON c.deck_id = d.id").
		Where(squirrel.Eq{"d.id": id}).
		GroupBy("d.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var d models.Deck
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.CardCount)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("deck not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *deckRepository) List(ctx context.Context, filter models.DeckFilter) ([]models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("listing decks: name=%q, limit=%d, offset=%d", filter.Name, filter.Limit, filter.Offset)

	query := sqlBuilder.
		Select("d.id", "d.name", "d.created_at", "COUNT(c.id) AS card_count").
		From("decks d").
		LeftJoin("cards c ON c.deck_id = d.id").
		GroupBy("d.id").
		OrderBy("d.created_at DESC")

	// Dynamic WHERE clauses
	if filter.Name != "" {
		query = query.Where(squirrel.Like{"d.name": "%" + filter.Name + "%"})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query decks: %v", err)
		return nil, err
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var d models.Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.CardCount); err != nil {
			log.Error("failed to scan deck row: %v", err)
			return nil, err
		}
		decks = append(decks, d)
	}
	log.Debug("found %d decks", len(decks))
	return decks, rows.Err()
}

func (r *deckRepository) Cards(ctx context.Context, deckID int64) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("fetching cards: deck_id=%d", deckID)

	query, args, err := sqlBuilder.
		Select("id", "deck_id", "word", "definition", "position").
		From("cards").
		Where(squirrel.Eq{"deck_id": deckID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Word, &c.Definition, &c.Position); err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d cards", len(cards))
	return cards, rows.Err()
}

func (r *deckRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("deleting deck: id=%d", id)

	query, args, err := sqlBuilder.Delete("decks").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to delete deck: %v", err)
		return err
	}
	return nil
}
