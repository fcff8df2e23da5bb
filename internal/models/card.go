package models

import "time"

// Card is a single word/definition pair. Cards are immutable once loaded:
// the learn and quiz engines only ever reference them.
type Card struct {
	ID         int64  `json:"id"`
	DeckID     int64  `json:"deck_id"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Position   int    `json:"position"`
}

type Deck struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CardCount int       `json:"card_count"`
	CreatedAt time.Time `json:"created_at"`
}

type DeckFilter struct {
	Name   string
	Limit  int
	Offset int
}
