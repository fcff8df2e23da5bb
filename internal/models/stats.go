package models

import "time"

// StatsTotals are the running aggregate counters updated when a learn
// session reaches its terminal state.
type StatsTotals struct {
	LearnedCards    int `json:"learned_cards"`
	LearnedCardSets int `json:"learned_card_sets"`
}

type LearnResult struct {
	ID           int64     `json:"id"`
	DeckID       int64     `json:"deck_id"`
	CardsLearned int       `json:"cards_learned"`
	FinishedAt   time.Time `json:"finished_at"`
}

type TestResult struct {
	ID             int64     `json:"id"`
	DeckID         int64     `json:"deck_id"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	Score          float64   `json:"score"`
	TakenAt        time.Time `json:"taken_at"`
}
