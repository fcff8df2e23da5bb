package quiz

import (
	"math/rand"
	"time"

	"github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/question"
)

// Config describes a one-shot, non-adaptive test: a fixed number of
// questions built up front by cycling over the enabled modes and the
// shuffled card pool. No batching, no retry.
type Config struct {
	Cards          []models.Card
	QuestionCount  int
	AnswerType     models.AnswerType
	TrueFalse      bool
	MultipleChoice bool
	Written        bool
}

// Detail is one generated question plus the user's response, filled in
// after the fact when the completed test is scored.
type Detail struct {
	Question question.Question
	Response question.Response
}

// Generate builds the ordered question list for a test. Cards repeat when
// QuestionCount exceeds the pool; modes alternate in a fixed
// true/false, multiple-choice, written order restricted to those enabled.
func Generate(cfg Config, rng *rand.Rand) ([]Detail, error) {
	if len(cfg.Cards) == 0 {
		return nil, errors.NewValidationError("cards", "test needs at least one card")
	}
	if cfg.QuestionCount <= 0 {
		return nil, errors.NewValidationError("question_count", "must be positive")
	}

	type mode int
	const (
		modeTrueFalse mode = iota
		modeMultipleChoice
		modeWritten
	)
	var modes []mode
	if cfg.TrueFalse {
		modes = append(modes, modeTrueFalse)
	}
	if cfg.MultipleChoice {
		modes = append(modes, modeMultipleChoice)
	}
	if cfg.Written {
		modes = append(modes, modeWritten)
	}
	if len(modes) == 0 {
		return nil, errors.NewValidationError("modes", "at least one question mode must be enabled")
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cards := make([]models.Card, len(cfg.Cards))
	copy(cards, cfg.Cards)
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	gen := question.NewGenerator(cards, cfg.AnswerType, rng)

	details := make([]Detail, 0, cfg.QuestionCount)
	for i := 0; i < cfg.QuestionCount; i++ {
		card := cards[i%len(cards)]
		var q question.Question
		switch modes[i%len(modes)] {
		case modeTrueFalse:
			q = gen.TrueFalse(card)
		case modeMultipleChoice:
			q = gen.MultipleChoice(card)
		case modeWritten:
			q = gen.Written(card)
		}
		details = append(details, Detail{Question: q})
	}
	return details, nil
}
