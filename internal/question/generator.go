package question

import (
	"math/rand"

	"github.com/hvpham/lexiflash/internal/models"
)

// DistractorCount is how many wrong options a multiple-choice question
// tries to offer alongside the correct answer.
const DistractorCount = 3

// Generator builds concrete questions from cards. The option pool holds
// every distinct answer-side value across the card pool and is shared by
// all questions of a session or test.
type Generator struct {
	answerType models.AnswerType
	pool       []string
	rng        *rand.Rand
}

// NewGenerator builds a generator over the given card pool. The rng is
// owned by the caller; passing a seeded source makes generation
// deterministic in tests.
func NewGenerator(cards []models.Card, answerType models.AnswerType, rng *rand.Rand) *Generator {
	seen := make(map[string]struct{}, len(cards))
	pool := make([]string, 0, len(cards))
	for _, c := range cards {
		_, answer := QAPair(c, answerType)
		if _, ok := seen[answer]; ok {
			continue
		}
		seen[answer] = struct{}{}
		pool = append(pool, answer)
	}
	return &Generator{answerType: answerType, pool: pool, rng: rng}
}

// QAPair derives the (question text, answer text) tuple from a card. When
// the user answers with the word, the definition is shown, and vice versa.
func QAPair(card models.Card, answerType models.AnswerType) (string, string) {
	if answerType == models.AnswerWithDefinition {
		return card.Word, card.Definition
	}
	return card.Definition, card.Word
}

// MultipleChoice builds a recognition question: up to DistractorCount
// sampled distractors plus the correct answer at a random position.
func (g *Generator) MultipleChoice(card models.Card) MultipleChoice {
	title, answer := QAPair(card, g.answerType)
	distractors := g.sampleDistractors(answer)

	at := g.rng.Intn(len(distractors) + 1)
	options := make([]string, 0, len(distractors)+1)
	options = append(options, distractors[:at]...)
	options = append(options, answer)
	options = append(options, distractors[at:]...)

	return MultipleChoice{
		Title:        title,
		Card:         card,
		Options:      options,
		CorrectIndex: at,
	}
}

// Written builds a recall question for the same QA pair.
func (g *Generator) Written(card models.Card) Written {
	title, answer := QAPair(card, g.answerType)
	return Written{Title: title, Card: card, Answer: answer}
}

// TrueFalse shows either the card's real answer or a random other value
// from the pool, with even odds when an alternative exists.
func (g *Generator) TrueFalse(card models.Card) TrueFalse {
	title, answer := QAPair(card, g.answerType)
	shown := answer
	truth := true
	if others := g.others(answer); len(others) > 0 && g.rng.Intn(2) == 0 {
		shown = others[g.rng.Intn(len(others))]
		truth = false
	}
	return TrueFalse{Title: title, Card: card, Shown: shown, Truth: truth}
}

// sampleDistractors picks up to DistractorCount pool values distinct from
// the correct answer. A small pool yields fewer distractors, never an
// error.
func (g *Generator) sampleDistractors(answer string) []string {
	others := g.others(answer)
	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if len(others) > DistractorCount {
		others = others[:DistractorCount]
	}
	return others
}

func (g *Generator) others(answer string) []string {
	others := make([]string, 0, len(g.pool))
	for _, v := range g.pool {
		if v != answer {
			others = append(others, v)
		}
	}
	return others
}
