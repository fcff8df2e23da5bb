package question_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/question"
)

func fruitCards() []models.Card {
	return []models.Card{
		{ID: 1, Word: "apple", Definition: "a round fruit"},
		{ID: 2, Word: "berry", Definition: "a small fruit"},
		{ID: 3, Word: "cherry", Definition: "a stone fruit"},
		{ID: 4, Word: "date", Definition: "a palm fruit"},
		{ID: 5, Word: "fig", Definition: "a soft fruit"},
	}
}

func TestQAPair(t *testing.T) {
	card := models.Card{Word: "apple", Definition: "a round fruit"}

	title, answer := question.QAPair(card, models.AnswerWithWord)
	assert.Equal(t, "a round fruit", title)
	assert.Equal(t, "apple", answer)

	title, answer = question.QAPair(card, models.AnswerWithDefinition)
	assert.Equal(t, "apple", title)
	assert.Equal(t, "a round fruit", answer)
}

func TestMultipleChoiceOptions(t *testing.T) {
	cards := fruitCards()
	gen := question.NewGenerator(cards, models.AnswerWithWord, rand.New(rand.NewSource(3)))

	q := gen.MultipleChoice(cards[0])
	assert.Equal(t, cards[0].Definition, q.Title)
	require.Len(t, q.Options, question.DistractorCount+1)
	assert.Equal(t, "apple", q.Options[q.CorrectIndex])

	seen := make(map[string]int)
	for _, o := range q.Options {
		seen[o]++
	}
	assert.Equal(t, 1, seen["apple"], "the correct answer appears exactly once")
	for o, n := range seen {
		assert.Equal(t, 1, n, "duplicate option %q", o)
	}
}

func TestMultipleChoiceSmallPool(t *testing.T) {
	cards := fruitCards()[:2]
	gen := question.NewGenerator(cards, models.AnswerWithWord, rand.New(rand.NewSource(3)))

	q := gen.MultipleChoice(cards[0])
	assert.Len(t, q.Options, 2, "a two-card pool can offer only one distractor")
	assert.Equal(t, "apple", q.Options[q.CorrectIndex])
}

func TestWritten(t *testing.T) {
	cards := fruitCards()
	gen := question.NewGenerator(cards, models.AnswerWithDefinition, rand.New(rand.NewSource(3)))

	q := gen.Written(cards[1])
	assert.Equal(t, "berry", q.Title)
	assert.Equal(t, "a small fruit", q.Answer)
}

func TestTrueFalseSingleCardAlwaysTrue(t *testing.T) {
	cards := fruitCards()[:1]
	gen := question.NewGenerator(cards, models.AnswerWithWord, rand.New(rand.NewSource(3)))

	// With no alternative answers in the pool there is nothing wrong to show.
	for i := 0; i < 10; i++ {
		q := gen.TrueFalse(cards[0])
		assert.True(t, q.Truth)
		assert.Equal(t, "apple", q.Shown)
	}
}

func TestTrueFalseFalseShowsOtherAnswer(t *testing.T) {
	cards := fruitCards()
	gen := question.NewGenerator(cards, models.AnswerWithWord, rand.New(rand.NewSource(3)))

	sawFalse := false
	for i := 0; i < 50; i++ {
		q := gen.TrueFalse(cards[0])
		if q.Truth {
			assert.Equal(t, "apple", q.Shown)
		} else {
			sawFalse = true
			assert.NotEqual(t, "apple", q.Shown)
		}
	}
	assert.True(t, sawFalse, "a five-card pool should produce false statements")
}

func TestResponses(t *testing.T) {
	mc := question.MultipleChoice{Options: []string{"a", "b"}, CorrectIndex: 1}
	assert.True(t, question.MultipleChoiceResponse{Question: mc, SelectedIndex: 1}.Correct())
	assert.False(t, question.MultipleChoiceResponse{Question: mc, SelectedIndex: 0}.Correct())
	assert.False(t, question.MultipleChoiceResponse{Question: mc, SelectedIndex: -1}.Correct(), "an unanswered question is wrong")

	w := question.Written{Answer: "apple"}
	assert.True(t, question.WrittenResponse{Question: w, Text: "apple"}.Correct())
	assert.True(t, question.WrittenResponse{Question: w, Text: "APPLE"}.Correct())
	assert.False(t, question.WrittenResponse{Question: w, Text: "appel"}.Correct())
	assert.False(t, question.WrittenResponse{Question: w, Text: ""}.Correct(), "blank input is wrong")

	tf := question.TrueFalse{Truth: true}
	yes, no := true, false
	assert.True(t, question.TrueFalseResponse{Question: tf, Answer: &yes}.Correct())
	assert.False(t, question.TrueFalseResponse{Question: tf, Answer: &no}.Correct())
	assert.False(t, question.TrueFalseResponse{Question: tf}.Correct(), "nil answer is wrong")
}
