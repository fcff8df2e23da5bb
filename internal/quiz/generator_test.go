package quiz_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/question"
	"github.com/hvpham/lexiflash/internal/quiz"
)

func quizCards() []models.Card {
	return []models.Card{
		{ID: 1, Word: "apple", Definition: "a round fruit"},
		{ID: 2, Word: "berry", Definition: "a small fruit"},
		{ID: 3, Word: "cherry", Definition: "a stone fruit"},
	}
}

func TestGenerateValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := quiz.Generate(quiz.Config{QuestionCount: 5, Written: true}, rng)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	_, err = quiz.Generate(quiz.Config{Cards: quizCards(), Written: true}, rng)
	require.Error(t, err)

	_, err = quiz.Generate(quiz.Config{Cards: quizCards(), QuestionCount: 5}, rng)
	require.Error(t, err, "at least one mode must be enabled")
}

func TestGenerateCyclesModes(t *testing.T) {
	cfg := quiz.Config{
		Cards:          quizCards(),
		QuestionCount:  6,
		AnswerType:     models.AnswerWithWord,
		TrueFalse:      true,
		MultipleChoice: true,
		Written:        true,
	}
	details, err := quiz.Generate(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, details, 6)

	for i, d := range details {
		switch i % 3 {
		case 0:
			assert.IsType(t, question.TrueFalse{}, d.Question, "question %d", i)
		case 1:
			assert.IsType(t, question.MultipleChoice{}, d.Question, "question %d", i)
		case 2:
			assert.IsType(t, question.Written{}, d.Question, "question %d", i)
		}
		assert.Nil(t, d.Response)
	}
}

func TestGenerateRepeatsCardsWhenCountExceedsPool(t *testing.T) {
	cfg := quiz.Config{
		Cards:         quizCards()[:1],
		QuestionCount: 4,
		AnswerType:    models.AnswerWithWord,
		Written:       true,
	}
	details, err := quiz.Generate(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, details, 4)
	for _, d := range details {
		w := d.Question.(question.Written)
		assert.Equal(t, int64(1), w.Card.ID)
	}
}

func TestScore(t *testing.T) {
	w := question.Written{Answer: "apple"}
	details := []quiz.Detail{
		{Question: w, Response: question.WrittenResponse{Question: w, Text: "apple"}},
		{Question: w, Response: question.WrittenResponse{Question: w, Text: "wrong"}},
		{Question: w}, // unanswered
		{Question: w, Response: question.WrittenResponse{Question: w, Text: "APPLE"}},
	}

	summary := quiz.Score(details)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Correct)
	assert.InDelta(t, 0.5, summary.Score, 1e-9)
}

func TestScoreEmpty(t *testing.T) {
	summary := quiz.Score(nil)
	assert.Equal(t, 0, summary.Total)
	assert.Zero(t, summary.Score)
}
