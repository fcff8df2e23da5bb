package learn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvpham/lexiflash/internal/learn"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/question"
)

func testCards(n int) []models.Card {
	words := []string{"apple", "berry", "cherry", "date", "elder", "fig", "grape", "honeydew", "icaco", "jujube"}
	cards := make([]models.Card, n)
	for i := 0; i < n; i++ {
		cards[i] = models.Card{
			ID:         int64(i + 1),
			Word:       words[i%len(words)],
			Definition: "definition of " + words[i%len(words)],
			Position:   i,
		}
	}
	return cards
}

func newTestSession(cards []models.Card, opts ...learn.Option) *learn.Session {
	cfg := learn.Config{Cards: cards, AnswerType: models.AnswerWithWord}
	opts = append([]learn.Option{learn.WithRand(rand.New(rand.NewSource(42)))}, opts...)
	return learn.NewSession(cfg, opts...)
}

// correctResponse answers a question right regardless of its variant.
func correctResponse(t *testing.T, q question.Question) question.Response {
	t.Helper()
	switch q := q.(type) {
	case question.MultipleChoice:
		return question.MultipleChoiceResponse{Question: q, SelectedIndex: q.CorrectIndex}
	case question.Written:
		return question.WrittenResponse{Question: q, Text: q.Answer}
	default:
		t.Fatalf("unexpected question type %T", q)
		return nil
	}
}

// wrongResponse answers a question wrong regardless of its variant.
func wrongResponse(t *testing.T, q question.Question) question.Response {
	t.Helper()
	switch q := q.(type) {
	case question.MultipleChoice:
		return question.MultipleChoiceResponse{Question: q, SelectedIndex: -1}
	case question.Written:
		return question.WrittenResponse{Question: q, Text: q.Answer + "x"}
	default:
		t.Fatalf("unexpected question type %T", q)
		return nil
	}
}

func TestSingleCardFlow(t *testing.T) {
	s := newTestSession(testCards(1))

	progress, max := s.Progress()
	assert.Equal(t, 1, progress)
	assert.Equal(t, 2, max)

	q := s.NextQuestion()
	mc, ok := q.(question.MultipleChoice)
	require.True(t, ok, "first question should be multiple choice, got %T", q)
	assert.Equal(t, "definition of apple", mc.Title)
	assert.Equal(t, "apple", mc.Options[mc.CorrectIndex])

	s.Submit(question.MultipleChoiceResponse{Question: mc, SelectedIndex: mc.CorrectIndex})
	progress, _ = s.Progress()
	assert.Equal(t, 2, progress)
	require.True(t, s.HasQuestion())

	q = s.NextQuestion()
	w, ok := q.(question.Written)
	require.True(t, ok, "recognized card should get a written question, got %T", q)
	assert.Equal(t, "apple", w.Answer)

	// Case differences are accepted.
	resp := question.WrittenResponse{Question: w, Text: "Apple"}
	require.True(t, resp.Correct())
	s.Submit(resp)

	assert.False(t, s.HasQuestion())
	assert.Nil(t, s.NextQuestion())
	progress, max = s.Progress()
	assert.Equal(t, max, progress)
}

func TestWrittenMisspellingRetries(t *testing.T) {
	s := newTestSession(testCards(1))

	mc := s.NextQuestion().(question.MultipleChoice)
	s.Submit(question.MultipleChoiceResponse{Question: mc, SelectedIndex: mc.CorrectIndex})

	w := s.NextQuestion().(question.Written)
	resp := question.WrittenResponse{Question: w, Text: "appel"}
	require.False(t, resp.Correct())
	s.Submit(resp)

	require.True(t, s.HasQuestion())
	retry, ok := s.NextQuestion().(question.Written)
	require.True(t, ok, "failed written card must be retried in written form")
	assert.Equal(t, w.Card.ID, retry.Card.ID)

	s.Submit(question.WrittenResponse{Question: retry, Text: "apple"})
	assert.False(t, s.HasQuestion())
}

func TestMultipleChoiceMissStaysMultipleChoice(t *testing.T) {
	s := newTestSession(testCards(1))

	mc := s.NextQuestion().(question.MultipleChoice)
	s.Submit(question.MultipleChoiceResponse{Question: mc, SelectedIndex: -1})

	progress, _ := s.Progress()
	assert.Equal(t, 1, progress, "a miss must not advance progress")

	again, ok := s.NextQuestion().(question.MultipleChoice)
	require.True(t, ok, "missed card must come back as multiple choice")
	assert.Equal(t, mc.Card.ID, again.Card.ID)
}

func TestAllCorrectTerminatesAtMaxProgress(t *testing.T) {
	cards := testCards(10)
	s := newTestSession(cards)

	asked := 0
	for s.HasQuestion() {
		q := s.NextQuestion()
		require.NotNil(t, q)
		s.Submit(correctResponse(t, q))
		asked++
		require.LessOrEqual(t, asked, 2*len(cards), "session did not terminate")
	}

	assert.Equal(t, 2*len(cards), asked, "each card needs one recognition and one recall")
	progress, max := s.Progress()
	assert.Equal(t, 2*len(cards), max)
	assert.Equal(t, max, progress)
	assert.Nil(t, s.NextQuestion())
}

func TestProgressNeverDecreases(t *testing.T) {
	s := newTestSession(testCards(5))

	rng := rand.New(rand.NewSource(7))
	last, max := s.Progress()
	for i := 0; s.HasQuestion() && i < 200; i++ {
		q := s.NextQuestion()
		if rng.Intn(3) == 0 {
			s.Submit(wrongResponse(t, q))
		} else {
			s.Submit(correctResponse(t, q))
		}
		progress, _ := s.Progress()
		require.GreaterOrEqual(t, progress, last)
		require.LessOrEqual(t, progress, max)
		last = progress
	}
}

func TestFailedWrittenRetriesBypassRefillQuota(t *testing.T) {
	cards := testCards(2)
	s := newTestSession(cards, learn.WithBatchSize(1))

	// Recognize the first card, then fail its written confirmation. The
	// retry must surface before the untouched second card even though the
	// refill quota is already spent on fresh work.
	mc := s.NextQuestion().(question.MultipleChoice)
	first := mc.Card.ID
	s.Submit(question.MultipleChoiceResponse{Question: mc, SelectedIndex: mc.CorrectIndex})

	w := s.NextQuestion().(question.Written)
	require.Equal(t, first, w.Card.ID)
	s.Submit(question.WrittenResponse{Question: w, Text: ""})

	retry, ok := s.NextQuestion().(question.Written)
	require.True(t, ok)
	assert.Equal(t, first, retry.Card.ID)
}

func TestLargePoolWorksBatchFirst(t *testing.T) {
	cards := testCards(10)
	s := newTestSession(cards)

	// With everything answered correctly the first batch of seven cards is
	// fully mastered before any backlog card shows up.
	seen := make(map[int64]bool)
	for i := 0; i < 14; i++ {
		q := s.NextQuestion()
		require.NotNil(t, q)
		switch q := q.(type) {
		case question.MultipleChoice:
			seen[q.Card.ID] = true
		case question.Written:
			seen[q.Card.ID] = true
		}
		s.Submit(correctResponse(t, q))
	}
	assert.Len(t, seen, 7, "backlog cards must wait for the active batch")
	require.True(t, s.HasQuestion())
}

func TestWrittenOnlySkipsMultipleChoice(t *testing.T) {
	cards := testCards(3)
	cfg := learn.Config{Cards: cards, AnswerType: models.AnswerWithWord, WrittenOnly: true}
	s := learn.NewSession(cfg, learn.WithRand(rand.New(rand.NewSource(1))))

	_, max := s.Progress()
	assert.Equal(t, len(cards), max)

	for s.HasQuestion() {
		q := s.NextQuestion()
		_, ok := q.(question.Written)
		require.True(t, ok, "written-only session dispatched %T", q)
		s.Submit(correctResponse(t, q))
	}
}

func TestEmptyPoolIsComplete(t *testing.T) {
	s := newTestSession(nil)

	assert.False(t, s.HasQuestion())
	assert.Nil(t, s.NextQuestion())
	progress, max := s.Progress()
	assert.Equal(t, 0, max)
	assert.Equal(t, 0, progress)
}

func TestTrueFalseResponseIgnored(t *testing.T) {
	s := newTestSession(testCards(1))
	before, _ := s.Progress()

	s.Submit(question.TrueFalseResponse{})

	after, _ := s.Progress()
	assert.Equal(t, before, after)
	assert.True(t, s.HasQuestion())
}
