package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/question"
	"github.com/hvpham/lexiflash/internal/quiz"
	"github.com/hvpham/lexiflash/internal/repository"
)

// TestOptions configures a one-shot test.
type TestOptions struct {
	QuestionCount  int               `json:"question_count"`
	AnswerType     models.AnswerType `json:"answer_type"`
	TrueFalse      bool              `json:"true_false"`
	MultipleChoice bool              `json:"multiple_choice"`
	Written        bool              `json:"written"`
}

// TestAnswer is one submitted answer, matched to a question by index.
type TestAnswer struct {
	Answer        *bool   `json:"answer"`
	SelectedIndex *int    `json:"selected_index"`
	Text          *string `json:"text"`
}

// TestView is a created test as served to the caller.
type TestView struct {
	ID        string
	DeckID    int64
	Questions []question.Question
}

// TestService builds fixed question lists and scores the completed runs.
type TestService interface {
	Create(ctx context.Context, deckID int64, opts TestOptions) (*TestView, error)
	Submit(ctx context.Context, testID string, answers []TestAnswer) (*quiz.Summary, error)
	PurgeIdle(ttl time.Duration) int
}

type pendingTest struct {
	id      string
	deckID  int64
	details []quiz.Detail
	created time.Time
}

type testService struct {
	mu           sync.Mutex
	tests        map[string]*pendingTest
	decks        repository.DeckRepository
	settings     repository.SettingsRepository
	stats        repository.StatsRepository
	defaultCount int
}

// NewTestService creates a new TestService. defaultCount is used when a
// request does not name a question count.
func NewTestService(decks repository.DeckRepository, settings repository.SettingsRepository, stats repository.StatsRepository, defaultCount int) TestService {
	return &testService{
		tests:        make(map[string]*pendingTest),
		decks:        decks,
		settings:     settings,
		stats:        stats,
		defaultCount: defaultCount,
	}
}

func (s *testService) Create(ctx context.Context, deckID int64, opts TestOptions) (*TestView, error) {
	log := logger.FromContext(ctx)

	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	cards, err := s.decks.Cards(ctx, deckID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	answerType := opts.AnswerType
	if answerType == "" {
		prefs, err := s.settings.Get(ctx)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		answerType = prefs.AnswerType
	}
	if !answerType.Valid() {
		return nil, errors.NewValidationError("answer_type", "must be \"word\" or \"definition\"")
	}

	count := opts.QuestionCount
	if count == 0 {
		count = s.defaultCount
	}

	details, err := quiz.Generate(quiz.Config{
		Cards:          cards,
		QuestionCount:  count,
		AnswerType:     answerType,
		TrueFalse:      opts.TrueFalse,
		MultipleChoice: opts.MultipleChoice,
		Written:        opts.Written,
	}, nil)
	if err != nil {
		return nil, err
	}

	t := &pendingTest{
		id:      uuid.NewString(),
		deckID:  deckID,
		details: details,
		created: time.Now(),
	}
	s.mu.Lock()
	s.tests[t.id] = t
	s.mu.Unlock()

	log.Info("created test %s: deck_id=%d, questions=%d", t.id, deckID, len(details))

	questions := make([]question.Question, len(details))
	for i, d := range details {
		questions[i] = d.Question
	}
	return &TestView{ID: t.id, DeckID: deckID, Questions: questions}, nil
}

func (s *testService) Submit(ctx context.Context, testID string, answers []TestAnswer) (*quiz.Summary, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	t, ok := s.tests[testID]
	if ok {
		delete(s.tests, testID)
	}
	s.mu.Unlock()
	if !ok {
		return nil, errors.NewNotFoundError("test", testID)
	}
	if len(answers) != len(t.details) {
		return nil, errors.NewValidationError("answers", "answer count does not match question count")
	}

	for i := range t.details {
		t.details[i].Response = buildResponse(t.details[i].Question, answers[i])
	}

	summary := quiz.Score(t.details)
	log.Info("test %s scored: %d/%d", testID, summary.Correct, summary.Total)

	// Result persistence is best-effort; a storage failure does not void
	// the score the user already earned.
	if _, err := s.stats.InsertTestResult(ctx, models.TestResult{
		DeckID:         t.deckID,
		TotalQuestions: summary.Total,
		CorrectAnswers: summary.Correct,
		Score:          summary.Score,
	}); err != nil {
		log.Warn("failed to insert test result: %v", err)
	}
	return &summary, nil
}

func (s *testService) PurgeIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	purged := 0
	for id, t := range s.tests {
		if t.created.Before(cutoff) {
			delete(s.tests, id)
			purged++
		}
	}
	if purged > 0 {
		logger.Default().Info("purged %d stale tests", purged)
	}
	return purged
}

func buildResponse(q question.Question, a TestAnswer) question.Response {
	switch q := q.(type) {
	case question.TrueFalse:
		return question.TrueFalseResponse{Question: q, Answer: a.Answer}
	case question.MultipleChoice:
		idx := -1
		if a.SelectedIndex != nil {
			idx = *a.SelectedIndex
		}
		return question.MultipleChoiceResponse{Question: q, SelectedIndex: idx}
	case question.Written:
		text := ""
		if a.Text != nil {
			text = *a.Text
		}
		return question.WrittenResponse{Question: q, Text: text}
	default:
		return nil
	}
}
