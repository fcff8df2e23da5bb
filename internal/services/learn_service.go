package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hvpham/lexiflash/internal/errors"
	"github.com/hvpham/lexiflash/internal/learn"
	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/question"
	"github.com/hvpham/lexiflash/internal/repository"
)

// LearnOptions configures a new learn session. An empty AnswerType falls
// back to the persisted settings default.
type LearnOptions struct {
	AnswerType  models.AnswerType `json:"answer_type"`
	Randomize   bool              `json:"randomize"`
	WrittenOnly bool              `json:"written_only"`
}

// AnswerSubmission is the raw answer payload for the pending question.
// Exactly one field is expected to match the question's type; a missing
// answer counts as incorrect rather than failing.
type AnswerSubmission struct {
	SelectedIndex *int    `json:"selected_index"`
	Text          *string `json:"text"`
}

// SessionView is the read-only state the presentation layer renders.
type SessionView struct {
	ID          string
	DeckID      int64
	Question    question.Question // nil once the session is finished
	Progress    int
	MaxProgress int
	Finished    bool
}

// AnswerOutcome reports the result of one submission.
type AnswerOutcome struct {
	SessionView
	Correct bool
}

// LearnService owns the in-flight learn sessions. Each session wraps a
// learn.Session constructed fresh per start; there is no ambient shared
// scheduler instance.
type LearnService interface {
	Start(ctx context.Context, deckID int64, opts LearnOptions) (*SessionView, error)
	Get(ctx context.Context, sessionID string) (*SessionView, error)
	Question(ctx context.Context, sessionID string) (*SessionView, error)
	Answer(ctx context.Context, sessionID string, sub AnswerSubmission) (*AnswerOutcome, error)
	Abandon(ctx context.Context, sessionID string) error
	PurgeIdle(ttl time.Duration) int
}

type learnSession struct {
	mu        sync.Mutex
	id        string
	deckID    int64
	cardCount int
	session   *learn.Session
	pending   question.Question
	lastSeen  time.Time
	recorded  bool
}

type learnService struct {
	mu        sync.Mutex
	sessions  map[string]*learnSession
	decks     repository.DeckRepository
	settings  repository.SettingsRepository
	stats     repository.StatsRepository
	batchSize int
}

// NewLearnService creates a new LearnService. batchSize bounds the active
// question batch; zero means the engine default.
func NewLearnService(decks repository.DeckRepository, settings repository.SettingsRepository, stats repository.StatsRepository, batchSize int) LearnService {
	return &learnService{
		sessions:  make(map[string]*learnSession),
		decks:     decks,
		settings:  settings,
		stats:     stats,
		batchSize: batchSize,
	}
}

func (s *learnService) Start(ctx context.Context, deckID int64, opts LearnOptions) (*SessionView, error) {
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
	if len(cards) == 0 {
		return nil, errors.NewValidationError("deck", "cannot learn an empty deck")
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

	engine := learn.NewSession(learn.Config{
		Cards:       cards,
		AnswerType:  answerType,
		Randomize:   opts.Randomize,
		WrittenOnly: opts.WrittenOnly,
	}, learn.WithBatchSize(s.batchSize))

	ls := &learnSession{
		id:        uuid.NewString(),
		deckID:    deckID,
		cardCount: len(cards),
		session:   engine,
		pending:   engine.NextQuestion(),
		lastSeen:  time.Now(),
	}

	s.mu.Lock()
	s.sessions[ls.id] = ls
	s.mu.Unlock()

	log.Info("started learn session %s: deck_id=%d, cards=%d, answer_type=%s, written_only=%t",
		ls.id, deckID, len(cards), answerType, opts.WrittenOnly)
	return ls.view(), nil
}

func (s *learnService) Get(ctx context.Context, sessionID string) (*SessionView, error) {
	ls, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.lastSeen = time.Now()
	return ls.view(), nil
}

func (s *learnService) Question(ctx context.Context, sessionID string) (*SessionView, error) {
	ls, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.lastSeen = time.Now()

	// The pending question stays dispatched until it is answered;
	// repeated reads re-serve it rather than popping another card.
	if ls.pending == nil && ls.session.HasQuestion() {
		ls.pending = ls.session.NextQuestion()
	}
	return ls.view(), nil
}

func (s *learnService) Answer(ctx context.Context, sessionID string, sub AnswerSubmission) (*AnswerOutcome, error) {
	log := logger.FromContext(ctx)

	ls, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.lastSeen = time.Now()

	if ls.pending == nil {
		if !ls.session.HasQuestion() {
			return nil, errors.NewConflictError("session is already finished")
		}
		return nil, errors.NewConflictError("no question is pending, fetch one first")
	}

	var resp question.Response
	switch q := ls.pending.(type) {
	case question.MultipleChoice:
		idx := -1
		if sub.SelectedIndex != nil {
			idx = *sub.SelectedIndex
		}
		resp = question.MultipleChoiceResponse{Question: q, SelectedIndex: idx}
	case question.Written:
		text := ""
		if sub.Text != nil {
			text = *sub.Text
		}
		resp = question.WrittenResponse{Question: q, Text: text}
	default:
		return nil, errors.NewInternalError(nil)
	}

	ls.session.Submit(resp)
	ls.pending = nil
	if ls.session.HasQuestion() {
		ls.pending = ls.session.NextQuestion()
	} else if !ls.recorded {
		ls.recorded = true
		s.recordFinished(ctx, ls)
		log.Info("learn session %s finished: deck_id=%d, cards=%d", ls.id, ls.deckID, ls.cardCount)
	}

	return &AnswerOutcome{SessionView: *ls.view(), Correct: resp.Correct()}, nil
}

func (s *learnService) Abandon(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return errors.NewNotFoundError("learn session", sessionID)
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *learnService) PurgeIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	purged := 0
	for id, ls := range s.sessions {
		ls.mu.Lock()
		idle := ls.lastSeen.Before(cutoff)
		ls.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			purged++
		}
	}
	if purged > 0 {
		logger.Default().Info("purged %d idle learn sessions", purged)
	}
	return purged
}

func (s *learnService) lookup(sessionID string) (*learnSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("learn session", sessionID)
	}
	return ls, nil
}

// recordFinished persists the terminal-state counters. It runs exactly
// once per session; failures are logged, not surfaced, so a stats hiccup
// never breaks the final answer response.
func (s *learnService) recordFinished(ctx context.Context, ls *learnSession) {
	log := logger.FromContext(ctx)
	if err := s.stats.AddLearnedCards(ctx, ls.cardCount); err != nil {
		log.Warn("failed to add learned cards: %v", err)
	}
	if err := s.stats.AddLearnedCardSets(ctx, 1); err != nil {
		log.Warn("failed to add learned card set: %v", err)
	}
	if _, err := s.stats.InsertLearnResult(ctx, models.LearnResult{
		DeckID:       ls.deckID,
		CardsLearned: ls.cardCount,
	}); err != nil {
		log.Warn("failed to insert learn result: %v", err)
	}
}

func (ls *learnSession) view() *SessionView {
	progress, maxProgress := ls.session.Progress()
	return &SessionView{
		ID:          ls.id,
		DeckID:      ls.deckID,
		Question:    ls.pending,
		Progress:    progress,
		MaxProgress: maxProgress,
		Finished:    ls.pending == nil && !ls.session.HasQuestion(),
	}
}
