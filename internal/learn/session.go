package learn

import (
	"math/rand"
	"time"

	"github.com/hvpham/lexiflash/internal/models"
	"github.com/hvpham/lexiflash/internal/question"
)

// MaxQuestionsPerBatch bounds the active working set admitted from the
// backlog in one refill.
const MaxQuestionsPerBatch = 7

// Config describes one learn session. It is consumed once by NewSession
// and immutable afterwards.
type Config struct {
	Cards       []models.Card
	AnswerType  models.AnswerType
	Randomize   bool
	WrittenOnly bool
}

// Option tweaks session construction.
type Option func(*Session)

// WithRand injects the random source, making shuffles and distractor
// sampling deterministic in tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithBatchSize overrides MaxQuestionsPerBatch.
func WithBatchSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// Session drives one adaptive learn run over a card pool. It owns its two
// batch queues as private state; construct one per session and discard it
// when done. A Session is not safe for concurrent use: a single caller
// alternates NextQuestion and Submit.
type Session struct {
	current     batchQueue
	next        batchQueue
	gen         *question.Generator
	rng         *rand.Rand
	batchSize   int
	progress    int
	maxProgress int
}

// NewSession initializes the scheduler: copies and optionally shuffles the
// card list, builds the shared distractor pool, and partitions the cards
// into the active batch and the backlog. Every card starts unlearned; in
// written-only mode the multiple-choice stage is skipped entirely.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{
		batchSize: MaxQuestionsPerBatch,
		// Progress starts at 1 so the first question renders as "1 / N".
		progress: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cards := make([]models.Card, len(cfg.Cards))
	copy(cards, cfg.Cards)
	if cfg.Randomize {
		s.rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
	}

	s.gen = question.NewGenerator(cards, cfg.AnswerType, s.rng)

	initial := StateLearningMC
	s.maxProgress = 2 * len(cards)
	if cfg.WrittenOnly {
		initial = StateAwaitingWrite
		s.maxProgress = len(cards)
	}

	// An empty pool is already complete: clamp the sentinel starting
	// value so progress never exceeds maxProgress.
	if s.progress > s.maxProgress {
		s.progress = s.maxProgress
	}

	for i, c := range cards {
		d := cardDetail{card: c, state: initial}
		if i < s.batchSize {
			s.current.push(d)
		} else {
			s.next.push(d)
		}
	}
	return s
}

// HasQuestion reports whether any card still needs work. Callers poll it
// after each Submit to detect the end of the session.
func (s *Session) HasQuestion() bool {
	return s.current.len() > 0 || s.next.len() > 0
}

// Progress returns the current and maximum progress counters.
func (s *Session) Progress() (int, int) {
	return s.progress, s.maxProgress
}

// NextQuestion refills the active batch if needed and dispatches the
// highest-priority card: multiple-choice while the card is still being
// recognized, written once it awaits (or failed) recall. It returns nil
// when no cards remain, which is the terminal state rather than an error.
func (s *Session) NextQuestion() question.Question {
	s.refill()
	d, ok := s.current.pop()
	if !ok {
		return nil
	}
	if d.state == StateLearningMC {
		return s.gen.MultipleChoice(d.card)
	}
	return s.gen.Written(d.card)
}

// refill admits backlog work once the active batch holds nothing but
// failed-written retries. At most batchSize non-failed entries are pulled
// over; failed-written entries encountered along the way move over for
// free so the retries are not starved behind fresh work.
func (s *Session) refill() {
	if !s.current.onlyFailedWritten() {
		return
	}
	quota := s.batchSize
	for s.next.len() > 0 {
		d, _ := s.next.peek()
		if d.state != StateWrittenFailed {
			if quota == 0 {
				return
			}
			quota--
		}
		d, _ = s.next.pop()
		s.current.push(d)
	}
}

// Submit applies the state-machine transition for an answered question.
// The variants map onto the card's implied state: a multiple-choice
// response moves the card toward written confirmation or re-queues it,
// a written response masters the card or marks it failed. A true/false
// response is never produced by a learn session and is ignored.
func (s *Session) Submit(resp question.Response) {
	switch r := resp.(type) {
	case question.MultipleChoiceResponse:
		if r.Correct() {
			s.advance()
			s.next.push(cardDetail{card: r.Question.Card, state: StateAwaitingWrite})
		} else {
			s.current.push(cardDetail{card: r.Question.Card, state: StateLearningMC})
		}
	case question.WrittenResponse:
		if r.Correct() {
			s.advance()
		} else {
			s.next.push(cardDetail{card: r.Question.Card, state: StateWrittenFailed})
		}
	case question.TrueFalseResponse:
		// no-op: learn sessions never dispatch true/false questions
	}
}

// advance bumps progress, clamped at maxProgress.
func (s *Session) advance() {
	if s.progress < s.maxProgress {
		s.progress++
	}
}
