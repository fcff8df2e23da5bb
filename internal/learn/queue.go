package learn

import "github.com/hvpham/lexiflash/internal/models"

// CardState tags a queued card with how far it has progressed. Lower
// values surface first when popping a batch queue.
type CardState int

const (
	// StateWrittenFailed marks a card answered incorrectly in written
	// form; it is retried with priority.
	StateWrittenFailed CardState = iota + 1
	// StateAwaitingWrite marks a card recognized in multiple-choice form
	// and queued for a written confirmation.
	StateAwaitingWrite
	// StateLearningMC marks a card not yet recognized in multiple-choice
	// form.
	StateLearningMC
)

func (s CardState) String() string {
	switch s {
	case StateWrittenFailed:
		return "written_failed"
	case StateAwaitingWrite:
		return "awaiting_write"
	case StateLearningMC:
		return "learning_mc"
	default:
		return "unknown"
	}
}

// cardDetail is the unit stored in batch queues: a card reference tagged
// with its learning state.
type cardDetail struct {
	card  models.Card
	state CardState
}

// batchQueue is a small priority queue ordered by CardState. The order
// among entries of equal state is an implementation artifact (currently
// insertion order) and nothing may rely on it.
type batchQueue struct {
	items []cardDetail
}

func (q *batchQueue) push(d cardDetail) {
	q.items = append(q.items, d)
}

func (q *batchQueue) len() int {
	return len(q.items)
}

func (q *batchQueue) peek() (cardDetail, bool) {
	if len(q.items) == 0 {
		return cardDetail{}, false
	}
	return q.items[q.min()], true
}

func (q *batchQueue) pop() (cardDetail, bool) {
	if len(q.items) == 0 {
		return cardDetail{}, false
	}
	i := q.min()
	d := q.items[i]
	q.items = append(q.items[:i], q.items[i+1:]...)
	return d, true
}

// min returns the index of the first entry with the lowest state value.
func (q *batchQueue) min() int {
	best := 0
	for i, d := range q.items {
		if d.state < q.items[best].state {
			best = i
		}
	}
	return best
}

// onlyFailedWritten reports whether the queue holds no fresh work: every
// entry, if any, is a failed-written retry.
func (q *batchQueue) onlyFailedWritten() bool {
	for _, d := range q.items {
		if d.state != StateWrittenFailed {
			return false
		}
	}
	return true
}
