package challenge

import (
	"math/rand/v2"
	"time"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/progress"
)

// TimedWindow is the answer window that earns XP. The countdown shown to
// the learner is informational; the authoritative check compares
// wall-clock elapsed time against this window once, at submit.
const TimedWindow = 15 * time.Second

// TimedQuestionCap bounds a round to the first five questions.
const TimedQuestionCap = 5

// TimedVerdict classifies a submitted answer.
type TimedVerdict int

const (
	TimedCorrect TimedVerdict = iota // correct within the window: XP + points
	TimedLate                        // correct but over the window: no XP
	TimedWrong                       // incorrect
)

// TimedFeedback reports a submitted answer.
type TimedFeedback struct {
	Verdict TimedVerdict
	Answer  string
	Elapsed time.Duration
	LevelUp *progress.LevelUp
}

// Timed is the timed-question session. The timer for a question starts
// the first time it is rendered and is cleared at submit, so the next
// question's window opens on its own first render.
type Timed struct {
	pairs    []catalog.Pair
	answers  []string
	rng      *rand.Rand
	ledger   *progress.Ledger
	clock    func() time.Time
	index    int
	score    int
	options  map[int][]string
	startAt  time.Time
	feedback *TimedFeedback
}

// NewTimed creates a timed session over the chapter's pairs.
// Returns ErrNoContent when the chapter has none.
func NewTimed(pairs []catalog.Pair, rng *rand.Rand, ledger *progress.Ledger) (*Timed, error) {
	if len(pairs) == 0 {
		return nil, ErrNoContent
	}
	answers := make([]string, len(pairs))
	for i, p := range pairs {
		answers[i] = p.Answer
	}
	return &Timed{
		pairs:   pairs,
		answers: answers,
		rng:     rng,
		ledger:  ledger,
		clock:   time.Now,
		options: make(map[int][]string),
	}, nil
}

func (t *Timed) limit() int { return min(TimedQuestionCap, len(t.pairs)) }

// Finished reports whether the round is over.
func (t *Timed) Finished() bool { return t.index >= t.limit() }

// Index returns the zero-based current question index.
func (t *Timed) Index() int { return t.index }

// Total returns the number of questions in the round.
func (t *Timed) Total() int { return t.limit() }

// Score returns the raw accumulated points (15 per timely correct answer).
func (t *Timed) Score() int { return t.score }

// Question returns the current question text. ok is false when finished.
func (t *Timed) Question() (q string, ok bool) {
	if t.Finished() {
		return "", false
	}
	return t.pairs[t.index].Question, true
}

// Options returns the frozen option set for the current question,
// building it on first access.
func (t *Timed) Options() []string {
	if t.Finished() {
		return nil
	}
	opts, ok := t.options[t.index]
	if !ok {
		opts = buildOptions(t.pairs[t.index].Answer, t.answers, t.rng)
		t.options[t.index] = opts
	}
	return opts
}

// StartTimer records the start instant for the current question if no
// timer is running. Called on first render; repeated calls are no-ops.
func (t *Timed) StartTimer() {
	if t.Finished() || t.feedback != nil {
		return
	}
	if t.startAt.IsZero() {
		t.startAt = t.clock()
	}
}

// Remaining returns the informational countdown value (floored at zero).
func (t *Timed) Remaining() time.Duration {
	if t.startAt.IsZero() {
		return TimedWindow
	}
	left := TimedWindow - t.clock().Sub(t.startAt)
	if left < 0 {
		return 0
	}
	return left
}

// Submit grades the chosen answer against elapsed wall-clock time. The
// window boundary is inclusive: exactly 15s still earns XP. No-op while
// feedback is pending or the round is finished.
func (t *Timed) Submit(choice string) {
	if t.Finished() || t.feedback != nil {
		return
	}
	t.StartTimer() // a submit with no prior render still gets a timestamp

	elapsed := t.clock().Sub(t.startAt)
	correct := t.pairs[t.index].Answer

	fb := &TimedFeedback{Answer: correct, Elapsed: elapsed}
	switch {
	case choice == correct && elapsed <= TimedWindow:
		fb.Verdict = TimedCorrect
		fb.LevelUp = t.ledger.Award(progress.KindTimed)
		t.score += 15
	case choice == correct:
		fb.Verdict = TimedLate
	default:
		fb.Verdict = TimedWrong
	}

	t.feedback = fb
	t.startAt = time.Time{}
}

// Feedback returns the pending feedback, or nil.
func (t *Timed) Feedback() *TimedFeedback { return t.feedback }

// Advance moves to the next question. Only valid while feedback is
// pending; otherwise a no-op.
func (t *Timed) Advance() {
	if t.feedback == nil {
		return
	}
	t.feedback = nil
	t.startAt = time.Time{}
	t.index++
}

// Restart resets the round, the option cache, and the timer.
func (t *Timed) Restart() {
	t.index = 0
	t.score = 0
	t.feedback = nil
	t.startAt = time.Time{}
	t.options = make(map[int][]string)
}
