package challenge

import (
	"math/rand/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/progress"
)

// MCQQuestionCap bounds a quiz round to the first five pairs.
const MCQQuestionCap = 5

// MCQFeedback is the pending result of a submitted answer. While set,
// further submissions are ignored until Advance clears it.
type MCQFeedback struct {
	Correct bool
	Answer  string
	LevelUp *progress.LevelUp
}

// MCQ is the multiple-choice quiz session. Option sets are built once
// per question index and frozen, so redraws show a stable ordering.
type MCQ struct {
	pairs    []catalog.Pair
	answers  []string
	rng      *rand.Rand
	ledger   *progress.Ledger
	index    int
	score    int
	options  map[int][]string
	feedback *MCQFeedback
}

// NewMCQ creates a quiz session over the chapter's pairs.
// Returns ErrNoContent when the chapter has none.
func NewMCQ(pairs []catalog.Pair, rng *rand.Rand, ledger *progress.Ledger) (*MCQ, error) {
	if len(pairs) == 0 {
		return nil, ErrNoContent
	}
	answers := make([]string, len(pairs))
	for i, p := range pairs {
		answers[i] = p.Answer
	}
	return &MCQ{
		pairs:   pairs,
		answers: answers,
		rng:     rng,
		ledger:  ledger,
		options: make(map[int][]string),
	}, nil
}

func (m *MCQ) limit() int {
	return min(MCQQuestionCap, len(m.pairs))
}

// Finished reports whether the round is over.
func (m *MCQ) Finished() bool { return m.index >= m.limit() }

// Index returns the zero-based current question index.
func (m *MCQ) Index() int { return m.index }

// Total returns the number of questions in the round.
func (m *MCQ) Total() int { return m.limit() }

// Score returns accumulated points (10 per correct answer).
func (m *MCQ) Score() int { return m.score }

// MaxScore returns the points available for the questions seen so far.
func (m *MCQ) MaxScore() int { return m.index * 10 }

// Question returns the current question text. ok is false when finished.
func (m *MCQ) Question() (q string, ok bool) {
	if m.Finished() {
		return "", false
	}
	return m.pairs[m.index].Question, true
}

// Options returns the frozen option set for the current question,
// building it on first access.
func (m *MCQ) Options() []string {
	if m.Finished() {
		return nil
	}
	opts, ok := m.options[m.index]
	if !ok {
		opts = buildOptions(m.pairs[m.index].Answer, m.answers, m.rng)
		m.options[m.index] = opts
	}
	return opts
}

// Submit records the chosen answer and sets feedback. A correct choice
// awards MCQ XP and 10 points. No-op while feedback is already pending
// or the round is finished.
func (m *MCQ) Submit(choice string) {
	if m.Finished() || m.feedback != nil {
		return
	}
	correct := m.pairs[m.index].Answer
	fb := &MCQFeedback{Correct: choice == correct, Answer: correct}
	if fb.Correct {
		fb.LevelUp = m.ledger.Award(progress.KindMCQ)
		m.score += 10
	}
	m.feedback = fb
}

// Feedback returns the pending feedback, or nil.
func (m *MCQ) Feedback() *MCQFeedback { return m.feedback }

// Advance moves to the next question. Only valid while feedback is
// pending; otherwise a no-op.
func (m *MCQ) Advance() {
	if m.feedback == nil {
		return
	}
	m.feedback = nil
	m.index++
}

// Restart resets the round: index, score, feedback, and the entire
// option cache (fresh shuffles on the next pass).
func (m *MCQ) Restart() {
	m.index = 0
	m.score = 0
	m.feedback = nil
	m.options = make(map[int][]string)
}
