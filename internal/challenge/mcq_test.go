package challenge

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/sravani919/studyhall/internal/progress"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestMCQEmptyChapter(t *testing.T) {
	if _, err := NewMCQ(nil, testRNG(), progress.NewLedger()); !errors.Is(err, ErrNoContent) {
		t.Fatalf("NewMCQ(nil) error = %v, want ErrNoContent", err)
	}
}

func TestMCQOptionsFrozenPerQuestion(t *testing.T) {
	m, _ := NewMCQ(testPairs(5), testRNG(), progress.NewLedger())

	first := m.Options()
	for range 5 {
		if again := m.Options(); !slices.Equal(again, first) {
			t.Fatalf("Options() reshuffled on re-render: %v then %v", first, again)
		}
	}
}

func TestMCQOptionsContainCorrectOnce(t *testing.T) {
	pairs := testPairs(6)
	m, _ := NewMCQ(pairs, testRNG(), progress.NewLedger())

	for !m.Finished() {
		opts := m.Options()
		if len(opts) != 4 {
			t.Errorf("question %d: len(Options) = %d, want 4", m.Index(), len(opts))
		}
		correct := pairs[m.Index()].Answer
		if n := countOf(opts, correct); n != 1 {
			t.Errorf("question %d: correct answer appears %d times, want 1", m.Index(), n)
		}
		m.Submit(opts[0])
		m.Advance()
	}
}

func countOf(opts []string, s string) int {
	n := 0
	for _, o := range opts {
		if o == s {
			n++
		}
	}
	return n
}

func TestMCQSubmitCorrect(t *testing.T) {
	pairs := testPairs(3)
	ledger := progress.NewLedger()
	m, _ := NewMCQ(pairs, testRNG(), ledger)

	m.Submit(pairs[0].Answer)

	fb := m.Feedback()
	if fb == nil || !fb.Correct {
		t.Fatalf("Feedback = %+v, want correct", fb)
	}
	if m.Score() != 10 {
		t.Errorf("Score = %d, want 10", m.Score())
	}
	if ledger.XP() != progress.KindMCQ.XP() {
		t.Errorf("XP = %d, want %d", ledger.XP(), progress.KindMCQ.XP())
	}
}

func TestMCQSubmitWrongShowsAnswer(t *testing.T) {
	pairs := testPairs(3)
	ledger := progress.NewLedger()
	m, _ := NewMCQ(pairs, testRNG(), ledger)

	m.Submit("not an answer")

	fb := m.Feedback()
	if fb == nil || fb.Correct {
		t.Fatalf("Feedback = %+v, want incorrect", fb)
	}
	if fb.Answer != pairs[0].Answer {
		t.Errorf("Feedback.Answer = %q, want %q", fb.Answer, pairs[0].Answer)
	}
	if ledger.XP() != 0 {
		t.Errorf("XP = %d, want 0 for a wrong answer", ledger.XP())
	}
}

func TestMCQResubmitWhileFeedbackPendingIsNoop(t *testing.T) {
	pairs := testPairs(3)
	ledger := progress.NewLedger()
	m, _ := NewMCQ(pairs, testRNG(), ledger)

	m.Submit(pairs[0].Answer)
	m.Submit(pairs[0].Answer)

	if m.Score() != 10 {
		t.Errorf("Score = %d after double submit, want 10", m.Score())
	}
	if ledger.XP() != progress.KindMCQ.XP() {
		t.Errorf("XP = %d after double submit, want %d", ledger.XP(), progress.KindMCQ.XP())
	}
}

func TestMCQAdvanceRequiresFeedback(t *testing.T) {
	m, _ := NewMCQ(testPairs(3), testRNG(), progress.NewLedger())

	m.Advance()
	if m.Index() != 0 {
		t.Errorf("Index = %d after bare Advance, want 0", m.Index())
	}

	m.Submit("wrong")
	m.Advance()
	if m.Index() != 1 {
		t.Errorf("Index = %d after Submit+Advance, want 1", m.Index())
	}
	if m.Feedback() != nil {
		t.Error("Feedback should clear on Advance")
	}
}

func TestMCQRoundCapAndScore(t *testing.T) {
	pairs := testPairs(6)
	m, _ := NewMCQ(pairs, testRNG(), progress.NewLedger())

	if m.Total() != MCQQuestionCap {
		t.Fatalf("Total = %d, want %d", m.Total(), MCQQuestionCap)
	}
	for !m.Finished() {
		m.Submit(pairs[m.Index()].Answer)
		m.Advance()
	}
	if m.Score() != 50 {
		t.Errorf("Score = %d after a perfect round, want 50", m.Score())
	}
	if m.MaxScore() != 50 {
		t.Errorf("MaxScore = %d, want 50", m.MaxScore())
	}
}

func TestMCQRestart(t *testing.T) {
	pairs := testPairs(5)
	m, _ := NewMCQ(pairs, testRNG(), progress.NewLedger())

	m.Submit(pairs[0].Answer)
	m.Advance()
	m.Restart()

	if m.Index() != 0 || m.Score() != 0 || m.Feedback() != nil {
		t.Errorf("Restart left index=%d score=%d feedback=%v", m.Index(), m.Score(), m.Feedback())
	}
}
