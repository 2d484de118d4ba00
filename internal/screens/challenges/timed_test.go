package challenges

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sravani919/studyhall/internal/challenge"
	"github.com/sravani919/studyhall/internal/session"
)

func newTestTimed(t *testing.T) (*timedScreen, *session.State) {
	t.Helper()
	state := testState(t, "1. Dashboards")
	s, err := newTimed(state)
	if err != nil {
		t.Fatalf("newTimed: %v", err)
	}
	return s.(*timedScreen), state
}

// answerFor resolves the catalog answer for a question in the test dataset.
func answerFor(t *testing.T, state *session.State, question string) string {
	t.Helper()
	for _, p := range state.Catalog.Pairs(state.Chapter()) {
		if p.Question == question {
			return p.Answer
		}
	}
	t.Fatalf("no pair found for question %q", question)
	return ""
}

// moveTo steps the picker's selection onto the given option.
func moveTo(t *testing.T, ts *timedScreen, option string) {
	t.Helper()
	for i := 0; ts.round.Options()[ts.picker.Selected] != option; i++ {
		if i > len(ts.round.Options()) {
			t.Fatalf("option %q not reachable in %v", option, ts.round.Options())
		}
		ts.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
}

func TestTimedCorrectSubmitHighlightsChoice(t *testing.T) {
	ts, state := newTestTimed(t)

	question, ok := ts.round.Question()
	if !ok {
		t.Fatal("Question() ok = false at start")
	}
	moveTo(t, ts, answerFor(t, state, question))
	ts.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	fb := ts.round.Feedback()
	if fb == nil || fb.Verdict != challenge.TimedCorrect {
		t.Fatalf("Feedback = %+v, want TimedCorrect", fb)
	}
	if ts.picker.CorrectIndex != ts.picker.ChosenIndex {
		t.Errorf("CorrectIndex = %d, ChosenIndex = %d; the chosen option should grade as correct",
			ts.picker.CorrectIndex, ts.picker.ChosenIndex)
	}
}

func TestTimedWrongSubmitMarksCorrectOption(t *testing.T) {
	ts, state := newTestTimed(t)

	question, _ := ts.round.Question()
	answer := answerFor(t, state, question)

	var wrong string
	for _, o := range ts.round.Options() {
		if o != answer {
			wrong = o
			break
		}
	}
	if wrong == "" {
		t.Fatal("no distractor in the option set")
	}
	moveTo(t, ts, wrong)
	ts.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	fb := ts.round.Feedback()
	if fb == nil || fb.Verdict != challenge.TimedWrong {
		t.Fatalf("Feedback = %+v, want TimedWrong", fb)
	}
	if got := ts.round.Options()[ts.picker.CorrectIndex]; got != answer {
		t.Errorf("CorrectIndex points at %q, want %q", got, answer)
	}
	if ts.picker.CorrectIndex == ts.picker.ChosenIndex {
		t.Error("a wrong choice should not grade as correct")
	}
}
