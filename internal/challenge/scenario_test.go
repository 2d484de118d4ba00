package challenge

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/progress"
)

func TestGenerateScenarioEmptyChapter(t *testing.T) {
	if _, err := GenerateScenario("1. Intro", "", nil, testRNG()); !errors.Is(err, ErrNoContent) {
		t.Fatalf("GenerateScenario(no pairs) error = %v, want ErrNoContent", err)
	}
}

func TestGenerateScenarioShape(t *testing.T) {
	pairs := testPairs(4)
	sc, err := GenerateScenario("3. Data Warehousing", "Chapter summary.", pairs, testRNG())
	if err != nil {
		t.Fatalf("GenerateScenario: %v", err)
	}

	if len(sc.Options) != 4 {
		t.Fatalf("len(Options) = %d, want 4", len(sc.Options))
	}
	if n := countOf(sc.Options, sc.CorrectOption); n != 1 {
		t.Errorf("correct option appears %d times, want 1", n)
	}
	if !strings.HasPrefix(sc.CorrectOption, "Applied the concepts correctly: ") {
		t.Errorf("CorrectOption = %q, missing the success prefix", sc.CorrectOption)
	}
	for _, o := range sc.Options {
		if o == sc.CorrectOption {
			continue
		}
		if !slices.Contains(scenarioDistractors, o) {
			t.Errorf("option %q is not from the distractor pool", o)
		}
	}
	for i, o := range sc.Options {
		if o == sc.CorrectOption {
			continue
		}
		for j := i + 1; j < len(sc.Options); j++ {
			if sc.Options[j] == o {
				t.Errorf("distractor %q sampled twice", o)
			}
		}
	}

	if sc.Title != "Use Case: Applying Data Warehousing" {
		t.Errorf("Title = %q", sc.Title)
	}
	if sc.Summary != "Chapter summary." {
		t.Errorf("Summary = %q", sc.Summary)
	}
	if sc.Hint != "Think about the main purpose of Data Warehousing: what is it supposed to help with?" {
		t.Errorf("Hint = %q", sc.Hint)
	}
}

func TestGenerateScenarioActorFromPools(t *testing.T) {
	sc, _ := GenerateScenario("2. Reporting", "", testPairs(3), testRNG())

	name, rest, found := strings.Cut(sc.Actor, ", a ")
	if !found {
		t.Fatalf("Actor = %q, want \"{name}, a {role}\"", sc.Actor)
	}
	if !slices.Contains(scenarioNames, name) {
		t.Errorf("actor name %q not in the name pool", name)
	}
	if !slices.Contains(scenarioRoles, rest) {
		t.Errorf("actor role %q not in the role pool", rest)
	}
	if !strings.Contains(sc.Question, name) {
		t.Errorf("Question %q should address the actor by name", sc.Question)
	}
}

func TestGenerateScenarioGoalStripsInterrogatives(t *testing.T) {
	pairs := []catalog.Pair{{
		Question: "What is a data warehouse used for?",
		Answer:   "It stores integrated data. It keeps history. It feeds reporting.",
	}}
	sc, _ := GenerateScenario("3. Warehousing", "", pairs, testRNG())

	if sc.Goal != "A data warehouse used for?" {
		t.Errorf("Goal = %q, want the question with the interrogative stripped", sc.Goal)
	}
}

func TestGenerateScenarioGoalFallback(t *testing.T) {
	pairs := []catalog.Pair{{Question: "Explain", Answer: "Short."}}
	sc, _ := GenerateScenario("4. BI Tools", "", pairs, testRNG())

	if sc.Goal != "Apply BI Tools in a real task" {
		t.Errorf("Goal = %q, want the fallback goal", sc.Goal)
	}
}

func TestGenerateScenarioStepPadding(t *testing.T) {
	thin := []catalog.Pair{{Question: "What is X?", Answer: "One sentence only."}}
	sc, _ := GenerateScenario("1. Intro", "", thin, testRNG())
	if len(sc.SuccessSteps) < 3 {
		t.Errorf("len(SuccessSteps) = %d for a thin answer, want at least 3", len(sc.SuccessSteps))
	}

	rich := []catalog.Pair{{
		Question: "What is Y?",
		Answer:   "First. Second. Third. Fourth. Fifth. Sixth.",
	}}
	sc, _ = GenerateScenario("1. Intro", "", rich, testRNG())
	if len(sc.SuccessSteps) != 4 {
		t.Errorf("len(SuccessSteps) = %d for a rich answer, want capped at 4", len(sc.SuccessSteps))
	}
}

func TestScenarioSessionSubmit(t *testing.T) {
	ledger := progress.NewLedger()
	s, err := NewScenarioSession("2. Reporting", "", testPairs(3), testRNG(), ledger)
	if err != nil {
		t.Fatalf("NewScenarioSession: %v", err)
	}

	wrong := ""
	for _, o := range s.Scenario().Options {
		if o != s.Scenario().CorrectOption {
			wrong = o
			break
		}
	}

	if res := s.Submit(wrong); res == nil || res.Correct {
		t.Fatalf("Submit(wrong) = %+v, want an incorrect result", res)
	}
	if s.Answered() {
		t.Error("Answered = true after a wrong submission; resubmission must stay open")
	}
	if ledger.XP() != 0 {
		t.Errorf("XP = %d after a wrong submission, want 0", ledger.XP())
	}

	if res := s.Submit(s.Scenario().CorrectOption); res == nil || !res.Correct {
		t.Fatalf("Submit(correct) = %+v, want a correct result", res)
	}
	if ledger.XP() != progress.KindScenario.XP() {
		t.Errorf("XP = %d, want %d", ledger.XP(), progress.KindScenario.XP())
	}

	if res := s.Submit(s.Scenario().CorrectOption); res != nil {
		t.Errorf("Submit after answering = %+v, want nil", res)
	}
	if ledger.XP() != progress.KindScenario.XP() {
		t.Errorf("XP = %d after resubmit, want %d", ledger.XP(), progress.KindScenario.XP())
	}
}

func TestScenarioSessionHintIdempotent(t *testing.T) {
	s, _ := NewScenarioSession("2. Reporting", "", testPairs(3), testRNG(), progress.NewLedger())

	s.ShowHint()
	s.ShowHint()
	if !s.HintShown() {
		t.Error("HintShown = false after ShowHint")
	}
}

func TestScenarioSessionNewScenarioResets(t *testing.T) {
	s, _ := NewScenarioSession("2. Reporting", "", testPairs(3), testRNG(), progress.NewLedger())

	s.ShowHint()
	s.Submit(s.Scenario().CorrectOption)

	if err := s.NewScenario(); err != nil {
		t.Fatalf("NewScenario: %v", err)
	}
	if s.Answered() || s.HintShown() {
		t.Error("NewScenario should reset the answered and hint flags")
	}
	if len(s.Scenario().Options) != 4 {
		t.Errorf("regenerated scenario has %d options, want 4", len(s.Scenario().Options))
	}
}
