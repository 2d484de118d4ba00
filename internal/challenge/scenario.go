package challenge

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/progress"
)

var scenarioNames = []string{"Jordan", "Alex", "Taylor", "Sam", "Jamie", "Morgan"}

var scenarioRoles = []string{"data analyst", "IT coordinator", "junior accountant", "BI consultant"}

// scenarioDistractors is the fixed failure-step pool shared by every
// scenario.
var scenarioDistractors = []string{
	"Skipped validation and sent the report immediately.",
	"Ignored the data and made a decision based only on intuition.",
	"Shared an outdated file without checking its accuracy.",
	"Used a completely unrelated tool instead of the one covered in this chapter.",
}

// scenarioGenericSteps pads thin success paths.
var scenarioGenericSteps = []string{
	"Reviewed the documentation",
	"Consulted with a senior colleague",
	"Tested the idea on a sample dataset",
}

var interrogativePattern = regexp.MustCompile(`(?i)\bwhat is\b|\bhow can\b|\bdescribe\b|\bexplain\b`)

// Scenario is a generated decision scenario: an actor, a goal derived
// from one Q/A pair, a success path, and a four-way decision with
// exactly one correct option.
type Scenario struct {
	Title           string
	Actor           string
	Goal            string
	Summary         string
	SuccessSteps    []string
	DistractorSteps []string
	Question        string
	Options         []string
	CorrectOption   string
	Hint            string
}

// GenerateScenario derives a scenario from the chapter's summary and one
// randomly chosen Q/A pair. Returns ErrNoContent when the chapter has no
// pairs.
func GenerateScenario(chapterKey, summary string, pairs []catalog.Pair, rng *rand.Rand) (*Scenario, error) {
	if len(pairs) == 0 {
		return nil, ErrNoContent
	}

	pair := pairs[rng.IntN(len(pairs))]
	title := catalog.CleanTitle(chapterKey)

	name := scenarioNames[rng.IntN(len(scenarioNames))]
	role := scenarioRoles[rng.IntN(len(scenarioRoles))]
	actor := fmt.Sprintf("%s, a %s", name, role)

	goal := capitalize(strings.TrimSpace(interrogativePattern.ReplaceAllString(pair.Question, "")))
	if goal == "" {
		goal = fmt.Sprintf("Apply %s in a real task", title)
	}

	steps := splitSteps(pair.Answer)
	if len(steps) < 3 {
		steps = append(steps, scenarioGenericSteps...)
	}
	if len(steps) > 4 {
		steps = steps[:4]
	}

	correct := "Applied the concepts correctly: " + pair.Answer
	options := make([]string, 0, 4)
	for _, i := range rng.Perm(len(scenarioDistractors))[:3] {
		options = append(options, scenarioDistractors[i])
	}
	options = append(options, correct)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Scenario{
		Title:           fmt.Sprintf("Use Case: Applying %s", title),
		Actor:           actor,
		Goal:            goal,
		Summary:         summary,
		SuccessSteps:    steps,
		DistractorSteps: scenarioDistractors,
		Question:        fmt.Sprintf("What should %s do next to achieve their goal?", name),
		Options:         options,
		CorrectOption:   correct,
		Hint:            fmt.Sprintf("Think about the main purpose of %s: what is it supposed to help with?", title),
	}, nil
}

// splitSteps breaks an answer into trimmed, non-empty period-bounded
// clauses.
func splitSteps(answer string) []string {
	var steps []string
	for _, s := range strings.Split(answer, ".") {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}

// ScenarioResult reports a submitted decision.
type ScenarioResult struct {
	Correct bool
	LevelUp *progress.LevelUp
}

// ScenarioSession freezes one generated scenario for a chapter until the
// learner asks for a new one or the chapter changes.
type ScenarioSession struct {
	chapterKey string
	summary    string
	pairs      []catalog.Pair
	rng        *rand.Rand
	ledger     *progress.Ledger
	scenario   *Scenario
	hintShown  bool
	answered   bool
}

// NewScenarioSession generates and freezes a scenario for the chapter.
// Returns ErrNoContent when the chapter has no pairs.
func NewScenarioSession(chapterKey, summary string, pairs []catalog.Pair, rng *rand.Rand, ledger *progress.Ledger) (*ScenarioSession, error) {
	sc, err := GenerateScenario(chapterKey, summary, pairs, rng)
	if err != nil {
		return nil, err
	}
	return &ScenarioSession{
		chapterKey: chapterKey,
		summary:    summary,
		pairs:      pairs,
		rng:        rng,
		ledger:     ledger,
		scenario:   sc,
	}, nil
}

// Scenario returns the frozen scenario record.
func (s *ScenarioSession) Scenario() *Scenario { return s.scenario }

// Answered reports whether the correct decision has been made.
func (s *ScenarioSession) Answered() bool { return s.answered }

// HintShown reports whether the hint has been revealed.
func (s *ScenarioSession) HintShown() bool { return s.hintShown }

// Submit grades a decision. A correct choice awards Scenario XP once; an
// incorrect choice changes nothing and the learner may resubmit. No-op
// after the correct decision has been made.
func (s *ScenarioSession) Submit(choice string) *ScenarioResult {
	if s.answered {
		return nil
	}
	if choice != s.scenario.CorrectOption {
		return &ScenarioResult{Correct: false}
	}
	s.answered = true
	return &ScenarioResult{
		Correct: true,
		LevelUp: s.ledger.Award(progress.KindScenario),
	}
}

// ShowHint reveals the hint. Idempotent; the hint stays revealed for the
// life of the session.
func (s *ScenarioSession) ShowHint() {
	s.hintShown = true
}

// NewScenario regenerates the scenario and resets the hint and answered
// flags.
func (s *ScenarioSession) NewScenario() error {
	sc, err := GenerateScenario(s.chapterKey, s.summary, s.pairs, s.rng)
	if err != nil {
		return err
	}
	s.scenario = sc
	s.hintShown = false
	s.answered = false
	return nil
}
