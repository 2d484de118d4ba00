package challenge

import (
	"math/rand/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/progress"
)

// MatchMinPairs is the minimum pair count to start Match the Answers.
const MatchMinPairs = 3

// MatchPairCap bounds a round to the first five pairs.
const MatchPairCap = 5

// MatchResult reports a submitted board.
type MatchResult struct {
	PerSlot []bool
	Score   int
	Perfect bool
	LevelUp *progress.LevelUp
}

// Match is the match-the-answers session. Every slot shares one option
// pool: the correct answers shuffled once at creation and frozen until
// restart.
type Match struct {
	pairs      []catalog.Pair
	rng        *rand.Rand
	ledger     *progress.Ledger
	options    []string
	selections []string
	result     *MatchResult
}

// NewMatch creates a session over the chapter's first pairs. Returns
// ErrNotEnoughPairs below the three-pair minimum.
func NewMatch(pairs []catalog.Pair, rng *rand.Rand, ledger *progress.Ledger) (*Match, error) {
	if len(pairs) < MatchMinPairs {
		return nil, ErrNotEnoughPairs
	}
	if len(pairs) > MatchPairCap {
		pairs = pairs[:MatchPairCap]
	}
	m := &Match{pairs: pairs, rng: rng, ledger: ledger}
	m.shuffleOptions()
	m.selections = make([]string, len(pairs))
	return m, nil
}

func (m *Match) shuffleOptions() {
	m.options = make([]string, len(m.pairs))
	for i, p := range m.pairs {
		m.options[i] = p.Answer
	}
	m.rng.Shuffle(len(m.options), func(i, j int) {
		m.options[i], m.options[j] = m.options[j], m.options[i]
	})
}

// Pairs returns the questions being matched.
func (m *Match) Pairs() []catalog.Pair { return m.pairs }

// Options returns the shared, frozen option pool shown to every slot.
func (m *Match) Options() []string { return m.options }

// Select records the learner's choice for a slot. An empty choice
// clears the slot. No-op after submission or for bad slot indexes.
func (m *Match) Select(slot int, choice string) {
	if m.result != nil || slot < 0 || slot >= len(m.selections) {
		return
	}
	m.selections[slot] = choice
}

// Selection returns the current choice for a slot ("" = none).
func (m *Match) Selection(slot int) string {
	if slot < 0 || slot >= len(m.selections) {
		return ""
	}
	return m.selections[slot]
}

// Check scores the board: each slot's selection against that slot's
// correct answer, exact string equality. XP is awarded only on a perfect
// board; partial credit earns nothing. No-op (returning the prior
// result) when already submitted.
func (m *Match) Check() *MatchResult {
	if m.result != nil {
		return m.result
	}

	perSlot := make([]bool, len(m.pairs))
	score := 0
	for i, p := range m.pairs {
		if m.selections[i] == p.Answer {
			perSlot[i] = true
			score++
		}
	}

	res := &MatchResult{
		PerSlot: perSlot,
		Score:   score,
		Perfect: score == len(m.pairs),
	}
	if res.Perfect {
		res.LevelUp = m.ledger.Award(progress.KindMatch)
	}
	m.result = res
	return res
}

// Submitted reports whether the board has been checked.
func (m *Match) Submitted() bool { return m.result != nil }

// Result returns the recorded result, or nil before Check.
func (m *Match) Result() *MatchResult { return m.result }

// Restart reshuffles the option pool and clears selections and the
// submission state.
func (m *Match) Restart() {
	m.shuffleOptions()
	m.selections = make([]string, len(m.pairs))
	m.result = nil
}
