// Package challenge implements the gamified challenge sessions: six
// independent state machines, one per challenge type, each owning its
// per-chapter cursor and derived artifacts (frozen option sets, lives,
// timers). Events arriving in a state that does not accept them are
// ignored rather than raised as errors, so the presentation layer can
// replay or double-fire events safely.
//
// Every session takes the chapter content at construction and a
// *rand.Rand for shuffling, so tests can pin seeds and assert exact
// orderings. Switching chapters means building a fresh session, never
// mutating an old one.
package challenge

import (
	"errors"
	"math/rand/v2"
)

// ErrNoContent signals a chapter with no question/answer pairs. The
// challenge refuses to start; nothing crashes.
var ErrNoContent = errors.New("no question/answer pairs for this chapter")

// ErrNotEnoughPairs signals a chapter with too few pairs for a challenge
// that needs a minimum (Match the Answers needs three).
var ErrNotEnoughPairs = errors.New("not enough question/answer pairs for this challenge")

// buildOptions assembles a multiple-choice option set: the correct answer
// plus up to three distractors sampled without replacement from the other
// answers, shuffled once. Callers freeze the result per question so
// re-renders never reshuffle.
func buildOptions(correct string, all []string, rng *rand.Rand) []string {
	var others []string
	for _, a := range all {
		if a != correct {
			others = append(others, a)
		}
	}

	k := min(3, len(others))
	opts := make([]string, 0, k+1)
	opts = append(opts, correct)
	for _, i := range rng.Perm(len(others))[:k] {
		opts = append(opts, others[i])
	}

	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// capitalize upper-cases the first byte of s, leaving the rest alone.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
