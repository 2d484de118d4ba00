package challenge

import (
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/sravani919/studyhall/internal/progress"
)

// FillBlankLives is the number of wrong answers a round survives.
const FillBlankLives = 3

// FillBlankItemCap bounds a round to five blanks.
const FillBlankItemCap = 5

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// BlankItem is the current puzzle: the sentence with its keyword blanked
// out, and the keyword the learner must type.
type BlankItem struct {
	Sentence string
	Keyword  string
}

// FillOutcome classifies the result of a guess.
type FillOutcome int

const (
	// FillCorrect: the guess matched. XP awarded; the learner clicks
	// Next to move on.
	FillCorrect FillOutcome = iota
	// FillHint: first wrong attempt. A life is lost and a hint (first
	// letter, length) is revealed.
	FillHint
	// FillRevealed: second wrong attempt on the same item, or lives hit
	// zero. The keyword is revealed and the cursor auto-advances.
	FillRevealed
)

// FillResult reports what a Check did.
type FillResult struct {
	Outcome     FillOutcome
	Keyword     string
	FirstLetter string // set for FillHint
	Length      int    // set for FillHint
	LivesLeft   int
	LevelUp     *progress.LevelUp
}

// FillBlank is the fill-in-the-blank session: a shuffled walk over the
// chapter's answers, blanking one keyword per answer, with three lives
// for the whole round.
type FillBlank struct {
	answers       []string
	rng           *rand.Rand
	ledger        *progress.Ledger
	order         []int
	cursor        int
	lives         int
	wrongAttempts int
}

// NewFillBlank creates a session over the chapter's answers.
// Returns ErrNoContent when the chapter has none.
func NewFillBlank(answers []string, rng *rand.Rand, ledger *progress.Ledger) (*FillBlank, error) {
	if len(answers) == 0 {
		return nil, ErrNoContent
	}
	f := &FillBlank{answers: answers, rng: rng, ledger: ledger}
	f.reset()
	return f, nil
}

func (f *FillBlank) reset() {
	f.order = f.rng.Perm(len(f.answers))
	f.cursor = 0
	f.lives = FillBlankLives
	f.wrongAttempts = 0
	f.skipBlankless()
}

// skipBlankless advances past answers with no words at all. Skipping
// costs nothing.
func (f *FillBlank) skipBlankless() {
	for f.cursor < f.Total() {
		words := wordPattern.FindAllString(f.answers[f.order[f.cursor]], -1)
		if len(words) > 0 {
			return
		}
		f.cursor++
	}
}

// Total returns the number of items in the round.
func (f *FillBlank) Total() int { return min(FillBlankItemCap, len(f.order)) }

// Cursor returns the zero-based current item index.
func (f *FillBlank) Cursor() int { return f.cursor }

// Lives returns the remaining lives.
func (f *FillBlank) Lives() int { return f.lives }

// Failed reports whether the round ended by running out of lives.
// Failure wins over completion: the only recovery is Restart.
func (f *FillBlank) Failed() bool { return f.lives <= 0 }

// Completed reports whether every item has been cleared.
func (f *FillBlank) Completed() bool { return f.cursor >= f.Total() }

// Item returns the current blanked sentence. ok is false once the round
// has completed or failed.
func (f *FillBlank) Item() (item BlankItem, ok bool) {
	if f.Failed() || f.Completed() {
		return BlankItem{}, false
	}
	full := f.answers[f.order[f.cursor]]
	keyword := pickKeyword(full)
	return BlankItem{
		Sentence: blankFirst(full, keyword),
		Keyword:  keyword,
	}, true
}

// Check tests a guess against the current keyword (case-insensitive
// exact match). Returns nil when no item is active.
func (f *FillBlank) Check(guess string) *FillResult {
	item, ok := f.Item()
	if !ok {
		return nil
	}

	if strings.EqualFold(strings.TrimSpace(guess), item.Keyword) {
		up := f.ledger.Award(progress.KindFillBlank)
		f.wrongAttempts = 0
		// The cursor holds: a correct answer waits for an explicit Next.
		return &FillResult{
			Outcome:   FillCorrect,
			Keyword:   item.Keyword,
			LivesLeft: f.lives,
			LevelUp:   up,
		}
	}

	f.wrongAttempts++
	f.lives--

	// The first wrong attempt always hints, even when it spent the last
	// life; the caller sees Failed() on the next read. Reveal fires on
	// the compound condition: a repeat miss or zero lives.
	if f.wrongAttempts == 1 {
		return &FillResult{
			Outcome:     FillHint,
			Keyword:     item.Keyword,
			FirstLetter: strings.ToUpper(item.Keyword[:1]),
			Length:      len(item.Keyword),
			LivesLeft:   f.lives,
		}
	}

	// Second wrong attempt, or lives at zero: reveal and auto-advance.
	f.wrongAttempts = 0
	f.cursor++
	f.skipBlankless()
	return &FillResult{
		Outcome:   FillRevealed,
		Keyword:   item.Keyword,
		LivesLeft: f.lives,
	}
}

// Advance moves to the next item without a guess. No-op once the round
// is over.
func (f *FillBlank) Advance() {
	if f.Failed() || f.Completed() {
		return
	}
	f.cursor++
	f.wrongAttempts = 0
	f.skipBlankless()
}

// Restart reshuffles the order and resets lives and cursor.
func (f *FillBlank) Restart() {
	f.reset()
}

// pickKeyword chooses the blanked word: the first word longer than four
// characters, else the first word.
func pickKeyword(sentence string) string {
	words := wordPattern.FindAllString(sentence, -1)
	if len(words) == 0 {
		return ""
	}
	for _, w := range words {
		if len(w) > 4 {
			return w
		}
	}
	return words[0]
}

// blankFirst replaces the first case-insensitive occurrence of keyword
// with the blank marker. The keyword is ASCII word text, so scanning
// fixed-size byte windows is safe even when the sentence holds
// multibyte runes whose lowercase form changes byte length.
func blankFirst(sentence, keyword string) string {
	n := len(keyword)
	if n == 0 {
		return sentence
	}
	for i := 0; i+n <= len(sentence); i++ {
		if strings.EqualFold(sentence[i:i+n], keyword) {
			return sentence[:i] + "____" + sentence[i+n:]
		}
	}
	return sentence
}
