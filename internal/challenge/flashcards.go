package challenge

import (
	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/progress"
)

// Flashcards walks the chapter's question/answer pairs one card at a
// time. A card starts question-side-up; Flip reveals the answer, then
// MarkKnown (awards XP) or Skip (no XP) advances to the next card.
type Flashcards struct {
	pairs    []catalog.Pair
	ledger   *progress.Ledger
	index    int
	revealed bool
}

// NewFlashcards creates a flashcard session over the chapter's pairs.
// Returns ErrNoContent when the chapter has none.
func NewFlashcards(pairs []catalog.Pair, ledger *progress.Ledger) (*Flashcards, error) {
	if len(pairs) == 0 {
		return nil, ErrNoContent
	}
	return &Flashcards{pairs: pairs, ledger: ledger}, nil
}

// Card returns the current pair. ok is false once the session is finished.
func (f *Flashcards) Card() (pair catalog.Pair, ok bool) {
	if f.Finished() {
		return catalog.Pair{}, false
	}
	return f.pairs[f.index], true
}

// Index returns the zero-based position of the current card.
func (f *Flashcards) Index() int { return f.index }

// Count returns the total number of cards.
func (f *Flashcards) Count() int { return len(f.pairs) }

// Revealed reports whether the current card shows its answer side.
func (f *Flashcards) Revealed() bool { return f.revealed }

// Finished reports whether every card has been seen.
func (f *Flashcards) Finished() bool { return f.index >= len(f.pairs) }

// Flip turns the current card answer-side-up. No-op when already
// revealed or finished.
func (f *Flashcards) Flip() {
	if f.Finished() || f.revealed {
		return
	}
	f.revealed = true
}

// MarkKnown awards flashcard XP and advances to the next card. Only
// valid while the answer is revealed; otherwise a no-op.
func (f *Flashcards) MarkKnown() *progress.LevelUp {
	if f.Finished() || !f.revealed {
		return nil
	}
	up := f.ledger.Award(progress.KindFlashcards)
	f.advance()
	return up
}

// Skip advances to the next card without awarding XP. Only valid while
// the answer is revealed; otherwise a no-op.
func (f *Flashcards) Skip() {
	if f.Finished() || !f.revealed {
		return
	}
	f.advance()
}

// Restart returns to the first card. Only valid once finished.
func (f *Flashcards) Restart() {
	if !f.Finished() {
		return
	}
	f.index = 0
	f.revealed = false
}

func (f *Flashcards) advance() {
	f.index++
	f.revealed = false
}
