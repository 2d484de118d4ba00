package challenge

import (
	"errors"
	"testing"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/progress"
)

func testPairs(n int) []catalog.Pair {
	pairs := []catalog.Pair{
		{Question: "What is a dashboard?", Answer: "A dashboard presents key metrics on a single screen."},
		{Question: "What is data cleaning?", Answer: "Data cleaning removes errors and inconsistencies from raw data."},
		{Question: "What is a KPI?", Answer: "A KPI tracks performance against a business goal."},
		{Question: "What is ETL?", Answer: "ETL moves data from source systems into a warehouse."},
		{Question: "What is a pivot table?", Answer: "A pivot table summarizes data across two dimensions."},
		{Question: "What is a data model?", Answer: "A data model defines how tables relate to each other."},
	}
	return pairs[:n]
}

func TestFlashcardsEmptyChapter(t *testing.T) {
	if _, err := NewFlashcards(nil, progress.NewLedger()); !errors.Is(err, ErrNoContent) {
		t.Fatalf("NewFlashcards(nil) error = %v, want ErrNoContent", err)
	}
}

func TestFlashcardsKnownAwardsXP(t *testing.T) {
	ledger := progress.NewLedger()
	f, err := NewFlashcards(testPairs(3), ledger)
	if err != nil {
		t.Fatalf("NewFlashcards: %v", err)
	}

	f.Flip()
	if !f.Revealed() {
		t.Fatal("Revealed() = false after Flip")
	}
	f.MarkKnown()

	if ledger.XP() != progress.KindFlashcards.XP() {
		t.Errorf("XP = %d, want %d", ledger.XP(), progress.KindFlashcards.XP())
	}
	if f.Index() != 1 {
		t.Errorf("Index = %d, want 1", f.Index())
	}
	if f.Revealed() {
		t.Error("Revealed() = true on the next card")
	}
}

func TestFlashcardsMarkKnownBeforeFlipIsNoop(t *testing.T) {
	ledger := progress.NewLedger()
	f, _ := NewFlashcards(testPairs(3), ledger)

	f.MarkKnown()

	if ledger.XP() != 0 {
		t.Errorf("XP = %d, want 0 before reveal", ledger.XP())
	}
	if f.Index() != 0 {
		t.Errorf("Index = %d, want 0 before reveal", f.Index())
	}
}

func TestFlashcardsSkipAwardsNothing(t *testing.T) {
	ledger := progress.NewLedger()
	f, _ := NewFlashcards(testPairs(3), ledger)

	f.Flip()
	f.Skip()

	if ledger.XP() != 0 {
		t.Errorf("XP = %d, want 0 after Skip", ledger.XP())
	}
	if f.Index() != 1 {
		t.Errorf("Index = %d, want 1 after Skip", f.Index())
	}
}

func TestFlashcardsRestartOnlyWhenFinished(t *testing.T) {
	f, _ := NewFlashcards(testPairs(2), progress.NewLedger())

	f.Flip()
	f.Restart()
	if f.Index() != 0 || !f.Revealed() {
		t.Error("Restart mid-deck should be a no-op")
	}

	f.Skip()
	f.Flip()
	f.Skip()
	if !f.Finished() {
		t.Fatal("Finished() = false after skipping every card")
	}
	if _, ok := f.Card(); ok {
		t.Error("Card() ok = true once finished")
	}

	f.Restart()
	if f.Finished() || f.Index() != 0 || f.Revealed() {
		t.Error("Restart after finish should return to the first card, question side up")
	}
}
