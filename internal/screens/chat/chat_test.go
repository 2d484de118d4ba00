package chat

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/llm"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/tutor"
)

const testDataset = `{
  "chapters": [
    {
      "key": "1. Data Basics",
      "summary": "This chapter covers the foundations of working with data.",
      "questions": ["What is a dashboard?"],
      "answers": ["A dashboard presents key metrics on a single screen for quick review."]
    }
  ]
}`

func testState(t *testing.T, provider llm.Provider) *session.State {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(testDataset))
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	state := session.New(cat, tutor.New(provider, cat), rand.New(rand.NewPCG(7, 11)))
	state.SetChapter("1. Data Basics")
	return state
}

func TestSuggestKeyShowsPracticeQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": ["How do dashboards help managers?", "When is a single screen too crowded?"]}`),
	})
	c := New(testState(t, mock))

	_, cmd := c.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+s should produce a command")
	}

	msg := cmd()
	sugMsg, ok := msg.(suggestionsMsg)
	if !ok {
		t.Fatalf("expected suggestionsMsg, got %T", msg)
	}
	if sugMsg.err != nil {
		t.Fatalf("suggestionsMsg.err = %v", sugMsg.err)
	}

	c.Update(sugMsg)
	view := c.View(100, 40)
	if !strings.Contains(view, "Try asking:") {
		t.Error("view should introduce the suggestions")
	}
	if !strings.Contains(view, "How do dashboards help managers?") {
		t.Error("view should list the suggested questions")
	}
}

func TestSuggestWithoutProviderShowsNote(t *testing.T) {
	c := New(testState(t, nil))

	_, cmd := c.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+s should produce a command")
	}

	msg := cmd()
	sugMsg, ok := msg.(suggestionsMsg)
	if !ok {
		t.Fatalf("expected suggestionsMsg, got %T", msg)
	}
	if sugMsg.err == nil {
		t.Fatal("suggesting without a provider should error")
	}

	c.Update(sugMsg)
	if !strings.Contains(c.View(100, 40), "No suggestions right now") {
		t.Error("view should explain that suggestions are unavailable")
	}
}
