package welcome

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/router"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func testState(t *testing.T) *session.State {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(`{
	  "chapters": [
	    {"key": "1. Intro", "questions": ["What is X?"], "answers": ["X is a thing that does something useful."]}
	  ]
	}`))
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return session.New(cat, nil, rand.New(rand.NewPCG(1, 2)))
}

func typeString(w *WelcomeScreen, s string) {
	for _, r := range s {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterWithNameReplacesWithHome(t *testing.T) {
	state := testState(t)
	callCount := 0
	w := New(state, func() screen.Screen {
		callCount++
		return &stubScreen{}
	})

	typeString(w, "Riley")
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with a name should produce a command")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if callCount != 1 {
		t.Errorf("factory calls = %d, want 1", callCount)
	}
	if state.Name() != "Riley" {
		t.Errorf("Name = %q, want %q", state.Name(), "Riley")
	}
}

func TestEnterWithEmptyNameDoesNothing(t *testing.T) {
	state := testState(t)
	w := New(state, func() screen.Screen { return &stubScreen{} })

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter with no name should not produce a command")
	}
	if state.Name() != "" {
		t.Errorf("Name = %q, want empty", state.Name())
	}
}

func TestViewShowsPrompt(t *testing.T) {
	w := New(testState(t), func() screen.Screen { return &stubScreen{} })
	view := w.View(80, 24)
	if !strings.Contains(view, "what should I call you") {
		t.Error("expected the name prompt in the view")
	}
}
