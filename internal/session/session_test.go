package session

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/llm"
)

func testState(t *testing.T) *State {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(`{
	  "chapters": [
	    {"key": "1. Intro", "questions": ["What is X?"], "answers": ["X is a thing that does something useful."]}
	  ]
	}`))
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return New(cat, nil, rand.New(rand.NewPCG(1, 2)))
}

func TestStateNameAndChapter(t *testing.T) {
	s := testState(t)

	if s.Name() != "" {
		t.Errorf("Name = %q before SetName, want empty", s.Name())
	}
	s.SetName("Riley")
	s.SetChapter("1. Intro")

	if s.Name() != "Riley" || s.Chapter() != "1. Intro" {
		t.Errorf("got name=%q chapter=%q", s.Name(), s.Chapter())
	}
	if s.Ledger.Level() != 1 {
		t.Errorf("fresh session level = %d, want 1", s.Ledger.Level())
	}
}

func TestChatLogPerChapter(t *testing.T) {
	s := testState(t)

	a := s.ChatLog("1. Intro")
	a.Append(llm.RoleUser, "hi")

	if got := s.ChatLog("1. Intro"); got != a {
		t.Error("ChatLog should return the same log for the same chapter")
	}
	if other := s.ChatLog("2. Other"); len(other.Current()) != 0 {
		t.Error("a different chapter should get its own empty log")
	}
}
