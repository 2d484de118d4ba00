package tutor

import (
	"strings"
	"testing"

	"github.com/sravani919/studyhall/internal/llm"
)

func TestChatLogStartNewArchives(t *testing.T) {
	log := NewChatLog()
	log.Append(llm.RoleUser, "hi")
	log.Append(llm.RoleAssistant, "hello")

	log.StartNew()

	if len(log.Current()) != 0 {
		t.Errorf("Current has %d turns after StartNew, want 0", len(log.Current()))
	}
	archives := log.Archives()
	if len(archives) != 1 {
		t.Fatalf("Archives = %d, want 1", len(archives))
	}
	if len(archives[0].Turns) != 2 {
		t.Errorf("archived turns = %d, want 2", len(archives[0].Turns))
	}
	if archives[0].ID.String() == "" || archives[0].ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("archived conversation missing an ID")
	}
}

func TestChatLogStartNewOnEmptyIsNoop(t *testing.T) {
	log := NewChatLog()
	log.StartNew()
	if len(log.Archives()) != 0 {
		t.Error("StartNew on an empty chat should not archive")
	}
}

func TestChatLogClearDropsWithoutArchiving(t *testing.T) {
	log := NewChatLog()
	log.Append(llm.RoleUser, "hi")
	log.Clear()

	if len(log.Current()) != 0 {
		t.Error("Clear should drop the current turns")
	}
	if len(log.Archives()) != 0 {
		t.Error("Clear should not archive")
	}
}

func TestBuildContextTruncates(t *testing.T) {
	long := strings.Repeat("s", maxContextChars+100)
	got := buildContext(long, nil, nil)

	if len(got) > maxContextChars+len("…") {
		t.Errorf("len(context) = %d, want at most %d", len(got), maxContextChars+len("…"))
	}
	if !strings.HasSuffix(got, "…") {
		t.Error("truncated context missing the ellipsis")
	}
}

func TestBuildContextSkipsMissingSummary(t *testing.T) {
	got := buildContext("No summary available.", nil, []Turn{{Role: llm.RoleUser, Content: "hi"}})
	if strings.Contains(got, "Chapter Summary:") {
		t.Error("placeholder summary should not appear in the context")
	}
	if !strings.Contains(got, "Recent Conversation:\nuser: hi") {
		t.Errorf("context = %q, want the conversation block", got)
	}
}
