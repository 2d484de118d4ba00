package tutor

import (
	"github.com/google/uuid"

	"github.com/sravani919/studyhall/internal/llm"
)

// Turn is one message in a tutor conversation.
type Turn struct {
	Role    llm.Role
	Content string
}

// Conversation is an archived chat: its turns plus an identifier.
type Conversation struct {
	ID    uuid.UUID
	Turns []Turn
}

// ChatLog holds the running conversation and its archives for one
// chapter. Each chapter gets its own ChatLog; switching chapters never
// mixes histories.
type ChatLog struct {
	current  []Turn
	archives []Conversation
}

// NewChatLog creates an empty chat log.
func NewChatLog() *ChatLog {
	return &ChatLog{}
}

// Append records a turn in the current conversation.
func (c *ChatLog) Append(role llm.Role, content string) {
	c.current = append(c.current, Turn{Role: role, Content: content})
}

// Current returns the running conversation's turns.
func (c *ChatLog) Current() []Turn { return c.current }

// Archives returns the archived conversations, oldest first.
func (c *ChatLog) Archives() []Conversation { return c.archives }

// StartNew archives the current conversation (when non-empty) and
// starts a fresh one.
func (c *ChatLog) StartNew() {
	if len(c.current) == 0 {
		return
	}
	turns := make([]Turn, len(c.current))
	copy(turns, c.current)
	c.archives = append(c.archives, Conversation{ID: uuid.New(), Turns: turns})
	c.current = nil
}

// Clear drops the current conversation without archiving it.
func (c *ChatLog) Clear() {
	c.current = nil
}
