// Package chat is the tutor conversation screen: chapter-grounded
// questions and answers with selectable answer styles and per-chapter
// archives.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/llm"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/tutor"
	"github.com/sravani919/studyhall/internal/ui/components"
	"github.com/sravani919/studyhall/internal/ui/layout"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// answerMsg carries the tutor's reply back into the update loop.
type answerMsg struct {
	text string
}

// suggestionsMsg carries generated practice questions.
type suggestionsMsg struct {
	items []string
	err   error
}

// ChatScreen is the per-chapter tutor conversation.
type ChatScreen struct {
	state       *session.State
	log         *tutor.ChatLog
	input       components.TextInput
	style       tutor.Style
	useHistory  bool
	thinking    bool
	suggestions []string
	suggestNote string
}

var _ screen.Screen = (*ChatScreen)(nil)

// New creates a chat screen bound to the session's selected chapter.
func New(state *session.State) *ChatScreen {
	return &ChatScreen{
		state:      state,
		log:        state.ChatLog(state.Chapter()),
		input:      components.NewTextInput("ask about this chapter", false, 200),
		useHistory: true,
	}
}

func (c *ChatScreen) Title() string { return "Ask the Tutor" }

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		c.thinking = false
		c.log.Append(llm.RoleAssistant, msg.text)
		return c, nil

	case suggestionsMsg:
		c.thinking = false
		if msg.err != nil {
			c.suggestNote = "No suggestions right now. Ask your own question instead."
			return c, nil
		}
		c.suggestNote = ""
		c.suggestions = msg.items
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return c, c.submit()
		case "ctrl+s":
			return c, c.suggest()
		case "tab":
			c.style = tutor.AllStyles()[(int(c.style)+1)%len(tutor.AllStyles())]
			return c, nil
		case "ctrl+n":
			c.log.StartNew()
			return c, nil
		case "ctrl+l":
			c.log.Clear()
			return c, nil
		case "ctrl+h":
			c.useHistory = !c.useHistory
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) submit() tea.Cmd {
	if c.thinking {
		return nil
	}
	question := strings.TrimSpace(c.input.Value())
	if question == "" {
		return nil
	}
	c.input.Model.SetValue("")

	var history []tutor.Turn
	if c.useHistory {
		history = c.log.Current()
	}

	c.log.Append(llm.RoleUser, question)
	c.thinking = true
	c.suggestions = nil
	c.suggestNote = ""

	state, style, chapter := c.state, c.style, c.state.Chapter()
	return func() tea.Msg {
		answer, _ := state.Tutor.Ask(context.Background(), chapter, question, tutor.AskOptions{
			Style:   style,
			History: history,
		})
		return answerMsg{text: answer}
	}
}

// suggest asks the tutor for practice questions about the chapter.
func (c *ChatScreen) suggest() tea.Cmd {
	if c.thinking {
		return nil
	}
	c.thinking = true

	state, chapter := c.state, c.state.Chapter()
	return func() tea.Msg {
		items, err := state.Tutor.SuggestQuestions(context.Background(), chapter, 3)
		return suggestionsMsg{items: items, err: err}
	}
}

func (c *ChatScreen) View(width, height int) string {
	bodyWidth := min(width-8, 90)
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	userStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Chat with your tutor") + "\n")
	b.WriteString(theme.Subtitle.Render(c.statusLine()) + "\n\n")

	turns := c.log.Current()
	// Show only what fits: the most recent turns.
	maxTurns := max(2, (height-8)/3)
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}
	for _, t := range turns {
		switch t.Role {
		case llm.RoleUser:
			b.WriteString(userStyle.Render("you: ") + t.Content + "\n")
		default:
			b.WriteString(tutorStyle.Render("tutor: "+t.Content) + "\n")
		}
	}

	if c.thinking {
		b.WriteString(theme.Hint.Render("thinking with chapter context…") + "\n")
	}

	if len(c.suggestions) > 0 {
		b.WriteString("\n" + theme.Hint.Render("Try asking:") + "\n")
		for _, q := range c.suggestions {
			b.WriteString(theme.Hint.Render("  • "+q) + "\n")
		}
	}
	if c.suggestNote != "" {
		b.WriteString("\n" + theme.Hint.Render(c.suggestNote) + "\n")
	}

	b.WriteString("\n" + c.input.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (c *ChatScreen) statusLine() string {
	historyLabel := "history on"
	if !c.useHistory {
		historyLabel = "history off"
	}
	archiveLabel := ""
	if n := len(c.log.Archives()); n > 0 {
		archiveLabel = fmt.Sprintf(" | %d archived", n)
	}
	return fmt.Sprintf("style: %s | %s%s", c.style, historyLabel, archiveLabel)
}

// KeyHints provides the footer hints for this screen.
func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Tab", Description: "Style"},
		{Key: "Ctrl+S", Description: "Suggest"},
		{Key: "Ctrl+N", Description: "New chat"},
		{Key: "Ctrl+L", Description: "Clear"},
		{Key: "Ctrl+H", Description: "History"},
		{Key: "Esc", Description: "Back"},
	}
}
