// Package story renders a short chapter-themed workplace story ending
// with a reflection prompt.
package story

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/casegen"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/layout"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// StoryScreen shows a generated story, toggling the chapter summary.
type StoryScreen struct {
	state       *session.State
	story       *casegen.Story
	showSummary bool
}

var _ screen.Screen = (*StoryScreen)(nil)

// New generates a story for the session's selected chapter.
func New(state *session.State) *StoryScreen {
	return &StoryScreen{state: state, story: generate(state)}
}

func generate(state *session.State) *casegen.Story {
	key := state.Chapter()
	return casegen.NewStory(key, state.Catalog.Summary(key), state.RNG)
}

func (s *StoryScreen) Title() string { return "Storytelling" }

func (s *StoryScreen) Init() tea.Cmd { return nil }

func (s *StoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "r":
		s.story = generate(s.state)
		s.showSummary = false
	case "s":
		s.showSummary = !s.showSummary
	}
	return s, nil
}

func (s *StoryScreen) View(width, height int) string {
	bodyWidth := min(width-8, 84)
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Storytelling: "+s.story.Chapter) + "\n\n")
	b.WriteString(body.Render(s.story.Paragraphs[0]) + "\n\n")
	b.WriteString(body.Render(s.story.Paragraphs[1]) + "\n")
	for _, step := range s.story.Steps {
		b.WriteString(body.Render("• "+step) + "\n")
	}
	b.WriteString("\n" + body.Render(s.story.Paragraphs[2]) + "\n\n")
	b.WriteString(body.Render(s.story.Paragraphs[3]) + "\n\n")
	b.WriteString(theme.Hint.Render("Reflection: "+s.story.Reflection) + "\n")

	if s.showSummary {
		b.WriteString("\n" + theme.Card.Render(body.Render(s.story.Summary)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints provides the footer hints for this screen.
func (s *StoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "New story"},
		{Key: "s", Description: "Toggle summary"},
		{Key: "Esc", Description: "Back"},
	}
}
