// Package modes is the per-chapter learning mode menu: summary,
// business case, storytelling, challenges, tutor chat, and progress.
package modes

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/router"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/screens/casestudy"
	"github.com/sravani919/studyhall/internal/screens/challenges"
	"github.com/sravani919/studyhall/internal/screens/chat"
	"github.com/sravani919/studyhall/internal/screens/dashboard"
	"github.com/sravani919/studyhall/internal/screens/story"
	"github.com/sravani919/studyhall/internal/screens/summary"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/components"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// ModesScreen is the learning mode menu for the selected chapter.
type ModesScreen struct {
	state *session.State
	menu  components.Menu
}

var _ screen.Screen = (*ModesScreen)(nil)

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// New creates the mode menu for the session's selected chapter.
func New(state *session.State) *ModesScreen {
	items := []components.MenuItem{
		{Label: "Summary", Action: func() tea.Cmd { return push(summary.New(state)) }},
		{Label: "Business Case", Action: func() tea.Cmd { return push(casestudy.New(state)) }},
		{Label: "Storytelling", Action: func() tea.Cmd { return push(story.New(state)) }},
		{Label: "Challenges", Action: func() tea.Cmd { return push(challenges.New(state)) }},
		{Label: "Ask the Tutor", Action: func() tea.Cmd { return push(chat.New(state)) }},
		{Label: "My Progress", Action: func() tea.Cmd { return push(dashboard.New(state)) }},
	}
	return &ModesScreen{state: state, menu: components.NewMenu(items)}
}

func (m *ModesScreen) Title() string {
	return catalog.CleanTitle(m.state.Chapter())
}

func (m *ModesScreen) Init() tea.Cmd { return nil }

func (m *ModesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *ModesScreen) View(width, height int) string {
	title := theme.Title.Render(catalog.CleanTitle(m.state.Chapter()))
	sub := theme.Subtitle.Render("how would you like to learn this chapter?")

	content := strings.Join([]string{title, sub, "", m.menu.View()}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
