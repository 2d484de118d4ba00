// Package challenges holds the challenge center menu and the six
// challenge screens.
package challenges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/router"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/components"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// HubScreen is the challenge picker for the selected chapter.
type HubScreen struct {
	state *session.State
	menu  components.Menu
	err   string
}

var _ screen.Screen = (*HubScreen)(nil)

// New creates the challenge center for the session's selected chapter.
func New(state *session.State) *HubScreen {
	h := &HubScreen{state: state}

	open := func(build func() (screen.Screen, error)) func() tea.Cmd {
		return func() tea.Cmd {
			s, err := build()
			if err != nil {
				h.err = err.Error()
				return nil
			}
			h.err = ""
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "Flashcards", Action: open(func() (screen.Screen, error) { return newFlashcards(state) })},
		{Label: "MCQ Quiz", Action: open(func() (screen.Screen, error) { return newMCQ(state) })},
		{Label: "Fill in the Blank", Action: open(func() (screen.Screen, error) { return newFillBlank(state) })},
		{Label: "Match the Answers", Action: open(func() (screen.Screen, error) { return newMatch(state) })},
		{Label: "Timed Question", Action: open(func() (screen.Screen, error) { return newTimed(state) })},
		{Label: "Scenario (with Hint)", Action: open(func() (screen.Screen, error) { return newScenario(state) })},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HubScreen) Title() string { return "Challenge Center" }

func (h *HubScreen) Init() tea.Cmd { return nil }

func (h *HubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HubScreen) View(width, height int) string {
	title := theme.Title.Render("Challenge Center")
	sub := theme.Subtitle.Render(fmt.Sprintf(
		"Level %d | %d XP | pick a challenge to practice this chapter",
		h.state.Ledger.Level(), h.state.Ledger.XP()))

	parts := []string{title, sub, "", h.menu.View()}
	if h.err != "" {
		parts = append(parts, theme.Incorrect.Render(h.err))
	}

	content := strings.Join(parts, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
