// Package summary shows the chapter's summary text.
package summary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// SummaryScreen renders the chapter summary.
type SummaryScreen struct {
	state *session.State
}

var _ screen.Screen = (*SummaryScreen)(nil)

// New creates a summary screen for the session's selected chapter.
func New(state *session.State) *SummaryScreen {
	return &SummaryScreen{state: state}
}

func (s *SummaryScreen) Title() string { return "Summary" }

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	key := s.state.Chapter()
	title := theme.Title.Render(catalog.CleanTitle(key))

	bodyWidth := min(width-8, 80)
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(bodyWidth).
		Render(s.state.Catalog.Summary(key))

	hint := theme.Hint.Render("press esc to go back")

	content := strings.Join([]string{title, "", theme.Card.Render(body), "", hint}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
