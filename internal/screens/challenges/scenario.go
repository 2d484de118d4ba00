package challenges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/challenge"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/layout"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// scenarioScreen presents a workplace scenario with a what-next decision.
// Wrong picks can be retried; the hint stays up once revealed.
type scenarioScreen struct {
	state    *session.State
	sess     *challenge.ScenarioSession
	selected int
	result   *challenge.ScenarioResult
}

var _ screen.Screen = (*scenarioScreen)(nil)

func newScenario(state *session.State) (screen.Screen, error) {
	chapter := state.Chapter()
	sess, err := challenge.NewScenarioSession(
		chapter, state.Catalog.Summary(chapter), state.Catalog.Pairs(chapter), state.RNG, state.Ledger)
	if err != nil {
		return nil, err
	}
	return &scenarioScreen{state: state, sess: sess}, nil
}

func (s *scenarioScreen) Title() string { return "Scenario" }

func (s *scenarioScreen) Init() tea.Cmd { return nil }

func (s *scenarioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if !s.sess.Answered() && s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if !s.sess.Answered() && s.selected < len(s.sess.Scenario().Options)-1 {
			s.selected++
		}
	case "enter":
		if !s.sess.Answered() {
			s.result = s.sess.Submit(s.sess.Scenario().Options[s.selected])
		}
	case "?":
		s.sess.ShowHint()
	case "n":
		if err := s.sess.NewScenario(); err == nil {
			s.selected = 0
			s.result = nil
		}
	}
	return s, nil
}

func (s *scenarioScreen) View(width, height int) string {
	sc := s.sess.Scenario()

	var b strings.Builder
	b.WriteString(theme.Title.Render(sc.Title) + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%s needs to: %s", sc.Actor, sc.Goal)) + "\n\n")

	steps := make([]string, 0, len(sc.SuccessSteps))
	for i, step := range sc.SuccessSteps {
		steps = append(steps, fmt.Sprintf("%d. %s", i+1, step))
	}
	b.WriteString(theme.Card.Render("Progress so far:\n"+strings.Join(steps, "\n")) + "\n\n")

	b.WriteString(theme.Subtitle.Render(sc.Question) + "\n\n")
	for i, opt := range sc.Options {
		prefix := "  "
		if i == s.selected && !s.sess.Answered() {
			prefix = "▸ "
		}
		line := prefix + opt
		switch {
		case s.sess.Answered() && opt == sc.CorrectOption:
			b.WriteString(theme.Correct.Render(line))
		case i == s.selected && !s.sess.Answered():
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.sess.HintShown() {
		b.WriteString(theme.Hint.Render("Hint: "+sc.Hint) + "\n")
	}

	switch {
	case s.result != nil && s.result.Correct:
		b.WriteString(theme.Correct.Render("Good call! That keeps the project on track."))
		if s.result.LevelUp != nil {
			b.WriteString("\n" + theme.Correct.Render(fmt.Sprintf("Level up! %d → %d", s.result.LevelUp.From, s.result.LevelUp.To)))
		}
		b.WriteString("\n" + theme.Hint.Render("press n for a new scenario"))
	case s.result != nil:
		b.WriteString(theme.Incorrect.Render("That stalls the work. Pick again."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints provides the footer hints for this screen.
func (s *scenarioScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Decide"},
		{Key: "?", Description: "Hint"},
		{Key: "n", Description: "New scenario"},
		{Key: "Esc", Description: "Back"},
	}
}
