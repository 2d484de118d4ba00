package challenges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/challenge"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/components"
	"github.com/sravani919/studyhall/internal/ui/layout"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// matchScreen drives the match-the-answers board. Each question slot
// cycles through the shared option pool; check grades all slots at once.
type matchScreen struct {
	state  *session.State
	board  *challenge.Match
	slot   int   // highlighted question slot
	choice []int // option-pool index per slot, -1 when unassigned
}

var _ screen.Screen = (*matchScreen)(nil)

func newMatch(state *session.State) (screen.Screen, error) {
	board, err := challenge.NewMatch(state.Catalog.Pairs(state.Chapter()), state.RNG, state.Ledger)
	if err != nil {
		return nil, err
	}
	m := &matchScreen{state: state, board: board}
	m.resetChoices()
	return m, nil
}

func (m *matchScreen) resetChoices() {
	m.choice = make([]int, len(m.board.Pairs()))
	for i := range m.choice {
		m.choice[i] = -1
	}
}

// cycle steps the highlighted slot's assignment through the option pool.
func (m *matchScreen) cycle(delta int) {
	n := len(m.board.Options())
	next := (m.choice[m.slot] + delta + n + 1) % (n + 1)
	m.choice[m.slot] = next - 1 // index n maps back to unassigned
	if m.choice[m.slot] >= 0 {
		m.board.Select(m.slot, m.board.Options()[m.choice[m.slot]])
	} else {
		m.board.Select(m.slot, "")
	}
}

func (m *matchScreen) Title() string { return "Match the Answers" }

func (m *matchScreen) Init() tea.Cmd { return nil }

func (m *matchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.board.Submitted() {
		if kmsg.String() == "r" {
			m.board.Restart()
			m.slot = 0
			m.resetChoices()
		}
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.slot > 0 {
			m.slot--
		}
	case "down", "j":
		if m.slot < len(m.board.Pairs())-1 {
			m.slot++
		}
	case "right", "l", "space", " ":
		m.cycle(1)
	case "left", "h":
		m.cycle(-1)
	case "enter":
		if m.ready() {
			m.board.Check()
		}
	}
	return m, nil
}

// ready reports whether every slot has an assignment.
func (m *matchScreen) ready() bool {
	for _, c := range m.choice {
		if c < 0 {
			return false
		}
	}
	return true
}

func (m *matchScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Match the Answers") + "\n\n")

	res := m.board.Result()
	for i, p := range m.board.Pairs() {
		marker := "  "
		if i == m.slot && res == nil {
			marker = "▸ "
		}
		sel := m.board.Selection(i)
		if sel == "" {
			sel = "(pick an answer)"
		}
		line := fmt.Sprintf("%s%d. %s\n     ↳ %s", marker, i+1, p.Question, sel)
		switch {
		case res != nil && res.PerSlot[i]:
			b.WriteString(theme.Correct.Render(line))
		case res != nil:
			b.WriteString(theme.Incorrect.Render(line) + "\n     " + theme.Hint.Render("answer: "+p.Answer))
		case i == m.slot:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n\n")
	}

	if res != nil {
		if res.Perfect {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Perfect board! %d/%d matched.", res.Score, len(m.board.Pairs()))))
			if res.LevelUp != nil {
				b.WriteString("\n" + theme.Correct.Render(fmt.Sprintf("Level up! %d → %d", res.LevelUp.From, res.LevelUp.To)))
			}
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("%d/%d matched. A perfect board earns the XP.", res.Score, len(m.board.Pairs()))))
		}
		b.WriteString("\n" + theme.Hint.Render("press r to reshuffle and try again"))
	} else {
		check := components.NewButton("Check answers", m.ready(), nil)
		b.WriteString(check.View() + "\n")
		b.WriteString(theme.Hint.Render("assign an answer to every question, then press enter"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints provides the footer hints for this screen.
func (m *matchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Slot"},
		{Key: "←→", Description: "Cycle answer"},
		{Key: "Enter", Description: "Check"},
		{Key: "Esc", Description: "Back"},
	}
}
