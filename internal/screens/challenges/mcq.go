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

// mcqScreen drives the multiple-choice quiz round.
type mcqScreen struct {
	state  *session.State
	quiz   *challenge.MCQ
	picker components.MultiChoice
}

var _ screen.Screen = (*mcqScreen)(nil)

func newMCQ(state *session.State) (screen.Screen, error) {
	quiz, err := challenge.NewMCQ(state.Catalog.Pairs(state.Chapter()), state.RNG, state.Ledger)
	if err != nil {
		return nil, err
	}
	m := &mcqScreen{state: state, quiz: quiz}
	m.loadQuestion()
	return m, nil
}

// loadQuestion rebuilds the picker from the engine's frozen options.
func (m *mcqScreen) loadQuestion() {
	question, ok := m.quiz.Question()
	if !ok {
		return
	}
	m.picker = components.NewMultiChoice(question, m.quiz.Options(), -1)
}

func (m *mcqScreen) Title() string { return "MCQ Quiz" }

func (m *mcqScreen) Init() tea.Cmd { return nil }

func (m *mcqScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.quiz.Finished() {
		if kmsg.String() == "r" {
			m.quiz.Restart()
			m.loadQuestion()
		}
		return m, nil
	}

	switch kmsg.String() {
	case "enter":
		if m.quiz.Feedback() == nil {
			options := m.quiz.Options()
			m.quiz.Submit(options[m.picker.Selected])
			fb := m.quiz.Feedback()
			m.picker.Submitted = true
			m.picker.ChosenIndex = m.picker.Selected
			for i, o := range options {
				if o == fb.Answer {
					m.picker.CorrectIndex = i
				}
			}
		} else {
			m.quiz.Advance()
			m.loadQuestion()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *mcqScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("MCQ Quiz") + "\n\n")

	if m.quiz.Finished() {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Round complete! Score: %d / %d", m.quiz.Score(), m.quiz.MaxScore())) + "\n\n")
		b.WriteString(theme.Hint.Render("press r for a fresh round"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"question %d of %d | score %d", m.quiz.Index()+1, m.quiz.Total(), m.quiz.Score())) + "\n\n")
	b.WriteString(m.picker.View())

	if fb := m.quiz.Feedback(); fb != nil {
		b.WriteString("\n")
		if fb.Correct {
			b.WriteString(theme.Correct.Render("Correct! +10 points"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite. Answer: " + fb.Answer))
		}
		if fb.LevelUp != nil {
			b.WriteString("\n" + theme.Correct.Render(fmt.Sprintf("Level up! %d → %d", fb.LevelUp.From, fb.LevelUp.To)))
		}
		b.WriteString("\n" + theme.Hint.Render("press enter for the next question"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints provides the footer hints for this screen.
func (m *mcqScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Submit / next"},
		{Key: "Esc", Description: "Back"},
	}
}
