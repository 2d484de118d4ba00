package challenges

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/challenge"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/components"
	"github.com/sravani919/studyhall/internal/ui/layout"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// timerTickMsg drives the one-second countdown redraw.
type timerTickMsg time.Time

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// timedScreen drives the beat-the-clock round. The window opens when a
// question first renders; answers past it are still graded but earn no XP.
type timedScreen struct {
	state  *session.State
	round  *challenge.Timed
	picker components.MultiChoice
}

var _ screen.Screen = (*timedScreen)(nil)

func newTimed(state *session.State) (screen.Screen, error) {
	round, err := challenge.NewTimed(state.Catalog.Pairs(state.Chapter()), state.RNG, state.Ledger)
	if err != nil {
		return nil, err
	}
	t := &timedScreen{state: state, round: round}
	t.loadQuestion()
	return t, nil
}

func (t *timedScreen) loadQuestion() {
	question, ok := t.round.Question()
	if !ok {
		return
	}
	t.round.StartTimer()
	t.picker = components.NewMultiChoice(question, t.round.Options(), -1)
}

func (t *timedScreen) Title() string { return "Timed Question" }

func (t *timedScreen) Init() tea.Cmd { return tickCmd() }

func (t *timedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if t.round.Finished() {
			return t, nil
		}
		return t, tickCmd()
	case tea.KeyMsg:
		if t.round.Finished() {
			if msg.String() == "r" {
				t.round.Restart()
				t.loadQuestion()
				return t, tickCmd()
			}
			return t, nil
		}
		if msg.String() == "enter" {
			if t.round.Feedback() == nil {
				options := t.round.Options()
				t.round.Submit(options[t.picker.Selected])
				fb := t.round.Feedback()
				t.picker.Submitted = true
				t.picker.ChosenIndex = t.picker.Selected
				for i, o := range options {
					if o == fb.Answer {
						t.picker.CorrectIndex = i
					}
				}
			} else {
				t.round.Advance()
				t.loadQuestion()
			}
			return t, nil
		}
		var cmd tea.Cmd
		t.picker, cmd = t.picker.Update(msg)
		return t, cmd
	}
	return t, nil
}

func (t *timedScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Timed Question") + "\n\n")

	if t.round.Finished() {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Round complete! Score: %d", t.round.Score())) + "\n\n")
		b.WriteString(theme.Hint.Render("press r for a fresh round"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	remaining := int(t.round.Remaining().Round(time.Second) / time.Second)
	timerStyle := theme.Subtitle
	if remaining <= 5 {
		timerStyle = theme.Incorrect
	}
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"question %d of %d | score %d | ", t.round.Index()+1, t.round.Total(), t.round.Score())))
	b.WriteString(timerStyle.Render(fmt.Sprintf("⏱ %ds", remaining)) + "\n\n")
	b.WriteString(t.picker.View())

	if fb := t.round.Feedback(); fb != nil {
		b.WriteString("\n")
		secs := fb.Elapsed.Round(time.Second) / time.Second
		switch fb.Verdict {
		case challenge.TimedCorrect:
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct in %ds! +15 points", secs)))
		case challenge.TimedLate:
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Right answer, but %ds is over the clock. No XP this time.", secs)))
		case challenge.TimedWrong:
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
func (t *timedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Submit / next"},
		{Key: "Esc", Description: "Back"},
	}
}
