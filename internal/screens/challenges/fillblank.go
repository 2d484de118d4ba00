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

// fillBlankScreen drives the fill-in-the-blank round: type the missing
// keyword, lose a life per wrong attempt, three lives for the round.
type fillBlankScreen struct {
	state  *session.State
	round  *challenge.FillBlank
	input  components.TextInput
	result *challenge.FillResult
}

var _ screen.Screen = (*fillBlankScreen)(nil)

func newFillBlank(state *session.State) (screen.Screen, error) {
	round, err := challenge.NewFillBlank(state.Catalog.Answers(state.Chapter()), state.RNG, state.Ledger)
	if err != nil {
		return nil, err
	}
	input := components.NewTextInput("type the missing word", false, 30)
	return &fillBlankScreen{state: state, round: round, input: input}, nil
}

func (f *fillBlankScreen) Title() string { return "Fill in the Blank" }

func (f *fillBlankScreen) Init() tea.Cmd { return nil }

func (f *fillBlankScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	if f.round.Failed() || f.round.Completed() {
		if kmsg.String() == "r" {
			f.round.Restart()
			f.result = nil
			f.input.Model.SetValue("")
		}
		return f, nil
	}

	if kmsg.String() == "enter" {
		// A solved item waits for enter before advancing; a reveal has
		// already moved the cursor, so enter just clears the message.
		if f.result != nil && f.result.Outcome != challenge.FillHint {
			if f.result.Outcome == challenge.FillCorrect {
				f.round.Advance()
			}
			f.result = nil
			f.input.Model.SetValue("")
			return f, nil
		}
		guess := strings.TrimSpace(f.input.Value())
		if guess == "" {
			return f, nil
		}
		f.result = f.round.Check(guess)
		if f.result != nil && f.result.Outcome == challenge.FillHint {
			f.input.Model.SetValue("")
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *fillBlankScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Fill in the Blank") + "\n\n")

	if f.round.Failed() {
		b.WriteString(theme.Incorrect.Render("Out of lives!") + "\n\n")
		b.WriteString(theme.Hint.Render("press r to try again"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}
	if f.round.Completed() {
		b.WriteString(theme.Correct.Render("Round complete, every blank filled!") + "\n\n")
		b.WriteString(theme.Hint.Render("press r for a fresh round"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"sentence %d of %d | lives %s", f.round.Cursor()+1, f.round.Total(), strings.Repeat("♥ ", f.round.Lives()))) + "\n\n")

	// A pending reveal hides the next sentence until enter.
	if f.result == nil || f.result.Outcome != challenge.FillRevealed {
		item, _ := f.round.Item()
		b.WriteString(theme.Card.Render(item.Sentence) + "\n\n")
		b.WriteString(f.input.View() + "\n")
	}

	if f.result != nil {
		b.WriteString("\n")
		switch f.result.Outcome {
		case challenge.FillCorrect:
			b.WriteString(theme.Correct.Render("Correct! +10 points"))
			if f.result.LevelUp != nil {
				b.WriteString("\n" + theme.Correct.Render(fmt.Sprintf("Level up! %d → %d", f.result.LevelUp.From, f.result.LevelUp.To)))
			}
			b.WriteString("\n" + theme.Hint.Render("press enter for the next sentence"))
		case challenge.FillHint:
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf(
				"Not quite. Hint: starts with %q, %d letters.", f.result.FirstLetter, f.result.Length)))
		case challenge.FillRevealed:
			b.WriteString(theme.Incorrect.Render("The word was: "+f.result.Keyword) + "\n")
			b.WriteString(theme.Hint.Render("press enter to continue"))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints provides the footer hints for this screen.
func (f *fillBlankScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check / next"},
		{Key: "Esc", Description: "Back"},
	}
}
