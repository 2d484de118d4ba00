package challenges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/challenge"
	"github.com/sravani919/studyhall/internal/progress"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/layout"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// flashcardsScreen drives the flashcard deck for one chapter.
type flashcardsScreen struct {
	state   *session.State
	deck    *challenge.Flashcards
	levelUp *progress.LevelUp
}

var _ screen.Screen = (*flashcardsScreen)(nil)

func newFlashcards(state *session.State) (screen.Screen, error) {
	deck, err := challenge.NewFlashcards(state.Catalog.Pairs(state.Chapter()), state.Ledger)
	if err != nil {
		return nil, err
	}
	return &flashcardsScreen{state: state, deck: deck}, nil
}

func (f *flashcardsScreen) Title() string { return "Flashcards" }

func (f *flashcardsScreen) Init() tea.Cmd { return nil }

func (f *flashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "space", " ":
		f.deck.Flip()
	case "y":
		if up := f.deck.MarkKnown(); up != nil {
			f.levelUp = up
		}
	case "n":
		f.deck.Skip()
	case "r":
		f.deck.Restart()
		f.levelUp = nil
	}
	return f, nil
}

func (f *flashcardsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Flashcards") + "\n\n")

	if f.deck.Finished() {
		b.WriteString(theme.Correct.Render("Deck complete!") + "\n\n")
		b.WriteString(theme.Hint.Render("press r to go through the deck again"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	pair, _ := f.deck.Card()
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("card %d of %d", f.deck.Index()+1, f.deck.Count())) + "\n\n")

	cardWidth := min(width-12, 70)
	if cardWidth < 20 {
		cardWidth = 20
	}
	card := lipgloss.NewStyle().Foreground(theme.Text).Width(cardWidth)

	b.WriteString(theme.Card.Render(card.Render("Q: "+pair.Question)) + "\n\n")
	if f.deck.Revealed() {
		b.WriteString(theme.Card.Render(card.Render("A: "+pair.Answer)) + "\n\n")
		b.WriteString(theme.Hint.Render("did you know it? y = yes (+XP), n = not yet"))
	} else {
		b.WriteString(theme.Hint.Render("press space to flip the card"))
	}

	if f.levelUp != nil {
		b.WriteString("\n\n" + theme.Correct.Render(fmt.Sprintf("Level up! %d → %d", f.levelUp.From, f.levelUp.To)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints provides the footer hints for this screen.
func (f *flashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "y/n", Description: "Known / skip"},
		{Key: "r", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}
