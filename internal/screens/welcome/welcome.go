// Package welcome is the first screen: it asks for the learner's name
// and hands off to the home screen.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/router"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/components"
	"github.com/sravani919/studyhall/internal/ui/layout"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// WelcomeScreen collects the learner's name.
type WelcomeScreen struct {
	state       *session.State
	input       components.TextInput
	homeFactory func() screen.Screen
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen. homeFactory builds the screen shown
// once a name is entered.
func New(state *session.State, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		state:       state,
		input:       components.NewTextInput("your name", false, 24),
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string { return "Welcome" }

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			return w, nil
		}
		w.state.SetName(name)
		home := w.homeFactory()
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	title := theme.Title.Render("Studyhall")
	tagline := theme.Subtitle.Render("your terminal textbook tutor")
	prompt := theme.Body.Render("First things first, what should I call you?")
	hint := theme.Hint.Render("type your name and press enter")

	content := strings.Join([]string{
		title, tagline, "", prompt, "", w.input.View(), "", hint,
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints provides the footer hints for this screen.
func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}
