// Package home is the chapter picker: the learner chooses a chapter to
// study, views their progress, or quits.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/router"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/screens/dashboard"
	"github.com/sravani919/studyhall/internal/screens/modes"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/components"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// HomeScreen lists the chapters plus progress and exit entries.
type HomeScreen struct {
	state *session.State
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the session's catalog.
func New(state *session.State) *HomeScreen {
	chapters := state.Catalog.Chapters()

	items := make([]components.MenuItem, 0, len(chapters)+2)
	for _, key := range chapters {
		key := key
		items = append(items, components.MenuItem{
			Label: catalog.CleanTitle(key),
			Action: func() tea.Cmd {
				state.SetChapter(key)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: modes.New(state)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "My Progress",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(state)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{state: state, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Title() string { return "Chapters" }

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	greeting := theme.Title.Render(fmt.Sprintf("Hi %s, pick a chapter", h.state.Name()))
	sub := theme.Subtitle.Render("every chapter has a summary, stories, challenges, and a tutor")

	content := strings.Join([]string{greeting, sub, "", h.menu.View()}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
