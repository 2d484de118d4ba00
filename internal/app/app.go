package app

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/llm"
	"github.com/sravani919/studyhall/internal/router"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/screens/home"
	"github.com/sravani919/studyhall/internal/screens/welcome"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/tutor"
	"github.com/sravani919/studyhall/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Catalog *catalog.Catalog
	Tutor   *tutor.Service
	// Usage is the LLM usage recorder shown on the dashboard; may be nil.
	Usage *llm.MemoryUsageRecorder
	// Seed pins the RNG for reproducible rounds; zero means time-based.
	Seed uint64
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	state  *session.State
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model, starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	state := session.New(opts.Catalog, opts.Tutor, rng)
	state.Usage = opts.Usage

	welcomeScreen := welcome.New(state, func() screen.Screen {
		return home.New(state)
	})
	return AppModel{
		state:  state,
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.state.Ledger.Level(), m.state.Ledger.XP(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
		if m.router.Depth() > 1 {
			footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
