// Package casestudy renders a chapter-themed business case, with a key
// to regenerate it.
package casestudy

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/casegen"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/layout"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// CaseStudyScreen shows a generated business case.
type CaseStudyScreen struct {
	state *session.State
	box   *casegen.BusinessCase
}

var _ screen.Screen = (*CaseStudyScreen)(nil)

// New generates a case for the session's selected chapter.
func New(state *session.State) *CaseStudyScreen {
	return &CaseStudyScreen{state: state, box: generate(state)}
}

func generate(state *session.State) *casegen.BusinessCase {
	key := state.Chapter()
	return casegen.NewBusinessCase(key, state.Catalog.Summary(key), state.RNG)
}

func (c *CaseStudyScreen) Title() string { return "Business Case" }

func (c *CaseStudyScreen) Init() tea.Cmd { return nil }

func (c *CaseStudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "r" {
		c.box = generate(c.state)
	}
	return c, nil
}

func (c *CaseStudyScreen) View(width, height int) string {
	bodyWidth := min(width-8, 84)
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth)
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Real-World Business Scenario: "+c.box.Chapter) + "\n\n")
	b.WriteString(body.Render(c.box.ExecutiveSummary) + "\n\n")
	b.WriteString(heading.Render("Problem") + "\n")
	b.WriteString(body.Render(c.box.Problem) + "\n\n")
	b.WriteString(heading.Render("Why this matters") + "\n")
	b.WriteString(body.Render(c.box.Importance) + "\n\n")
	b.WriteString(heading.Render("Proposed approach") + "\n")
	b.WriteString(body.Render(c.box.Solution) + "\n\n")
	b.WriteString(heading.Render("Objectives") + "\n")
	for _, obj := range c.box.Objectives {
		b.WriteString(body.Render("• "+obj) + "\n")
	}
	b.WriteString("\n" + heading.Render("Financial snapshot") + "\n")
	b.WriteString(body.Render(c.box.Financials) + "\n\n")
	b.WriteString(heading.Render("Conclusion") + "\n")
	b.WriteString(body.Render(c.box.Conclusion))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints provides the footer hints for this screen.
func (c *CaseStudyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "New case"},
		{Key: "Esc", Description: "Back"},
	}
}
