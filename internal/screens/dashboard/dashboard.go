// Package dashboard shows the learner's XP, level, per-challenge
// breakdown, and recent activity.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sravani919/studyhall/internal/progress"
	"github.com/sravani919/studyhall/internal/screen"
	"github.com/sravani919/studyhall/internal/session"
	"github.com/sravani919/studyhall/internal/ui/components"
	"github.com/sravani919/studyhall/internal/ui/theme"
)

// DashboardScreen renders the progress dashboard.
type DashboardScreen struct {
	state *session.State
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard screen.
func New(state *session.State) *DashboardScreen {
	return &DashboardScreen{state: state}
}

func (d *DashboardScreen) Title() string { return "My Progress" }

func (d *DashboardScreen) Init() tea.Cmd { return nil }

func (d *DashboardScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	dash := d.state.Ledger.Dashboard()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Your Progress & XP Overview") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Level %d   %d XP   %d challenges completed", dash.Level, dash.XP, dash.Completed)) + "\n\n")

	// Progress toward the next level.
	next := d.state.Ledger.NextLevelXP()
	pct := 0.0
	if next > 0 {
		pct = float64(dash.XP) / float64(next)
		if pct > 1 {
			pct = 1
		}
	}
	bar := components.NewProgressBar(fmt.Sprintf("Level %d", dash.Level+1), pct, true, min(width-12, 60))
	b.WriteString(bar.View() + "\n\n")

	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	b.WriteString(heading.Render("XP by challenge type") + "\n")
	for _, kind := range progress.AllKinds() {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %-20s %d XP", kind.String(), dash.ByKind[kind])) + "\n")
	}

	if d.state.Usage != nil {
		if sum := d.state.Usage.Summary(); sum.Requests > 0 {
			b.WriteString("\n" + heading.Render("Tutor usage this session") + "\n")
			line := fmt.Sprintf("  %d requests   %d in / %d out tokens   ~$%.4f",
				sum.Requests, sum.InputTokens, sum.OutputTokens, sum.EstimatedCostUSD)
			b.WriteString(theme.Body.Render(line) + "\n")
		}
	}

	if len(dash.Recent) > 0 {
		b.WriteString("\n" + heading.Render("Recent activity") + "\n")
		for _, e := range dash.Recent {
			b.WriteString(theme.Hint.Render("  "+e.Display()) + "\n")
		}
	} else {
		b.WriteString("\n" + theme.Hint.Render("No challenges completed yet. Try one from the chapter menu."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
