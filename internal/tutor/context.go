package tutor

import (
	"strings"

	"github.com/sravani919/studyhall/internal/catalog"
)

// maxContextChars caps the grounding context sent with each question.
const maxContextChars = 8000

// recentTurns is how many trailing conversation turns are included.
const recentTurns = 8

// buildContext assembles the grounding block: chapter summary, sample
// Q&A pairs, and the tail of the running conversation. Anything over the
// character cap is truncated with an ellipsis.
func buildContext(summary string, pairs []catalog.Pair, history []Turn) string {
	var pieces []string

	if s := strings.TrimSpace(summary); s != "" && s != catalog.NoSummary {
		pieces = append(pieces, "Chapter Summary:\n"+s)
	}

	var qa []string
	for _, p := range pairs {
		q := strings.TrimSpace(p.Question)
		a := strings.TrimSpace(p.Answer)
		if q != "" && a != "" {
			qa = append(qa, "Q: "+q+"\nA: "+a)
		}
	}
	if len(qa) > 0 {
		pieces = append(pieces, "Sample Q&A:\n"+strings.Join(qa, "\n\n"))
	}

	if len(history) > 0 {
		recent := history
		if len(recent) > recentTurns {
			recent = recent[len(recent)-recentTurns:]
		}
		var lines []string
		for _, t := range recent {
			if c := strings.TrimSpace(t.Content); c != "" {
				lines = append(lines, string(t.Role)+": "+c)
			}
		}
		if len(lines) > 0 {
			pieces = append(pieces, "Recent Conversation:\n"+strings.Join(lines, "\n"))
		}
	}

	ctx := strings.TrimSpace(strings.Join(pieces, "\n\n"))
	if len(ctx) > maxContextChars {
		ctx = ctx[:maxContextChars] + "…"
	}
	return ctx
}
