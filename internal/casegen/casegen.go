// Package casegen builds the narrative study modes: a templated
// business case and a short workplace story, both themed on a chapter.
package casegen

import (
	"fmt"
	"math/rand/v2"

	"github.com/sravani919/studyhall/internal/catalog"
)

var companies = []string{
	"AlphaCorp",
	"Beta Enterprises",
	"Gamma Solutions",
	"Delta Analytics",
	"Nova Systems",
}

// BusinessCase is a chapter-themed mini case study.
type BusinessCase struct {
	Chapter          string
	Company          string
	Summary          string
	ExecutiveSummary string
	Problem          string
	Importance       string
	Solution         string
	Objectives       []string
	Financials       string
	Conclusion       string
}

// NewBusinessCase generates a case for the chapter. The company is drawn
// from a fixed pool; everything else is templated on the cleaned title.
func NewBusinessCase(chapterKey, summary string, rng *rand.Rand) *BusinessCase {
	title := catalog.CleanTitle(chapterKey)
	company := companies[rng.IntN(len(companies))]

	return &BusinessCase{
		Chapter: title,
		Company: company,
		Summary: summary,
		ExecutiveSummary: fmt.Sprintf(
			"%s is struggling to properly apply %s in their day-to-day work. "+
				"Teams rely on manual processes and outdated tools, which slows decisions and increases errors. "+
				"This case explores how adopting the ideas from %q can improve accuracy, collaboration, "+
				"and data-driven decision making.", company, title, title),
		Problem: fmt.Sprintf(
			"Managers at %s receive reports that are inconsistent, hard to interpret, "+
				"and often delivered too late. There is no standard way to store, retrieve, or analyze information.", company),
		Importance: "If this continues, the company risks lost revenue, poor customer experience, " +
			"and low trust in internal data. Modern, structured approaches are needed.",
		Solution: fmt.Sprintf(
			"The operations team proposes a pilot project where a small group adopts the concepts from %q. "+
				"They define clear data structures, automate repetitive steps, and train staff on best practices.", title),
		Objectives: []string{
			fmt.Sprintf("Reduce manual work related to %s by at least 40%%.", title),
			"Increase accuracy of internal reports and dashboards.",
			"Make it easier for non-technical staff to understand key results.",
			"Create a repeatable workflow that can be scaled to other teams.",
		},
		Financials: "The pilot requires an up-front investment of $50,000 in training and tooling, " +
			"but is expected to save around $80,000 per year by reducing rework and delays.",
		Conclusion: fmt.Sprintf(
			"If the pilot succeeds, %s can roll out the new approach across departments, "+
				"building a culture of data-driven decision making.", company),
	}
}
