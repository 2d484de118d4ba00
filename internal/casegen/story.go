package casegen

import (
	"fmt"
	"math/rand/v2"

	"github.com/sravani919/studyhall/internal/catalog"
)

type protagonist struct {
	name string
	role string
}

var protagonists = []protagonist{
	{"Mia", "data analyst"},
	{"Alex", "junior accountant"},
	{"Jordan", "IT coordinator"},
	{"Sophia", "project manager"},
	{"Leo", "business intelligence intern"},
}

// Story is a short workplace narrative themed on a chapter, ending with
// a reflection prompt.
type Story struct {
	Chapter    string
	Name       string
	Role       string
	Paragraphs []string
	Steps      []string
	Reflection string
	Summary    string
}

// NewStory generates a story for the chapter with a protagonist drawn
// from a fixed pool.
func NewStory(chapterKey, summary string, rng *rand.Rand) *Story {
	title := catalog.CleanTitle(chapterKey)
	p := protagonists[rng.IntN(len(protagonists))]

	return &Story{
		Chapter: title,
		Name:    p.name,
		Role:    p.role,
		Paragraphs: []string{
			fmt.Sprintf(
				"%s works as %s at a mid-sized company. Recently, their manager asked them to improve "+
					"how the team works with %s. At first, %s felt overwhelmed: there were long documents, "+
					"spreadsheets everywhere, and no clear structure.", p.name, p.role, title, p.name),
			fmt.Sprintf("After reading the key ideas from this chapter, %s starts with small steps:", p.name),
			"Soon, meetings become shorter and decisions become clearer. Instead of arguing about " +
				"who has the right file, the team opens a shared view and focuses on the actual problem.",
			fmt.Sprintf(
				"By the end of the week, %s realizes that %s isn't just theory. It's a toolkit for "+
					"making everyday work less chaotic.", p.name, title),
		},
		Steps: []string{
			"They identify where information lives today.",
			"They apply one concept from the chapter to clean things up.",
			"They build a simple example the whole team can understand.",
		},
		Reflection: "Based on this story and the chapter summary, how could you apply one idea " +
			"from this chapter in your own context?",
		Summary: summary,
	}
}
