// Package catalog supplies read-only chapter content: per chapter key, a
// summary plus paired question/answer lists. Challenge sessions and the
// chat tutor treat it as an external collaborator and never mutate it.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// MaxPairs caps how many question/answer pairs a chapter exposes.
const MaxPairs = 5

// NoSummary is returned for chapters without summary text.
const NoSummary = "No summary available."

//go:embed dataset/chapters.json
var defaultDataset []byte

// Pair is one question with its answer.
type Pair struct {
	Question string
	Answer   string
}

// Chapter holds the content for one chapter key.
type Chapter struct {
	Key       string
	Summary   string
	Questions []string
	Answers   []string
}

// Catalog is the loaded chapter dataset.
type Catalog struct {
	chapters map[string]Chapter
	keys     []string
}

// datasetFile is the on-disk JSON shape.
type datasetFile struct {
	Chapters []chapterRecord `json:"chapters"`
}

type chapterRecord struct {
	Key       string   `json:"key"`
	Summary   string   `json:"summary"`
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
}

// Load parses, validates, and ingests a chapter dataset.
// Question/answer lists are repaired to equal length (truncated to the
// shorter), capped at MaxPairs, and answers are cleaned of question echo.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	if err := validateDataset(raw); err != nil {
		return nil, err
	}

	var file datasetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	c := &Catalog{chapters: make(map[string]Chapter, len(file.Chapters))}
	for _, rec := range file.Chapters {
		c.chapters[rec.Key] = ingest(rec)
		c.keys = append(c.keys, rec.Key)
	}
	sort.Strings(c.keys)

	return c, nil
}

// LoadFile loads a dataset from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default loads the embedded chapter dataset.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultDataset))
}

// Open resolves the dataset in priority order: explicit path, the
// STUDYHALL_DATASET env var, then the embedded default.
func Open(path string) (*Catalog, error) {
	if path == "" {
		path = os.Getenv("STUDYHALL_DATASET")
	}
	if path != "" {
		return LoadFile(path)
	}
	return Default()
}

// ingest applies the loader heuristics to one raw chapter record.
func ingest(rec chapterRecord) Chapter {
	n := min(len(rec.Questions), len(rec.Answers))
	if n > MaxPairs {
		n = MaxPairs
	}

	questions := make([]string, n)
	answers := make([]string, n)
	for i := range n {
		questions[i] = rec.Questions[i]
		answers[i] = CleanAnswer(rec.Questions[i], rec.Answers[i])
	}

	summary := rec.Summary
	if summary == "" {
		summary = NoSummary
	}

	return Chapter{
		Key:       rec.Key,
		Summary:   summary,
		Questions: questions,
		Answers:   answers,
	}
}

// Chapters returns all chapter keys in sorted order.
func (c *Catalog) Chapters() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Summary returns the chapter's summary text, or NoSummary when the key
// is unknown.
func (c *Catalog) Summary(key string) string {
	ch, ok := c.chapters[key]
	if !ok {
		return NoSummary
	}
	return ch.Summary
}

// Questions returns the chapter's ordered question list (empty for
// unknown keys).
func (c *Catalog) Questions(key string) []string {
	return c.chapters[key].Questions
}

// Answers returns the chapter's ordered answer list, parallel to
// Questions (empty for unknown keys).
func (c *Catalog) Answers(key string) []string {
	return c.chapters[key].Answers
}

// Pairs zips the chapter's questions and answers.
func (c *Catalog) Pairs(key string) []Pair {
	ch := c.chapters[key]
	pairs := make([]Pair, len(ch.Questions))
	for i := range ch.Questions {
		pairs[i] = Pair{Question: ch.Questions[i], Answer: ch.Answers[i]}
	}
	return pairs
}
