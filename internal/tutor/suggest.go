package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sravani919/studyhall/internal/llm"
)

// SuggestionsSchema defines the JSON schema for practice-question
// suggestions.
var SuggestionsSchema = &llm.Schema{
	Name:        "practice-questions",
	Description: "A short list of practice questions for a textbook chapter",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    1,
				"description": "Open-ended practice questions a learner could ask about this chapter",
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

const suggestMaxTokens = 400

// SuggestQuestions asks the provider for n practice questions grounded
// in the chapter content. Requires a configured provider.
func (s *Service) SuggestQuestions(ctx context.Context, chapterKey string, n int) ([]string, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	if n <= 0 {
		n = 3
	}

	ctx = llm.WithPurpose(ctx, "question-suggest")

	grounding := buildContext(s.catalog.Summary(chapterKey), s.catalog.Pairs(chapterKey), nil)
	prompt := fmt.Sprintf(
		"Based on the chapter content below, propose %d practice questions a learner should be able to answer. "+
			"Keep each question to one sentence.\n\nContext:\n%s", n, grounding)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    "You write practice questions for a textbook tutor.",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    SuggestionsSchema,
		MaxTokens: suggestMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("suggesting questions: %w", err)
	}

	var out struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parsing suggestions: %w", err)
	}

	var questions []string
	for _, q := range out.Questions {
		if q = strings.TrimSpace(q); q != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) > n {
		questions = questions[:n]
	}
	return questions, nil
}
