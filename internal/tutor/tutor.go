// Package tutor answers learner questions with chapter-grounded LLM
// calls, falling back to a similarity lookup over the stored Q&A pairs
// when no provider is configured.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/llm"
)

// Style selects the tutor's answer register.
type Style int

const (
	StyleConcise Style = iota
	StyleStepByStep
	StyleExamplesFirst
)

// String returns the style label shown in the chat screen.
func (s Style) String() string {
	switch s {
	case StyleStepByStep:
		return "Step-by-step (brief)"
	case StyleExamplesFirst:
		return "Examples first"
	default:
		return "Concise (default)"
	}
}

// AllStyles lists the styles in menu order.
func AllStyles() []Style {
	return []Style{StyleConcise, StyleStepByStep, StyleExamplesFirst}
}

func (s Style) preamble() string {
	switch s {
	case StyleStepByStep:
		return "You are a textbook tutor. Provide a brief, step-by-step explanation (3-6 steps) " +
			"grounded in the chapter context (and history if enabled). " +
			"If unsure, say so and point to a likely section."
	case StyleExamplesFirst:
		return "You are a textbook tutor. Start with a simple real-world example, then explain the concept succinctly. " +
			"Use the chapter context (and history if enabled). If unsure, say so."
	default:
		return "You are a helpful textbook tutor. " +
			"Answer clearly and concisely in 4-8 sentences. " +
			"Use the provided chapter context and (optionally) the conversation history. " +
			"If the answer is not in the context, say you're unsure and suggest where to look."
	}
}

// Fixed replies for failure paths. The chat never surfaces raw errors.
const (
	emptyQuestionReply = "Please ask a question."
	rateLimitReply     = "I'm hitting request limits right now. Please try again in a few seconds."
	unavailableReply   = "Sorry, I couldn't generate an answer right now. Please try again."
)

const answerMaxTokens = 500

// Service answers questions about a chapter.
type Service struct {
	provider llm.Provider
	catalog  *catalog.Catalog
}

// New creates a tutor over the catalog. provider may be nil; the tutor
// then answers from the stored pairs only.
func New(provider llm.Provider, cat *catalog.Catalog) *Service {
	return &Service{provider: provider, catalog: cat}
}

// Online reports whether an LLM provider is configured.
func (s *Service) Online() bool { return s.provider != nil }

// AskOptions tunes a single Ask call.
type AskOptions struct {
	Style Style

	// History is the running conversation to ground the answer in.
	// Nil means answer from chapter content alone.
	History []Turn

	Temperature float64
}

// Ask answers the learner's question, grounded in the chapter. The
// returned text is always presentable: provider failures come back as a
// fixed apology alongside the error, so callers can log the error and
// still render the reply.
func (s *Service) Ask(ctx context.Context, chapterKey, question string, opts AskOptions) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return emptyQuestionReply, nil
	}

	if s.provider == nil {
		return s.offlineAnswer(chapterKey, question), nil
	}

	ctx = llm.WithPurpose(ctx, "tutor-chat")

	grounding := buildContext(s.catalog.Summary(chapterKey), s.catalog.Pairs(chapterKey), opts.History)
	prompt := "Below is relevant textbook content and any previous discussion.\n" +
		"Use this to answer the student's question helpfully and with clarity. " +
		"Prefer short, concrete examples.\n\n" +
		"Context:\n" + grounding + "\n\n" +
		"Question: " + question

	temp := opts.Temperature
	if temp == 0 {
		temp = 0.4
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      opts.Style.preamble(),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   answerMaxTokens,
		Temperature: temp,
	})
	if err != nil {
		var rl *llm.ErrRateLimit
		if errors.As(err, &rl) {
			return rateLimitReply, err
		}
		return unavailableReply, err
	}

	var answer string
	if uerr := json.Unmarshal(resp.Content, &answer); uerr != nil {
		answer = string(resp.Content)
	}
	return strings.TrimSpace(answer), nil
}

// offlineAnswer serves the closest stored answer for the chapter.
func (s *Service) offlineAnswer(chapterKey, question string) string {
	pair, ok := BestMatch(question, s.catalog.Pairs(chapterKey))
	if !ok {
		return "This chapter has no stored answers yet. Pick another chapter or configure an LLM provider."
	}
	return "Closest match from this chapter:\n\nQ: " + pair.Question + "\nA: " + pair.Answer
}
