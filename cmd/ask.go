package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/llm"
	"github.com/sravani919/studyhall/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the tutor questions about a chapter (no TUI)",
	Long: `Ask the tutor questions grounded in one chapter.

With a question argument, answers once and exits. Without one, reads
questions from stdin until EOF. Works offline too: without an API key the
tutor answers with the closest Q&A match from the chapter.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("chapter", "", "Chapter key or title (required)")
	askCmd.Flags().String("style", "concise", "Answer style: concise, steps, or examples")
	askCmd.Flags().Bool("usage", false, "Print token usage and estimated cost on exit")
	_ = askCmd.MarkFlagRequired("chapter")
}

func runAsk(cmd *cobra.Command, args []string) error {
	chapterVal, _ := cmd.Flags().GetString("chapter")
	styleVal, _ := cmd.Flags().GetString("style")
	showUsage, _ := cmd.Flags().GetBool("usage")

	cat, err := resolveCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	chapter, err := resolveChapter(cat, chapterVal)
	if err != nil {
		return err
	}

	var style tutor.Style
	switch strings.ToLower(styleVal) {
	case "concise":
		style = tutor.StyleConcise
	case "steps":
		style = tutor.StyleStepByStep
	case "examples":
		style = tutor.StyleExamplesFirst
	default:
		return fmt.Errorf("invalid style %q: must be concise, steps, or examples", styleVal)
	}

	ctx := cmd.Context()
	recorder := llm.NewMemoryUsageRecorder()
	provider, err := llm.NewProviderFromEnv(ctx, recorder)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured; answering from the chapter's Q&A pairs.")
		provider = nil
	}
	svc := tutor.New(provider, cat)

	// One-shot: answer the positional question and exit.
	if len(args) == 1 {
		answer, err := svc.Ask(ctx, chapter, args[0], tutor.AskOptions{Style: style})
		if err != nil {
			fmt.Fprintln(os.Stderr, "tutor:", err)
		}
		fmt.Println(answer)
		if showUsage {
			printUsage(recorder.Summary())
		}
		return nil
	}

	fmt.Printf("Chapter: %s\n", catalog.CleanTitle(chapter))
	fmt.Println("Type a question and press enter. Ctrl+D to quit.")

	var history []tutor.Turn
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		answer, err := svc.Ask(ctx, chapter, question, tutor.AskOptions{
			Style:   style,
			History: history,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "tutor:", err)
		}
		fmt.Println(answer)

		history = append(history,
			tutor.Turn{Role: llm.RoleUser, Content: question},
			tutor.Turn{Role: llm.RoleAssistant, Content: answer},
		)
	}

	if showUsage {
		printUsage(recorder.Summary())
	}
	return scanner.Err()
}

// resolveChapter finds a chapter by key first, then by title fallback.
func resolveChapter(cat *catalog.Catalog, val string) (string, error) {
	for _, key := range cat.Chapters() {
		if key == val {
			return key, nil
		}
	}
	var matches []string
	for _, key := range cat.Chapters() {
		if strings.EqualFold(catalog.CleanTitle(key), strings.TrimSpace(val)) {
			matches = append(matches, key)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no chapter found for %q (try 'studyhall chapters')", val)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("multiple chapters match %q (%s); use the exact key",
			val, strings.Join(matches, ", "))
	}
}

func printUsage(s llm.UsageSummary) {
	fmt.Println()
	fmt.Println(strings.Repeat("─", 48))
	fmt.Printf("Requests:  %d (%d failed)\n", s.Requests, s.Failures)
	fmt.Printf("Tokens:    %d in / %d out\n", s.InputTokens, s.OutputTokens)
	if s.UnpricedRequests > 0 {
		fmt.Printf("Est. cost: %s (partial; %d requests unpriced)\n",
			formatCost(s.EstimatedCostUSD), s.UnpricedRequests)
	} else {
		fmt.Printf("Est. cost: %s\n", formatCost(s.EstimatedCostUSD))
	}
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
