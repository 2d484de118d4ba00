package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sravani919/studyhall/internal/app"
	"github.com/sravani919/studyhall/internal/llm"
	"github.com/sravani919/studyhall/internal/tutor"
)

// runApp loads the dataset, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cat, err := resolveCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	recorder := llm.NewMemoryUsageRecorder()
	provider, err := llm.NewProviderFromEnv(ctx, recorder)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The tutor falls back to offline chapter matching.")
		provider = nil
		recorder = nil
	}

	return app.Run(app.Options{
		Catalog: cat,
		Tutor:   tutor.New(provider, cat),
		Usage:   recorder,
	})
}
