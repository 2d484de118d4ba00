package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sravani919/studyhall/internal/catalog"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List the chapters in the loaded dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		keys := cat.Chapters()
		if len(keys) == 0 {
			fmt.Println("The dataset has no chapters.")
			return nil
		}

		fmt.Printf("%-40s  %6s  %s\n", "Chapter", "Pairs", "Summary")
		fmt.Println(strings.Repeat("─", 72))

		for _, key := range keys {
			title := catalog.CleanTitle(key)
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			hasSummary := "yes"
			if cat.Summary(key) == catalog.NoSummary {
				hasSummary = "no"
			}
			fmt.Printf("%-40s  %6d  %s\n", title, len(cat.Pairs(key)), hasSummary)
		}

		fmt.Printf("\n%d chapters\n", len(keys))
		return nil
	},
}
