package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sravani919/studyhall/internal/catalog"
)

var rootCmd = &cobra.Command{
	Use:   "studyhall",
	Short: "Interactive textbook study companion",
	Long:  "Studyhall is a terminal app that turns a textbook Q&A dataset into summaries, stories, challenges, and an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("dataset", "", "Path to a chapters JSON file (overrides STUDYHALL_DATASET env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveCatalog loads the dataset using --dataset (highest priority),
// then STUDYHALL_DATASET, then the embedded default.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("dataset")
	return catalog.Open(path)
}
