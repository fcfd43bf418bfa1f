package cmd

import (
	"github.com/abhisek/codecompanion/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codecompanion",
	Short: "Learn Python in your terminal",
	Long:  "CodeCompanion is a terminal app for learning Python, with a virtual companion that grows as you practice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODECOMPANION_DB env var)")
	rootCmd.PersistentFlags().String("lessons", "", "Path to a JSON lesson pack file or directory (defaults to the built-in catalog)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CODECOMPANION_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
