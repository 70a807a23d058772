package cmd

import (
	"github.com/smehta/examiner/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "examiner",
	Short: "Automated exam sheet grading",
	Long:  "Examiner — grades recognized answer sheets against a question paper and answer key, with per-course marking calibration.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMINER_DB env var)")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(overrideCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMINER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
