package cmd

import (
	"github.com/bestlessonever/readiness/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Music readiness quiz for parents",
	Long:  "Readiness — terminal quiz that scores a child's readiness for music lessons and recommends a first instrument.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides READINESS_DB env var)")
	rootCmd.Flags().String("variant", "", "Quiz variant to run (classic, sampler)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then READINESS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
