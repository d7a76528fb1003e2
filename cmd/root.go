package cmd

import (
	"github.com/spf13/cobra"

	"github.com/murajaa/murajaa/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "murajaa",
	Short: "Quran memorization review in the terminal",
	Long: "Murajaa quizzes you on what you have memorized: it shows an ayah and asks\n" +
		"for the one before or after it, then keeps a history of your scores.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MURAJAA_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/murajaa/config.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(surahsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MURAJAA_DB or db.path from config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
