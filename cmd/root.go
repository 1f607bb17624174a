package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var rootCmd = &cobra.Command{
	Use:   "braincell",
	Short: "Learning-platform client",
	Long:  "BrainCell — command-line client for the learning platform's content progression engine.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides BRAINCELL_CONFIG)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite progress database (overrides BRAINCELL_DB)")
	rootCmd.PersistentFlags().String("subject", "", "Subject id (overrides config)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a local catalog YAML file (bypasses the API)")

	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(retakeCmd)
	rootCmd.AddCommand(faqCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then BRAINCELL_DB / the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, progress.EnsureDir(p)
	}
	if configured != "" {
		return configured, progress.EnsureDir(configured)
	}
	return progress.DefaultDBPath()
}
