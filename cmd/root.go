package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/munhak/internal/app"
	"github.com/abhisek/munhak/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "munhak",
	Short: "수능 문학 O/X 학습",
	Long:  "munhak: 수능 문학 작품과 어휘를 O/X 문제로 복습하는 터미널 앱.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, true)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())
		return app.Run(d.env())
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MUNHAK_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides MUNHAK_LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("log-stderr", false, "Write logs to stderr instead of the log file")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(quizzesCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MUNHAK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, envPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if envPath != "" {
		return envPath, store.EnsureDir(envPath)
	}
	return store.DefaultDBPath()
}
