package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "miguel",
	Short: "Learning games for young children",
	Long: `Miguel is a terminal play room for children aged 3 to 10.

Math problems, syllable words, a devotional and a few puzzle games make up
the daily missions. Finishing them opens the arcade for the rest of the day.`,
	RunE: runApp,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MIGUEL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/miguel/config.*)")
	rootCmd.Flags().Bool("migrate", false, "Create the remote tables before starting")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
