package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the play room (same as running miguel with no command)",
	RunE:  runApp,
}

func init() {
	playCmd.Flags().Bool("migrate", false, "Create the remote tables before starting")
}
