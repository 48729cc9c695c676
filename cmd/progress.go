package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/miguel/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show today's missions for the active player",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		profiles, err := e.profiles(ctx)
		if err != nil {
			return err
		}
		tracker := progress.NewTracker(e.store.ProgressRepo(), profiles, progress.WithLogger(e.logger))
		p, err := tracker.DailyProgress(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		name := "Guest"
		if c, ok := profiles.Active(); ok {
			name = c.Name
		}
		printProgress(cmd.OutOrStdout(), name, p)
		return nil
	},
}

func printProgress(w io.Writer, name string, p *progress.DailyProgress) {
	fmt.Fprintf(w, "%s · %s\n", name, p.Date)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, m := range progress.Missions(p) {
		mark := " "
		if m.Done() {
			mark = "✓"
		}
		star := ""
		if m.Arcade {
			star = " ★"
		}
		fmt.Fprintf(w, "%s %-16s %3d/%-3d%s\n", mark, m.Label, min(m.Current, m.Target), m.Target, star)
	}
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if p.ArcadeUnlocked {
		fmt.Fprintln(w, "Arcade: open")
	} else {
		fmt.Fprintln(w, "Arcade: locked (finish the ★ missions)")
	}
}
