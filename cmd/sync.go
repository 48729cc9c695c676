package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/remote"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull today's remote progress and push profiles",
	Long: `Fetch today's record for the active player from the remote backend.
A remote record replaces the local one. Profiles are pushed afterwards, and
the local record is pushed when no remote record exists yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		migrate, _ := cmd.Flags().GetBool("migrate")
		mirror := e.mirror(ctx, migrate)
		if !mirror.Enabled() {
			fmt.Fprintln(cmd.OutOrStdout(), "No remote backend configured.")
			return nil
		}

		profiles, err := e.profiles(ctx)
		if err != nil {
			return err
		}
		tracker := progress.NewTracker(e.store.ProgressRepo(), profiles, progress.WithLogger(e.logger))

		out := cmd.OutOrStdout()
		id := profiles.ActiveProfileID()
		if remote := mirror.FetchRemoteProgress(ctx, id, tracker); remote != nil {
			fmt.Fprintf(out, "Pulled %s: %d math, word level %d.\n", remote.Date, remote.MathCount, remote.WordLevel)
		} else {
			p, err := tracker.DailyProgress(ctx)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			if p.IsGuest() {
				fmt.Fprintln(out, "Guest progress stays on this device.")
			} else {
				pushLocal(ctx, out, mirror, *p)
			}
		}

		n := mirror.SyncProfiles(ctx, profiles.List())
		fmt.Fprintf(out, "Profiles synced: %d/%d\n", n, len(profiles.List()))
		return nil
	},
}

// pushLocal pushes p and prints whether the backend accepted it.
func pushLocal(ctx context.Context, out io.Writer, mirror *remote.Mirror, p progress.DailyProgress) bool {
	if err := mirror.Push(ctx, p); err != nil {
		fmt.Fprintf(out, "Push of %s failed: %v\n", p.Date, err)
		return false
	}
	fmt.Fprintf(out, "Pushed %s.\n", p.Date)
	return true
}

func init() {
	syncCmd.Flags().Bool("migrate", false, "Create the remote tables first")
}
