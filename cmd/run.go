package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/abhisek/miguel/internal/app"
	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/remote"
	"github.com/abhisek/miguel/internal/session"
)

var errNoTerminal = errors.New("miguel needs an interactive terminal; try `miguel progress` for a text report")

// fetchTimeout bounds the start-up wait for the remote record.
const fetchTimeout = 5 * time.Second

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	profiles, err := e.profiles(ctx)
	if err != nil {
		return err
	}
	cat, err := e.catalog()
	if err != nil {
		return err
	}

	migrate, _ := cmd.Flags().GetBool("migrate")
	mirror := e.mirror(ctx, migrate)
	worker := remote.NewWorker(mirror, e.cfg.Sync.QueueSize, e.logger)
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	go worker.Run(workerCtx)
	// Close flushes pending snapshots before the store goes away.
	defer worker.Close()

	tracker := progress.NewTracker(e.store.ProgressRepo(), profiles,
		progress.WithNotifier(worker),
		progress.WithLogger(e.logger))

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	mirror.FetchRemoteProgress(fetchCtx, profiles.ActiveProfileID(), tracker)
	if n := mirror.SyncProfiles(fetchCtx, profiles.List()); n > 0 {
		e.logger.Debug("profiles mirrored", zap.Int("count", n))
	}
	cancel()

	svc := e.content(ctx, cat)
	if err := svc.Prune(ctx); err != nil {
		e.logger.Warn("prune content cache", zap.Error(err))
	}

	sess := session.New(tracker, profiles, svc, cat, e.logger)
	runErr := app.Run(ctx, sess)

	if n := worker.Dropped(); n > 0 {
		e.logger.Info("sync queue overflowed", zap.Int("dropped", n))
	}
	if runErr != nil {
		return fmt.Errorf("run app: %w", runErr)
	}
	printSummary(cmd.OutOrStdout(), sess.Summary())
	return nil
}

func printSummary(w io.Writer, sum session.Summary) {
	fmt.Fprintf(w, "Played for %s.\n", sum.Duration)
	for _, line := range sum.Lines {
		fmt.Fprintf(w, "  ✓ %s\n", line)
	}
	if sum.Unlocked {
		fmt.Fprintln(w, "  ★ Arcade opened today!")
	}
}
