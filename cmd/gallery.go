package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// nowFunc is the clock used for file names.
var nowFunc = time.Now

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Manage saved illustrations",
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved images",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		g := e.store.Gallery(e.cfg.Gallery.MaxBytes)
		images, err := g.List(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(images) == 0 {
			fmt.Fprintln(out, "The gallery is empty.")
			return nil
		}
		fmt.Fprintf(out, "%-5s  %-19s  %9s  %s\n", "ID", "Saved", "Bytes", "Name")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, img := range images {
			fmt.Fprintf(out, "%-5d  %-19s  %9d  %s\n",
				img.ID, img.CreatedAt.Local().Format("2006-01-02 15:04:05"), img.Size, img.Name)
		}
		used, err := g.Used(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d of %d bytes used\n", used, e.cfg.Gallery.MaxBytes)
		return nil
	},
}

var galleryExportCmd = &cobra.Command{
	Use:   "export <id> <file>",
	Short: "Write a saved image to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		ctx := cmd.Context()
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		img, err := e.store.Gallery(e.cfg.Gallery.MaxBytes).Get(ctx, id)
		if err != nil {
			return err
		}
		if img == nil {
			return fmt.Errorf("image %d not found", id)
		}
		if err := os.WriteFile(args[1], img.Data, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", args[1], len(img.Data))
		return nil
	},
}

var galleryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		ctx := cmd.Context()
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.Gallery(e.cfg.Gallery.MaxBytes).Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted image %d\n", id)
		return nil
	},
}

func init() {
	galleryCmd.AddCommand(galleryListCmd)
	galleryCmd.AddCommand(galleryExportCmd)
	galleryCmd.AddCommand(galleryDeleteCmd)
}
