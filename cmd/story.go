package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/miguel/internal/content"
	"github.com/abhisek/miguel/internal/profile"
	"github.com/abhisek/miguel/internal/progress"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Print today's story for the active player",
	Long: `Print today's story, or the devotional with --devotional.

Text is generated once per day and player when an LLM provider is
configured, and comes from the built-in catalog otherwise. With --image an
illustration is drawn (OpenAI only) and saved to the gallery.`,
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
		cat, err := e.catalog()
		if err != nil {
			return err
		}
		svc := e.content(ctx, cat)

		child, ok := profiles.Active()
		if !ok {
			child = profile.ChildProfile{ID: progress.GuestProfileID, Age: profile.MinAge + 3}
		}

		devotional, _ := cmd.Flags().GetBool("devotional")
		var c content.Content
		if devotional {
			c = svc.Devotional(ctx, child)
		} else {
			c = svc.Story(ctx, child)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, c.Title)
		fmt.Fprintln(out, strings.Repeat("─", len([]rune(c.Title))))
		fmt.Fprintln(out, c.Body)
		if c.Moral != "" {
			fmt.Fprintf(out, "\n%s\n", c.Moral)
		}
		if c.Fallback {
			fmt.Fprintln(cmd.ErrOrStderr(), "(built-in text)")
		}

		if draw, _ := cmd.Flags().GetBool("image"); !draw {
			return nil
		}
		data, ok := svc.StoryImage(ctx, child, c)
		if !ok {
			return fmt.Errorf("no illustration available; an OpenAI key is required")
		}
		gallery := e.store.Gallery(e.cfg.Gallery.MaxBytes)
		name := fmt.Sprintf("%s-%s.png", progress.DayKey(nowFunc()), slug(c.Title))
		id, err := gallery.Save(ctx, name, data)
		if err != nil {
			return fmt.Errorf("save illustration: %w", err)
		}
		fmt.Fprintf(out, "\nIllustration saved to the gallery as #%d (%s)\n", id, name)
		return nil
	},
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	s = nonSlug.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "story"
	}
	return s
}

func init() {
	storyCmd.Flags().Bool("devotional", false, "Print the devotional instead of the story")
	storyCmd.Flags().Bool("image", false, "Draw an illustration and save it to the gallery")
}
