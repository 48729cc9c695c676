package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/miguel/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage player profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List players on this device",
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
		out := cmd.OutOrStdout()
		list := profiles.List()
		if len(list) == 0 {
			fmt.Fprintln(out, "No players yet. Everyone plays as Guest.")
			return nil
		}
		active := profiles.ActiveProfileID()
		fmt.Fprintf(out, "  %-36s  %-20s  %s\n", "ID", "Name", "Age")
		fmt.Fprintln(out, strings.Repeat("─", 66))
		for _, p := range list {
			mark := " "
			if p.ID == active {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %-36s  %-20s  %d\n", mark, p.ID, p.Name, p.Age)
		}
		return nil
	},
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name> <age>",
	Short: "Add a player",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid age %q: %w", args[1], err)
		}
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
		c := profile.ChildProfile{Name: args[0], Age: age}
		c.Gender, _ = cmd.Flags().GetString("gender")
		c.HairColor, _ = cmd.Flags().GetString("hair")
		c.EyeColor, _ = cmd.Flags().GetString("eyes")

		p, err := profiles.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("add player: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <id|name>",
	Short: "Select the active player",
	Args:  cobra.ExactArgs(1),
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
		p, err := findProfile(profiles.List(), args[0])
		if err != nil {
			return err
		}
		if err := profiles.SetActive(ctx, p.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Now playing as %s\n", p.Name)
		return nil
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <id|name>",
	Short: "Remove a player (needs the parent PIN)",
	Args:  cobra.ExactArgs(1),
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
		p, err := findProfile(profiles.List(), args[0])
		if err != nil {
			return err
		}
		pin, err := pinFlag(cmd, "pin", "Parent PIN: ")
		if err != nil {
			return err
		}
		if err := profiles.Remove(ctx, p.ID, pin); err != nil {
			if errors.Is(err, profile.ErrPINNotSet) {
				return fmt.Errorf("%w: run `miguel profile pin` first", err)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", p.Name)
		return nil
	},
}

var profilePINCmd = &cobra.Command{
	Use:   "pin",
	Short: "Set or change the parent PIN",
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
		gate := profiles.Gate()
		set, err := gate.IsSet(ctx)
		if err != nil {
			return err
		}
		var current string
		if set {
			if current, err = pinFlag(cmd, "current", "Current PIN: "); err != nil {
				return err
			}
		}
		pin, err := pinFlag(cmd, "new", "New PIN: ")
		if err != nil {
			return err
		}
		if err := gate.SetPIN(ctx, current, pin); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Parent PIN saved.")
		return nil
	},
}

// findProfile matches key against ids first, then names case-insensitively.
func findProfile(list []profile.ChildProfile, key string) (profile.ChildProfile, error) {
	for _, p := range list {
		if p.ID == key {
			return p, nil
		}
	}
	for _, p := range list {
		if strings.EqualFold(p.Name, key) {
			return p, nil
		}
	}
	return profile.ChildProfile{}, fmt.Errorf("%w: %s", profile.ErrNotFound, key)
}

// pinFlag returns the named flag, or reads the PIN from the terminal
// without echo when the flag is empty.
func pinFlag(cmd *cobra.Command, name, prompt string) (string, error) {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--%s is required when stdin is not a terminal", name)
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read PIN: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func init() {
	profileAddCmd.Flags().String("gender", "", "Used to describe the child in stories")
	profileAddCmd.Flags().String("hair", "", "Hair color, for illustrations")
	profileAddCmd.Flags().String("eyes", "", "Eye color, for illustrations")
	profileRemoveCmd.Flags().String("pin", "", "Parent PIN (prompted when empty)")
	profilePINCmd.Flags().String("current", "", "Current PIN (prompted when empty)")
	profilePINCmd.Flags().String("new", "", "New PIN (prompted when empty)")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	profileCmd.AddCommand(profilePINCmd)
}
