package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/ui/theme"
)

// MissionBanner announces that today's missions unlocked the arcade.
func MissionBanner(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Padding(0, 1).
		Render("★ MISSION COMPLETE! The arcade is open! ★")
}

// WinBanner renders a short celebration line.
func WinBanner(text string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Success).
		Render(text)
}
