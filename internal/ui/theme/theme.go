// Package theme holds the palette shared by every screen. Colors are
// bright enough to read on a dark terminal from across a room.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#8B5CF6") // purple: brand, focus
	Secondary = lipgloss.Color("#14B8A6") // teal: player, progress
	Accent    = lipgloss.Color("#F97316") // orange: stars
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")

	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")

	BgDark = lipgloss.Color("#0F172A")
	BgCard = lipgloss.Color("#1E293B")
	Border = lipgloss.Color("#334155")

	// Arcade colors mark the unlockable games.
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// mazeWalls maps a maze palette name to its wall color.
var mazeWalls = map[string]color.Color{
	"red":    lipgloss.Color("#EF4444"),
	"purple": Primary,
	"blue":   lipgloss.Color("#3B82F6"),
	"green":  Success,
	"yellow": ArcadeYellow,
}

// Palette returns the wall color for a maze palette, or Border when the
// name is unknown.
func Palette(name string) color.Color {
	if c, ok := mazeWalls[name]; ok {
		return c
	}
	return Border
}
