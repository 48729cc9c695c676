package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // playing
	MascotCelebrating                      // arcade open
	MascotSleepy                           // nothing played yet today
)

const mascotIdle = `  ╭───╮
 ( ◕ ◕ )
  ╰─▽─╯
  /│ │\`

const mascotCelebrating = `\ ╭───╮ /
 ( ★ ★ )
  ╰─◡─╯
  /│ │\`

const mascotSleepy = `  ╭───╮  z
 ( - - ) z
  ╰─o─╯
  /│ │\`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotSleepy:
		art = mascotSleepy
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
