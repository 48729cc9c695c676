// Package layout draws the chrome around every screen: a header bar with
// the player and today's stars, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// ChromeHeight is the rows taken by the bordered header and footer.
	ChromeHeight = 6

	compactWidth = 100
)

// KeyHint is one footer entry such as "Enter Select".
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStatus is the right side of the header.
type HeaderStatus struct {
	Player       string
	MissionsDone int
	Missions     int
	Unlocked     bool
}

// IsCompactWidth reports whether screens should drop decorations.
func IsCompactWidth(width int) bool { return width < compactWidth }

// IsTooSmall reports whether the terminal cannot fit a game board.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger window.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(fmt.Sprintf(
			"🐢 The window is a bit small!\n\nMake it at least %d×%d\n(now %d×%d)",
			MinWidth, MinHeight, width, height)))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Frame is the chrome for one render.
type Frame struct {
	Title  string
	Status HeaderStatus
	Hints  []KeyHint
}

// Header places the brand left, the title centered and the status right.
func (f Frame) Header(width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Miguel")
	title := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	status := f.statusText()

	inner := max(width-4, 0)
	bw, tw, sw := lipgloss.Width(brand), lipgloss.Width(title), lipgloss.Width(status)
	gapL := max((inner-tw)/2-bw, 1)
	gapR := max(inner-bw-gapL-tw-sw, 1)

	line := brand + strings.Repeat(" ", gapL) + title + strings.Repeat(" ", gapR) + status
	return bar.Width(width).Render(line)
}

func (f Frame) statusText() string {
	s := f.Status
	star := "☆"
	if s.Unlocked {
		star = "★"
	}
	player := lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.Player)
	stars := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%s %d/%d", star, s.MissionsDone, s.Missions))
	return player + "   " + stars
}

// Footer lists the key hints.
func (f Frame) Footer(width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(" ")
	for _, h := range f.Hints {
		b.WriteString("  " + key.Render(h.Key) + " " + desc.Render(h.Description) + " ")
	}
	return bar.Width(width).Render(b.String())
}

// Render stacks header, body and footer into exactly height rows. body
// receives the space left between the bars.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	header, footer := f.Header(width), f.Footer(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(body(width, bodyHeight))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
