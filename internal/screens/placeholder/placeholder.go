// Package placeholder stands in for the arcade games, which are opened by
// the daily unlock but have no game loop yet.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/theme"
)

// PlaceholderScreen shows an arcade cabinet with the game's name.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("★ " + p.title + " ★")
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("The machine is warming up.\nCome back soon to play!")

	cw := components.ContentWidth(width)
	return components.CabinetFrame(components.ArcadeCard(name+"\n\n"+body, cw), width, height)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
