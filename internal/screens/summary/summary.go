// Package summary is the goodbye screen: what the child did this session.
package summary

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
)

// SummaryScreen lists the games finished this session. Enter quits; Esc
// goes back to home.
type SummaryScreen struct {
	summary session.Summary
}

var (
	_ screen.Screen          = (*SummaryScreen)(nil)
	_ screen.KeyHintProvider = (*SummaryScreen)(nil)
)

func New(summary session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "See you soon!" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Quit"}, {Key: "Esc", Description: "Keep playing"}}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "enter", "q", "y":
		return s, tea.Quit
	}
	return s, nil
}

// clock formats d as m:ss.
func clock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d/time.Minute), int(d%time.Minute/time.Second))
}

func (s *SummaryScreen) View(width, height int) string {
	line := func(c color.Color, bold bool, text string) string {
		return lipgloss.NewStyle().Foreground(c).Bold(bold).Width(width).Align(lipgloss.Center).Render(text)
	}

	rows := []string{
		line(theme.Primary, true, "Great playing today!"),
		"",
		line(theme.TextDim, false, "Played for "+clock(s.summary.Duration)),
		"",
	}
	if len(s.summary.Lines) == 0 {
		rows = append(rows, line(theme.Text, false, "Come back and play a game next time!"))
	} else {
		rule := line(theme.Border, false, strings.Repeat("─", max(min(width-8, 40), 0)))
		rows = append(rows, rule)
		for _, l := range s.summary.Lines {
			rows = append(rows, line(theme.Text, false, "✓ "+l))
		}
		rows = append(rows, rule)
	}
	if s.summary.Unlocked {
		rows = append(rows, "", line(theme.ArcadeYellow, true, "★ You opened the arcade today! ★"))
	}
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...))
}
