package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/screens/welcome"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/theme"
)

const (
	compactTitle = "M · I · G · U · E · L"

	// labelWidth pads mission labels so the bars line up.
	labelWidth = 14

	buttonWidth = 22
)

var (
	dim      = lipgloss.NewStyle().Foreground(theme.TextDim)
	star     = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("★")
	doneMark = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
)

// centered renders s centered in a block cw wide.
func centered(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

func renderTitle(cw int, compact bool) string {
	title := welcome.BannerArt
	if compact {
		title = compactTitle
	}
	return centered(cw, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(strings.TrimPrefix(title, "\n")))
}

// missionLine renders one mission row. Missions that count towards the
// arcade carry a star.
func missionLine(m progress.Mission, cw int, compact bool) string {
	mark := " "
	if m.Arcade {
		mark = star
	}
	label := fmt.Sprintf("%-*s", labelWidth, m.Label)

	count := fmt.Sprintf("%d/%d", min(m.Current, m.Target), m.Target)
	if m.Done() {
		count = doneMark.Render("✓ " + count)
	} else {
		count = dim.Render("  " + count)
	}

	if compact {
		return mark + " " + label + " " + count
	}
	fraction := float64(m.Current) / float64(max(m.Target, 1))
	return mark + " " + components.MissionBar(label, fraction, cw-20) + " " + count
}

func renderMissionBoard(missions []progress.Mission, unlocked bool, cw int, compact bool) string {
	if len(missions) == 0 {
		return components.ArcadeCard(dim.Render("Loading missions..."), cw)
	}

	lines := make([]string, 0, len(missions)+2)
	for _, m := range missions {
		lines = append(lines, missionLine(m, cw, compact))
	}
	if unlocked {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("★ ARCADE OPEN ★"))
	} else {
		lines = append(lines, "", dim.Render("★ Finish the starred missions to open the arcade"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func renderNote(text string, cw int) string {
	return centered(cw, lipgloss.NewStyle().Foreground(theme.Error).Render(text))
}

// menuEntry is one game as the board draws it.
type menuEntry struct {
	label    string
	selected bool
	locked   bool
}

func menuEntries(h *HomeScreen) []menuEntry {
	out := make([]menuEntry, len(h.labels))
	for i, label := range h.labels {
		out[i] = menuEntry{
			label:    label,
			selected: i == h.menu.Selected,
			locked:   i < len(h.menu.Items) && h.menu.Items[i].Disabled,
		}
	}
	return out
}

// renderMenu lays games out as bordered buttons in two columns, or as
// plain lines when compact.
func renderMenu(entries []menuEntry, cw int, compact bool) string {
	if compact {
		lines := make([]string, len(entries))
		for i, e := range entries {
			switch {
			case e.locked:
				lines[i] = dim.Render("   " + e.label + " (locked)")
			case e.selected:
				lines[i] = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true).
					Render(" ▸ " + e.label + " ")
			default:
				lines[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + e.label)
			}
		}
		return centered(cw, strings.Join(lines, "\n"))
	}

	button := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text)

	var rows []string
	var row []string
	for _, e := range entries {
		var b string
		switch {
		case e.locked:
			b = button.Foreground(theme.TextDim).Render("🔒 " + e.label)
		case e.selected:
			b = button.Bold(true).Foreground(theme.BgDark).Background(theme.ArcadeYellow).
				BorderForeground(theme.ArcadeYellow).Render("▸ " + e.label)
		default:
			b = button.Render(e.label)
		}
		row = append(row, b)
		if len(row) == 2 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row[0], " ", row[1]))
			row = row[:0]
		}
	}
	if len(row) == 1 {
		rows = append(rows, row[0])
	}
	return centered(cw, strings.Join(rows, "\n"))
}
