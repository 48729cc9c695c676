package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/ui/theme"
)

// MissionBar draws label followed by a bar filled to fraction, fitting
// width cells in total. The bar keeps at least four cells.
func MissionBar(label string, fraction float64, width int) string {
	head := ""
	if label != "" {
		head = lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}
	cells := max(width-lipgloss.Width(head), 4)
	filled := int(float64(cells) * min(max(fraction, 0), 1))

	return head +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled))
}
