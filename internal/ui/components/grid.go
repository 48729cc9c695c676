package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// GridCell is one square of a game board.
type GridCell struct {
	Text  string
	Style lipgloss.Style
}

// Grid renders rows of fixed-width cells. Emoji and letters are centered
// by display width so mixed boards stay aligned.
type Grid struct {
	Rows      [][]GridCell
	CellWidth int
}

// NewGrid creates an empty rows x cols grid.
func NewGrid(rows, cols, cellWidth int) Grid {
	g := Grid{Rows: make([][]GridCell, rows), CellWidth: cellWidth}
	for r := range g.Rows {
		g.Rows[r] = make([]GridCell, cols)
	}
	return g
}

// Set places text with style at (r, c).
func (g Grid) Set(r, c int, text string, style lipgloss.Style) {
	g.Rows[r][c] = GridCell{Text: text, Style: style}
}

// View renders the grid.
func (g Grid) View() string {
	var b strings.Builder
	for r, row := range g.Rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(cell.Style.Render(CenterCell(cell.Text, g.CellWidth)))
		}
	}
	return b.String()
}

// CenterCell pads s to width display columns, truncating when too wide.
func CenterCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
