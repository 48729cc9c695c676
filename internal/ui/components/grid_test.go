package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestCenterCell(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"A", 3, " A "},
		{"AB", 4, " AB "},
		{"🚀", 4, " 🚀 "},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CenterCell(tt.in, tt.width), "input %q", tt.in)
	}
}

func TestCenterCellTruncates(t *testing.T) {
	got := CenterCell("ABCDE", 3)
	assert.Equal(t, 3, runewidth.StringWidth(got))
}

func TestGridView(t *testing.T) {
	g := NewGrid(2, 2, 2)
	g.Set(0, 0, "A", lipgloss.NewStyle())
	g.Set(1, 1, "🐠", lipgloss.NewStyle())

	lines := strings.Split(g.View(), "\n")
	assert.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 4, lipgloss.Width(l))
	}
}
