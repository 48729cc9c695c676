package puzzle

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/catalog"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/slidepuzzle"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
)

const tileWidth = 8

// PuzzleScreen plays sliding puzzle rounds over catalog pictures.
type PuzzleScreen struct {
	sess     *session.Session
	round    *slidepuzzle.Round
	cursor   int
	previous string
	unlocked bool
	errMsg   string
}

var _ screen.Screen = (*PuzzleScreen)(nil)
var _ screen.KeyHintProvider = (*PuzzleScreen)(nil)

// New creates a puzzle screen with a freshly shuffled board.
func New(sess *session.Session) *PuzzleScreen {
	p := &PuzzleScreen{sess: sess}
	p.newRound()
	return p
}

func (p *PuzzleScreen) newRound() {
	p.round = slidepuzzle.NewRound(p.sess.Rand(), p.sess.Catalog.BackgroundNames(), p.previous)
	p.previous = p.round.Background
	p.cursor = p.round.Puzzle.Blank()
	p.unlocked = false
}

func (p *PuzzleScreen) Init() tea.Cmd {
	return nil
}

func (p *PuzzleScreen) Title() string {
	return "Puzzle"
}

func (p *PuzzleScreen) KeyHints() []layout.KeyHint {
	if p.round.Won() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "New puzzle"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Choose tile"},
		{Key: "Enter", Description: "Slide"},
		{Key: "1-8", Description: "Slide tile"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PuzzleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RecordedMsg:
		if msg.Game != session.GamePuzzle {
			return p, nil
		}
		if msg.Err != nil {
			p.errMsg = "Could not save your progress."
		} else if msg.Result.JustUnlocked {
			p.unlocked = true
		}
		return p, nil

	case tea.KeyPressMsg:
		return p.handleKey(msg.String())
	}
	return p, nil
}

func (p *PuzzleScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if p.round.Won() {
		if key == "enter" || key == "space" || key == "n" {
			p.newRound()
		}
		return p, nil
	}

	n := p.round.Puzzle.Size()
	row, col := p.cursor/n, p.cursor%n
	switch key {
	case "up", "k":
		if row > 0 {
			p.cursor -= n
		}
	case "down", "j":
		if row < n-1 {
			p.cursor += n
		}
	case "left", "h":
		if col > 0 {
			p.cursor--
		}
	case "right", "l":
		if col < n-1 {
			p.cursor++
		}
	case "enter", "space":
		return p, p.click(p.cursor)
	default:
		// Digits slide the tile showing that number.
		if v, err := strconv.Atoi(key); err == nil && v >= 1 && v < n*n {
			for i, t := range p.round.Puzzle.Tiles() {
				if t == v-1 {
					return p, p.click(i)
				}
			}
		}
	}
	return p, nil
}

func (p *PuzzleScreen) click(i int) tea.Cmd {
	moved, justWon := p.round.Click(i)
	if moved {
		p.cursor = i
	}
	if justWon {
		return screen.Record(p.sess, session.GamePuzzle)
	}
	return nil
}

func (p *PuzzleScreen) View(width, height int) string {
	bg, _ := p.sess.Catalog.Background(p.round.Background)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(p.round.Background)))
	sections = append(sections, p.renderBoard(bg))

	if p.round.Won() {
		sections = append(sections, components.WinBanner("Picture complete!", width/2))
	}
	if p.unlocked {
		sections = append(sections, components.MissionBanner(width/2))
	}
	if p.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (p *PuzzleScreen) renderBoard(bg catalog.Background) string {
	pz := p.round.Puzzle
	n := pz.Size()
	tile := lipgloss.NewStyle().
		Background(theme.BgCard).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
	selected := tile.BorderForeground(theme.ArcadeYellow)
	movable := tile.BorderForeground(theme.Secondary)
	empty := lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder())

	tiles := pz.Tiles()
	rows := make([]string, n)
	for r := range n {
		cells := make([]string, n)
		for c := range n {
			i := r*n + c
			v := tiles[i]
			style := tile
			switch {
			case i == p.cursor && !p.round.Won():
				style = selected
			case pz.Adjacent(i) && !p.round.Won():
				style = movable
			}
			label := tileLabel(bg, v, pz.BlankValue(), p.round.Won())
			if v == pz.BlankValue() && !p.round.Won() {
				style = empty
				if i == p.cursor {
					style = empty.Border(lipgloss.RoundedBorder()).BorderForeground(theme.ArcadeYellow)
				}
			}
			cells[c] = style.Render(components.CenterCell(label, tileWidth) + "\n" +
				components.CenterCell(tileNumber(v, pz.BlankValue()), tileWidth))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// tileLabel is the picture piece for tile value v. The blank shows the
// last piece once the picture is complete.
func tileLabel(bg catalog.Background, v, blank int, won bool) string {
	if v == blank {
		if won && v < len(bg.Tiles) {
			return bg.Tiles[v]
		}
		return ""
	}
	if v < len(bg.Tiles) {
		return bg.Tiles[v]
	}
	return strconv.Itoa(v + 1)
}

func tileNumber(v, blank int) string {
	if v == blank {
		return ""
	}
	return strconv.Itoa(v + 1)
}
