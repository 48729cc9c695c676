package maze

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/miguel/internal/maze"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
)

// cellWidth is the display width of one maze cell, walls excluded.
const cellWidth = 4

// MazeScreen drives one maze round at a time.
type MazeScreen struct {
	sess     *session.Session
	game     *engine.Game
	hint     bool
	unlocked bool
	errMsg   string
}

var _ screen.Screen = (*MazeScreen)(nil)
var _ screen.KeyHintProvider = (*MazeScreen)(nil)

// New creates a maze screen with a fresh round.
func New(sess *session.Session) *MazeScreen {
	return &MazeScreen{
		sess: sess,
		game: engine.NewGame(sess.Rand()),
	}
}

func (m *MazeScreen) Init() tea.Cmd {
	return nil
}

func (m *MazeScreen) Title() string {
	return "Maze · " + m.game.Theme.Name
}

func (m *MazeScreen) KeyHints() []layout.KeyHint {
	if m.game.Won() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "New maze"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Drive"},
		{Key: "?", Description: "Hint"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MazeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RecordedMsg:
		if msg.Game != session.GameMaze {
			return m, nil
		}
		if msg.Err != nil {
			m.errMsg = "Could not save your progress."
			return m, nil
		}
		if msg.Result.JustUnlocked {
			m.unlocked = true
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *MazeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if m.game.Won() {
		switch msg.String() {
		case "enter", "space", "n":
			m.game = engine.NewGame(m.sess.Rand())
			m.hint = false
			m.unlocked = false
		}
		return m, nil
	}

	var dir engine.Direction
	switch msg.String() {
	case "?", "t":
		m.hint = !m.hint
		return m, nil
	case "up", "w", "k":
		dir = engine.Top
	case "right", "d", "l":
		dir = engine.Right
	case "down", "s", "j":
		dir = engine.Bottom
	case "left", "a", "h":
		dir = engine.Left
	default:
		return m, nil
	}

	_, justWon := m.game.Move(dir)
	if justWon {
		return m, screen.Record(m.sess, session.GameMaze)
	}
	return m, nil
}

func (m *MazeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, m.renderBoard())

	if m.game.Won() {
		sections = append(sections, components.WinBanner(
			"You made it! "+m.game.Theme.Goal, width/2))
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Drive the "+m.game.Theme.Player+" to the "+m.game.Theme.Goal))
	}
	if m.unlocked {
		sections = append(sections, components.MissionBanner(width/2))
	}
	if m.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(m.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderBoard draws walls as box lines. Each cell row becomes a content
// line followed by a wall line.
func (m *MazeScreen) renderBoard() string {
	wall := lipgloss.NewStyle().Foreground(theme.Palette(m.game.Theme.Palette))
	hintStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow)

	var next engine.Pos
	showHint := false
	if m.hint && !m.game.Won() {
		if path := m.game.Maze.Path(m.game.Pos(), engine.Goal); len(path) > 0 {
			next = m.game.Pos().Step(path[0])
			showHint = true
		}
	}

	horizontal := strings.Repeat("─", cellWidth)
	blank := strings.Repeat(" ", cellWidth)

	var b strings.Builder
	b.WriteString(wall.Render("┌" + strings.Repeat(horizontal+"─", engine.Size-1) + horizontal + "┐"))
	b.WriteByte('\n')

	for r := range engine.Size {
		b.WriteString(wall.Render("│"))
		for c := range engine.Size {
			p := engine.Pos{Row: r, Col: c}
			b.WriteString(m.cellText(p, showHint && p == next, hintStyle))
			if m.game.Maze.HasWall(p, engine.Right) {
				b.WriteString(wall.Render("│"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteByte('\n')

		if r == engine.Size-1 {
			break
		}
		b.WriteString(wall.Render("├"))
		for c := range engine.Size {
			seg := blank
			if m.game.Maze.HasWall(engine.Pos{Row: r, Col: c}, engine.Bottom) {
				seg = horizontal
			}
			b.WriteString(wall.Render(seg))
			if c < engine.Size-1 {
				b.WriteString(wall.Render("┼"))
			}
		}
		b.WriteString(wall.Render("┤"))
		b.WriteByte('\n')
	}

	b.WriteString(wall.Render("└" + strings.Repeat(horizontal+"─", engine.Size-1) + horizontal + "┘"))
	return b.String()
}

func (m *MazeScreen) cellText(p engine.Pos, hinted bool, hintStyle lipgloss.Style) string {
	switch {
	case p == m.game.Pos():
		return components.CenterCell(m.game.Theme.Player, cellWidth)
	case p == engine.Goal:
		return components.CenterCell(m.game.Theme.Goal, cellWidth)
	case hinted:
		return hintStyle.Render(components.CenterCell("•", cellWidth))
	}
	return strings.Repeat(" ", cellWidth)
}
