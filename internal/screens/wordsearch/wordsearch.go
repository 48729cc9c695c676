package wordsearch

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
	engine "github.com/abhisek/miguel/internal/wordsearch"
)

// WordSearchScreen plays word-search rounds. The child marks the first
// and last letter of a word; the selection must be a straight line.
type WordSearchScreen struct {
	sess     *session.Session
	grid     *engine.Grid
	cursor   engine.Cell
	anchor   *engine.Cell
	message  string
	unlocked bool
	errMsg   string
}

var _ screen.Screen = (*WordSearchScreen)(nil)
var _ screen.KeyHintProvider = (*WordSearchScreen)(nil)

// New creates a word-search screen with a fresh grid.
func New(sess *session.Session) *WordSearchScreen {
	w := &WordSearchScreen{sess: sess}
	w.newRound()
	return w
}

func (w *WordSearchScreen) newRound() {
	w.grid = engine.Generate(w.sess.Rand(), w.sess.Catalog.WordSearch, w.sess.Logger)
	w.cursor = engine.Cell{}
	w.anchor = nil
	w.message = ""
	w.unlocked = false
}

func (w *WordSearchScreen) Init() tea.Cmd {
	return nil
}

func (w *WordSearchScreen) Title() string {
	return "Word Search"
}

func (w *WordSearchScreen) KeyHints() []layout.KeyHint {
	if w.grid.Won() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "New grid"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{{Key: "←↑↓→", Description: "Move"}}
	if w.anchor == nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "First letter"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Last letter"},
			layout.KeyHint{Key: "X", Description: "Cancel"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (w *WordSearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RecordedMsg:
		if msg.Game != session.GameWordSearch {
			return w, nil
		}
		if msg.Err != nil {
			w.errMsg = "Could not save your progress."
		} else if msg.Result.JustUnlocked {
			w.unlocked = true
		}
		return w, nil

	case tea.KeyPressMsg:
		return w.handleKey(msg.String())
	}
	return w, nil
}

func (w *WordSearchScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if w.grid.Won() || len(w.grid.Placements) == 0 {
		if key == "enter" || key == "space" || key == "n" {
			w.newRound()
		}
		return w, nil
	}

	switch key {
	case "up", "k":
		w.cursor.Row = max(w.cursor.Row-1, 0)
	case "down", "j":
		w.cursor.Row = min(w.cursor.Row+1, engine.Size-1)
	case "left", "h":
		w.cursor.Col = max(w.cursor.Col-1, 0)
	case "right", "l":
		w.cursor.Col = min(w.cursor.Col+1, engine.Size-1)
	case "x":
		w.anchor = nil
	case "enter", "space":
		return w, w.mark()
	}
	return w, nil
}

func (w *WordSearchScreen) mark() tea.Cmd {
	if w.anchor == nil {
		c := w.cursor
		w.anchor = &c
		w.message = ""
		return nil
	}

	a := *w.anchor
	w.anchor = nil
	word, ok := w.grid.Select(a, w.cursor)
	if !ok {
		w.message = "Not a word. Try again!"
		return nil
	}
	w.message = "You found " + word + "!"
	if w.grid.Won() {
		return screen.Record(w.sess, session.GameWordSearch)
	}
	return nil
}

func (w *WordSearchScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, w.renderGrid())
	sections = append(sections, w.renderWordList())

	if w.message != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(w.message))
	}
	if w.grid.Won() {
		sections = append(sections, components.WinBanner("All words found!", width/2))
	}
	if w.unlocked {
		sections = append(sections, components.MissionBanner(width/2))
	}
	if w.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (w *WordSearchScreen) renderGrid() string {
	base := lipgloss.NewStyle().Foreground(theme.Text)
	found := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Success).Bold(true)
	selecting := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Secondary)
	cursor := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)

	var preview []engine.Cell
	if w.anchor != nil {
		preview, _ = engine.Line(*w.anchor, w.cursor)
	}

	g := components.NewGrid(engine.Size, engine.Size, 3)
	for r := range engine.Size {
		for c := range engine.Size {
			cell := engine.Cell{Row: r, Col: c}
			style := base
			switch {
			case cell == w.cursor && !w.grid.Won():
				style = cursor
			case slices.Contains(preview, cell):
				style = selecting
			case w.grid.Found(r, c):
				style = found
			}
			g.Set(r, c, string(w.grid.Letters[r][c]), style)
		}
	}
	return g.View()
}

func (w *WordSearchScreen) renderWordList() string {
	remaining := w.grid.Remaining()
	var parts []string
	for _, word := range w.grid.Words() {
		if slices.Contains(remaining, word) {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(word))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true).Render(word))
		}
	}
	return strings.Join(parts, "   ")
}
