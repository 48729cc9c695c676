package words

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/catalog"
	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/syllables"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
)

const (
	// MismatchDelay is how long a wrong selection stays on screen.
	MismatchDelay = 700 * time.Millisecond

	// WordsPerLevel is the number of words to finish before moving up.
	WordsPerLevel = 3
)

type levelLoadedMsg struct {
	Level int
	Err   error
}

type clearMsg struct{}

// WordsScreen is the syllable game: tap the tiles in order to build the
// word shown by the picture.
type WordsScreen struct {
	sess     *session.Session
	level    int
	solved   int
	current  catalog.SyllableWord
	round    *syllables.Round
	cursor   int
	clearing bool
	loaded   bool
	unlocked bool
	errMsg   string
}

var _ screen.Screen = (*WordsScreen)(nil)
var _ screen.KeyHintProvider = (*WordsScreen)(nil)

// New creates the words screen. The level is read from today's progress
// in Init.
func New(sess *session.Session) *WordsScreen {
	return &WordsScreen{sess: sess, level: progress.MinWordLevel}
}

func (w *WordsScreen) Init() tea.Cmd {
	sess := w.sess
	return func() tea.Msg {
		p, err := sess.Today(context.Background())
		if err != nil {
			return levelLoadedMsg{Err: err}
		}
		return levelLoadedMsg{Level: p.WordLevel}
	}
}

func (w *WordsScreen) Title() string {
	return "Words · Level " + strconv.Itoa(w.level)
}

func (w *WordsScreen) KeyHints() []layout.KeyHint {
	if w.round != nil && w.round.Done() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next word"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Pick"},
		{Key: "1-9", Description: "Pick tile"},
		{Key: "Esc", Description: "Back"},
	}
}

func (w *WordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelLoadedMsg:
		if msg.Err != nil {
			w.errMsg = "Could not load today's progress."
		} else {
			w.level = clampLevel(msg.Level)
		}
		w.loaded = true
		w.nextWord()
		return w, nil

	case clearMsg:
		w.clearing = false
		if w.round != nil {
			w.round.Clear()
		}
		return w, nil

	case screen.RecordedMsg:
		if msg.Game != session.GameWords {
			return w, nil
		}
		if msg.Err != nil {
			w.errMsg = "Could not save your progress."
			return w, nil
		}
		w.level = clampLevel(msg.Result.Progress.WordLevel)
		if msg.Result.JustUnlocked {
			w.unlocked = true
		}
		return w, nil

	case tea.KeyPressMsg:
		return w.handleKey(msg.String())
	}
	return w, nil
}

func (w *WordsScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if w.round == nil || w.clearing {
		return w, nil
	}
	if w.round.Done() {
		if key == "enter" || key == "space" || key == "n" {
			w.nextWord()
		}
		return w, nil
	}

	tiles := len(w.round.Tiles())
	switch key {
	case "left", "h":
		w.cursor = (w.cursor + tiles - 1) % tiles
	case "right", "l":
		w.cursor = (w.cursor + 1) % tiles
	case "enter", "space":
		return w, w.pick(w.cursor)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= tiles {
			w.cursor = n - 1
			return w, w.pick(n - 1)
		}
	}
	return w, nil
}

func (w *WordsScreen) pick(i int) tea.Cmd {
	switch w.round.Pick(i) {
	case syllables.Mismatch:
		w.clearing = true
		return tea.Tick(MismatchDelay, func(time.Time) tea.Msg { return clearMsg{} })
	case syllables.Success:
		w.solved++
		if w.solved%WordsPerLevel == 0 && w.level < progress.WordLevelGoal {
			return screen.RecordWordLevel(w.sess, w.level+1)
		}
	}
	return nil
}

func (w *WordsScreen) nextWord() {
	pool := w.sess.Catalog.WordsForLevel(w.level)
	if len(pool) == 0 {
		w.round = nil
		return
	}
	rng := w.sess.Rand()
	// Avoid showing the same word twice in a row when the level allows it.
	shown := strings.Join(w.current.Syllables, "")
	fresh := make([]catalog.SyllableWord, 0, len(pool))
	for _, c := range pool {
		if strings.Join(c.Syllables, "") != shown {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) > 0 {
		pool = fresh
	}
	next := pool[rng.IntN(len(pool))]
	w.current = next
	w.round = syllables.NewRound(next.Syllables, rng)
	w.cursor = 0
	w.clearing = false
}

func clampLevel(l int) int {
	return max(progress.MinWordLevel, min(l, progress.WordLevelGoal))
}

func (w *WordsScreen) View(width, height int) string {
	if !w.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading..."))
	}
	if w.round == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No words for this level."))
	}

	var sections []string
	sections = append(sections, lipgloss.NewStyle().Render(w.current.Emoji))
	sections = append(sections, w.renderSlots())
	sections = append(sections, w.renderTiles())

	progressText := strconv.Itoa(w.solved%WordsPerLevel) + "/" + strconv.Itoa(WordsPerLevel) + " words to the next level"
	if w.level >= progress.WordLevelGoal {
		progressText = "Top level! " + strconv.Itoa(w.solved) + " words today"
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(progressText))

	if w.round.Done() {
		sections = append(sections, components.WinBanner(w.round.Word()+"!", width/2))
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

func (w *WordsScreen) renderSlots() string {
	sel := w.round.Selection()
	color := theme.Text
	switch {
	case w.clearing:
		color = theme.Error
	case w.round.Done():
		color = theme.Success
	}
	slot := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border).
		Width(6).
		Align(lipgloss.Center)

	target := w.round.Target()
	cells := make([]string, len(target))
	for i := range target {
		text := ""
		if i < len(sel) {
			text = sel[i]
		}
		cells[i] = slot.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
}

func (w *WordsScreen) renderTiles() string {
	var cells []string
	for i, t := range w.round.Tiles() {
		style := lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)
		if !w.round.Available(i) {
			style = style.Foreground(theme.TextDim)
		} else if i == w.cursor {
			style = style.BorderForeground(theme.ArcadeYellow).Foreground(theme.ArcadeYellow).Bold(true)
		}
		cells = append(cells, style.Render(t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
