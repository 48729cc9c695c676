package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/router"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/screens/drill"
	mazescreen "github.com/abhisek/miguel/internal/screens/maze"
	"github.com/abhisek/miguel/internal/screens/placeholder"
	"github.com/abhisek/miguel/internal/screens/profiles"
	"github.com/abhisek/miguel/internal/screens/puzzle"
	"github.com/abhisek/miguel/internal/screens/reading"
	shadowscreen "github.com/abhisek/miguel/internal/screens/shadow"
	"github.com/abhisek/miguel/internal/screens/summary"
	"github.com/abhisek/miguel/internal/screens/words"
	wordsearchscreen "github.com/abhisek/miguel/internal/screens/wordsearch"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
)

// arcadeGames are the bonus games opened by the daily unlock.
var arcadeGames = []struct{ label, title string }{
	{"SNAKE", "Snake"},
	{"RACING", "Racing"},
	{"SPACE SHOOTER", "Space Shooter"},
}

type progressLoadedMsg struct {
	Progress *progress.DailyProgress
	Err      error
}

// HomeScreen shows today's missions and the game menu.
type HomeScreen struct {
	sess     *session.Session
	menu     components.Menu
	labels   []string
	missions []progress.Mission
	unlocked bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen for sess. Progress is loaded in Init.
func New(sess *session.Session) *HomeScreen {
	h := &HomeScreen{sess: sess}
	h.buildMenu()
	return h
}

func push(s screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return router.To(s)
	}
}

// buildMenu rebuilds the menu, keeping the selection. Screens are created
// when chosen so each visit starts fresh.
func (h *HomeScreen) buildMenu() {
	sess := h.sess
	type entry struct {
		label  string
		open   func() screen.Screen
		arcade bool
	}
	entries := []entry{
		{label: "MATH", open: func() screen.Screen { return drill.New(sess) }},
		{label: "WORDS", open: func() screen.Screen { return words.New(sess) }},
		{label: "DEVOTIONAL", open: func() screen.Screen { return reading.New(sess, reading.Devotional) }},
		{label: "MAZE", open: func() screen.Screen { return mazescreen.New(sess) }},
		{label: "PUZZLE", open: func() screen.Screen { return puzzle.New(sess) }},
		{label: "WORD SEARCH", open: func() screen.Screen { return wordsearchscreen.New(sess) }},
		{label: "SHADOW MATCH", open: func() screen.Screen { return shadowscreen.New(sess) }},
		{label: "STORY TIME", open: func() screen.Screen { return reading.New(sess, reading.Story) }},
	}
	if sess.Profiles != nil {
		entries = append(entries, entry{label: "PLAYERS", open: func() screen.Screen { return profiles.New(sess) }})
	}
	for _, g := range arcadeGames {
		entries = append(entries, entry{label: g.label, arcade: true, open: func() screen.Screen { return placeholder.New(g.title) }})
	}

	items := make([]components.MenuItem, 0, len(entries)+1)
	labels := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		open := e.open
		items = append(items, components.MenuItem{
			Label:    e.label,
			Disabled: e.arcade && !h.unlocked,
			Action: func() tea.Cmd {
				return push(open())()
			},
		})
		labels = append(labels, e.label)
	}
	items = append(items, components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
		return push(summary.New(sess.Summary()))()
	}})
	labels = append(labels, "EXIT")

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
	h.labels = labels
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// Resume reloads progress after returning from a game.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	sess := h.sess
	return func() tea.Msg {
		p, err := sess.Today(context.Background())
		return progressLoadedMsg{Progress: p, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = "Could not load today's missions."
			return h, nil
		}
		h.errMsg = ""
		h.missions = progress.Missions(msg.Progress)
		if msg.Progress.ArcadeUnlocked != h.unlocked {
			h.unlocked = msg.Progress.ArcadeUnlocked
			h.buildMenu()
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes the chrome; the board needs a tall terminal.
	compact := height+layout.ChromeHeight < 50 || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, centered(cw, RenderMascot(h.mascot())))
	}
	sections = append(sections, renderMissionBoard(h.missions, h.unlocked, cw, compact))
	if h.errMsg != "" {
		sections = append(sections, renderNote(h.errMsg, cw))
	}
	sections = append(sections, renderMenu(menuEntries(h), cw, compact))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) mascot() MascotVariant {
	if h.unlocked {
		return MascotCelebrating
	}
	for _, m := range h.missions {
		if m.Current > 0 && m.ID != progress.MissionWords {
			return MascotIdle
		}
	}
	return MascotSleepy
}

func (h *HomeScreen) Title() string {
	return "Home"
}
