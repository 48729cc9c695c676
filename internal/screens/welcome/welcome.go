// Package welcome is the splash shown at start: the mascot appears, gets
// sparkles, then the banner and a greeting. Any key moves on to home,
// even halfway through.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/router"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/theme"
)

const frame = 100 * time.Millisecond

// phase is how far the splash animation has played.
type phase int

const (
	phaseMascot phase = iota
	phaseSparkles
	phaseGreeting
	phaseIdle
)

// phaseAt maps elapsed animation time to a phase.
func phaseAt(d time.Duration) phase {
	switch {
	case d >= 4500*time.Millisecond:
		return phaseIdle
	case d >= 1500*time.Millisecond:
		return phaseGreeting
	case d >= 500*time.Millisecond:
		return phaseSparkles
	}
	return phaseMascot
}

const mascot = `╭─────────────╮
│    ╭───╮    │
│   ( ◕ ◕ )   │
│    ╰─▽─╯    │
│    /│ │\    │
╰─────────────╯`

var sparkles = [...]string{"★", "✦", "✧"}

type frameMsg struct{}

type WelcomeScreen struct {
	player string
	next   func() screen.Screen

	elapsed time.Duration
	frames  int
	left    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New greets player and, on the first key, replaces itself with next().
func New(player string, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{player: player, next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frame, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.left {
			return w, nil
		}
		if phaseAt(w.elapsed) != phaseIdle {
			w.elapsed += frame
		}
		w.frames++
		return w, nextFrame()
	case tea.KeyPressMsg:
		if w.left {
			return w, nil
		}
		w.left = true
		return w, router.Swap(w.next())
	}
	return w, nil
}

func (w *WelcomeScreen) greeting() string {
	if w.player == "" || w.player == session.GuestName {
		return "Hi there! Ready to play?"
	}
	return "Hi, " + w.player + "! Ready to play?"
}

func (w *WelcomeScreen) View(width, height int) string {
	p := phaseAt(w.elapsed)
	art := strings.Split(lipgloss.NewStyle().Foreground(theme.Primary).Render(mascot), "\n")

	if p >= phaseSparkles {
		s := sparkles[w.frames%len(sparkles)]
		yellow := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(s)
		cyan := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(s)
		for i, line := range art {
			switch i % 3 {
			case 0:
				art[i] = yellow + "  " + line + "  " + cyan
			case 1:
				art[i] = "   " + line + "   "
			case 2:
				art[i] = cyan + "  " + line + "  " + yellow
			}
		}
	}

	out := art
	if p >= phaseGreeting {
		out = append(out,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.greeting()),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(out, "\n"))
}
