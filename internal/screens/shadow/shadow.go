// Package shadow is the shadow-matching game screen.
package shadow

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	engine "github.com/abhisek/miguel/internal/shadow"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
)

// ShadowScreen shows a picture and asks which shadow belongs to it.
type ShadowScreen struct {
	sess     *session.Session
	round    *engine.Round
	cursor   int
	missed   map[int]bool
	solved   int
	unlocked bool
	errMsg   string
}

var _ screen.Screen = (*ShadowScreen)(nil)
var _ screen.KeyHintProvider = (*ShadowScreen)(nil)

// New creates the shadow screen and draws the first round.
func New(sess *session.Session) *ShadowScreen {
	s := &ShadowScreen{sess: sess}
	s.newRound()
	return s
}

func (s *ShadowScreen) Init() tea.Cmd { return nil }

func (s *ShadowScreen) Title() string { return "Shadow Match" }

func (s *ShadowScreen) KeyHints() []layout.KeyHint {
	if s.round != nil && s.round.Done() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Pick"},
		{Key: "1-" + strconv.Itoa(engine.DefaultChoices), Description: "Pick shadow"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShadowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RecordedMsg:
		if msg.Game != session.GameShadow {
			return s, nil
		}
		if msg.Err != nil {
			s.errMsg = "Could not save your progress."
		} else if msg.Result.JustUnlocked {
			s.unlocked = true
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *ShadowScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if s.round == nil {
		return s, nil
	}
	if s.round.Done() {
		if key == "enter" || key == "space" || key == "n" {
			s.newRound()
		}
		return s, nil
	}

	n := len(s.round.Choices)
	switch key {
	case "left", "h", "up", "k":
		s.cursor = (s.cursor + n - 1) % n
	case "right", "l", "down", "j":
		s.cursor = (s.cursor + 1) % n
	case "enter", "space":
		return s, s.choose(s.cursor)
	default:
		if i, err := strconv.Atoi(key); err == nil && i >= 1 && i <= n {
			s.cursor = i - 1
			return s, s.choose(i - 1)
		}
	}
	return s, nil
}

func (s *ShadowScreen) choose(i int) tea.Cmd {
	correct, justSolved := s.round.Choose(i)
	if !correct {
		s.missed[i] = true
		return nil
	}
	if !justSolved {
		return nil
	}
	s.solved++
	return screen.Record(s.sess, session.GameShadow)
}

func (s *ShadowScreen) newRound() {
	r, err := engine.NewRound(s.sess.Rand(), s.sess.Catalog.Shadows, engine.DefaultChoices)
	if err != nil {
		s.round = nil
		s.errMsg = "Not enough pictures to play."
		return
	}
	s.round = r
	s.cursor = 0
	s.missed = make(map[int]bool)
}

func (s *ShadowScreen) View(width, height int) string {
	if s.round == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	var sections []string
	target := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Render(s.round.Target.Emoji + "  " + strings.ToUpper(s.round.Target.Name))
	sections = append(sections, target)
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Which shadow is mine?"))
	sections = append(sections, s.renderChoices())

	switch {
	case s.round.Done():
		sections = append(sections, components.WinBanner("That's it!", width/2))
	case len(s.missed) > 0:
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("Not that one. Try again!"))
	}
	if s.unlocked {
		sections = append(sections, components.MissionBanner(width/2))
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

// renderChoices draws each candidate as a dimmed silhouette card. The
// matching card lights up once the round is solved.
func (s *ShadowScreen) renderChoices() string {
	cards := make([]string, len(s.round.Choices))
	for i, c := range s.round.Choices {
		style := lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Background(lipgloss.Color("#111111")).
			Faint(true)
		switch {
		case s.round.Done() && c == s.round.Target:
			style = style.Faint(false).BorderForeground(theme.Success)
		case s.missed[i]:
			style = style.BorderForeground(theme.Error)
		case i == s.cursor && !s.round.Done():
			style = style.BorderForeground(theme.ArcadeYellow)
		}
		cards[i] = style.Render(c.Emoji) + "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).Width(8).Align(lipgloss.Center).Render(strconv.Itoa(i+1))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
