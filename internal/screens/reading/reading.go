// Package reading shows today's story or devotional.
package reading

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/content"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
)

// Kind selects what the screen reads.
type Kind int

const (
	Story Kind = iota
	Devotional
)

type loadedMsg struct {
	Content content.Content
}

// ReadingScreen loads one piece of daily content and lets the child read
// it. Finishing the devotional completes the faith mission.
type ReadingScreen struct {
	sess    *session.Session
	kind    Kind
	content content.Content
	loaded  bool
	offset  int

	done     bool
	unlocked bool
	errMsg   string
}

var _ screen.Screen = (*ReadingScreen)(nil)
var _ screen.KeyHintProvider = (*ReadingScreen)(nil)

// New creates a reading screen for kind.
func New(sess *session.Session, kind Kind) *ReadingScreen {
	return &ReadingScreen{sess: sess, kind: kind}
}

func (r *ReadingScreen) Init() tea.Cmd {
	sess, kind := r.sess, r.kind
	return func() tea.Msg {
		ctx := context.Background()
		child := sess.Child()
		if kind == Devotional {
			return loadedMsg{Content: sess.Content.Devotional(ctx, child)}
		}
		return loadedMsg{Content: sess.Content.Story(ctx, child)}
	}
}

func (r *ReadingScreen) Title() string {
	if r.kind == Devotional {
		return "Devotional"
	}
	return "Story Time"
}

func (r *ReadingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if r.kind == Devotional && !r.done {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "I read it!"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (r *ReadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		r.content = msg.Content
		r.loaded = true
		r.offset = 0
		return r, nil

	case screen.RecordedMsg:
		if msg.Game != session.GameFaith {
			return r, nil
		}
		if msg.Err != nil {
			r.errMsg = "Could not save your progress."
			r.done = false
			return r, nil
		}
		if msg.Result.JustUnlocked {
			r.unlocked = true
		}
		return r, nil

	case tea.KeyPressMsg:
		if !r.loaded {
			return r, nil
		}
		switch msg.String() {
		case "up", "k":
			if r.offset > 0 {
				r.offset--
			}
		case "down", "j":
			r.offset++
		case "enter", "space":
			if r.kind == Devotional && !r.done {
				r.done = true
				return r, screen.Record(r.sess, session.GameFaith)
			}
		}
	}
	return r, nil
}

func (r *ReadingScreen) View(width, height int) string {
	if !r.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Opening the book..."))
	}

	textWidth := min(max(width-8, 20), 70)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(r.content.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).Render(r.content.Body))
	if r.content.Moral != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(textWidth).Foreground(theme.Secondary).Italic(true).Render(r.content.Moral))
	}

	lines := strings.Split(b.String(), "\n")
	visible := max(height-6, 3)
	r.offset = min(r.offset, max(len(lines)-visible, 0))
	end := min(r.offset+visible, len(lines))
	body := strings.Join(lines[r.offset:end], "\n")

	sections := []string{body}
	if r.done {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Amen! Devotional done for today."))
	}
	if r.unlocked {
		sections = append(sections, components.MissionBanner(width/2))
	}
	if r.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(r.errMsg))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}
