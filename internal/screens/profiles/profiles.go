// Package profiles lets the family pick who is playing and add a child.
// Removing a profile needs the parent PIN and lives in the CLI.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/profile"
	"github.com/abhisek/miguel/internal/router"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
)

type stage int

const (
	stageList stage = iota
	stageName
	stageAge
)

// ProfilesScreen lists the child profiles on this device.
type ProfilesScreen struct {
	sess   *session.Session
	stage  stage
	cursor int

	nameInput components.TextInput
	ageInput  components.TextInput
	name      string

	errMsg string
}

var _ screen.Screen = (*ProfilesScreen)(nil)
var _ screen.KeyHintProvider = (*ProfilesScreen)(nil)
var _ screen.InputCapturer = (*ProfilesScreen)(nil)

// New creates the profiles screen.
func New(sess *session.Session) *ProfilesScreen {
	p := &ProfilesScreen{sess: sess}
	if active, ok := sess.Profiles.Active(); ok {
		for i, c := range sess.Profiles.List() {
			if c.ID == active.ID {
				p.cursor = i
			}
		}
	}
	return p
}

func (p *ProfilesScreen) Init() tea.Cmd { return nil }

func (p *ProfilesScreen) Title() string { return "Who's playing?" }

// CapturingInput keeps Esc inside the add-player form.
func (p *ProfilesScreen) CapturingInput() bool { return p.stage != stageList }

func (p *ProfilesScreen) KeyHints() []layout.KeyHint {
	if p.stage != stageList {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// entries is the number of selectable rows: every profile plus "add".
func (p *ProfilesScreen) entries() int {
	n := len(p.sess.Profiles.List())
	if n < profile.MaxProfiles {
		n++
	}
	return n
}

func (p *ProfilesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, p.forward(msg)
	}
	key := kmsg.String()

	switch p.stage {
	case stageList:
		switch key {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < p.entries()-1 {
				p.cursor++
			}
		case "enter", "space":
			return p, p.selectEntry()
		}
		return p, nil

	case stageName:
		switch key {
		case "esc":
			p.stage = stageList
			return p, nil
		case "enter":
			name := strings.TrimSpace(p.nameInput.Value())
			if name == "" {
				p.errMsg = "Type a name first."
				return p, nil
			}
			p.name = name
			p.errMsg = ""
			p.stage = stageAge
			p.ageInput = components.NewTextInput("age", true, 2)
			return p, p.ageInput.Init()
		}

	case stageAge:
		switch key {
		case "esc":
			p.stage = stageList
			return p, nil
		case "enter":
			return p, p.create()
		}
	}
	return p, p.forward(msg)
}

func (p *ProfilesScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.stage {
	case stageName:
		p.nameInput, cmd = p.nameInput.Update(msg)
	case stageAge:
		p.ageInput, cmd = p.ageInput.Update(msg)
	}
	return cmd
}

func (p *ProfilesScreen) selectEntry() tea.Cmd {
	list := p.sess.Profiles.List()
	if p.cursor >= len(list) {
		p.stage = stageName
		p.errMsg = ""
		p.nameInput = components.NewTextInput("name", false, 20)
		return p.nameInput.Init()
	}
	if err := p.sess.Profiles.SetActive(context.Background(), list[p.cursor].ID); err != nil {
		p.errMsg = "Could not switch player."
		p.sess.Logger.Sugar().Warnw("set active profile failed", "error", err)
		return nil
	}
	return router.Back
}

func (p *ProfilesScreen) create() tea.Cmd {
	age, err := p.ageInput.NumericValue()
	if err != nil {
		p.errMsg = "Type your age with numbers."
		return nil
	}
	c, err := p.sess.Profiles.Create(context.Background(), profile.ChildProfile{Name: p.name, Age: age})
	switch {
	case errors.Is(err, profile.ErrInvalidAge):
		p.errMsg = fmt.Sprintf("Age must be %d to %d.", profile.MinAge, profile.MaxAge)
		return nil
	case errors.Is(err, profile.ErrProfileLimit):
		p.errMsg = "This device already has five players."
		p.stage = stageList
		return nil
	case err != nil:
		p.errMsg = "Could not save the new player."
		p.sess.Logger.Sugar().Warnw("create profile failed", "error", err)
		return nil
	}

	p.errMsg = ""
	p.stage = stageList
	for i, existing := range p.sess.Profiles.List() {
		if existing.ID == c.ID {
			p.cursor = i
		}
	}
	return nil
}

func (p *ProfilesScreen) View(width, height int) string {
	var body string
	switch p.stage {
	case stageName:
		body = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("What's your name?") +
			"\n\n" + p.nameInput.View()
	case stageAge:
		body = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("How old are you, "+p.name+"?") +
			"\n\n" + p.ageInput.View()
	default:
		body = p.renderList()
	}
	if p.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (p *ProfilesScreen) renderList() string {
	active, hasActive := p.sess.Profiles.Active()
	list := p.sess.Profiles.List()

	var b strings.Builder
	for i, c := range list {
		label := c.Name + " (" + strconv.Itoa(c.Age) + ")"
		if hasActive && c.ID == active.ID {
			label += " ★"
		}
		b.WriteString(p.renderRow(i, label))
		b.WriteString("\n")
	}
	if len(list) < profile.MaxProfiles {
		b.WriteString(p.renderRow(len(list), "+ Add a player"))
		b.WriteString("\n")
	}
	if len(list) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Playing as Guest"))
	}
	return b.String()
}

func (p *ProfilesScreen) renderRow(i int, label string) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == p.cursor {
		prefix = "▸ "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(prefix + label)
}
