// Package drill is the daily arithmetic drill. Younger children pick from
// a few choices; older ones type the answer.
package drill

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/mathdrill"
	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/components"
	"github.com/abhisek/miguel/internal/ui/layout"
	"github.com/abhisek/miguel/internal/ui/theme"
)

// MathScreen asks one problem at a time and records every correct answer.
type MathScreen struct {
	sess  *session.Session
	level mathdrill.Level

	problem  mathdrill.Problem
	input    components.TextInput
	selected int

	showingFeedback bool
	lastCorrect     bool
	lastAnswer      string

	today    int
	correct  int
	unlocked bool
	errMsg   string
}

var _ screen.Screen = (*MathScreen)(nil)
var _ screen.KeyHintProvider = (*MathScreen)(nil)

// New creates the math screen with difficulty scaled to the active child.
func New(sess *session.Session) *MathScreen {
	m := &MathScreen{
		sess:  sess,
		level: mathdrill.LevelForAge(sess.Child().Age),
	}
	m.next()
	return m
}

func (m *MathScreen) Init() tea.Cmd {
	if m.problem.MultipleChoice() {
		return nil
	}
	return m.input.Init()
}

func (m *MathScreen) Title() string {
	return "Math"
}

func (m *MathScreen) KeyHints() []layout.KeyHint {
	if m.showingFeedback {
		return []layout.KeyHint{
			{Key: "Any key", Description: "Next problem"},
		}
	}
	if m.problem.MultipleChoice() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-" + strconv.Itoa(len(m.problem.Choices)), Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Type"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RecordedMsg:
		if msg.Game != session.GameMath {
			return m, nil
		}
		if msg.Err != nil {
			m.errMsg = "Could not save your progress."
			return m, nil
		}
		m.today = msg.Result.Progress.MathCount
		if msg.Result.JustUnlocked {
			m.unlocked = true
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if !m.problem.MultipleChoice() && !m.showingFeedback {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MathScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// Feedback: any key moves on.
	if m.showingFeedback {
		m.next()
		return m, m.Init()
	}

	key := msg.String()
	if key == "enter" {
		return m.submit()
	}

	if m.problem.MultipleChoice() {
		n := len(m.problem.Choices)
		switch key {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < n-1 {
				m.selected++
			}
		default:
			if i, err := strconv.Atoi(key); err == nil && i >= 1 && i <= n {
				m.selected = i - 1
				return m.submit()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit checks the current answer. Correct answers are recorded.
func (m *MathScreen) submit() (screen.Screen, tea.Cmd) {
	var answer string
	if m.problem.MultipleChoice() {
		answer = "#" + strconv.Itoa(m.selected+1)
	} else {
		answer = strings.TrimSpace(m.input.Value())
		if answer == "" {
			return m, nil
		}
	}
	return m, m.answer(answer)
}

func (m *MathScreen) answer(input string) tea.Cmd {
	m.lastCorrect = m.problem.Check(input)
	m.lastAnswer = input
	m.showingFeedback = true
	if !m.problem.MultipleChoice() {
		m.input.Submit(m.lastCorrect)
	}
	if !m.lastCorrect {
		return nil
	}
	m.correct++
	return screen.Record(m.sess, session.GameMath)
}

func (m *MathScreen) next() {
	m.problem = mathdrill.Generate(m.sess.Rand(), m.level)
	m.selected = 0
	m.showingFeedback = false
	m.input = components.NewTextInput("?", true, 4)
}

func (m *MathScreen) View(width, height int) string {
	var sections []string

	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Render(m.problem.Text())
	sections = append(sections, question)

	switch {
	case m.showingFeedback:
		sections = append(sections, m.renderFeedback())
	case m.problem.MultipleChoice():
		sections = append(sections, m.renderChoices())
	default:
		sections = append(sections, m.input.View())
	}

	counter := fmt.Sprintf("%d/%d today", min(m.today, progress.MathGoal), progress.MathGoal)
	if m.today >= progress.MathGoal {
		counter = fmt.Sprintf("Math mission done! %d today", m.today)
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter))

	if m.unlocked {
		sections = append(sections, components.MissionBanner(width/2))
	}
	if m.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(m.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (m *MathScreen) renderChoices() string {
	cells := make([]string, len(m.problem.Choices))
	for i, c := range m.problem.Choices {
		style := lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)
		if i == m.selected {
			style = style.BorderForeground(theme.ArcadeYellow).Foreground(theme.ArcadeYellow).Bold(true)
		}
		cells[i] = style.Render(fmt.Sprintf("%d) %d", i+1, c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *MathScreen) renderFeedback() string {
	if m.lastCorrect {
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Not quite") + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("The answer is %d", m.problem.Answer))
}
