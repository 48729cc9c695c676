// Package app is the root Bubble Tea model: a screen stack inside the
// header/footer frame, with the header tracking today's missions.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/router"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/screens/home"
	"github.com/abhisek/miguel/internal/screens/welcome"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/ui/layout"
)

type statusMsg struct {
	Status layout.HeaderStatus
	Err    error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sess   *session.Session
	router *router.Router
	status layout.HeaderStatus
	width  int
	height int
}

// newAppModel starts on the welcome splash, which hands over to home.
func newAppModel(sess *session.Session) AppModel {
	splash := welcome.New(sess.PlayerName(), func() screen.Screen {
		return home.New(sess)
	})
	return AppModel{
		sess:   sess,
		router: router.New(splash),
		status: layout.HeaderStatus{Player: sess.PlayerName()},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.refreshStatus())
}

// refreshStatus reads today's progress for the header.
func (m AppModel) refreshStatus() tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		p, err := sess.Today(context.Background())
		if err != nil {
			return statusMsg{Err: err}
		}
		return statusMsg{Status: headerStatus(sess.PlayerName(), p)}
	}
}

func headerStatus(player string, p *progress.DailyProgress) layout.HeaderStatus {
	missions := progress.Missions(p)
	done := 0
	for _, ms := range missions {
		if ms.Done() {
			done++
		}
	}
	return layout.HeaderStatus{
		Player:       player,
		MissionsDone: done,
		Missions:     len(missions),
		Unlocked:     p.ArcadeUnlocked,
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		if msg.Err != nil {
			m.sess.Logger.Warn("header status refresh failed", zap.Error(msg.Err))
			return m, nil
		}
		m.status = msg.Status
		return m, nil

	case screen.RecordedMsg:
		if msg.Err != nil {
			m.sess.Logger.Error("recording round failed",
				zap.String("game", string(msg.Game)),
				zap.Error(msg.Err))
		}
		return m, tea.Batch(m.router.Update(msg), m.refreshStatus())

	case router.PopScreenMsg:
		return m, tea.Batch(m.router.Update(msg), m.refreshStatus())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Back
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	frame := layout.Frame{Status: m.status, Hints: m.footerHints(active)}
	if active != nil {
		frame.Title = active.Title()
	}
	v.SetContent(frame.Render(m.width, m.height, m.router.View))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctx context.Context, sess *session.Session) error {
	p := tea.NewProgram(newAppModel(sess), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
