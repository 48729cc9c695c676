package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/session"
)

// RecordedMsg carries the outcome of recording a finished round. The app
// refreshes the header from it before the active screen sees it.
type RecordedMsg struct {
	Game   session.Game
	Result progress.Result
	Err    error
}

// Record returns a command that records one finished round of g.
func Record(s *session.Session, g session.Game) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Complete(context.Background(), g)
		return RecordedMsg{Game: g, Result: res, Err: err}
	}
}

// RecordWordLevel returns a command that raises today's word level.
func RecordWordLevel(s *session.Session, level int) tea.Cmd {
	return func() tea.Msg {
		res, err := s.ReachWordLevel(context.Background(), level)
		return RecordedMsg{Game: session.GameWords, Result: res, Err: err}
	}
}
