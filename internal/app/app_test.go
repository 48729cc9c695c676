package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/router"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/session/sessiontest"
	"github.com/abhisek/miguel/internal/ui/layout"
)

type formScreen struct {
	capturing bool
	keys      int
}

func (f *formScreen) Init() tea.Cmd { return nil }
func (f *formScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		f.keys++
	}
	return f, nil
}
func (f *formScreen) View(int, int) string { return "form" }
func (f *formScreen) Title() string        { return "Form" }
func (f *formScreen) CapturingInput() bool { return f.capturing }

func TestHeaderStatus(t *testing.T) {
	p := progress.NewDailyProgress("kid", "2026-05-02")
	p.MathCount = progress.MathGoal
	p.FaithDone = true

	st := headerStatus("Ana", p)
	assert.Equal(t, "Ana", st.Player)
	assert.Equal(t, 2, st.MissionsDone)
	assert.Equal(t, 7, st.Missions)
	assert.False(t, st.Unlocked)
}

func TestRefreshStatusReadsTracker(t *testing.T) {
	sess := sessiontest.New(1)
	_, err := sess.Complete(context.Background(), session.GameFaith)
	require.NoError(t, err)

	m := newAppModel(sess)
	msg, ok := m.refreshStatus()().(statusMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, 1, msg.Status.MissionsDone)

	updated, _ := m.Update(msg)
	assert.Equal(t, 1, updated.(AppModel).status.MissionsDone)
}

func TestRecordedMsgRefreshesHeader(t *testing.T) {
	m := newAppModel(sessiontest.New(1))
	_, cmd := m.Update(screen.RecordedMsg{Game: session.GameMath})
	assert.NotNil(t, cmd)
}

func TestEscPopsUnlessCapturing(t *testing.T) {
	m := newAppModel(sessiontest.New(1))
	form := &formScreen{capturing: true}
	m.router.Push(form)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, form.keys)

	form.capturing = false
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	assert.Equal(t, 1, form.keys)
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(sessiontest.New(1))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestFooterHintsFromScreen(t *testing.T) {
	m := newAppModel(sessiontest.New(1))
	hints := m.footerHints(m.router.Active())
	require.NotEmpty(t, hints)
	assert.Equal(t, "Ctrl+C", hints[len(hints)-1].Key)

	m.router.Push(&formScreen{})
	hints = m.footerHints(m.router.Active())
	assert.Equal(t, "Esc", hints[0].Key)
}

func TestHeaderShowsPlayerAndMissions(t *testing.T) {
	m := newAppModel(sessiontest.New(1))
	m.status.Missions = 7
	header := layout.Frame{Title: "Home", Status: m.status}.Header(100)
	assert.Contains(t, header, "Guest")
	assert.Contains(t, header, "☆ 0/7")
}
