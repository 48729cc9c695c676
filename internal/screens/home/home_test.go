package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/miguel/internal/router"
	"github.com/abhisek/miguel/internal/screens/drill"
	"github.com/abhisek/miguel/internal/screens/placeholder"
	"github.com/abhisek/miguel/internal/screens/summary"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/session/sessiontest"
)

func loadedHome(t *testing.T, sess *session.Session) *HomeScreen {
	t.Helper()
	h := New(sess)
	h.Update(h.Init()())
	require.True(t, h.loaded)
	return h
}

func indexOf(h *HomeScreen, label string) int {
	for i, l := range h.labels {
		if l == label {
			return i
		}
	}
	return -1
}

func TestMissionBoardLoaded(t *testing.T) {
	h := loadedHome(t, sessiontest.New(1))
	assert.Len(t, h.missions, 7)
	assert.False(t, h.unlocked)
	assert.Equal(t, MascotSleepy, h.mascot())

	view := h.View(120, 60)
	assert.Contains(t, view, "Math problems")
	assert.Contains(t, view, "open the arcade")
}

func TestArcadeLockedUntilUnlocked(t *testing.T) {
	h := loadedHome(t, sessiontest.New(1))
	snake := indexOf(h, "SNAKE")
	require.GreaterOrEqual(t, snake, 0)
	assert.True(t, h.menu.Items[snake].Disabled)

	// Moving down from the last game skips the locked entries.
	h.menu.Selected = indexOf(h, "STORY TIME")
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, "EXIT", h.labels[h.menu.Selected])
}

func TestResumeAfterUnlock(t *testing.T) {
	sess := sessiontest.New(1)
	h := loadedHome(t, sess)

	ctx := context.Background()
	p, err := sess.Today(ctx)
	require.NoError(t, err)
	p.ArcadeUnlocked = true
	require.NoError(t, sess.Tracker.Replace(ctx, p))

	h.Update(h.Resume()())
	assert.True(t, h.unlocked)
	assert.Equal(t, MascotCelebrating, h.mascot())

	snake := indexOf(h, "SNAKE")
	assert.False(t, h.menu.Items[snake].Disabled)

	h.menu.Selected = snake
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &placeholder.PlaceholderScreen{}, push.Screen)
	assert.Contains(t, h.View(120, 60), "ARCADE OPEN")
}

func TestMathOpensDrill(t *testing.T) {
	h := loadedHome(t, sessiontest.New(1))
	require.Equal(t, "MATH", h.labels[h.menu.Selected])

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &drill.MathScreen{}, push.Screen)
}

func TestPlayersHiddenWithoutProfiles(t *testing.T) {
	h := loadedHome(t, sessiontest.New(1))
	assert.Equal(t, -1, indexOf(h, "PLAYERS"))
}

func TestMascotAfterPlaying(t *testing.T) {
	sess := sessiontest.New(1)
	_, err := sess.Complete(context.Background(), session.GameMaze)
	require.NoError(t, err)

	h := loadedHome(t, sess)
	assert.Equal(t, MascotIdle, h.mascot())
}

func TestCompactView(t *testing.T) {
	h := loadedHome(t, sessiontest.New(1))
	view := h.View(80, 24)
	assert.Contains(t, view, "M · I · G · U · E · L")
	assert.Contains(t, view, "SNAKE (locked)")
}

func TestExitShowsSummary(t *testing.T) {
	h := loadedHome(t, sessiontest.New(1))
	h.menu.Selected = indexOf(h, "EXIT")

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &summary.SummaryScreen{}, push.Screen)
}
