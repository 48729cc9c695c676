package drill

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/miguel/internal/mathdrill"
	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/session/sessiontest"
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typed(t *testing.T) *MathScreen {
	t.Helper()
	m := New(sessiontest.New(11))
	m.level = mathdrill.LevelForAge(9)
	m.next()
	require.False(t, m.problem.MultipleChoice())
	return m
}

func TestGuestGetsMultipleChoice(t *testing.T) {
	m := New(sessiontest.New(1))
	assert.True(t, m.problem.MultipleChoice())
	assert.Contains(t, m.View(80, 24), m.problem.Text())
}

func TestCorrectChoiceIsRecorded(t *testing.T) {
	m := New(sessiontest.New(2))
	idx := slices.Index(m.problem.Choices, m.problem.Answer)
	require.GreaterOrEqual(t, idx, 0)

	_, cmd := m.Update(keyRune(rune('1' + idx)))
	require.NotNil(t, cmd)
	assert.True(t, m.showingFeedback)
	assert.True(t, m.lastCorrect)

	msg := cmd()
	rec, ok := msg.(screen.RecordedMsg)
	require.True(t, ok)
	require.NoError(t, rec.Err)
	assert.Equal(t, session.GameMath, rec.Game)
	assert.Equal(t, 1, rec.Result.Progress.MathCount)

	m.Update(msg)
	assert.Equal(t, 1, m.today)
	assert.Contains(t, m.View(80, 24), "1/30 today")
}

func TestWrongChoiceShowsAnswer(t *testing.T) {
	m := New(sessiontest.New(3))
	wrong := slices.IndexFunc(m.problem.Choices, func(c int) bool { return c != m.problem.Answer })
	require.GreaterOrEqual(t, wrong, 0)

	m.selected = wrong
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.lastCorrect)
	assert.Contains(t, m.View(80, 24), "The answer is "+strconv.Itoa(m.problem.Answer))
}

func TestArrowsMoveSelection(t *testing.T) {
	m := New(sessiontest.New(4))
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.selected)
	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.selected)
	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, m.selected)
}

func TestAnyKeyAfterFeedbackDrawsNextProblem(t *testing.T) {
	m := New(sessiontest.New(5))
	m.answer("#1")
	require.True(t, m.showingFeedback)

	m.Update(keyRune('x'))
	assert.False(t, m.showingFeedback)
	assert.Equal(t, 0, m.selected)
}

func TestTypedAnswer(t *testing.T) {
	m := typed(t)
	for _, r := range strconv.Itoa(m.problem.Answer) {
		m.Update(keyRune(r))
	}
	assert.Equal(t, strconv.Itoa(m.problem.Answer), m.input.Value())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.lastCorrect)
	assert.Equal(t, 1, m.correct)
}

func TestTypedInputIgnoresLetters(t *testing.T) {
	m := typed(t)
	m.Update(keyRune('a'))
	assert.Empty(t, m.input.Value())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.showingFeedback)
}

func TestTypedWrongAnswer(t *testing.T) {
	m := typed(t)
	cmd := m.answer(strconv.Itoa(m.problem.Answer + 1))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.correct)
	assert.True(t, strings.Contains(m.View(80, 24), "Not quite"))
}

func TestMissionBannerOnUnlock(t *testing.T) {
	m := New(sessiontest.New(6))
	m.Update(screen.RecordedMsg{Game: session.GameMath})
	assert.False(t, m.unlocked)

	var rec screen.RecordedMsg
	rec.Game = session.GameMath
	rec.Result.JustUnlocked = true
	rec.Result.Progress.MathCount = 30
	m.Update(rec)
	view := m.View(100, 30)
	assert.Contains(t, view, "MISSION COMPLETE")
	assert.Contains(t, view, "Math mission done!")
}
