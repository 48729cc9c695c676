package reading

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session"
	"github.com/abhisek/miguel/internal/session/sessiontest"
)

func loaded(t *testing.T, kind Kind) *ReadingScreen {
	t.Helper()
	r := New(sessiontest.New(1), kind)
	r.Update(r.Init()())
	require.True(t, r.loaded)
	return r
}

func TestStoryLoadsFallbackWithoutProvider(t *testing.T) {
	r := loaded(t, Story)
	assert.True(t, r.content.Fallback)
	assert.NotEmpty(t, r.content.Title)
	assert.Contains(t, r.View(100, 40), r.content.Title)
	assert.Equal(t, "Story Time", r.Title())
}

func TestStoryEnterRecordsNothing(t *testing.T) {
	r := loaded(t, Story)
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, r.done)
}

func TestDevotionalCompletesFaith(t *testing.T) {
	r := loaded(t, Devotional)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, r.done)

	rec, ok := cmd().(screen.RecordedMsg)
	require.True(t, ok)
	require.NoError(t, rec.Err)
	assert.Equal(t, session.GameFaith, rec.Game)
	assert.True(t, rec.Result.Progress.FaithDone)

	r.Update(rec)
	assert.Contains(t, r.View(100, 40), "Devotional done")

	// Only once per visit.
	_, cmd = r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	r := New(sessiontest.New(1), Devotional)
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, r.View(80, 24), "Opening the book")
}

func TestScrollIsClamped(t *testing.T) {
	r := loaded(t, Story)
	r.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, r.offset)

	for range 50 {
		r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	r.View(80, 10)
	assert.Less(t, r.offset, 50)
}
