package puzzle

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/miguel/internal/screen"
	"github.com/abhisek/miguel/internal/session/sessiontest"
	"github.com/abhisek/miguel/internal/slidepuzzle"
)

// oneMoveFromSolved returns a round whose blank sits left of the corner.
func oneMoveFromSolved(bg string) *slidepuzzle.Round {
	p := slidepuzzle.NewSolved(slidepuzzle.N)
	p.Move(p.Blank() - 1)
	return &slidepuzzle.Round{Puzzle: p, Background: bg}
}

func TestNewRoundIsShuffled(t *testing.T) {
	s := New(sessiontest.New(1))
	assert.False(t, s.round.Puzzle.Solved())
	assert.Equal(t, s.round.Puzzle.Blank(), s.cursor)
	assert.NotEmpty(t, s.round.Background)
}

func TestSolveWithCursorRecords(t *testing.T) {
	s := New(sessiontest.New(1))
	s.round = oneMoveFromSolved(s.round.Background)
	s.cursor = 7

	// Cursor to the last tile, then slide it.
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	require.Equal(t, 8, s.cursor)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, s.round.Won())

	rec, ok := cmd().(screen.RecordedMsg)
	require.True(t, ok)
	require.NoError(t, rec.Err)
	assert.Equal(t, 1, rec.Result.Progress.PuzzlesSolved)

	// Further clicks after the win are ignored.
	_, cmd = s.Update(tea.KeyPressMsg{Code: '8', Text: "8"})
	assert.Nil(t, cmd)
}

func TestSlideByNumber(t *testing.T) {
	s := New(sessiontest.New(1))
	s.round = oneMoveFromSolved(s.round.Background)

	_, cmd := s.Update(tea.KeyPressMsg{Code: '8', Text: "8"})
	require.NotNil(t, cmd)
	assert.True(t, s.round.Puzzle.Solved())
}

func TestNonAdjacentClickIgnored(t *testing.T) {
	s := New(sessiontest.New(1))
	s.round = oneMoveFromSolved(s.round.Background)
	before := s.round.Puzzle.Tiles()

	_, cmd := s.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.Nil(t, cmd)
	assert.Equal(t, before, s.round.Puzzle.Tiles())
}

func TestNextRoundChangesBackground(t *testing.T) {
	s := New(sessiontest.New(4))
	s.round = oneMoveFromSolved(s.round.Background)
	s.previous = s.round.Background
	first := s.round.Background
	s.Update(tea.KeyPressMsg{Code: '8', Text: "8"})

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, s.round.Won())
	assert.NotEqual(t, first, s.round.Background)
}

func TestViewShowsBackgroundName(t *testing.T) {
	s := New(sessiontest.New(1))
	assert.Contains(t, s.View(120, 40), strings.ToUpper(s.round.Background))
}
