package wordsearch

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testPool = []string{"SOL", "LUA", "MAR", "CASA", "GATO", "BOLA", "PATO", "FLOR", "ARCO", "UVA"}

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 2024))
}

func TestPlacementsReadBack(t *testing.T) {
	for seed := uint64(0); seed < 300; seed++ {
		g := Generate(testRNG(seed), testPool, nil)
		require.NotEmpty(t, g.Placements)
		require.LessOrEqual(t, len(g.Placements), WordsPerRound)

		seen := map[string]bool{}
		for _, p := range g.Placements {
			require.False(t, seen[p.Word], "seed %d: %s placed twice", seed, p.Word)
			seen[p.Word] = true

			var got []byte
			for _, c := range p.Cells() {
				require.True(t, inGrid(c), "seed %d: %s out of bounds", seed, p.Word)
				got = append(got, g.Letters[c.Row][c.Col])
			}
			require.Equal(t, p.Word, string(got), "seed %d", seed)
		}
	}
}

func TestGridFullyFilled(t *testing.T) {
	g := Generate(testRNG(1), testPool, nil)
	for r := range Size {
		for c := range Size {
			assert.Contains(t, Alphabet, string(g.Letters[r][c]))
		}
	}
}

func TestLine(t *testing.T) {
	cells, ok := Line(Cell{2, 5}, Cell{2, 2})
	require.True(t, ok)
	assert.Equal(t, []Cell{{2, 5}, {2, 4}, {2, 3}, {2, 2}}, cells)

	cells, ok = Line(Cell{0, 1}, Cell{2, 1})
	require.True(t, ok)
	assert.Equal(t, []Cell{{0, 1}, {1, 1}, {2, 1}}, cells)

	cells, ok = Line(Cell{3, 3}, Cell{3, 3})
	require.True(t, ok)
	assert.Equal(t, []Cell{{3, 3}}, cells)

	_, ok = Line(Cell{0, 0}, Cell{2, 2})
	assert.False(t, ok, "diagonals are not allowed")
}

func TestSelectForwardReversedOnce(t *testing.T) {
	g := Generate(testRNG(8), testPool, nil)
	require.NotEmpty(t, g.Placements)

	first := g.Placements[0]
	cells := first.Cells()
	start, end := cells[0], cells[len(cells)-1]

	word, ok := g.Select(end, start)
	require.True(t, ok, "reversed selection must match")
	assert.Equal(t, first.Word, word)
	for _, c := range cells {
		assert.True(t, g.Found(c.Row, c.Col))
	}

	_, ok = g.Select(start, end)
	assert.False(t, ok, "second attempt at a found word is a no-op")
	assert.NotContains(t, g.Remaining(), first.Word)
}

func TestWinAfterAllWords(t *testing.T) {
	g := Generate(testRNG(21), testPool, nil)
	require.NotEmpty(t, g.Placements)
	for i, p := range g.Placements {
		assert.False(t, g.Won())
		cells := p.Cells()
		_, ok := g.Select(cells[0], cells[len(cells)-1])
		require.True(t, ok, "placement %d (%s)", i, p.Word)
	}
	assert.True(t, g.Won())
	assert.Empty(t, g.Remaining())
}

func TestSelectRejectsInvalid(t *testing.T) {
	g := Generate(testRNG(2), testPool, nil)
	_, ok := g.Select(Cell{0, 0}, Cell{3, 3})
	assert.False(t, ok)
	_, ok = g.Select(Cell{-1, 0}, Cell{0, 0})
	assert.False(t, ok)
	assert.Len(t, g.Remaining(), len(g.Placements))
}

func TestSkippedWordLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	g := &Grid{remaining: map[string]bool{}}
	for r := range Size {
		for c := range Size {
			g.Letters[r][c] = 'Z'
		}
	}

	g.placeWords(testRNG(3), []string{"CASA", "ZZZ"}, zap.New(core))

	require.Len(t, g.Placements, 1)
	assert.Equal(t, "ZZZ", g.Placements[0].Word, "overlap is allowed when letters agree")
	assert.Equal(t, []string{"ZZZ"}, g.Remaining())

	entries := logs.FilterMessage("word search placement skipped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "CASA", entries[0].ContextMap()["word"])
	assert.EqualValues(t, MaxAttempts, entries[0].ContextMap()["attempts"])
}

func TestPickWordsFiltersPool(t *testing.T) {
	words := pickWords(testRNG(1), []string{"sol", "SOL", "ÁRVORE", "", "luz"}, 5)
	assert.ElementsMatch(t, []string{"SOL", "LUZ"}, words)
}
