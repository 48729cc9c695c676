package shadow

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var items = []Item{
	{"cat", "🐱"}, {"dog", "🐶"}, {"fish", "🐟"}, {"bird", "🐦"}, {"tree", "🌳"}, {"star", "⭐"},
}

func TestNewRound(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 100; i++ {
		r, err := NewRound(rng, items, DefaultChoices)
		require.NoError(t, err)
		require.Len(t, r.Choices, DefaultChoices)

		seen := map[string]bool{}
		hits := 0
		for _, c := range r.Choices {
			assert.False(t, seen[c.Name], "duplicate choice %s", c.Name)
			seen[c.Name] = true
			if c == r.Target {
				hits++
			}
		}
		assert.Equal(t, 1, hits)
	}
}

func TestNotEnoughItems(t *testing.T) {
	_, err := NewRound(rand.New(rand.NewPCG(1, 1)), items[:3], 4)
	assert.ErrorIs(t, err, ErrNotEnoughItems)
}

func TestChoose(t *testing.T) {
	r, err := NewRound(rand.New(rand.NewPCG(2, 2)), items, 4)
	require.NoError(t, err)

	wrong := (r.answer + 1) % len(r.Choices)
	correct, solved := r.Choose(wrong)
	assert.False(t, correct)
	assert.False(t, solved)
	assert.False(t, r.Done())

	correct, solved = r.Choose(r.answer)
	assert.True(t, correct)
	assert.True(t, solved)

	correct, solved = r.Choose(r.answer)
	assert.True(t, correct)
	assert.False(t, solved, "solved reported once")

	correct, _ = r.Choose(99)
	assert.False(t, correct)
}
