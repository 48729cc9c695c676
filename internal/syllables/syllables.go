// Package syllables validates a child assembling a word from shuffled
// syllable tiles.
package syllables

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Outcome is the result of picking a tile.
type Outcome int

const (
	// Continue means the selection is still a prefix of the word.
	Continue Outcome = iota
	// Success means the selection spells the word.
	Success
	// Mismatch means the selection left the word; the caller clears it
	// after a short pause.
	Mismatch
	// Unavailable means the tile is used up or out of range.
	Unavailable
	// Finished means the round was already won.
	Finished
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Success:
		return "success"
	case Mismatch:
		return "mismatch"
	case Unavailable:
		return "unavailable"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Round is one word to assemble.
type Round struct {
	target   []string
	word     string
	tiles    []string
	selected []int // tile indexes in pick order
	done     bool
}

// NewRound shuffles target's syllables into tiles.
func NewRound(target []string, rng *rand.Rand) *Round {
	tiles := slices.Clone(target)
	rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
	return &Round{
		target: slices.Clone(target),
		word:   strings.Join(target, ""),
		tiles:  tiles,
	}
}

// Word returns the target word.
func (r *Round) Word() string { return r.word }

// Target returns the syllables in order.
func (r *Round) Target() []string { return slices.Clone(r.target) }

// Tiles returns the shuffled tiles.
func (r *Round) Tiles() []string { return slices.Clone(r.tiles) }

// Selection returns the syllables picked so far.
func (r *Round) Selection() []string {
	out := make([]string, len(r.selected))
	for i, idx := range r.selected {
		out[i] = r.tiles[idx]
	}
	return out
}

// Done reports whether the word has been assembled.
func (r *Round) Done() bool { return r.done }

// Available reports whether tile i can still be picked. A syllable that
// occurs several times in the word stays available until every copy is used.
func (r *Round) Available(i int) bool {
	if r.done || i < 0 || i >= len(r.tiles) {
		return false
	}
	return !slices.Contains(r.selected, i)
}

// Pick appends tile i to the selection and compares the assembled text
// with the start of the word.
func (r *Round) Pick(i int) Outcome {
	if r.done {
		return Finished
	}
	if !r.Available(i) {
		return Unavailable
	}
	r.selected = append(r.selected, i)

	assembled := strings.Join(r.Selection(), "")
	switch {
	case assembled == r.word:
		r.done = true
		return Success
	case strings.HasPrefix(r.word, assembled):
		return Continue
	default:
		return Mismatch
	}
}

// Clear empties the selection after a mismatch.
func (r *Round) Clear() {
	if r.done {
		return
	}
	r.selected = r.selected[:0]
}
