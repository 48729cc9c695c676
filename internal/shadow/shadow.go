// Package shadow runs "which shadow matches?" rounds.
package shadow

import (
	"errors"
	"math/rand/v2"
)

// DefaultChoices is the number of silhouettes shown per round.
const DefaultChoices = 4

// ErrNotEnoughItems is returned when the pool cannot fill a round.
var ErrNotEnoughItems = errors.New("shadow: not enough items for a round")

// Item is a picture the child matches to its silhouette.
type Item struct {
	Name  string `toml:"name"`
	Emoji string `toml:"emoji"`
}

// Round shows one target and a set of candidate shadows.
type Round struct {
	Target  Item
	Choices []Item
	answer  int
	done    bool
}

// NewRound draws a target and choices-1 distinct distractors from items.
func NewRound(rng *rand.Rand, items []Item, choices int) (*Round, error) {
	if choices < 2 {
		choices = DefaultChoices
	}
	if len(items) < choices {
		return nil, ErrNotEnoughItems
	}

	perm := rng.Perm(len(items))[:choices]
	picked := make([]Item, choices)
	for i, idx := range perm {
		picked[i] = items[idx]
	}
	answer := rng.IntN(choices)
	return &Round{
		Target:  picked[answer],
		Choices: picked,
		answer:  answer,
	}, nil
}

// Choose reports whether choice i is the target's shadow. The first correct
// choice ends the round and returns justSolved.
func (r *Round) Choose(i int) (correct, justSolved bool) {
	if i < 0 || i >= len(r.Choices) {
		return false, false
	}
	if i != r.answer {
		return false, false
	}
	if r.done {
		return true, false
	}
	r.done = true
	return true, true
}

// Done reports whether the round was solved.
func (r *Round) Done() bool { return r.done }
