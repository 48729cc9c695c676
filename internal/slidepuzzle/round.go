package slidepuzzle

import "math/rand/v2"

// PickBackground draws a background from images, avoiding previous when
// there is more than one to choose from.
func PickBackground(rng *rand.Rand, images []string, previous string) string {
	switch len(images) {
	case 0:
		return ""
	case 1:
		return images[0]
	}
	candidates := make([]string, 0, len(images))
	for _, img := range images {
		if img != previous {
			candidates = append(candidates, img)
		}
	}
	if len(candidates) == 0 {
		return images[rng.IntN(len(images))]
	}
	return candidates[rng.IntN(len(candidates))]
}

// Round is one puzzle game: a shuffled board over a background picture.
type Round struct {
	Puzzle     *Puzzle
	Background string
	won        bool
}

// NewRound shuffles a fresh board and picks a background that differs
// from previous.
func NewRound(rng *rand.Rand, backgrounds []string, previous string) *Round {
	p, _ := Shuffle(rng, N, ShuffleMoves)
	// A shuffle can walk back to the start; a solved board is no round.
	for p.Solved() {
		p, _ = Shuffle(rng, N, ShuffleMoves)
	}
	return &Round{
		Puzzle:     p,
		Background: PickBackground(rng, backgrounds, previous),
	}
}

// Won reports whether the board has been solved.
func (r *Round) Won() bool { return r.won }

// Click moves the tile at index i. justWon is true only on the move that
// solves the board; clicks after the win are ignored.
func (r *Round) Click(i int) (moved, justWon bool) {
	if r.won {
		return false, false
	}
	if !r.Puzzle.Move(i) {
		return false, false
	}
	if r.Puzzle.Solved() {
		r.won = true
		return true, true
	}
	return true, false
}
