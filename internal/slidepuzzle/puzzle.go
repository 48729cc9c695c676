// Package slidepuzzle implements the N x N sliding tile puzzle. Shuffles
// only ever make legal blank moves, so every shuffled board is solvable.
package slidepuzzle

import (
	"math/rand/v2"
	"slices"
)

const (
	// N is the default board side.
	N = 3

	// ShuffleMoves is the number of random blank moves in a shuffle.
	ShuffleMoves = 60
)

// Puzzle is a board of n*n tiles. The tile with value n*n-1 is the blank.
type Puzzle struct {
	n     int
	tiles []int
	blank int
}

// NewSolved returns a solved n x n board.
func NewSolved(n int) *Puzzle {
	tiles := make([]int, n*n)
	for i := range tiles {
		tiles[i] = i
	}
	return &Puzzle{n: n, tiles: tiles, blank: n*n - 1}
}

// Shuffle returns a board scrambled by moves random legal moves from the
// solved state, and the sequence of blank positions visited after each move.
func Shuffle(rng *rand.Rand, n, moves int) (*Puzzle, []int) {
	p := NewSolved(n)
	path := make([]int, 0, moves)
	for range moves {
		nb := p.neighbors(p.blank)
		p.swapBlank(nb[rng.IntN(len(nb))])
		path = append(path, p.blank)
	}
	return p, path
}

// Size returns the board side.
func (p *Puzzle) Size() int { return p.n }

// Tiles returns a copy of the tile values in board order.
func (p *Puzzle) Tiles() []int { return slices.Clone(p.tiles) }

// Blank returns the blank's index.
func (p *Puzzle) Blank() int { return p.blank }

// BlankValue is the tile value that marks the blank.
func (p *Puzzle) BlankValue() int { return p.n*p.n - 1 }

// Adjacent reports whether index i is 4-adjacent to the blank.
func (p *Puzzle) Adjacent(i int) bool {
	return slices.Contains(p.neighbors(p.blank), i)
}

// Move slides the tile at index i into the blank. Indexes out of range or
// not adjacent to the blank are rejected.
func (p *Puzzle) Move(i int) bool {
	if i < 0 || i >= len(p.tiles) || !p.Adjacent(i) {
		return false
	}
	p.swapBlank(i)
	return true
}

// Solved reports whether every tile sits at its own index.
func (p *Puzzle) Solved() bool {
	for i, v := range p.tiles {
		if v != i {
			return false
		}
	}
	return true
}

// Undo walks the blank back along a path returned by Shuffle, restoring
// the solved board.
func (p *Puzzle) Undo(path []int) {
	for k := len(path) - 2; k >= 0; k-- {
		p.swapBlank(path[k])
	}
	if len(path) > 0 {
		p.swapBlank(p.n*p.n - 1)
	}
}

func (p *Puzzle) swapBlank(i int) {
	p.tiles[p.blank], p.tiles[i] = p.tiles[i], p.tiles[p.blank]
	p.blank = i
}

func (p *Puzzle) neighbors(i int) []int {
	r, c := i/p.n, i%p.n
	var out []int
	if r > 0 {
		out = append(out, i-p.n)
	}
	if r < p.n-1 {
		out = append(out, i+p.n)
	}
	if c > 0 {
		out = append(out, i-1)
	}
	if c < p.n-1 {
		out = append(out, i+1)
	}
	return out
}

// Solvable applies the inversion parity rule for an n x n board whose
// solved state puts the blank last. For odd n the inversion count must be
// even. For even n, inversions plus the blank's row distance from the
// bottom must be even.
func Solvable(tiles []int, n int) bool {
	blankValue := n*n - 1
	inversions := 0
	blankRow := 0
	for i, a := range tiles {
		if a == blankValue {
			blankRow = i / n
			continue
		}
		for _, b := range tiles[i+1:] {
			if b != blankValue && a > b {
				inversions++
			}
		}
	}
	if n%2 == 1 {
		return inversions%2 == 0
	}
	return (inversions+(n-1-blankRow))%2 == 0
}
