// Package maze generates perfect mazes with a randomized recursive
// backtracker and tracks a player walking through them.
package maze

import (
	"math/rand/v2"
	"slices"
)

// Size is the side length of the square grid.
const Size = 8

// Direction indexes a cell's walls.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the facing wall in the neighboring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the row and column offset of a step in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Top:
		return -1, 0
	case Right:
		return 0, 1
	case Bottom:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// Pos is a cell coordinate.
type Pos struct {
	Row, Col int
}

// Step returns the position one cell away in d. The result may be out of bounds.
func (p Pos) Step(d Direction) Pos {
	dr, dc := d.Delta()
	return Pos{p.Row + dr, p.Col + dc}
}

// Cell holds the four wall flags, indexed by Direction.
type Cell struct {
	Walls   [4]bool
	Visited bool
}

// Maze is a Size x Size grid of cells.
type Maze struct {
	Cells [Size][Size]Cell
}

// InBounds reports whether p lies on the grid.
func InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Start and Goal are fixed corners.
var (
	Start = Pos{0, 0}
	Goal  = Pos{Size - 1, Size - 1}
)

// Generate carves a perfect maze: every cell is reachable from every other
// through exactly one simple path.
func Generate(rng *rand.Rand) *Maze {
	m := &Maze{}
	for r := range Size {
		for c := range Size {
			m.Cells[r][c].Walls = [4]bool{true, true, true, true}
		}
	}

	current := Start
	m.Cells[current.Row][current.Col].Visited = true
	var stack []Pos

	for {
		next := m.unvisitedNeighbors(current)
		if len(next) > 0 {
			d := next[rng.IntN(len(next))]
			n := current.Step(d)
			stack = append(stack, current)
			m.removeWall(current, d)
			m.Cells[n.Row][n.Col].Visited = true
			current = n
			continue
		}
		if len(stack) == 0 {
			break
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
	return m
}

func (m *Maze) unvisitedNeighbors(p Pos) []Direction {
	var dirs []Direction
	for d := Top; d <= Left; d++ {
		n := p.Step(d)
		if InBounds(n) && !m.Cells[n.Row][n.Col].Visited {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (m *Maze) removeWall(p Pos, d Direction) {
	n := p.Step(d)
	m.Cells[p.Row][p.Col].Walls[d] = false
	m.Cells[n.Row][n.Col].Walls[d.Opposite()] = false
}

// HasWall reports whether leaving p in direction d is blocked. Outer
// boundaries always block.
func (m *Maze) HasWall(p Pos, d Direction) bool {
	if !InBounds(p) || !InBounds(p.Step(d)) {
		return true
	}
	return m.Cells[p.Row][p.Col].Walls[d]
}

// RemovedWalls counts interior walls that were opened. Each shared wall
// counts once.
func (m *Maze) RemovedWalls() int {
	n := 0
	for r := range Size {
		for c := range Size {
			p := Pos{r, c}
			if c+1 < Size && !m.HasWall(p, Right) {
				n++
			}
			if r+1 < Size && !m.HasWall(p, Bottom) {
				n++
			}
		}
	}
	return n
}

// Reachable returns the number of cells reachable from 'from', including itself.
func (m *Maze) Reachable(from Pos) int {
	if !InBounds(from) {
		return 0
	}
	var seen [Size][Size]bool
	seen[from.Row][from.Col] = true
	queue := []Pos{from}
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++
		for d := Top; d <= Left; d++ {
			if m.HasWall(p, d) {
				continue
			}
			n := p.Step(d)
			if !seen[n.Row][n.Col] {
				seen[n.Row][n.Col] = true
				queue = append(queue, n)
			}
		}
	}
	return count
}

// Consistent reports whether every shared wall agrees on both sides.
func (m *Maze) Consistent() bool {
	for r := range Size {
		for c := range Size {
			p := Pos{r, c}
			for _, d := range []Direction{Right, Bottom} {
				n := p.Step(d)
				if !InBounds(n) {
					continue
				}
				if m.Cells[r][c].Walls[d] != m.Cells[n.Row][n.Col].Walls[d.Opposite()] {
					return false
				}
			}
		}
	}
	return true
}

// Path returns the moves leading from one cell to another, or nil when
// either is off the grid. In a perfect maze the path is unique.
func (m *Maze) Path(from, to Pos) []Direction {
	if !InBounds(from) || !InBounds(to) {
		return nil
	}
	type step struct {
		prev Pos
		dir  Direction
	}
	var seen [Size][Size]bool
	var via [Size][Size]step
	seen[from.Row][from.Col] = true
	queue := []Pos{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			break
		}
		for d := Top; d <= Left; d++ {
			if m.HasWall(p, d) {
				continue
			}
			n := p.Step(d)
			if !seen[n.Row][n.Col] {
				seen[n.Row][n.Col] = true
				via[n.Row][n.Col] = step{prev: p, dir: d}
				queue = append(queue, n)
			}
		}
	}
	if !seen[to.Row][to.Col] {
		return nil
	}
	var path []Direction
	for p := to; p != from; p = via[p.Row][p.Col].prev {
		path = append(path, via[p.Row][p.Col].dir)
	}
	slices.Reverse(path)
	return path
}
