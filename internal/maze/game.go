package maze

import "math/rand/v2"

// Game is one maze round: a maze, a theme and the player's position.
type Game struct {
	Maze  *Maze
	Theme Theme
	pos   Pos
	won   bool
	moves int
}

// NewGame generates a fresh round with the player at Start.
func NewGame(rng *rand.Rand) *Game {
	return &Game{
		Maze:  Generate(rng),
		Theme: PickTheme(rng),
		pos:   Start,
	}
}

// Pos returns the player's cell.
func (g *Game) Pos() Pos { return g.pos }

// Won reports whether the player has reached Goal.
func (g *Game) Won() bool { return g.won }

// Moves returns the number of accepted moves.
func (g *Game) Moves() int { return g.moves }

// Move steps the player one cell in d. It returns justWon true only on the
// move that reaches Goal. Moves into walls, off the grid, or after the win
// are rejected and leave the position unchanged.
func (g *Game) Move(d Direction) (moved, justWon bool) {
	if g.won || g.Maze.HasWall(g.pos, d) {
		return false, false
	}
	g.pos = g.pos.Step(d)
	g.moves++
	if g.pos == Goal {
		g.won = true
		return true, true
	}
	return true, false
}
