package maze

import (
	"math/rand/v2"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGeneratePerfectMaze(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		m := Generate(testRNG(seed))

		if got := m.RemovedWalls(); got != Size*Size-1 {
			t.Fatalf("seed %d: removed walls = %d, want %d", seed, got, Size*Size-1)
		}
		if got := m.Reachable(Start); got != Size*Size {
			t.Fatalf("seed %d: reachable = %d, want %d", seed, got, Size*Size)
		}
		if !m.Consistent() {
			t.Fatalf("seed %d: walls disagree across a shared edge", seed)
		}
	}
}

func TestOuterWallsIntact(t *testing.T) {
	m := Generate(testRNG(7))
	for i := 0; i < Size; i++ {
		if !m.Cells[0][i].Walls[Top] || !m.Cells[Size-1][i].Walls[Bottom] {
			t.Fatalf("horizontal boundary opened at column %d", i)
		}
		if !m.Cells[i][0].Walls[Left] || !m.Cells[i][Size-1].Walls[Right] {
			t.Fatalf("vertical boundary opened at row %d", i)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(testRNG(42))
	b := Generate(testRNG(42))
	if a.Cells != b.Cells {
		t.Error("same seed produced different mazes")
	}
}

func TestMoveRespectsWalls(t *testing.T) {
	g := NewGame(testRNG(3))

	if moved, _ := g.Move(Top); moved {
		t.Fatal("moved off the top edge")
	}
	if moved, _ := g.Move(Left); moved {
		t.Fatal("moved off the left edge")
	}

	var blocked, open Direction = -1, -1
	for _, d := range []Direction{Right, Bottom} {
		if g.Maze.HasWall(Start, d) {
			blocked = d
		} else {
			open = d
		}
	}

	if blocked >= 0 {
		if moved, _ := g.Move(blocked); moved || g.Pos() != Start {
			t.Fatalf("moved through a wall to %v", g.Pos())
		}
	}
	if open < 0 {
		t.Fatal("start cell has no opening")
	}
	moved, won := g.Move(open)
	if !moved || won {
		t.Fatalf("Move(%v) = %v, %v; want true, false", open, moved, won)
	}
	if want := Start.Step(open); g.Pos() != want {
		t.Errorf("pos = %v, want %v", g.Pos(), want)
	}
	if g.Moves() != 1 {
		t.Errorf("moves = %d, want 1", g.Moves())
	}
}

func TestPath(t *testing.T) {
	m := Generate(testRNG(5))
	path := m.Path(Start, Goal)
	if len(path) == 0 {
		t.Fatal("no path from start to goal")
	}
	p := Start
	for i, d := range path {
		if m.HasWall(p, d) {
			t.Fatalf("step %d (%v) goes through a wall at %v", i, d, p)
		}
		p = p.Step(d)
	}
	if p != Goal {
		t.Fatalf("path ends at %v, want %v", p, Goal)
	}

	if got := m.Path(Goal, Goal); len(got) != 0 {
		t.Errorf("Path(goal, goal) = %v, want empty", got)
	}
	if got := m.Path(Pos{-1, 0}, Goal); got != nil {
		t.Errorf("Path from off-grid = %v, want nil", got)
	}
}

func TestWinReportedOnce(t *testing.T) {
	g := NewGame(testRNG(11))
	path := g.Maze.Path(Start, Goal)

	wins := 0
	for i, d := range path {
		moved, won := g.Move(d)
		if !moved {
			t.Fatalf("step %d (%v) rejected", i, d)
		}
		if won {
			wins++
		}
	}
	if wins != 1 || !g.Won() {
		t.Fatalf("wins = %d, Won = %v", wins, g.Won())
	}
	if g.Pos() != Goal {
		t.Fatalf("pos = %v, want %v", g.Pos(), Goal)
	}

	for d := Top; d <= Left; d++ {
		if moved, won := g.Move(d); moved || won {
			t.Fatalf("move %v accepted after win", d)
		}
	}
}

func TestPickTheme(t *testing.T) {
	seen := map[string]bool{}
	rng := testRNG(1)
	for i := 0; i < 200; i++ {
		seen[PickTheme(rng).Name] = true
	}
	if len(seen) != len(Themes) {
		t.Errorf("saw %d themes, want %d", len(seen), len(Themes))
	}
}
