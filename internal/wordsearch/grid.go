// Package wordsearch builds letter grids with hidden words and checks the
// player's straight-line selections against them.
package wordsearch

import (
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"
)

const (
	Size          = 8
	WordsPerRound = 3
	MaxAttempts   = 50
)

// Alphabet fills the empty cells. Accented and look-alike letters are left out.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Orientation is the direction a word runs.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// Placement records where a word was written.
type Placement struct {
	Word        string
	Row, Col    int
	Orientation Orientation
}

// Cells lists the cells the placement occupies, in word order.
func (p Placement) Cells() []Cell {
	cells := make([]Cell, len(p.Word))
	for i := range cells {
		if p.Orientation == Horizontal {
			cells[i] = Cell{p.Row, p.Col + i}
		} else {
			cells[i] = Cell{p.Row + i, p.Col}
		}
	}
	return cells
}

// Grid is one word-search round.
type Grid struct {
	Letters    [Size][Size]byte
	Placements []Placement

	found     [Size][Size]bool
	remaining map[string]bool
}

// Generate picks WordsPerRound words from pool and hides them in a fresh
// grid. A word that cannot be placed in MaxAttempts tries is skipped.
func Generate(rng *rand.Rand, pool []string, logger *zap.Logger) *Grid {
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Grid{remaining: make(map[string]bool)}
	g.placeWords(rng, pickWords(rng, pool, WordsPerRound), logger)
	g.fill(rng)
	return g
}

func (g *Grid) placeWords(rng *rand.Rand, words []string, logger *zap.Logger) {
	for _, w := range words {
		p, ok := g.place(rng, w)
		if !ok {
			logger.Info("word search placement skipped",
				zap.String("word", w),
				zap.Int("attempts", MaxAttempts))
			continue
		}
		g.Placements = append(g.Placements, p)
		g.remaining[w] = true
	}
}

func (g *Grid) fill(rng *rand.Rand) {
	for r := range Size {
		for c := range Size {
			if g.Letters[r][c] == 0 {
				g.Letters[r][c] = Alphabet[rng.IntN(len(Alphabet))]
			}
		}
	}
}

// pickWords samples up to k distinct words without replacement.
func pickWords(rng *rand.Rand, pool []string, k int) []string {
	words := make([]string, 0, len(pool))
	seen := make(map[string]bool)
	for _, w := range pool {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || len(w) > Size || seen[w] || !inAlphabet(w) {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	if len(words) > k {
		words = words[:k]
	}
	return words
}

func inAlphabet(w string) bool {
	for i := 0; i < len(w); i++ {
		if strings.IndexByte(Alphabet, w[i]) < 0 {
			return false
		}
	}
	return true
}

func (g *Grid) place(rng *rand.Rand, word string) (Placement, bool) {
	for range MaxAttempts {
		p := Placement{
			Word:        word,
			Row:         rng.IntN(Size),
			Col:         rng.IntN(Size),
			Orientation: Orientation(rng.IntN(2)),
		}
		if g.fits(p) {
			for i, c := range p.Cells() {
				g.Letters[c.Row][c.Col] = word[i]
			}
			return p, true
		}
	}
	return Placement{}, false
}

// fits reports whether p stays in bounds and agrees with letters already
// on the grid.
func (g *Grid) fits(p Placement) bool {
	for i, c := range p.Cells() {
		if c.Row >= Size || c.Col >= Size {
			return false
		}
		if cur := g.Letters[c.Row][c.Col]; cur != 0 && cur != p.Word[i] {
			return false
		}
	}
	return true
}

// Line returns the cells from a to b inclusive when they share a row or a
// column. Diagonal selections are rejected.
func Line(a, b Cell) ([]Cell, bool) {
	switch {
	case a.Row == b.Row:
		step := sign(b.Col - a.Col)
		n := abs(b.Col-a.Col) + 1
		cells := make([]Cell, n)
		for i := range cells {
			cells[i] = Cell{a.Row, a.Col + i*step}
		}
		return cells, true
	case a.Col == b.Col:
		step := sign(b.Row - a.Row)
		n := abs(b.Row-a.Row) + 1
		cells := make([]Cell, n)
		for i := range cells {
			cells[i] = Cell{a.Row + i*step, a.Col}
		}
		return cells, true
	}
	return nil, false
}

// Select checks the straight selection from a to b against the remaining
// words, read forwards or backwards. A match marks its cells found and
// removes the word; a word can only be found once.
func (g *Grid) Select(a, b Cell) (string, bool) {
	if !inGrid(a) || !inGrid(b) {
		return "", false
	}
	cells, ok := Line(a, b)
	if !ok {
		return "", false
	}
	buf := make([]byte, len(cells))
	for i, c := range cells {
		buf[i] = g.Letters[c.Row][c.Col]
	}
	forward := string(buf)
	backward := reverse(forward)

	for _, p := range g.Placements {
		if !g.remaining[p.Word] {
			continue
		}
		if p.Word == forward || p.Word == backward {
			delete(g.remaining, p.Word)
			for _, c := range cells {
				g.found[c.Row][c.Col] = true
			}
			return p.Word, true
		}
	}
	return "", false
}

// Found reports whether the cell belongs to a found word.
func (g *Grid) Found(r, c int) bool {
	return g.found[r][c]
}

// Remaining returns the words still to find, in placement order.
func (g *Grid) Remaining() []string {
	var out []string
	for _, p := range g.Placements {
		if g.remaining[p.Word] {
			out = append(out, p.Word)
		}
	}
	return out
}

// Words returns every placed word.
func (g *Grid) Words() []string {
	out := make([]string, len(g.Placements))
	for i, p := range g.Placements {
		out[i] = p.Word
	}
	return out
}

// Won reports whether all placed words have been found.
func (g *Grid) Won() bool {
	return len(g.Placements) > 0 && len(g.remaining) == 0
}

func inGrid(c Cell) bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
