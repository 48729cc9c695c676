package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/miguel/internal/catalog"
	"github.com/abhisek/miguel/internal/maze"
	"github.com/abhisek/miguel/internal/slidepuzzle"
	"github.com/abhisek/miguel/internal/wordsearch"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generated game board (no database)",
	Long: `Generate a board and print it as text.

This is a stateless developer tool. The same --seed always prints the same
board, which helps when checking generator changes.`,
}

var previewMazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print a maze with its solution path",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := maze.NewGame(previewRand(cmd))
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Theme: %s %s → %s\n", g.Theme.Name, g.Theme.Player, g.Theme.Goal)
		path := g.Maze.Path(maze.Start, maze.Goal)
		renderMazeText(out, g.Maze, path)
		fmt.Fprintf(out, "Shortest path: %d moves\n", len(path))
		return nil
	},
}

var previewPuzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Print a shuffled sliding puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := previewCatalog(cmd)
		if err != nil {
			return err
		}
		r := slidepuzzle.NewRound(previewRand(cmd), cat.BackgroundNames(), "")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Background: %s\n", r.Background)
		bg, _ := cat.Background(r.Background)
		renderPuzzleText(out, r.Puzzle, bg.Tiles)
		return nil
	},
}

var previewWordSearchCmd = &cobra.Command{
	Use:   "wordsearch",
	Short: "Print a word-search grid and its words",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := previewCatalog(cmd)
		if err != nil {
			return err
		}
		g := wordsearch.Generate(previewRand(cmd), cat.WordSearch, nil)
		out := cmd.OutOrStdout()
		for r := range wordsearch.Size {
			row := make([]string, wordsearch.Size)
			for c := range wordsearch.Size {
				row[c] = string(g.Letters[r][c])
			}
			fmt.Fprintln(out, strings.Join(row, " "))
		}
		fmt.Fprintln(out)
		for _, p := range g.Placements {
			dir := "across"
			if p.Orientation == wordsearch.Vertical {
				dir = "down"
			}
			fmt.Fprintf(out, "%-8s row %d col %d %s\n", p.Word, p.Row+1, p.Col+1, dir)
		}
		return nil
	},
}

func previewRand(cmd *cobra.Command) *rand.Rand {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = rand.Uint64()
		fmt.Fprintf(cmd.ErrOrStderr(), "seed: %d\n", seed)
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func previewCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	return catalog.Load(path)
}

// renderMazeText draws walls with ASCII and marks the path cells with dots.
func renderMazeText(w io.Writer, m *maze.Maze, path []maze.Direction) {
	onPath := map[maze.Pos]bool{maze.Start: true}
	pos := maze.Start
	for _, d := range path {
		pos = pos.Step(d)
		onPath[pos] = true
	}

	fmt.Fprintln(w, "+"+strings.Repeat("---+", maze.Size))
	for r := range maze.Size {
		var mid, bottom strings.Builder
		mid.WriteString("|")
		bottom.WriteString("+")
		for c := range maze.Size {
			p := maze.Pos{Row: r, Col: c}
			switch {
			case p == maze.Start:
				mid.WriteString(" S ")
			case p == maze.Goal:
				mid.WriteString(" G ")
			case onPath[p]:
				mid.WriteString(" . ")
			default:
				mid.WriteString("   ")
			}
			if m.HasWall(p, maze.Right) {
				mid.WriteString("|")
			} else {
				mid.WriteString(" ")
			}
			if m.HasWall(p, maze.Bottom) {
				bottom.WriteString("---+")
			} else {
				bottom.WriteString("   +")
			}
		}
		fmt.Fprintln(w, mid.String())
		fmt.Fprintln(w, bottom.String())
	}
}

func renderPuzzleText(w io.Writer, p *slidepuzzle.Puzzle, scene []string) {
	n := p.Size()
	tiles := p.Tiles()
	for r := range n {
		cells := make([]string, n)
		for c := range n {
			v := tiles[r*n+c]
			switch {
			case v == p.BlankValue():
				cells[c] = "    "
			case v < len(scene):
				cells[c] = fmt.Sprintf("%d %s", v+1, scene[v])
			default:
				cells[c] = fmt.Sprintf("%-4d", v+1)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " | "))
	}
}

func init() {
	previewCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 picks one and prints it)")
	previewCmd.PersistentFlags().String("catalog", "", "TOML catalog overriding the built-in content")

	previewCmd.AddCommand(previewMazeCmd)
	previewCmd.AddCommand(previewPuzzleCmd)
	previewCmd.AddCommand(previewWordSearchCmd)
}
