package session

import (
	"fmt"
	"time"
)

var gameOrder = []Game{GameMath, GameWords, GameFaith, GameMaze, GamePuzzle, GameWordSearch, GameShadow}

var gameNames = map[Game]string{
	GameMath:       "math problems",
	GameWords:      "word levels",
	GameFaith:      "devotionals",
	GameMaze:       "mazes",
	GamePuzzle:     "puzzles",
	GameWordSearch: "word searches",
	GameShadow:     "shadow matches",
}

// Summary is what the child did this session, for the goodbye message.
type Summary struct {
	Duration time.Duration
	Lines    []string
	Unlocked bool
}

// BuildSummary renders stats at end.
func BuildSummary(stats Stats, end time.Time) Summary {
	sum := Summary{
		Duration: end.Sub(stats.StartTime).Round(time.Second),
		Unlocked: stats.Unlocked,
	}
	for _, g := range gameOrder {
		if n := stats.Rounds[g]; n > 0 {
			sum.Lines = append(sum.Lines, fmt.Sprintf("%d %s", n, gameNames[g]))
		}
	}
	return sum
}

// Summary builds the summary of this session so far.
func (s *Session) Summary() Summary {
	return BuildSummary(s.Stats(), s.now())
}
