package session

import (
	"maps"
	"time"
)

// Stats counts what happened in one play session. Unlike DailyProgress it
// is never persisted.
type Stats struct {
	StartTime time.Time
	Rounds    map[Game]int

	// Unlocked is set when this session opened the arcade.
	Unlocked bool
}

func newStats(start time.Time) Stats {
	return Stats{StartTime: start, Rounds: make(map[Game]int)}
}

func (s Stats) clone() Stats {
	s.Rounds = maps.Clone(s.Rounds)
	return s
}

// Total is the number of rounds recorded across games.
func (s Stats) Total() int {
	n := 0
	for _, v := range s.Rounds {
		n += v
	}
	return n
}
