package progress

// Daily mission thresholds.
const (
	MathGoal       = 30
	MazeGoal       = 3
	PuzzleGoal     = 3
	WordSearchGoal = 3
	ShadowGoal     = 5
	WordLevelGoal  = 4
)

// MissionID identifies one daily sub-mission.
type MissionID string

const (
	MissionMath       MissionID = "math"
	MissionWords      MissionID = "words"
	MissionFaith      MissionID = "faith"
	MissionMaze       MissionID = "maze"
	MissionPuzzle     MissionID = "puzzle"
	MissionWordSearch MissionID = "wordsearch"
	MissionShadow     MissionID = "shadow"
)

// Mission is the badge state of one sub-mission.
type Mission struct {
	ID      MissionID
	Label   string
	Current int
	Target  int
	// Arcade is true for the missions the arcade unlock depends on.
	Arcade bool
}

// Done reports whether the mission threshold has been reached.
func (m Mission) Done() bool {
	return m.Current >= m.Target
}

// Missions returns the badge state of every sub-mission in display order.
func Missions(p *DailyProgress) []Mission {
	faith := 0
	if p.FaithDone {
		faith = 1
	}
	return []Mission{
		{ID: MissionMath, Label: "Math problems", Current: p.MathCount, Target: MathGoal, Arcade: true},
		{ID: MissionWords, Label: "Word level", Current: p.WordLevel, Target: WordLevelGoal, Arcade: true},
		{ID: MissionFaith, Label: "Devotional", Current: faith, Target: 1, Arcade: true},
		{ID: MissionMaze, Label: "Mazes", Current: p.MazesSolved, Target: MazeGoal, Arcade: true},
		{ID: MissionPuzzle, Label: "Puzzles", Current: p.PuzzlesSolved, Target: PuzzleGoal},
		{ID: MissionWordSearch, Label: "Word searches", Current: p.WordSearchSolved, Target: WordSearchGoal},
		{ID: MissionShadow, Label: "Shadow match", Current: p.ShadowSolved, Target: ShadowGoal},
	}
}

// AllMissionsDone reports whether every sub-mission is complete.
func AllMissionsDone(p *DailyProgress) bool {
	for _, m := range Missions(p) {
		if !m.Done() {
			return false
		}
	}
	return true
}
