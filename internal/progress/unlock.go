package progress

// Unlocked evaluates the arcade rule without side effects.
//
// Once ArcadeUnlocked is set for a day it stays set; otherwise the arcade
// opens only when the math, word level, faith and maze goals all hold.
func Unlocked(p *DailyProgress) bool {
	if p.ArcadeUnlocked {
		return true
	}
	return p.MathCount >= MathGoal &&
		p.WordLevel >= WordLevelGoal &&
		p.FaithDone &&
		p.MazesSolved >= MazeGoal
}

// commitUnlock flips ArcadeUnlocked when the rule first holds and reports
// whether this call made the transition.
func commitUnlock(p *DailyProgress) bool {
	if p.ArcadeUnlocked {
		return false
	}
	if !Unlocked(p) {
		return false
	}
	p.ArcadeUnlocked = true
	return true
}
