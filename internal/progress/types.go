package progress

import (
	"context"
	"time"
)

// SchemaVersion is the current DailyProgress record layout.
const SchemaVersion = 1

// GuestProfileID scopes progress when no child profile is active.
// Guest progress is kept locally and never mirrored.
const GuestProfileID = "guest"

// dayLayout formats the calendar-day key used as the reset boundary.
const dayLayout = "2006-01-02"

// MinWordLevel is the level a child starts each day at.
const MinWordLevel = 1

// DailyProgress is the per-profile, per-day mission record.
//
// All counters are monotonic within a Date. A record whose Date is not
// today is stale and is replaced by a fresh one on the next read.
type DailyProgress struct {
	SchemaVersion    int    `json:"schema_version"`
	ProfileID        string `json:"profile_id"`
	Date             string `json:"date"`
	MathCount        int    `json:"math_count"`
	WordLevel        int    `json:"word_level"`
	FaithDone        bool   `json:"faith_done"`
	MazesSolved      int    `json:"mazes_solved"`
	PuzzlesSolved    int    `json:"puzzles_solved"`
	WordSearchSolved int    `json:"word_search_solved"`
	ShadowSolved     int    `json:"shadow_solved"`
	ArcadeUnlocked   bool   `json:"arcade_unlocked"`
}

// NewDailyProgress returns a fresh record for profileID on date.
func NewDailyProgress(profileID, date string) *DailyProgress {
	return &DailyProgress{
		SchemaVersion: SchemaVersion,
		ProfileID:     profileID,
		Date:          date,
		WordLevel:     MinWordLevel,
	}
}

// Normalize fills in defaults for fields missing from older records.
func (p *DailyProgress) Normalize() {
	if p.SchemaVersion == 0 {
		p.SchemaVersion = SchemaVersion
	}
	p.WordLevel = max(MinWordLevel, min(p.WordLevel, WordLevelGoal))
	if p.MathCount < 0 {
		p.MathCount = 0
	}
	if p.MazesSolved < 0 {
		p.MazesSolved = 0
	}
	if p.PuzzlesSolved < 0 {
		p.PuzzlesSolved = 0
	}
	if p.WordSearchSolved < 0 {
		p.WordSearchSolved = 0
	}
	if p.ShadowSolved < 0 {
		p.ShadowSolved = 0
	}
}

// IsGuest reports whether the record belongs to the guest sentinel.
func (p *DailyProgress) IsGuest() bool {
	return p.ProfileID == "" || p.ProfileID == GuestProfileID
}

// DayKey returns the device-local calendar day for t.
func DayKey(t time.Time) string {
	return t.Local().Format(dayLayout)
}

// Repository persists one DailyProgress record per profile.
type Repository interface {
	// Get returns the stored record for profileID, or nil if none exists.
	Get(ctx context.Context, profileID string) (*DailyProgress, error)

	// Put overwrites the stored record for p.ProfileID.
	Put(ctx context.Context, p *DailyProgress) error
}

// Notifier receives a copy of every saved record. Implementations must not
// block; delivery is best-effort.
type Notifier interface {
	ProgressChanged(p DailyProgress)
}

// ProfileSource resolves which profile progress is tracked for.
type ProfileSource interface {
	ActiveProfileID() string
}

// StaticProfile is a ProfileSource bound to one id.
type StaticProfile string

// ActiveProfileID returns the bound id, or the guest sentinel when empty.
func (s StaticProfile) ActiveProfileID() string {
	if s == "" {
		return GuestProfileID
	}
	return string(s)
}
