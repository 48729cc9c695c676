package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of one counter operation.
type Result struct {
	// Progress is the record after the operation.
	Progress DailyProgress

	// Changed is false when the operation was a guarded no-op.
	Changed bool

	// JustUnlocked is true only for the operation that opened the arcade.
	JustUnlocked bool
}

// Tracker owns the read-modify-write cycle of the active profile's
// DailyProgress. All operations are serialized.
type Tracker struct {
	mu       sync.Mutex
	repo     Repository
	profiles ProfileSource
	notifier Notifier
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithNotifier sets the outbound change queue.
func WithNotifier(n Notifier) Option {
	return func(t *Tracker) { t.notifier = n }
}

// WithClock overrides the time source used for day keys.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTracker creates a Tracker over repo for the profile chosen by profiles.
func NewTracker(repo Repository, profiles ProfileSource, opts ...Option) *Tracker {
	t := &Tracker{
		repo:     repo,
		profiles: profiles,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Today returns the current day key.
func (t *Tracker) Today() string {
	return DayKey(t.now())
}

// ProfileID returns the profile progress is currently tracked for.
func (t *Tracker) ProfileID() string {
	if t.profiles == nil {
		return GuestProfileID
	}
	return t.profiles.ActiveProfileID()
}

// DailyProgress returns today's record for the active profile, creating and
// persisting a fresh one when none exists or the stored one is from another day.
func (t *Tracker) DailyProgress(ctx context.Context) (*DailyProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load(ctx)
}

// Save persists p and hands a copy to the notifier.
func (t *Tracker) Save(ctx context.Context, p *DailyProgress) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.save(ctx, p)
}

// CheckUnlock evaluates the arcade rule against p. On the first transition it
// sets p.ArcadeUnlocked and persists p.
func (t *Tracker) CheckUnlock(ctx context.Context, p *DailyProgress) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !commitUnlock(p) {
		return p.ArcadeUnlocked, nil
	}
	if err := t.save(ctx, p); err != nil {
		return true, err
	}
	return true, nil
}

// Replace overwrites the local record with p without notifying. It is the
// remote-wins path used after fetching a newer copy.
func (t *Tracker) Replace(ctx context.Context, p *DailyProgress) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	p.Normalize()
	if err := t.repo.Put(ctx, p); err != nil {
		return fmt.Errorf("replace progress: %w", err)
	}
	return nil
}

// IncrementMath records one solved math problem.
func (t *Tracker) IncrementMath(ctx context.Context) (Result, error) {
	return t.update(ctx, func(p *DailyProgress) bool {
		p.MathCount++
		return true
	})
}

// IncrementMaze records one solved maze.
func (t *Tracker) IncrementMaze(ctx context.Context) (Result, error) {
	return t.update(ctx, func(p *DailyProgress) bool {
		p.MazesSolved++
		return true
	})
}

// IncrementPuzzle records one solved sliding puzzle.
func (t *Tracker) IncrementPuzzle(ctx context.Context) (Result, error) {
	return t.update(ctx, func(p *DailyProgress) bool {
		p.PuzzlesSolved++
		return true
	})
}

// IncrementWordSearch records one completed word search.
func (t *Tracker) IncrementWordSearch(ctx context.Context) (Result, error) {
	return t.update(ctx, func(p *DailyProgress) bool {
		p.WordSearchSolved++
		return true
	})
}

// IncrementShadow records one correct shadow match.
func (t *Tracker) IncrementShadow(ctx context.Context) (Result, error) {
	return t.update(ctx, func(p *DailyProgress) bool {
		p.ShadowSolved++
		return true
	})
}

// UpdateWordLevel raises the word level to level, capped at WordLevelGoal.
// Lower or equal levels are ignored.
func (t *Tracker) UpdateWordLevel(ctx context.Context, level int) (Result, error) {
	level = min(level, WordLevelGoal)
	return t.update(ctx, func(p *DailyProgress) bool {
		if level <= p.WordLevel {
			return false
		}
		p.WordLevel = level
		return true
	})
}

// CompleteFaith marks today's devotional as read.
func (t *Tracker) CompleteFaith(ctx context.Context) (Result, error) {
	return t.update(ctx, func(p *DailyProgress) bool {
		if p.FaithDone {
			return false
		}
		p.FaithDone = true
		return true
	})
}

func (t *Tracker) update(ctx context.Context, mutate func(p *DailyProgress) bool) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.load(ctx)
	if err != nil {
		return Result{}, err
	}

	changed := mutate(p)
	unlocked := commitUnlock(p)
	if !changed && !unlocked {
		return Result{Progress: *p}, nil
	}

	if err := t.save(ctx, p); err != nil {
		return Result{}, err
	}
	if unlocked {
		t.logger.Info("arcade unlocked",
			zap.String("profile", p.ProfileID),
			zap.String("date", p.Date))
	}
	return Result{Progress: *p, Changed: changed, JustUnlocked: unlocked}, nil
}

func (t *Tracker) load(ctx context.Context) (*DailyProgress, error) {
	profileID := t.ProfileID()
	today := t.Today()

	p, err := t.repo.Get(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if p != nil && p.Date == today {
		p.ProfileID = profileID
		p.Normalize()
		return p, nil
	}

	fresh := NewDailyProgress(profileID, today)
	if err := t.repo.Put(ctx, fresh); err != nil {
		return nil, fmt.Errorf("reset progress: %w", err)
	}
	if p != nil {
		t.logger.Debug("daily progress rolled over",
			zap.String("profile", profileID),
			zap.String("from", p.Date),
			zap.String("to", today))
	}
	return fresh, nil
}

func (t *Tracker) save(ctx context.Context, p *DailyProgress) error {
	p.Normalize()
	if err := t.repo.Put(ctx, p); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if t.notifier != nil {
		t.notifier.ProgressChanged(*p)
	}
	return nil
}
