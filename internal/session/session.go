// Package session holds the state shared by the screens of one play
// session: the active child, today's progress tracker and the content
// pools. Game screens report completions through Complete so the daily
// counters and the per-session stats move together.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/catalog"
	"github.com/abhisek/miguel/internal/content"
	"github.com/abhisek/miguel/internal/profile"
	"github.com/abhisek/miguel/internal/progress"
)

// Game identifies a mini-game whose completions count toward a mission.
type Game string

const (
	GameMath       Game = "math"
	GameMaze       Game = "maze"
	GamePuzzle     Game = "puzzle"
	GameWordSearch Game = "wordsearch"
	GameShadow     Game = "shadow"
	GameWords      Game = "words"
	GameFaith      Game = "faith"
)

// Session bundles the collaborators every screen needs.
type Session struct {
	Tracker  *progress.Tracker
	Profiles *profile.Service
	Content  *content.Service
	Catalog  *catalog.Catalog
	Logger   *zap.Logger

	mu    sync.Mutex
	stats Stats
	seed  func() uint64
	now   func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes every Rand() deterministic, for tests and previews.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		next := seed
		s.seed = func() uint64 {
			next++
			return next
		}
	}
}

// WithClock overrides the session clock.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session. content may be nil, in which case reading screens
// show catalog text.
func New(tracker *progress.Tracker, profiles *profile.Service, svc *content.Service, cat *catalog.Catalog, logger *zap.Logger, opts ...Option) *Session {
	if cat == nil {
		cat = catalog.Default()
	}
	if svc == nil {
		svc = content.NewService(nil, nil, cat)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		Tracker:  tracker,
		Profiles: profiles,
		Content:  svc,
		Catalog:  cat,
		Logger:   logger,
		seed:     rand.Uint64,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.stats = newStats(s.now())
	return s
}

// Rand returns a fresh generator for one round.
func (s *Session) Rand() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewPCG(s.seed(), s.seed()))
}

// Child returns the active profile. Guests get an unnamed profile.
func (s *Session) Child() profile.ChildProfile {
	if s.Profiles != nil {
		if p, ok := s.Profiles.Active(); ok {
			return p
		}
	}
	return profile.ChildProfile{ID: progress.GuestProfileID, Age: profile.MinAge + 3}
}

// GuestName is shown when no profile is active.
const GuestName = "Guest"

// PlayerName is the name shown in the header.
func (s *Session) PlayerName() string {
	if n := s.Child().Name; n != "" {
		return n
	}
	return GuestName
}

// Today returns today's progress for the active profile.
func (s *Session) Today(ctx context.Context) (*progress.DailyProgress, error) {
	return s.Tracker.DailyProgress(ctx)
}

// Complete records one finished round of g.
func (s *Session) Complete(ctx context.Context, g Game) (progress.Result, error) {
	var (
		res progress.Result
		err error
	)
	switch g {
	case GameMath:
		res, err = s.Tracker.IncrementMath(ctx)
	case GameMaze:
		res, err = s.Tracker.IncrementMaze(ctx)
	case GamePuzzle:
		res, err = s.Tracker.IncrementPuzzle(ctx)
	case GameWordSearch:
		res, err = s.Tracker.IncrementWordSearch(ctx)
	case GameShadow:
		res, err = s.Tracker.IncrementShadow(ctx)
	case GameFaith:
		res, err = s.Tracker.CompleteFaith(ctx)
	default:
		return progress.Result{}, fmt.Errorf("session: %q has no counter", g)
	}
	if err != nil {
		return res, fmt.Errorf("record %s: %w", g, err)
	}
	s.record(g, res)
	return res, nil
}

// ReachWordLevel records that the child finished the words of level-1 and
// moved up to level.
func (s *Session) ReachWordLevel(ctx context.Context, level int) (progress.Result, error) {
	res, err := s.Tracker.UpdateWordLevel(ctx, level)
	if err != nil {
		return res, fmt.Errorf("record word level: %w", err)
	}
	s.record(GameWords, res)
	return res, nil
}

// Stats returns a copy of this session's counts.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.clone()
}

func (s *Session) record(g Game, res progress.Result) {
	if !res.Changed && !res.JustUnlocked {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Rounds[g]++
	if res.JustUnlocked {
		s.stats.Unlocked = true
	}
}
