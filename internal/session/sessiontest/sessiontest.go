// Package sessiontest builds in-memory sessions for screen tests.
package sessiontest

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/session"
)

// Now is the fixed clock every test session runs on.
var Now = time.Date(2026, 5, 2, 10, 0, 0, 0, time.Local)

// MemRepo is an in-memory progress.Repository.
type MemRepo struct {
	mu   sync.Mutex
	data map[string]progress.DailyProgress
}

// NewMemRepo returns an empty repository.
func NewMemRepo() *MemRepo {
	return &MemRepo{data: make(map[string]progress.DailyProgress)}
}

func (m *MemRepo) Get(_ context.Context, id string) (*progress.DailyProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemRepo) Put(_ context.Context, p *progress.DailyProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[p.ProfileID] = *p
	return nil
}

// New returns a guest-free session for profile "kid" with a seeded rng.
func New(seed uint64) *session.Session {
	clock := func() time.Time { return Now }
	tracker := progress.NewTracker(NewMemRepo(), progress.StaticProfile("kid"), progress.WithClock(clock))
	return session.New(tracker, nil, nil, nil, nil, session.WithSeed(seed), session.WithClock(clock))
}
