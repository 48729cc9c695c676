package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/profile"
	"github.com/abhisek/miguel/internal/progress"
)

const defaultMirrorTimeout = 5 * time.Second

// ErrNotMirrored is returned by Push when the record stays local.
var ErrNotMirrored = errors.New("remote: record not mirrored")

// Replacer overwrites the local record. progress.Tracker implements it.
type Replacer interface {
	Replace(ctx context.Context, p *progress.DailyProgress) error
}

// Mirror pushes local progress to the backend and pulls today's remote
// record at session start. A nil backend makes every call a no-op.
type Mirror struct {
	backend Backend
	ownerID string
	timeout time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// MirrorOption configures a Mirror.
type MirrorOption func(*Mirror)

// WithOwner sets the owner id used for profile rows.
func WithOwner(id string) MirrorOption {
	return func(m *Mirror) { m.ownerID = id }
}

// WithTimeout bounds each remote call.
func WithTimeout(d time.Duration) MirrorOption {
	return func(m *Mirror) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithMirrorClock overrides the clock used to pick today's remote row.
func WithMirrorClock(now func() time.Time) MirrorOption {
	return func(m *Mirror) { m.now = now }
}

// WithMirrorLogger sets the logger for swallowed remote failures.
func WithMirrorLogger(l *zap.Logger) MirrorOption {
	return func(m *Mirror) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMirror returns a mirror over backend, which may be nil.
func NewMirror(backend Backend, opts ...MirrorOption) *Mirror {
	m := &Mirror{
		backend: backend,
		timeout: defaultMirrorTimeout,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Enabled reports whether a backend is configured.
func (m *Mirror) Enabled() bool {
	return m != nil && m.backend != nil
}

// Sync upserts p keyed by (profile_id, date). Guest records are never
// mirrored. Failures are logged and dropped.
func (m *Mirror) Sync(ctx context.Context, p progress.DailyProgress) {
	err := m.Push(ctx, p)
	if errors.Is(err, ErrNotMirrored) {
		return
	}
	if err != nil {
		m.logger.Warn("progress sync failed",
			zap.String("profile_id", p.ProfileID),
			zap.String("date", p.Date),
			zap.Error(err))
		return
	}
	m.logger.Debug("progress synced",
		zap.String("profile_id", p.ProfileID),
		zap.Int("math_count", p.MathCount))
}

// Push is Sync for callers that report the outcome. It returns ErrNotMirrored
// for guests and a disabled mirror.
func (m *Mirror) Push(ctx context.Context, p progress.DailyProgress) error {
	if !m.Enabled() || p.IsGuest() {
		return ErrNotMirrored
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.backend.Upsert(ctx, ProgressTable, progressRecord(p), "profile_id", "date"); err != nil {
		return fmt.Errorf("upsert %s: %w", ProgressTable, err)
	}
	return nil
}

// FetchRemoteProgress loads today's remote record for profileID. When one
// exists it overwrites the local record through local, whole, without
// merging. It returns nil when offline, on any error, or when no row
// exists; the local record is then left untouched.
func (m *Mirror) FetchRemoteProgress(ctx context.Context, profileID string, local Replacer) *progress.DailyProgress {
	if !m.Enabled() || profileID == "" || profileID == progress.GuestProfileID {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	today := progress.DayKey(m.now())
	rows, err := m.backend.Select(ctx, ProgressTable, map[string]any{
		"profile_id": profileID,
		"date":       today,
	})
	if err != nil {
		m.logger.Warn("remote progress fetch failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	p, err := progressFromRow(rows[0])
	if err != nil {
		m.logger.Warn("remote progress row invalid", zap.String("profile_id", profileID), zap.Error(err))
		return nil
	}
	if p.ProfileID != profileID || p.Date != today {
		m.logger.Warn("remote progress row mismatched",
			zap.String("want_profile", profileID), zap.String("got_profile", p.ProfileID),
			zap.String("want_date", today), zap.String("got_date", p.Date))
		return nil
	}

	if local != nil {
		if err := local.Replace(ctx, p); err != nil {
			m.logger.Warn("apply remote progress failed", zap.String("profile_id", profileID), zap.Error(err))
			return nil
		}
	}
	m.logger.Info("remote progress applied",
		zap.String("profile_id", profileID),
		zap.Bool("arcade_unlocked", p.ArcadeUnlocked))
	return p
}

// SyncProfiles upserts every profile keyed by (owner_id, id). It is skipped
// when no owner id is known. It returns the number of rows written.
func (m *Mirror) SyncProfiles(ctx context.Context, profiles []profile.ChildProfile) int {
	if !m.Enabled() || m.ownerID == "" {
		return 0
	}
	n := 0
	for _, c := range profiles {
		callCtx, cancel := context.WithTimeout(ctx, m.timeout)
		err := m.backend.Upsert(callCtx, ProfilesTable, profileRecord(m.ownerID, c), "owner_id", "id")
		cancel()
		if err != nil {
			m.logger.Warn("profile sync failed", zap.String("profile_id", c.ID), zap.Error(err))
			continue
		}
		n++
	}
	return n
}
