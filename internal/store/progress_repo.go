package store

import (
	"context"

	"github.com/abhisek/miguel/internal/progress"
)

const progressKeyPrefix = KeyPrefix + "daily_progress_"

// ProgressKey returns the KV key holding a profile's daily record.
func ProgressKey(profileID string) string {
	return progressKeyPrefix + profileID
}

// ProgressRepo persists one DailyProgress record per profile.
type ProgressRepo struct {
	kv *KV
}

var _ progress.Repository = (*ProgressRepo)(nil)

// Get returns the stored record for profileID, or nil when none exists.
// Fields missing from older records are filled with defaults.
func (r *ProgressRepo) Get(ctx context.Context, profileID string) (*progress.DailyProgress, error) {
	var p progress.DailyProgress
	ok, err := r.kv.GetJSON(ctx, ProgressKey(profileID), &p)
	if err != nil || !ok {
		return nil, err
	}
	if p.ProfileID == "" {
		p.ProfileID = profileID
	}
	p.Normalize()
	return &p, nil
}

// Put overwrites the record for p.ProfileID.
func (r *ProgressRepo) Put(ctx context.Context, p *progress.DailyProgress) error {
	return r.kv.PutJSON(ctx, ProgressKey(p.ProfileID), p)
}
