package store

import (
	"context"
	"errors"

	"github.com/abhisek/miguel/internal/profile"
)

// Keys used by the profile repository.
const (
	ProfilesKey      = KeyPrefix + "profiles"
	ActiveProfileKey = KeyPrefix + "active_profile"
	// ChildProfileKey mirrors the active profile for readers that predate
	// multi-profile support.
	ChildProfileKey = KeyPrefix + "child_profile"
	ParentPINKey    = KeyPrefix + "parent_pin"
)

// ProfileRepo persists child profiles in the KV store.
type ProfileRepo struct {
	kv *KV
}

var _ profile.Repository = (*ProfileRepo)(nil)

func (r *ProfileRepo) LoadProfiles(ctx context.Context) ([]profile.ChildProfile, error) {
	var profiles []profile.ChildProfile
	if _, err := r.kv.GetJSON(ctx, ProfilesKey, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepo) SaveProfiles(ctx context.Context, profiles []profile.ChildProfile) error {
	if profiles == nil {
		profiles = []profile.ChildProfile{}
	}
	return r.kv.PutJSON(ctx, ProfilesKey, profiles)
}

func (r *ProfileRepo) ActiveID(ctx context.Context) (string, error) {
	raw, err := r.kv.Get(ctx, ActiveProfileKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SetActive records p as the active profile. A nil p clears the selection.
func (r *ProfileRepo) SetActive(ctx context.Context, p *profile.ChildProfile) error {
	if p == nil {
		if err := r.kv.Delete(ctx, ActiveProfileKey); err != nil {
			return err
		}
		return r.kv.Delete(ctx, ChildProfileKey)
	}
	if err := r.kv.Put(ctx, ActiveProfileKey, []byte(p.ID)); err != nil {
		return err
	}
	return r.kv.PutJSON(ctx, ChildProfileKey, p)
}

func (r *ProfileRepo) PINHash(ctx context.Context) ([]byte, error) {
	raw, err := r.kv.Get(ctx, ParentPINKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return raw, err
}

func (r *ProfileRepo) SetPINHash(ctx context.Context, hash []byte) error {
	return r.kv.Put(ctx, ParentPINKey, hash)
}
