package profile

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/miguel/internal/progress"
)

// Service manages the device's child profiles and which one is active.
type Service struct {
	mu       sync.RWMutex
	repo     Repository
	gate     *ParentGate
	profiles []ChildProfile
	activeID string
	now      func() time.Time
}

// NewService loads the profile list and active selection from repo.
func NewService(ctx context.Context, repo Repository) (*Service, error) {
	s := &Service{
		repo: repo,
		gate: NewParentGate(repo),
		now:  time.Now,
	}
	profiles, err := repo.LoadProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	activeID, err := repo.ActiveID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active profile: %w", err)
	}
	s.profiles = profiles
	if s.indexOf(activeID) >= 0 {
		s.activeID = activeID
	}
	return s, nil
}

// Gate returns the parent PIN gate.
func (s *Service) Gate() *ParentGate {
	return s.gate
}

// List returns a copy of all profiles in creation order.
func (s *Service) List() []ChildProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.profiles)
}

// Get returns the profile with id.
func (s *Service) Get(id string) (ChildProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return ChildProfile{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.profiles[i], nil
}

// Create validates and stores a new profile. The first profile becomes active.
func (s *Service) Create(ctx context.Context, p ChildProfile) (ChildProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return ChildProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.profiles) >= MaxProfiles {
		return ChildProfile{}, ErrProfileLimit
	}
	p.ID = uuid.NewString()
	p.CreatedAt = s.now().UTC()

	next := append(slices.Clone(s.profiles), p)
	if err := s.repo.SaveProfiles(ctx, next); err != nil {
		return ChildProfile{}, fmt.Errorf("save profiles: %w", err)
	}
	s.profiles = next

	if s.activeID == "" {
		if err := s.repo.SetActive(ctx, &p); err != nil {
			return p, fmt.Errorf("set active profile: %w", err)
		}
		s.activeID = p.ID
	}
	return p, nil
}

// SetActive selects the profile whose progress is tracked.
func (s *Service) SetActive(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p := s.profiles[i]
	if err := s.repo.SetActive(ctx, &p); err != nil {
		return fmt.Errorf("set active profile: %w", err)
	}
	s.activeID = id
	return nil
}

// Active returns the active profile, if any.
func (s *Service) Active() (ChildProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(s.activeID)
	if i < 0 {
		return ChildProfile{}, false
	}
	return s.profiles[i], true
}

// ActiveProfileID returns the active profile id, or the guest id when
// no profile is selected.
func (s *Service) ActiveProfileID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeID == "" {
		return progress.GuestProfileID
	}
	return s.activeID
}

// Remove deletes a profile after the parent PIN is verified. Removing the
// active profile leaves the device in guest mode.
func (s *Service) Remove(ctx context.Context, id, pin string) error {
	if err := s.gate.Verify(ctx, pin); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	next := slices.Delete(slices.Clone(s.profiles), i, i+1)
	if err := s.repo.SaveProfiles(ctx, next); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	s.profiles = next

	if s.activeID == id {
		if err := s.repo.SetActive(ctx, nil); err != nil {
			return fmt.Errorf("clear active profile: %w", err)
		}
		s.activeID = ""
	}
	return nil
}

func (s *Service) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.profiles, func(p ChildProfile) bool { return p.ID == id })
}
