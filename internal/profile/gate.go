package profile

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinPINLength is the shortest accepted parent PIN.
const MinPINLength = 4

// ErrWeakPIN is returned when a PIN is too short or not numeric.
var ErrWeakPIN = errors.New("profile: PIN must be at least 4 digits")

// ParentGate guards destructive profile actions behind a parent PIN.
type ParentGate struct {
	repo Repository
	cost int
}

// NewParentGate returns a gate storing its hash in repo.
func NewParentGate(repo Repository) *ParentGate {
	return &ParentGate{repo: repo, cost: bcrypt.DefaultCost}
}

// IsSet reports whether a PIN has been configured.
func (g *ParentGate) IsSet(ctx context.Context) (bool, error) {
	hash, err := g.repo.PINHash(ctx)
	if err != nil {
		return false, err
	}
	return len(hash) > 0, nil
}

// SetPIN replaces the parent PIN. When a PIN already exists, current must match it.
func (g *ParentGate) SetPIN(ctx context.Context, current, pin string) error {
	if !validPIN(pin) {
		return ErrWeakPIN
	}
	set, err := g.IsSet(ctx)
	if err != nil {
		return err
	}
	if set {
		if err := g.Verify(ctx, current); err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), g.cost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	return g.repo.SetPINHash(ctx, hash)
}

// Verify checks pin against the stored hash.
func (g *ParentGate) Verify(ctx context.Context, pin string) error {
	hash, err := g.repo.PINHash(ctx)
	if err != nil {
		return err
	}
	if len(hash) == 0 {
		return ErrPINNotSet
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(pin)); err != nil {
		return ErrWrongPIN
	}
	return nil
}

func validPIN(pin string) bool {
	if len(pin) < MinPINLength {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
