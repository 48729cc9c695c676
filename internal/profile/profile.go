package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Errors returned by profile operations.
var (
	ErrProfileLimit = errors.New("profile: limit reached")
	ErrInvalidAge   = errors.New("profile: age out of range")
	ErrInvalidName  = errors.New("profile: name is required")
	ErrNotFound     = errors.New("profile: not found")
	ErrWrongPIN     = errors.New("profile: wrong parent PIN")
	ErrPINNotSet    = errors.New("profile: parent PIN not set")
)

const (
	// MaxProfiles is the number of child profiles a device may hold.
	MaxProfiles = 5

	MinAge = 3
	MaxAge = 10
)

// ChildProfile describes one child. Appearance fields feed the prompts
// for generated stories and illustrations.
type ChildProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	HairColor string    `json:"hair_color"`
	HairStyle string    `json:"hair_style"`
	EyeColor  string    `json:"eye_color"`
	SkinTone  string    `json:"skin_tone"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the fields a child must fill in.
func (c ChildProfile) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidName
	}
	if c.Age < MinAge || c.Age > MaxAge {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidAge, c.Age, MinAge, MaxAge)
	}
	return nil
}

// PromptDescription renders the profile as a short phrase for AI prompts.
func (c ChildProfile) PromptDescription() string {
	parts := []string{fmt.Sprintf("%s, a %d-year-old", c.Name, c.Age)}
	switch strings.ToLower(c.Gender) {
	case "boy", "girl":
		parts[0] += " " + strings.ToLower(c.Gender)
	default:
		parts[0] += " child"
	}

	var looks []string
	if c.HairColor != "" || c.HairStyle != "" {
		looks = append(looks, strings.TrimSpace(c.HairStyle+" "+c.HairColor)+" hair")
	}
	if c.EyeColor != "" {
		looks = append(looks, c.EyeColor+" eyes")
	}
	if c.SkinTone != "" {
		looks = append(looks, c.SkinTone+" skin")
	}
	if len(looks) > 0 {
		parts = append(parts, "with "+strings.Join(looks, ", "))
	}
	return strings.Join(parts, " ")
}

// Repository persists profiles, the active selection and the parent PIN hash.
type Repository interface {
	LoadProfiles(ctx context.Context) ([]ChildProfile, error)
	SaveProfiles(ctx context.Context, profiles []ChildProfile) error

	// ActiveID returns "" when no profile is selected.
	ActiveID(ctx context.Context) (string, error)
	SetActive(ctx context.Context, p *ChildProfile) error

	// PINHash returns nil when no PIN has been set.
	PINHash(ctx context.Context) ([]byte, error)
	SetPINHash(ctx context.Context, hash []byte) error
}
