package content

import (
	"context"

	"github.com/abhisek/miguel/internal/catalog"
)

// Content is a short story or devotional shown to a child.
type Content struct {
	Title string `json:"title"`
	Body  string `json:"content"`
	Moral string `json:"moral"`

	// Fallback is set when the text came from the static catalog.
	Fallback bool `json:"-"`
}

// Cache stores generated content per kind, day and child name.
type Cache interface {
	Load(ctx context.Context, kind, date, name string, v any) (bool, error)
	Store(ctx context.Context, kind, date, name string, v any) error
	Prune(ctx context.Context, kind, keepDate string) (int, error)
}

// ImageGenerator renders an illustration for a prompt. Returned bytes are
// an encoded image (PNG or JPEG).
type ImageGenerator interface {
	Illustrate(ctx context.Context, prompt string) ([]byte, error)
}

func fromFallback(f catalog.Fallback) Content {
	return Content{Title: f.Title, Body: f.Body, Moral: f.Moral, Fallback: true}
}
