package llm

import "context"

type purposeKey struct{}

// Purposes label event rows so `miguel llm stats` can split usage.
const (
	PurposeStory      = "story"
	PurposeDevotional = "devotional"
	PurposeImage      = "image-prompt"
)

// WithPurpose labels requests made with ctx.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
