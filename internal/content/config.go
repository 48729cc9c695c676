package content

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for story generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.8,
	}
}
