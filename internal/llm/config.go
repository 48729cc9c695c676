package llm

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

var (
	ErrUnknownProvider = errors.New("llm: unknown provider")
	ErrMissingAPIKey   = errors.New("llm: API key is required")
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// Config selects the one provider stories are generated with.
type Config struct {
	Provider string
	APIKey   string

	// Model is a provider model id or a short alias. Empty picks a small,
	// cheap default for the provider.
	Model string

	// BaseURL points the OpenAI client at a compatible endpoint.
	BaseURL string

	// Timeout bounds one Generate call including retries. Zero disables it.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetry returns three attempts starting at one second.
func DefaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2,
	}
}

var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-001",
}

var modelAliases = map[string]string{
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"claude-sonnet": "claude-sonnet-4-5-20250929",
	"gemini-flash":  "gemini-2.0-flash",
	"gemini-pro":    "gemini-2.5-pro",
}

// ResolvedModel returns the model id sent to the provider.
func (c Config) ResolvedModel() string {
	m := strings.TrimSpace(c.Model)
	if m == "" {
		m = defaultModels[c.Provider]
	}
	if id, ok := modelAliases[m]; ok {
		return id
	}
	return m
}

// Validate checks that the provider is known and has a key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("%w for %s", ErrMissingAPIKey, c.Provider)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
}

// discoveryOrder lists the vendor key variables probed when no provider
// is configured, cheapest first.
var discoveryOrder = []struct {
	env      string
	provider string
}{
	{"GEMINI_API_KEY", ProviderGemini},
	{"OPENAI_API_KEY", ProviderOpenAI},
	{"ANTHROPIC_API_KEY", ProviderAnthropic},
	{"OPENROUTER_API_KEY", ProviderOpenRouter},
}

// Discover returns a Config for the first vendor API key getenv finds.
func Discover(getenv func(string) string) (Config, bool) {
	for _, d := range discoveryOrder {
		if k := getenv(d.env); k != "" {
			return Config{Provider: d.provider, APIKey: k, Retry: DefaultRetry()}, true
		}
	}
	return Config{}, false
}
