package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"mock needs nothing", Config{Provider: ProviderMock}, nil},
		{"openai with key", Config{Provider: ProviderOpenAI, APIKey: "k"}, nil},
		{"gemini without key", Config{Provider: ProviderGemini}, ErrMissingAPIKey},
		{"empty provider", Config{}, ErrUnknownProvider},
		{"unknown provider", Config{Provider: "carrier-pigeon", APIKey: "k"}, ErrUnknownProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolvedModel(t *testing.T) {
	assert.Equal(t, "claude-haiku-4-5-20251001", Config{Provider: ProviderAnthropic}.ResolvedModel())
	assert.Equal(t, "gemini-2.0-flash", Config{Provider: ProviderGemini}.ResolvedModel())
	assert.Equal(t, "gpt-4o-mini", Config{Provider: ProviderOpenAI}.ResolvedModel())
	assert.Equal(t, "gemini-2.5-pro", Config{Provider: ProviderGemini, Model: "gemini-pro"}.ResolvedModel())
	assert.Equal(t, "gpt-4.1-nano", Config{Provider: ProviderOpenAI, Model: " gpt-4.1-nano "}.ResolvedModel())
}

func TestDiscover(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	_, ok := Discover(getenv)
	assert.False(t, ok)

	env["OPENROUTER_API_KEY"] = "or"
	env["ANTHROPIC_API_KEY"] = "an"
	cfg, ok := Discover(getenv)
	assert.True(t, ok)
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "an", cfg.APIKey)
	assert.Equal(t, DefaultRetry(), cfg.Retry)

	env["GEMINI_API_KEY"] = "ge"
	cfg, _ = Discover(getenv)
	assert.Equal(t, ProviderGemini, cfg.Provider, "gemini is probed first")
}
