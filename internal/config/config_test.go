package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/miguel/internal/remote"
)

// isolate points config discovery at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, remote.KindNone, cfg.Remote.Backend)
	assert.False(t, cfg.Remote.Enabled())
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
	assert.EqualValues(t, 4, cfg.Remote.MaxConns)
	assert.Equal(t, remote.DefaultQueueSize, cfg.Sync.QueueSize)
	assert.EqualValues(t, 50<<20, cfg.Gallery.MaxBytes)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MIGUEL_ENV", "production")
	t.Setenv("MIGUEL_REMOTE_BACKEND", "rest")
	t.Setenv("MIGUEL_REMOTE_URL", "https://example.supabase.co")
	t.Setenv("MIGUEL_REMOTE_TIMEOUT", "2s")
	t.Setenv("MIGUEL_SYNC_QUEUE_SIZE", "32")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.Remote.Enabled())
	assert.Equal(t, 2*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 32, cfg.Sync.QueueSize)

	rc := cfg.RemoteConfig()
	assert.Equal(t, remote.KindREST, rc.Backend)
	assert.Equal(t, "https://example.supabase.co", rc.URL)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "miguel.yaml")
	data := "env: production\nremote:\n  backend: postgres\n  url: postgres://localhost/miguel\n  owner_id: family-1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, remote.KindPostgres, cfg.Remote.Backend)
	assert.Equal(t, "family-1", cfg.Remote.OwnerID)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MIGUEL_CATALOG_PATH=/tmp/catalog.toml\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MIGUEL_CATALOG_PATH") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog.toml", cfg.CatalogPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		remote  Remote
		wantErr error
	}{
		{"offline", Remote{Backend: "none"}, nil},
		{"empty", Remote{}, nil},
		{"missing url", Remote{Backend: "mysql"}, ErrMissingRemoteURL},
		{"unknown", Remote{Backend: "firebase", URL: "x"}, remote.ErrUnsupportedBackend},
		{"ok", Remote{Backend: "rest", URL: "https://x"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{Remote: tt.remote}).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLLMConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"MIGUEL_LLM_PROVIDER", "MIGUEL_LLM_API_KEY"} {
		t.Setenv(k, "")
	}

	_, ok := (&Config{}).LLMConfig()
	assert.False(t, ok, "nothing configured")

	cfg, ok := (&Config{LLM: LLM{Provider: "mock"}}).LLMConfig()
	assert.True(t, ok)
	assert.Equal(t, "mock", cfg.Provider)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, ok = (&Config{LLM: LLM{Timeout: time.Second}}).LLMConfig()
	assert.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, time.Second, cfg.Timeout)

	_, ok = (&Config{LLM: LLM{Provider: "anthropic"}}).LLMConfig()
	assert.False(t, ok, "explicit provider without a key")

	cfg, ok = (&Config{LLM: LLM{Provider: "anthropic", APIKey: "k", Model: "claude-haiku"}}).LLMConfig()
	assert.True(t, ok)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.ResolvedModel())
}
