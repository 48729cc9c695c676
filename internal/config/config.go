package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/miguel/internal/llm"
	"github.com/abhisek/miguel/internal/remote"
)

var ErrMissingRemoteURL = errors.New("remote.url is required when a remote backend is configured")

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "MIGUEL"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string  `mapstructure:"env"`          // current application environment (local, production)
	DBPath      string  `mapstructure:"db_path"`      // SQLite file; empty resolves the XDG default
	LogPath     string  `mapstructure:"log_path"`     // log file; empty logs to stderr
	CatalogPath string  `mapstructure:"catalog_path"` // optional TOML content override
	Remote      Remote  `mapstructure:"remote"`       // remote progress mirror
	Sync        Sync    `mapstructure:"sync"`
	Gallery     Gallery `mapstructure:"gallery"`
	LLM         LLM     `mapstructure:"llm"`
}

// Remote configures the optional progress mirror.
type Remote struct {
	Backend     string        `mapstructure:"backend"` // none, postgres, mysql or rest
	URL         string        `mapstructure:"url"`
	APIKey      string        `mapstructure:"api_key"`
	AccessToken string        `mapstructure:"access_token"`
	OwnerID     string        `mapstructure:"owner_id"`
	MaxConns    int32         `mapstructure:"max_conns"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Sync configures the background sync worker.
type Sync struct {
	QueueSize int `mapstructure:"queue_size"`
}

// Gallery configures saved-image storage.
type Gallery struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

// LLM selects the content provider. When Provider is empty a vendor key
// such as OPENAI_API_KEY in the environment picks one.
type LLM struct {
	Provider string        `mapstructure:"provider"` // anthropic, openai, gemini, openrouter or mock
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"` // empty picks the provider's small model
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Enabled reports whether a remote backend is configured.
func (r Remote) Enabled() bool {
	return r.Backend != "" && r.Backend != remote.KindNone
}

// Load reads configuration from an optional .env file, an optional config
// file and environment variables. An empty path searches the default
// locations; a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	// Set default values for configuration keys. Every key needs one so
	// that AutomaticEnv sees it during Unmarshal.
	v.SetDefault("env", "local")
	v.SetDefault("db_path", "")
	v.SetDefault("log_path", "")
	v.SetDefault("catalog_path", "")
	v.SetDefault("remote.backend", remote.KindNone)
	v.SetDefault("remote.url", "")
	v.SetDefault("remote.api_key", "")
	v.SetDefault("remote.access_token", "")
	v.SetDefault("remote.owner_id", "")
	v.SetDefault("remote.max_conns", 4)
	v.SetDefault("remote.timeout", "5s")
	v.SetDefault("sync.queue_size", remote.DefaultQueueSize)
	v.SetDefault("gallery.max_bytes", 50<<20)
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", "30s")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		notExist := errors.As(err, &fileLookupErr) || errors.Is(err, os.ErrNotExist)
		if !notExist {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	switch c.Remote.Backend {
	case "", remote.KindNone:
		return nil
	case remote.KindPostgres, remote.KindMySQL, remote.KindREST:
		if c.Remote.URL == "" {
			return ErrMissingRemoteURL
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", remote.ErrUnsupportedBackend, c.Remote.Backend)
	}
}

// RemoteConfig converts the remote section for remote.NewBackend.
func (c *Config) RemoteConfig() remote.Config {
	return remote.Config{
		Backend:     c.Remote.Backend,
		URL:         c.Remote.URL,
		APIKey:      c.Remote.APIKey,
		AccessToken: c.Remote.AccessToken,
		OwnerID:     c.Remote.OwnerID,
		MaxConns:    c.Remote.MaxConns,
		Timeout:     c.Remote.Timeout,
	}
}

// LLMConfig returns the provider configuration. It reports false when no
// usable provider is configured or discovered, in which case generated
// content falls back to the static catalog.
func (c *Config) LLMConfig() (llm.Config, bool) {
	cfg := llm.Config{
		Provider: c.LLM.Provider,
		APIKey:   c.LLM.APIKey,
		Model:    c.LLM.Model,
		BaseURL:  c.LLM.BaseURL,
		Retry:    llm.DefaultRetry(),
	}
	if cfg.Provider == "" {
		found, ok := llm.Discover(os.Getenv)
		if !ok {
			return llm.Config{}, false
		}
		found.Model, found.BaseURL = c.LLM.Model, c.LLM.BaseURL
		cfg = found
	}
	cfg.Timeout = c.LLM.Timeout
	return cfg, cfg.Validate() == nil
}

// Dir returns the configuration directory ($XDG_CONFIG_HOME/miguel).
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "miguel"), nil
}
