package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/catalog"
	"github.com/abhisek/miguel/internal/config"
	"github.com/abhisek/miguel/internal/content"
	"github.com/abhisek/miguel/internal/llm"
	"github.com/abhisek/miguel/internal/logging"
	"github.com/abhisek/miguel/internal/profile"
	"github.com/abhisek/miguel/internal/remote"
	"github.com/abhisek/miguel/internal/store"
)

// env is the shared wiring of every command that touches the database.
type env struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *store.Store
	backend remote.Backend
}

// openEnv loads configuration, builds the logger and opens the store.
// The TUI owns the terminal, so when tui is set and no log file is
// configured the log goes to miguel.log in the data directory.
func openEnv(cmd *cobra.Command, tui bool) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if tui && cfg.LogPath == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.LogPath = filepath.Join(dir, "miguel.log")
		if err := store.EnsureDir(cfg.LogPath); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))

	return &env{cfg: cfg, logger: logger, store: st}, nil
}

// Close releases the remote backend and the store, then flushes the log.
func (e *env) Close() {
	if e.backend != nil {
		if err := e.backend.Close(); err != nil {
			e.logger.Warn("close remote backend", zap.Error(err))
		}
	}
	if err := e.store.Close(); err != nil {
		e.logger.Warn("close store", zap.Error(err))
	}
	_ = e.logger.Sync()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then MIGUEL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func (e *env) profiles(ctx context.Context) (*profile.Service, error) {
	svc, err := profile.NewService(ctx, e.store.ProfileRepo())
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return svc, nil
}

func (e *env) catalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(e.cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// mirror connects the configured remote backend. Connection failures are
// logged and the app runs offline with a disabled mirror.
func (e *env) mirror(ctx context.Context, migrate bool) *remote.Mirror {
	rc := e.cfg.RemoteConfig()
	backend, err := remote.NewBackend(ctx, rc)
	if err != nil {
		e.logger.Warn("remote backend unavailable, running offline",
			zap.String("backend", rc.Backend), zap.Error(err))
		return remote.NewMirror(nil)
	}
	if backend == nil {
		return remote.NewMirror(nil)
	}
	e.backend = backend

	if migrate {
		if m, ok := backend.(remote.Migrator); ok {
			if err := m.Migrate(ctx); err != nil {
				e.logger.Warn("remote migration failed", zap.Error(err))
			} else {
				e.logger.Info("remote tables ready", zap.String("backend", rc.Backend))
			}
		}
	}

	owner, err := remote.ResolveOwner(rc, time.Now())
	if err != nil {
		e.logger.Warn("remote owner unresolved, profiles will not sync", zap.Error(err))
	}
	return remote.NewMirror(backend,
		remote.WithOwner(owner),
		remote.WithTimeout(rc.Timeout),
		remote.WithMirrorLogger(e.logger))
}

// content builds the story service. Without a configured provider every
// story comes from the catalog.
func (e *env) content(ctx context.Context, cat *catalog.Catalog) *content.Service {
	opts := []content.Option{content.WithLogger(e.logger)}

	var provider llm.Provider
	if cfg, ok := e.cfg.LLMConfig(); ok {
		p, err := llm.NewProvider(ctx, cfg, e.store.EventRepo(), e.logger)
		if err != nil {
			e.logger.Warn("LLM provider not configured, using built-in stories", zap.Error(err))
		} else {
			provider = p
		}
		if g, ok := llm.NewImageGenerator(cfg); ok {
			opts = append(opts, content.WithImages(g))
		}
	}
	return content.NewService(provider, e.store.ContentCache(), cat, opts...)
}
