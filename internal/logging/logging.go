package logging

import (
	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/config"
)

// New builds the application logger. Production uses JSON output; anything
// else uses the human-readable development encoder. A configured LogPath
// replaces stderr, which keeps log lines out of the TUI.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.LogPath != "" {
		zc.OutputPaths = []string{cfg.LogPath}
		zc.ErrorOutputPaths = []string{cfg.LogPath}
	}
	return zc.Build()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
