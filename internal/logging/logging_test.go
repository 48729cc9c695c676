package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/miguel/internal/config"
)

func TestNewWritesToLogPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "miguel.log")
	for _, env := range []string{"local", "production"} {
		l, err := New(&config.Config{Env: env, LogPath: path})
		if err != nil {
			t.Fatalf("New(%s): %v", env, err)
		}
		l.Info("hello " + env)
		_ = l.Sync()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello local") || !strings.Contains(string(data), `"msg":"hello production"`) {
		t.Errorf("log file missing entries:\n%s", data)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
}
