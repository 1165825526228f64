package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/artpar/userhub/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "userhub.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr = %s, want 127.0.0.1:8080", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics should default to disabled")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %s", cfg.Metrics.Path)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 9090
logging:
  level: debug
  format: console
metrics:
  enabled: true
cors:
  enabled: true
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr = %s", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || !cfg.CORS.Enabled {
		t.Error("metrics and cors should be enabled")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
`)

	t.Setenv("USERHUB_SERVER_PORT", "7070")
	t.Setenv("USERHUB_LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want 7070 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %s, want warn", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load("/nonexistent/userhub.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "server:\n  port: 99999\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"bad metrics path", "metrics:\n  path: metrics\n"},
	}

	for _, tt := range tests {
		path := writeConfig(t, tt.content)
		if _, err := config.Load(path); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadWithFallback(t *testing.T) {
	// Missing file falls back to env/defaults
	cfg, err := config.LoadWithFallback(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadWithFallback failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}

	// Existing file wins
	path := writeConfig(t, "server:\n  port: 9191\n")
	cfg, err = config.LoadWithFallback(path)
	if err != nil {
		t.Fatalf("LoadWithFallback failed: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Port = %d, want 9191", cfg.Server.Port)
	}
}

func TestLoad_ExpandsEnvInFile(t *testing.T) {
	t.Setenv("TEST_USERHUB_HOST", "10.0.0.5")
	path := writeConfig(t, "server:\n  host: ${TEST_USERHUB_HOST}\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Host != "10.0.0.5" {
		t.Errorf("Host = %s, want 10.0.0.5", cfg.Server.Host)
	}
}
