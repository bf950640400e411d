package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "3001" {
		t.Errorf("default port = %q, want 3001", cfg.Server.Port)
	}
	if cfg.Database.Path != "students.db" {
		t.Errorf("default database path = %q, want students.db", cfg.Database.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte("server:\n  port: \"8080\"\ndatabase:\n  path: \"/tmp/portal.db\"\n")
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/portal.db" {
		t.Errorf("database path = %q, want /tmp/portal.db", cfg.Database.Path)
	}
	// Unset file keys keep their defaults.
	if cfg.Server.Mode != "development" {
		t.Errorf("mode = %q, want development", cfg.Server.Mode)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"8080\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PATH", "/var/lib/portal/students.db")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want env override 9090", cfg.Server.Port)
	}
	if cfg.Database.Path != "/var/lib/portal/students.db" {
		t.Errorf("database path = %q, want env override", cfg.Database.Path)
	}
}
