package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notelex.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"

[completion]
ttl = "10s"
limit = 5

[commands]
file = "/tmp/commands.json"
watch = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want default text", cfg.Logging.Format)
	}
	if cfg.Completion.TTL.Std() != 10*time.Second {
		t.Errorf("Completion.TTL = %s, want 10s", cfg.Completion.TTL.Std())
	}
	if cfg.Completion.Limit != 5 {
		t.Errorf("Completion.Limit = %d, want 5", cfg.Completion.Limit)
	}
	if cfg.Completion.CacheSize != 64 {
		t.Errorf("Completion.CacheSize = %d, want default 64", cfg.Completion.CacheSize)
	}
	if cfg.Commands.File != "/tmp/commands.json" || !cfg.Commands.Watch {
		t.Errorf("Commands = %+v", cfg.Commands)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	if _, err := Load(writeConfig(t, "not [valid")); err == nil {
		t.Error("Load() = nil error, want parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NOTELEX_LOG_LEVEL", "warn")
	t.Setenv("NOTELEX_COMPLETION_TTL", "30s")
	t.Setenv("NOTELEX_COMPLETION_LIMIT", "7")
	t.Setenv("NOTELEX_COMMANDS_WATCH", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Completion.TTL.Std() != 30*time.Second {
		t.Errorf("Completion.TTL = %s, want 30s", cfg.Completion.TTL.Std())
	}
	if cfg.Completion.Limit != 7 {
		t.Errorf("Completion.Limit = %d, want 7", cfg.Completion.Limit)
	}
	if !cfg.Commands.Watch {
		t.Error("Commands.Watch = false, want true")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
`)
	t.Setenv("NOTELEX_LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env wins over file)", cfg.Logging.Level)
	}
}

func TestEnvBadValue(t *testing.T) {
	t.Setenv("NOTELEX_COMPLETION_LIMIT", "lots")
	if _, err := Load(""); err == nil {
		t.Error("Load() = nil error, want parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"zero ttl", func(c *Config) { c.Completion.TTL = 0 }},
		{"zero limit", func(c *Config) { c.Completion.Limit = 0 }},
		{"negative cache", func(c *Config) { c.Completion.CacheSize = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
