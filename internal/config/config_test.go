package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/garnizeh/trivia/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Addr:           ":8080",
		DatabaseDriver: "sqlite",
		DatabaseURL:    "trivia.db",
		APITimeout:     5 * time.Second,
		CORSOrigin:     "*",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"TRIVIA_ADDR", "TRIVIA_DATABASE_DRIVER", "TRIVIA_DATABASE_URL", "TRIVIA_TIMEOUT", "TRIVIA_DEBUG", "TRIVIA_STRICT_STATUS", "TRIVIA_CORS_ORIGIN", "TRIVIA_MIGRATE"} {
		t.Setenv(k, "")
	}

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DatabaseDriver != "sqlite" || cfg.DatabaseURL != "trivia.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %v", cfg.APITimeout)
	}
	if cfg.StrictStatus || cfg.Debug {
		t.Fatalf("expected strict_status and debug off by default")
	}
	if !cfg.Migrate {
		t.Fatalf("expected migrate on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TRIVIA_ADDR", ":9000")
	t.Setenv("TRIVIA_DATABASE_DRIVER", "postgres")
	t.Setenv("TRIVIA_DATABASE_URL", "postgres://u:p@localhost:5432/trivia")
	t.Setenv("TRIVIA_TIMEOUT", "3s")
	t.Setenv("TRIVIA_STRICT_STATUS", "true")
	t.Setenv("TRIVIA_DEBUG", "1")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.DatabaseDriver != "postgres" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.APITimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.APITimeout)
	}
	if !cfg.StrictStatus || !cfg.Debug {
		t.Fatalf("expected strict_status and debug set from env")
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug log level")
	}
}

func TestLoadConfig_InvalidEnv(t *testing.T) {
	t.Setenv("TRIVIA_TIMEOUT", "soon")
	if _, err := config.LoadConfig(""); err == nil {
		t.Fatalf("expected error for unparsable timeout")
	}

	t.Setenv("TRIVIA_TIMEOUT", "")
	t.Setenv("TRIVIA_STRICT_STATUS", "maybe")
	if _, err := config.LoadConfig(""); err == nil {
		t.Fatalf("expected error for unparsable bool")
	}
}

func TestLoadConfig_YAMLWins(t *testing.T) {
	t.Setenv("TRIVIA_ADDR", ":9000")

	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	y := "addr: \":7000\"\n" +
		"database_url: 'file:quiz.db'\n" +
		"timeout: 2s\n" +
		"strict_status: true\n" +
		"migrate: false\n"
	if err := os.WriteFile(p, []byte(y), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(p)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Fatalf("expected yaml addr to win, got %q", cfg.Addr)
	}
	if cfg.DatabaseURL != "file:quiz.db" || cfg.APITimeout != 2*time.Second {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if !cfg.StrictStatus || cfg.Migrate {
		t.Fatalf("yaml booleans not applied: %+v", cfg)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{name: "postgres", mutate: func(c *config.Config) { c.DatabaseDriver = "postgres" }},
		{name: "unknown driver", mutate: func(c *config.Config) { c.DatabaseDriver = "mysql" }, wantErr: true},
		{name: "missing addr", mutate: func(c *config.Config) { c.Addr = "" }, wantErr: true},
		{name: "missing database url", mutate: func(c *config.Config) { c.DatabaseURL = "" }, wantErr: true},
		{name: "missing cors origin", mutate: func(c *config.Config) { c.CORSOrigin = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *config.Config) { c.APITimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
