// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Recommend.DefaultCount != 3 || cfg.Recommend.MaxCount != 10 {
		t.Errorf("Recommend = %+v, want defaults 3/10", cfg.Recommend)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  timeout: 5s
recommend:
  default_count: 4
  max_count: 8
hours:
  monday:
    - "11:00-15:00"
    - "17:00-22:00"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 5*time.Second {
		t.Errorf("Server.Timeout = %v, want 5s", cfg.Server.Timeout)
	}
	if cfg.Recommend.DefaultCount != 4 {
		t.Errorf("Recommend.DefaultCount = %d, want 4", cfg.Recommend.DefaultCount)
	}
	spans := cfg.Hours["monday"]
	if len(spans) != 2 || spans[1] != "17:00-22:00" {
		t.Errorf("Hours[monday] = %v, want two spans", spans)
	}
	// Untouched sections keep their defaults.
	if cfg.Catalog.Path != "data/menu.json" {
		t.Errorf("Catalog.Path = %q, want default", cfg.Catalog.Path)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("SOFRA_HTTP_PORT", "7070")
	t.Setenv("SOFRA_LOG_LEVEL", "debug")
	t.Setenv("SOFRA_CORS_ORIGINS", "https://sofra.example,https://menu.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "https://sofra.example" {
		t.Errorf("Security.CORSOrigins = %v, want two origins", cfg.Security.CORSOrigins)
	}
}

func TestLoadCORSOriginsCommaSplit(t *testing.T) {
	t.Setenv("SOFRA_CORS_ORIGINS", " https://sofra.example , https://menu.example ,")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"https://sofra.example", "https://menu.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i, origin := range want {
		if cfg.Security.CORSOrigins[i] != origin {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], origin)
		}
	}
}

func TestLoadCORSOriginsFromYAMLUntouched(t *testing.T) {
	path := writeConfig(t, "security:\n  cors_origins:\n    - https://a.example\n    - https://b.example\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v, want the two YAML origins", cfg.Security.CORSOrigins)
	}
}

func TestLoadUnknownEnvIgnored(t *testing.T) {
	t.Setenv("SOFRA_NO_SUCH_KEY", "value")
	if _, err := Load(""); err != nil {
		t.Fatalf("Load() error = %v, want unknown env ignored", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() error = nil, want error for missing config file")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"port out of range", "server:\n  port: 70000\n", "server.port"},
		{"zero default count", "recommend:\n  default_count: 0\n", "default_count"},
		{"max below default", "recommend:\n  default_count: 5\n  max_count: 2\n", "max_count"},
		{"empty catalog path", "catalog:\n  path: \"\"\n", "catalog.path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			if err == nil {
				t.Fatal("Load() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateRateLimitDisabled(t *testing.T) {
	cfg := defaults()
	cfg.Security.RateLimitReqs = 0
	cfg.Security.RateLimitDisabled = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want rate limit checks skipped when disabled", err)
	}
}
