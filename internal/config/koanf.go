// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SOFRA_"

// envKeyMap maps environment variable names (without the SOFRA_ prefix)
// to configuration paths. Variables not listed here are ignored.
var envKeyMap = map[string]string{
	"HTTP_HOST":               "server.host",
	"HTTP_PORT":               "server.port",
	"HTTP_TIMEOUT":            "server.timeout",
	"CATALOG_PATH":            "catalog.path",
	"STORAGE_PATH":            "storage.path",
	"STORAGE_IN_MEMORY":       "storage.in_memory",
	"RECOMMEND_DEFAULT_COUNT": "recommend.default_count",
	"RECOMMEND_MAX_COUNT":     "recommend.max_count",
	"CORS_ORIGINS":            "security.cors_origins",
	"RATE_LIMIT_REQS":         "security.rate_limit_reqs",
	"RATE_LIMIT_WINDOW":       "security.rate_limit_window",
	"DISABLE_RATE_LIMIT":      "security.rate_limit_disabled",
	"LOG_LEVEL":               "logging.level",
	"LOG_FORMAT":              "logging.format",
	"LOG_CALLER":              "logging.caller",
}

// defaults returns the built-in configuration. A deployment with a
// catalog file at the default path can start with no config file at all.
func defaults() Config {
	return Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		Catalog: CatalogConfig{
			Path: "data/menu.json",
		},
		Storage: StorageConfig{
			Path: "data/prefs",
		},
		Recommend: RecommendConfig{
			DefaultCount: 3,
			MaxCount:     10,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and SOFRA_-prefixed environment variables, in increasing precedence.
// An empty path means no config file; a non-empty path that does not
// exist is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(errors.New("invalid configuration"), err)
	}
	return &cfg, nil
}

// sliceConfigPaths lists the config paths parsed as comma-separated
// slices when they arrive as plain strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices
// for known slice fields. Env vars come in as strings, but the config
// expects slices; YAML-sourced values are already slices and are left
// alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransform resolves a SOFRA_ environment variable to its
// configuration path, or to the empty string to skip it.
func envTransform(s string) string {
	key := strings.TrimPrefix(s, envPrefix)
	if path, ok := envKeyMap[key]; ok {
		return path
	}
	return ""
}
